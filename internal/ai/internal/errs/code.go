package errs

var (
	SystemError  = ErrorCode{Code: 506001, Msg: "系统错误"}
	InputTooLong = ErrorCode{Code: 506002, Msg: "提问太长了"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
