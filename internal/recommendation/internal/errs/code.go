package errs

var (
	SystemError  = ErrorCode{Code: 510001, Msg: "系统错误"}
	InvalidTopN  = ErrorCode{Code: 510002, Msg: "top_n 不允许为负数"}
	MissingField = ErrorCode{Code: 510003, Msg: "点评数据缺少必要字段"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
