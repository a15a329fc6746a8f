package errs

var (
	SystemError           = ErrorCode{Code: 501001, Msg: "系统错误"}
	InvalidUserOrPassword = ErrorCode{Code: 501002, Msg: "用户名或者密码不正确"}
	UserDuplicate         = ErrorCode{Code: 501003, Msg: "用户名已经被注册"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
