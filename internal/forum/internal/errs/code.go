package errs

var (
	SystemError     = ErrorCode{Code: 503001, Msg: "系统错误"}
	InvalidParent   = ErrorCode{Code: 503002, Msg: "回复的评论不存在"}
	NotCommentOwner = ErrorCode{Code: 503003, Msg: "只能删除自己的评论"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
