package errs

var (
	SystemError    = ErrorCode{Code: 502001, Msg: "系统错误"}
	ReviewNotFound = ErrorCode{Code: 502002, Msg: "点评不存在"}
	NotReviewOwner = ErrorCode{Code: 502003, Msg: "只能删除自己的点评"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
