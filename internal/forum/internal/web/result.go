package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobreview/internal/forum/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidParentResult = ginx.Result{
		Code: errs.InvalidParent.Code,
		Msg:  errs.InvalidParent.Msg,
	}
	notOwnerResult = ginx.Result{
		Code: errs.NotCommentOwner.Code,
		Msg:  errs.NotCommentOwner.Msg,
	}
)
