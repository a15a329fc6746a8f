package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobreview/internal/review/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notOwnerResult = ginx.Result{
		Code: errs.NotReviewOwner.Code,
		Msg:  errs.NotReviewOwner.Msg,
	}
)
