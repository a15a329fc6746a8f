package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobreview/internal/ai/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	inputTooLongResult = ginx.Result{
		Code: errs.InputTooLong.Code,
		Msg:  errs.InputTooLong.Msg,
	}
)
