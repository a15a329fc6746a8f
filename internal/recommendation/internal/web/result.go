package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobreview/internal/recommendation/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidTopNResult = ginx.Result{
		Code: errs.InvalidTopN.Code,
		Msg:  errs.InvalidTopN.Msg,
	}
	missingFieldResult = ginx.Result{
		Code: errs.MissingField.Code,
		Msg:  errs.MissingField.Msg,
	}
)
