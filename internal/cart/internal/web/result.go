package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/yapee/internal/cart/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidQuantityResult = ginx.Result{
		Code: errs.InvalidQuantity.Code,
		Msg:  errs.InvalidQuantity.Msg,
	}
	lineNotFoundResult = ginx.Result{
		Code: errs.LineNotFound.Code,
		Msg:  errs.LineNotFound.Msg,
	}
)
