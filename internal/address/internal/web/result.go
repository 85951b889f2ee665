package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/yapee/internal/address/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	addressNotFoundResult = ginx.Result{
		Code: errs.AddressNotFound.Code,
		Msg:  errs.AddressNotFound.Msg,
	}
)

func invalidAddressResult(err error) ginx.Result {
	ec := errs.NewInvalidAddressErr(err)
	return ginx.Result{
		Code: ec.Code,
		Msg:  ec.Msg,
	}
}
