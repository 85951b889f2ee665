package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/yapee/internal/checkout/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	emptyCartResult = ginx.Result{
		Code: errs.EmptyCart.Code,
		Msg:  errs.EmptyCart.Msg,
	}
	addressNotFoundResult = ginx.Result{
		Code: errs.AddressNotFound.Code,
		Msg:  errs.AddressNotFound.Msg,
	}
	duplicateSubmitResult = ginx.Result{
		Code: errs.DuplicateSubmit.Code,
		Msg:  errs.DuplicateSubmit.Msg,
	}
)

func validationErrResult(err error) ginx.Result {
	ec := errs.NewValidationErr(err)
	return ginx.Result{
		Code: ec.Code,
		Msg:  ec.Msg,
	}
}
