package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/yapee/internal/order/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	orderNotFoundResult = ginx.Result{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}
	notCancellableResult = ginx.Result{
		Code: errs.OrderNotCancellable.Code,
		Msg:  errs.OrderNotCancellable.Msg,
	}
	reasonRequiredResult = ginx.Result{
		Code: errs.ReasonRequired.Code,
		Msg:  errs.ReasonRequired.Msg,
	}
	invalidTransitionResult = ginx.Result{
		Code: errs.InvalidTransition.Code,
		Msg:  errs.InvalidTransition.Msg,
	}
)
