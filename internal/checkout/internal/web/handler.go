// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/yapee/internal/address"
	"github.com/ecodeclub/yapee/internal/cart"
	"github.com/ecodeclub/yapee/internal/checkout/internal/domain"
	"github.com/ecodeclub/yapee/internal/checkout/internal/service"
	"github.com/ecodeclub/yapee/internal/coupon"
	"github.com/gin-gonic/gin"
)

var errDuplicateRequest = errors.New("重复请求")

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc   service.Service
	cache ecache.Cache
}

func NewHandler(svc service.Service, cache ecache.Cache) *Handler {
	return &Handler{svc: svc, cache: cache}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/checkout")
	g.POST("/preview", ginx.BS[PreviewCheckoutReq](h.Preview))
	g.POST("/submit", ginx.BS[SubmitCheckoutReq](h.Submit))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// Preview 结算页金额明细,不创建订单
func (h *Handler) Preview(ctx *ginx.Context, req PreviewCheckoutReq, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.Preview(ctx.Request.Context(), sess.Claims().Uid, req.ShippingMethod, req.CouponCode)
	if err != nil {
		if errors.Is(err, coupon.ErrCodeRequired) || errors.Is(err, coupon.ErrInvalidCode) {
			return validationErrResult(err), nil
		}
		return systemErrorResult, fmt.Errorf("结算预览失败: %w", err)
	}
	resp := PreviewCheckoutResp{
		Lines: slice.Map(p.Cart.Lines, func(idx int, src cart.CartLine) CartLine {
			return CartLine{
				SKUSN:     src.SKUSN,
				Name:      src.Name,
				Image:     src.Image,
				UnitPrice: src.UnitPrice,
				Quantity:  src.Quantity,
			}
		}),
		Subtotal:      p.Subtotal,
		ShippingFee:   p.ShippingFee,
		Discount:      p.Discount,
		CouponMessage: p.CouponMessage,
		Total:         p.Total,
	}
	if p.DefaultAddress.ID > 0 {
		resp.DefaultAddress = &Address{
			ID:        p.DefaultAddress.ID,
			Recipient: p.DefaultAddress.Recipient,
			Phone:     p.DefaultAddress.Phone,
			Email:     p.DefaultAddress.Email,
			Street:    p.DefaultAddress.Street,
			Ward:      p.DefaultAddress.Ward,
			District:  p.DefaultAddress.District,
			Province:  p.DefaultAddress.Province,
		}
	}
	return ginx.Result{Data: resp}, nil
}

// Submit 提交订单
func (h *Handler) Submit(ctx *ginx.Context, req SubmitCheckoutReq, sess session.Session) (ginx.Result, error) {
	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		if errors.Is(err, errDuplicateRequest) {
			return duplicateSubmitResult, nil
		}
		return systemErrorResult, fmt.Errorf("请求ID错误: %w", err)
	}

	o, err := h.svc.Submit(ctx.Request.Context(), sess.Claims().Uid, service.Submission{
		ShippingMethod: req.ShippingMethod,
		PaymentMethod:  req.PaymentMethod,
		CouponCode:     req.CouponCode,
		AddressID:      req.AddressID,
		Address: address.Address{
			Recipient: req.Address.Recipient,
			Phone:     req.Address.Phone,
			Email:     req.Address.Email,
			Street:    req.Address.Street,
			Ward:      req.Address.Ward,
			District:  req.Address.District,
			Province:  req.Address.Province,
		},
		SaveAddress: req.SaveAddress,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyCart):
			return emptyCartResult, nil
		case errors.Is(err, address.ErrInvalidAddress),
			errors.Is(err, domain.ErrInvalidPaymentMethod),
			errors.Is(err, coupon.ErrCodeRequired),
			errors.Is(err, coupon.ErrInvalidCode):
			return validationErrResult(err), nil
		case errors.Is(err, address.ErrAddressNotFound):
			return addressNotFoundResult, nil
		default:
			return systemErrorResult, fmt.Errorf("提交订单失败: %w", err)
		}
	}
	return ginx.Result{
		Data: SubmitCheckoutResp{
			OrderSN: o.SN,
			Total:   o.Total,
		},
	}, nil
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("请求ID为空")
	}

	key := h.submitRequestKey(requestID)
	val := h.cache.Get(ctx, key)
	if !val.KeyNotFound() {
		return errDuplicateRequest
	}
	if err := h.cache.Set(ctx, key, requestID, 0); err != nil {
		return fmt.Errorf("缓存请求ID失败: %w", err)
	}
	return nil
}

func (h *Handler) submitRequestKey(requestID string) string {
	return fmt.Sprintf("checkout:submit:%s", requestID)
}
