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
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/yapee/internal/order/internal/domain"
	"github.com/ecodeclub/yapee/internal/order/internal/repository/dao"
	"github.com/ecodeclub/yapee/internal/order/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/list", ginx.BS[ListOrdersReq](h.ListOrders))
	g.POST("/detail", ginx.BS[RetrieveOrderDetailReq](h.RetrieveOrderDetail))
	g.POST("/cancel", ginx.BS[CancelOrderReq](h.CancelOrder))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// ListOrders 分页查询当前用户的所有订单
func (h *Handler) ListOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	orders, total, err := h.svc.ListOrders(ctx.Request.Context(), req.Offset, req.Limit, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询订单列表失败: %w", err)
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return toOrderVO(src)
			}),
		},
	}, nil
}

func (h *Handler) RetrieveOrderDetail(ctx *ginx.Context, req RetrieveOrderDetailReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrderBySNAndBuyerID(ctx.Request.Context(), req.OrderSN, sess.Claims().Uid)
	if err != nil {
		if errors.Is(err, dao.ErrOrderNotFound) {
			return orderNotFoundResult, nil
		}
		return systemErrorResult, fmt.Errorf("查询订单详情失败: %w", err)
	}
	return ginx.Result{
		Data: RetrieveOrderDetailResp{Order: toOrderVO(order)},
	}, nil
}

// CancelOrder 取消订单
// 已发货或已完成的订单不允许取消,失败时订单不发生任何改动
func (h *Handler) CancelOrder(ctx *ginx.Context, req CancelOrderReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.CancelOrder(ctx.Request.Context(), sess.Claims().Uid, req.OrderSN, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrReasonRequired):
			return reasonRequiredResult, nil
		case errors.Is(err, domain.ErrNotCancellable):
			return notCancellableResult, nil
		case errors.Is(err, dao.ErrOrderNotFound):
			return orderNotFoundResult, nil
		default:
			return systemErrorResult, fmt.Errorf("取消订单失败: %w", err)
		}
	}
	return ginx.Result{Msg: "OK"}, nil
}

func toOrderVO(order domain.Order) Order {
	return Order{
		SN:         order.SN,
		Status:     order.Status.ToUint8(),
		StatusName: order.Status.String(),
		Items: slice.Map(order.Items, func(idx int, src domain.OrderItem) OrderItem {
			return OrderItem{
				SKUSN:     src.SKUSN,
				Name:      src.SKUName,
				Image:     src.SKUImage,
				UnitPrice: src.UnitPrice,
				Quantity:  src.Quantity,
			}
		}),
		Shipping: Shipping{
			Recipient: order.Shipping.Recipient,
			Phone:     order.Shipping.Phone,
			Email:     order.Shipping.Email,
			Street:    order.Shipping.Street,
			Ward:      order.Shipping.Ward,
			District:  order.Shipping.District,
			Province:  order.Shipping.Province,
		},
		PaymentMethod:      order.PaymentMethod,
		ShippingMethod:     order.ShippingMethod,
		CouponCode:         order.CouponCode,
		Subtotal:           order.Subtotal,
		ShippingFee:        order.ShippingFee,
		Discount:           order.Discount,
		Total:              order.Total,
		CancellationReason: order.CancellationReason,
		ProcessedAt:        order.ProcessedAt,
		ShippedAt:          order.ShippedAt,
		DeliveredAt:        order.DeliveredAt,
		CancelledAt:        order.CancelledAt,
		Ctime:              order.Ctime,
	}
}
