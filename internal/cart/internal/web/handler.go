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
	"github.com/ecodeclub/yapee/internal/cart/internal/domain"
	"github.com/ecodeclub/yapee/internal/cart/internal/service"
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
	g := server.Group("/cart")
	g.POST("/detail", ginx.S(h.Detail))
	g.POST("/add", ginx.BS[AddCartItemReq](h.AddItem))
	g.POST("/update", ginx.BS[UpdateQuantityReq](h.UpdateQuantity))
	g.POST("/remove", ginx.BS[RemoveCartItemReq](h.RemoveItem))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// Detail 查看购物车
func (h *Handler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	cart, err := h.svc.Detail(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("获取购物车失败: %w", err)
	}
	return ginx.Result{
		Data: CartResp{Cart: h.toCartVO(cart)},
	}, nil
}

// AddItem 加入购物车
func (h *Handler) AddItem(ctx *ginx.Context, req AddCartItemReq, sess session.Session) (ginx.Result, error) {
	cart, err := h.svc.AddItem(ctx.Request.Context(), sess.Claims().Uid, req.SN, req.Quantity)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuantity) {
			return invalidQuantityResult, nil
		}
		return systemErrorResult, fmt.Errorf("加入购物车失败: %w", err)
	}
	return ginx.Result{
		Data: CartResp{Cart: h.toCartVO(cart)},
	}, nil
}

// UpdateQuantity 修改购物车中商品数量
func (h *Handler) UpdateQuantity(ctx *ginx.Context, req UpdateQuantityReq, sess session.Session) (ginx.Result, error) {
	cart, err := h.svc.UpdateQuantity(ctx.Request.Context(), sess.Claims().Uid, req.SN, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidQuantity):
			return invalidQuantityResult, nil
		case errors.Is(err, domain.ErrLineNotFound):
			return lineNotFoundResult, nil
		default:
			return systemErrorResult, fmt.Errorf("修改购物车失败: %w", err)
		}
	}
	return ginx.Result{
		Data: CartResp{Cart: h.toCartVO(cart)},
	}, nil
}

// RemoveItem 删除购物车中商品
func (h *Handler) RemoveItem(ctx *ginx.Context, req RemoveCartItemReq, sess session.Session) (ginx.Result, error) {
	cart, err := h.svc.RemoveItem(ctx.Request.Context(), sess.Claims().Uid, req.SN)
	if err != nil {
		return systemErrorResult, fmt.Errorf("删除购物车商品失败: %w", err)
	}
	return ginx.Result{
		Data: CartResp{Cart: h.toCartVO(cart)},
	}, nil
}

func (h *Handler) toCartVO(cart domain.Cart) Cart {
	return Cart{
		Lines: slice.Map(cart.Lines, func(idx int, src domain.CartLine) CartLine {
			return CartLine{
				SN:        src.SKUSN,
				Name:      src.Name,
				Image:     src.Image,
				UnitPrice: src.UnitPrice,
				Quantity:  src.Quantity,
				LineTotal: src.Total(),
			}
		}),
		Subtotal: cart.Subtotal(),
	}
}
