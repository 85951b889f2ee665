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
	"github.com/ecodeclub/yapee/internal/address/internal/domain"
	"github.com/ecodeclub/yapee/internal/address/internal/repository/dao"
	"github.com/ecodeclub/yapee/internal/address/internal/service"
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
	g := server.Group("/address")
	g.POST("/list", ginx.S(h.List))
	g.POST("/add", ginx.BS[AddAddressReq](h.Add))
	g.POST("/update", ginx.BS[UpdateAddressReq](h.Update))
	g.POST("/delete", ginx.BS[DeleteAddressReq](h.Delete))
	g.POST("/default", ginx.BS[SetDefaultAddressReq](h.SetDefault))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// List 查看地址簿
func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	addrs, err := h.svc.List(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("获取地址簿失败: %w", err)
	}
	return ginx.Result{
		Data: ListAddressesResp{
			Addresses: slice.Map(addrs, func(idx int, src domain.Address) Address {
				return toAddressVO(src)
			}),
		},
	}, nil
}

// Add 新增收货地址
func (h *Handler) Add(ctx *ginx.Context, req AddAddressReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Add(ctx.Request.Context(), toAddressDomain(req.Address, sess.Claims().Uid), req.AsDefault)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAddress) {
			return invalidAddressResult(err), nil
		}
		return systemErrorResult, fmt.Errorf("新增收货地址失败: %w", err)
	}
	return ginx.Result{
		Data: AddAddressResp{ID: id},
	}, nil
}

// Update 修改收货地址
func (h *Handler) Update(ctx *ginx.Context, req UpdateAddressReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Update(ctx.Request.Context(), toAddressDomain(req.Address, sess.Claims().Uid))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAddress):
			return invalidAddressResult(err), nil
		case errors.Is(err, dao.ErrAddressNotFound):
			return addressNotFoundResult, nil
		default:
			return systemErrorResult, fmt.Errorf("修改收货地址失败: %w", err)
		}
	}
	return ginx.Result{Msg: "OK"}, nil
}

// Delete 删除收货地址
// 是否允许删除默认地址由前端拦截,数据层不阻止
func (h *Handler) Delete(ctx *ginx.Context, req DeleteAddressReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.ID, sess.Claims().Uid)
	if err != nil {
		if errors.Is(err, dao.ErrAddressNotFound) {
			return addressNotFoundResult, nil
		}
		return systemErrorResult, fmt.Errorf("删除收货地址失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

// SetDefault 设置默认收货地址
func (h *Handler) SetDefault(ctx *ginx.Context, req SetDefaultAddressReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.SetDefault(ctx.Request.Context(), req.ID, sess.Claims().Uid)
	if err != nil {
		if errors.Is(err, dao.ErrAddressNotFound) {
			return addressNotFoundResult, nil
		}
		return systemErrorResult, fmt.Errorf("设置默认收货地址失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func toAddressVO(addr domain.Address) Address {
	return Address{
		ID:        addr.ID,
		Recipient: addr.Recipient,
		Phone:     addr.Phone,
		Email:     addr.Email,
		Street:    addr.Street,
		Ward:      addr.Ward,
		District:  addr.District,
		Province:  addr.Province,
		IsDefault: addr.IsDefault,
	}
}

func toAddressDomain(addr Address, uid int64) domain.Address {
	return domain.Address{
		ID:        addr.ID,
		UID:       uid,
		Recipient: addr.Recipient,
		Phone:     addr.Phone,
		Email:     addr.Email,
		Street:    addr.Street,
		Ward:      addr.Ward,
		District:  addr.District,
		Province:  addr.Province,
	}
}
