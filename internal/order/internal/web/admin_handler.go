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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/yapee/internal/order/internal/domain"
	"github.com/ecodeclub/yapee/internal/order/internal/repository/dao"
	"github.com/ecodeclub/yapee/internal/order/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 履约侧的订单状态流转入口
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) RegisterRoutes(server *gin.Engine) {
	// 管理员路由组
	admin := server.Group("/order/admin")
	admin.POST("/transition", ginx.B[TransitionOrderReq](h.Transition))
}

// Transition 推进订单状态,只允许按流转表顺序推进
// 取消要走用户侧 /order/cancel,这里不受理
func (h *AdminHandler) Transition(ctx *ginx.Context, req TransitionOrderReq) (ginx.Result, error) {
	err := h.svc.Transition(ctx.Request.Context(), req.OrderSN, domain.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidTransition):
			return invalidTransitionResult, nil
		case errors.Is(err, dao.ErrOrderNotFound):
			return orderNotFoundResult, nil
		default:
			return systemErrorResult, fmt.Errorf("订单状态流转失败: %w", err)
		}
	}
	return ginx.Result{Msg: "OK"}, nil
}
