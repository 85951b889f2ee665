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

//go:build wireinject

package checkout

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/yapee/internal/address"
	"github.com/ecodeclub/yapee/internal/cart"
	"github.com/ecodeclub/yapee/internal/checkout/internal/domain"
	"github.com/ecodeclub/yapee/internal/checkout/internal/event"
	"github.com/ecodeclub/yapee/internal/checkout/internal/service"
	"github.com/ecodeclub/yapee/internal/checkout/internal/web"
	"github.com/ecodeclub/yapee/internal/coupon"
	"github.com/ecodeclub/yapee/internal/order"
	"github.com/ecodeclub/yapee/internal/pkg/sequencenumber"
	"github.com/ecodeclub/yapee/internal/shipping"
	"github.com/google/wire"
)

var ModuleSet = wire.NewSet(
	sequencenumber.NewGenerator,
	event.NewOrderCreatedEventProducer,
	service.NewService,
	web.NewHandler,
	wire.Struct(new(Module), "*"))

func InitModule(cache ecache.Cache,
	q mq.MQ,
	cartSvc cart.Service,
	shippingSvc shipping.Service,
	couponSvc coupon.Service,
	addressSvc address.Service,
	orderSvc order.Service) (*Module, error) {
	wire.Build(ModuleSet)
	return new(Module), nil
}

type Module struct {
	Hdl *Handler
	Svc Service
}

type Handler = web.Handler

type Service = service.Service

type Submission = service.Submission

type Preview = service.Preview

var (
	ErrEmptyCart            = domain.ErrEmptyCart
	ErrInvalidPaymentMethod = domain.ErrInvalidPaymentMethod
)
