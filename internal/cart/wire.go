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

package cart

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/yapee/internal/cart/internal/domain"
	"github.com/ecodeclub/yapee/internal/cart/internal/repository"
	"github.com/ecodeclub/yapee/internal/cart/internal/service"
	"github.com/ecodeclub/yapee/internal/cart/internal/web"
	"github.com/ecodeclub/yapee/internal/product"
	"github.com/google/wire"
)

var ModuleSet = wire.NewSet(
	repository.NewCartRepository,
	service.NewService,
	web.NewHandler,
	wire.Struct(new(Module), "*"))

func InitModule(ec ecache.Cache, productSvc product.Service) *Module {
	wire.Build(ModuleSet)
	return new(Module)
}

type Module struct {
	Hdl *Handler
	Svc Service
}

type Handler = web.Handler

type Service = service.Service

type Cart = domain.Cart

type CartLine = domain.CartLine

var (
	ErrInvalidQuantity = domain.ErrInvalidQuantity
	ErrLineNotFound    = domain.ErrLineNotFound
)
