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

package order

import (
	"sync"

	"github.com/ecodeclub/yapee/internal/order/internal/domain"
	"github.com/ecodeclub/yapee/internal/order/internal/repository"
	"github.com/ecodeclub/yapee/internal/order/internal/repository/dao"
	"github.com/ecodeclub/yapee/internal/order/internal/service"
	"github.com/ecodeclub/yapee/internal/order/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ModuleSet = wire.NewSet(
	InitTablesOnce,
	repository.NewRepository,
	service.NewService,
	web.NewHandler,
	web.NewAdminHandler,
	wire.Struct(new(Module), "*"))

func InitModule(db *egorm.Component) *Module {
	wire.Build(ModuleSet)
	return new(Module)
}

func InitService(db *egorm.Component) Service {
	wire.Build(
		InitTablesOnce,
		repository.NewRepository,
		service.NewService)
	return nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      Service
}

type Handler = web.Handler

type AdminHandler = web.AdminHandler

type Service = service.Service

type Order = domain.Order

type OrderItem = domain.OrderItem

type ShippingSnapshot = domain.ShippingSnapshot

type Status = domain.Status

const (
	StatusPending    = domain.StatusPending
	StatusProcessing = domain.StatusProcessing
	StatusShipping   = domain.StatusShipping
	StatusCompleted  = domain.StatusCompleted
	StatusCancelled  = domain.StatusCancelled
)

var (
	ErrNotCancellable = domain.ErrNotCancellable
	ErrOrderNotFound  = dao.ErrOrderNotFound
)
