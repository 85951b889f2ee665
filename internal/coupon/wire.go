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

package coupon

import (
	"github.com/ecodeclub/yapee/internal/coupon/internal/domain"
	"github.com/ecodeclub/yapee/internal/coupon/internal/service"
	"github.com/google/wire"
)

var ServiceSet = wire.NewSet(service.NewService)

func InitService() Service {
	wire.Build(ServiceSet)
	return nil
}

type Service = service.Service

type Discount = service.Discount

var (
	ErrCodeRequired = domain.ErrCodeRequired
	ErrInvalidCode  = domain.ErrInvalidCode
)
