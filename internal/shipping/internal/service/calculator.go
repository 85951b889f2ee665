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

package service

import (
	"github.com/ecodeclub/yapee/internal/shipping/internal/domain"
)

const (
	// 标准配送满额免运费门槛
	freeShippingThreshold = 500_000

	standardFee = 30_000
	expressFee  = 45_000
	sameDayFee  = 60_000
)

type Service interface {
	Calculate(subtotal int64, method domain.Method) int64
}

func NewService() Service {
	return &service{}
}

type service struct{}

// Calculate 根据小计金额和配送方式计算运费,结果非负,没有错误分支
func (s *service) Calculate(subtotal int64, method domain.Method) int64 {
	switch method {
	case domain.MethodStandard:
		if subtotal > freeShippingThreshold {
			return 0
		}
		return standardFee
	case domain.MethodExpress:
		return expressFee
	case domain.MethodSameDay:
		return sameDayFee
	default:
		// 未知配送方式按付费标准运费兜底
		return standardFee
	}
}
