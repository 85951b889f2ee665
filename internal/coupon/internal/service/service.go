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
	"context"
	"strings"

	"github.com/ecodeclub/yapee/internal/coupon/internal/domain"
)

// Discount 应用优惠码的结果
type Discount struct {
	Amount  int64
	Message string
}

//go:generate mockgen -source=./service.go -destination=../../mocks/coupon.mock.go -package=couponmocks -typed Service
type Service interface {
	// Apply 校验优惠码并返回折扣金额
	// 一次提交只允许一个优惠码,换码即整体替换,不叠加
	Apply(ctx context.Context, code string, subtotal int64, shippingFee int64) (Discount, error)
}

func NewService() Service {
	return &service{rules: builtinRules()}
}

type service struct {
	rules map[string]domain.Rule
}

// 固定规则表,没有持久化
func builtinRules() map[string]domain.Rule {
	rules := []domain.Rule{
		{Code: "WELCOME10", Kind: domain.KindPercentage, Value: 10, Message: "新客九折优惠"},
		{Code: "FREESHIP", Kind: domain.KindFreeShipping, Message: "免运费"},
		{Code: "YAPEE50K", Kind: domain.KindFixed, Value: 50_000, Message: "立减50,000"},
	}
	res := make(map[string]domain.Rule, len(rules))
	for _, r := range rules {
		res[r.Code] = r
	}
	return res
}

func (s *service) Apply(_ context.Context, code string, subtotal int64, shippingFee int64) (Discount, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return Discount{}, domain.ErrCodeRequired
	}
	rule, ok := s.rules[code]
	if !ok {
		return Discount{}, domain.ErrInvalidCode
	}
	amount := rule.Discount(subtotal, shippingFee)
	// 防御性上限:折扣不得超过小计加运费
	if ceiling := subtotal + shippingFee; amount > ceiling {
		amount = ceiling
	}
	return Discount{Amount: amount, Message: rule.Message}, nil
}
