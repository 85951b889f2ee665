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

package domain

import "errors"

var (
	ErrCodeRequired = errors.New("code required")
	ErrInvalidCode  = errors.New("invalid or expired code")
)

type Kind uint8

func (k Kind) ToUint8() uint8 {
	return uint8(k)
}

const (
	// KindPercentage 按小计的百分比折扣
	KindPercentage Kind = 1
	// KindFixed 固定金额立减
	KindFixed Kind = 2
	// KindFreeShipping 抵扣全部运费
	KindFreeShipping Kind = 3
)

// Rule 优惠码规则, 规则表固定内置, 按大写Code索引
type Rule struct {
	Code    string
	Kind    Kind
	Value   int64
	Message string
}

// Discount 计算该规则在给定小计和运费下的折扣金额
// 上限收敛由调用方Service统一处理
func (r Rule) Discount(subtotal int64, shippingFee int64) int64 {
	switch r.Kind {
	case KindPercentage:
		// 四舍五入到最小货币单位
		return (subtotal*r.Value + 50) / 100
	case KindFixed:
		return r.Value
	case KindFreeShipping:
		// 刚好抵掉运费,运费为零时折扣为零
		return shippingFee
	default:
		return 0
	}
}
