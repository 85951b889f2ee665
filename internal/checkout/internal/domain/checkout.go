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
	ErrEmptyCart            = errors.New("购物车为空")
	ErrInvalidPaymentMethod = errors.New("支付方式非法")
)

const (
	// PaymentMethodCOD 货到付款
	PaymentMethodCOD = "cod"
	// PaymentMethodBankTransfer 银行转账
	PaymentMethodBankTransfer = "bank_transfer"
)

// ValidPaymentMethod 只做标记校验,真正的收款集成不在本系统内
func ValidPaymentMethod(method string) bool {
	return method == PaymentMethodCOD || method == PaymentMethodBankTransfer
}
