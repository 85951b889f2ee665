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

// PreviewCheckoutReq 结算页预览
type PreviewCheckoutReq struct {
	ShippingMethod string `json:"shippingMethod"`
	CouponCode     string `json:"couponCode,omitempty"`
}

type PreviewCheckoutResp struct {
	Lines          []CartLine `json:"lines"`
	DefaultAddress *Address   `json:"defaultAddress,omitempty"`
	Subtotal       int64      `json:"subtotal"`
	ShippingFee    int64      `json:"shippingFee"`
	Discount       int64      `json:"discount"`
	CouponMessage  string     `json:"couponMessage,omitempty"`
	Total          int64      `json:"total"`
}

type CartLine struct {
	SKUSN     string `json:"skuSN"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int64  `json:"quantity"`
}

type Address struct {
	ID        int64  `json:"id,omitempty"`
	Recipient string `json:"recipient"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	Street    string `json:"street"`
	Ward      string `json:"ward,omitempty"`
	District  string `json:"district"`
	Province  string `json:"province"`
}

// SubmitCheckoutReq 提交订单
// AddressID 和 Address 二选一,AddressID 优先
type SubmitCheckoutReq struct {
	RequestID      string  `json:"requestID"` // 请求去重,防止订单重复提交
	ShippingMethod string  `json:"shippingMethod"`
	PaymentMethod  string  `json:"paymentMethod"`
	CouponCode     string  `json:"couponCode,omitempty"`
	AddressID      int64   `json:"addressID,omitempty"`
	Address        Address `json:"address,omitempty"`
	SaveAddress    bool    `json:"saveAddress,omitempty"`
}

type SubmitCheckoutResp struct {
	OrderSN string `json:"orderSN"`
	Total   int64  `json:"total"`
}
