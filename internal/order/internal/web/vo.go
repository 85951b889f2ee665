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

// ListOrdersReq 分页查询用户所有订单
type ListOrdersReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total,omitempty"`
	Orders []Order `json:"orders,omitempty"`
}

// RetrieveOrderDetailReq 获取订单详情
type RetrieveOrderDetailReq struct {
	OrderSN string `json:"sn"`
}

type RetrieveOrderDetailResp struct {
	Order Order `json:"order"`
}

// CancelOrderReq 取消订单,原因为自由文本但不能为空
type CancelOrderReq struct {
	OrderSN string `json:"sn"`
	Reason  string `json:"reason"`
}

// TransitionOrderReq 履约侧驱动的状态流转
type TransitionOrderReq struct {
	OrderSN string `json:"sn"`
	Status  uint8  `json:"status"`
}

type Order struct {
	SN             string      `json:"sn"`
	Status         uint8       `json:"status"`
	StatusName     string      `json:"statusName"`
	Items          []OrderItem `json:"items,omitempty"`
	Shipping       Shipping    `json:"shipping"`
	PaymentMethod  string      `json:"paymentMethod"`
	ShippingMethod string      `json:"shippingMethod"`
	CouponCode     string      `json:"couponCode,omitempty"`
	Subtotal       int64       `json:"subtotal"`
	ShippingFee    int64       `json:"shippingFee"`
	Discount       int64       `json:"discount"`
	Total          int64       `json:"total"`

	CancellationReason string `json:"cancellationReason,omitempty"`
	ProcessedAt        int64  `json:"processedAt,omitempty"`
	ShippedAt          int64  `json:"shippedAt,omitempty"`
	DeliveredAt        int64  `json:"deliveredAt,omitempty"`
	CancelledAt        int64  `json:"cancelledAt,omitempty"`
	Ctime              int64  `json:"ctime"`
}

type OrderItem struct {
	SKUSN     string `json:"skuSN"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int64  `json:"quantity"`
}

type Shipping struct {
	Recipient string `json:"recipient"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	Street    string `json:"street"`
	Ward      string `json:"ward,omitempty"`
	District  string `json:"district"`
	Province  string `json:"province"`
}
