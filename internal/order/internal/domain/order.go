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
	ErrInvalidTransition = errors.New("订单状态流转非法")
	// ErrNotCancellable 已发货或已完成的订单不允许取消
	ErrNotCancellable = errors.New("not cancellable in current status")
	ErrReasonRequired = errors.New("取消订单必须填写原因")
)

type Status uint8

const (
	StatusPending    Status = 1
	StatusProcessing Status = 2
	StatusShipping   Status = 3
	StatusCompleted  Status = 4
	StatusCancelled  Status = 5
)

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusProcessing:
		return "processing"
	case StatusShipping:
		return "shipping"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// CanTransitionTo 状态机流转表
// pending → processing → shipping → completed 严格顺序,不允许跳级
// cancelled 只能从 pending 或 processing 进入,cancelled/completed 为终态
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusProcessing || next == StatusCancelled
	case StatusProcessing:
		return next == StatusShipping || next == StatusCancelled
	case StatusShipping:
		return next == StatusCompleted
	default:
		return false
	}
}

type Order struct {
	ID      int64
	SN      string
	BuyerID int64
	Status  Status
	Items   []OrderItem
	// Shipping 下单时冻结的收货快照,后续地址簿变更不影响已有订单
	Shipping       ShippingSnapshot
	PaymentMethod  string
	ShippingMethod string
	CouponCode     string
	// 金额字段在创建时一次算定,此后任何状态流转都不再改写
	Subtotal    int64
	ShippingFee int64
	Discount    int64
	Total       int64

	CancellationReason string
	ProcessedAt        int64
	ShippedAt          int64
	DeliveredAt        int64
	CancelledAt        int64
	Ctime              int64
	Utime              int64
}

type OrderItem struct {
	OrderID  int64
	SKUSN    string
	SKUName  string
	SKUImage string
	// UnitPrice 下单时冻结的单价,商品改价不影响已有订单
	UnitPrice int64
	Quantity  int64
}

type ShippingSnapshot struct {
	Recipient string
	Phone     string
	Email     string
	Street    string
	Ward      string
	District  string
	Province  string
}
