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

package repository

import (
	"context"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/yapee/internal/order/internal/domain"
	"github.com/ecodeclub/yapee/internal/order/internal/repository/dao"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	FindOrderBySN(ctx context.Context, sn string) (domain.Order, error)
	FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	ListOrdersByUID(ctx context.Context, offset int, limit int, uid int64) ([]domain.Order, error)
	TotalOrders(ctx context.Context, uid int64) (int64, error)
	MarkStatus(ctx context.Context, sn string, from domain.Status, to domain.Status, reason string) error
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{d: d}
}

type orderRepository struct {
	d dao.OrderDAO
}

func (o *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	oid, err := o.d.CreateOrder(ctx, o.toOrderEntity(order), o.toOrderItemEntities(order.Items))
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = oid
	return order, nil
}

func (o *orderRepository) FindOrderBySN(ctx context.Context, sn string) (domain.Order, error) {
	order, err := o.d.FindOrderBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, fmt.Errorf("通过订单序列号查找订单失败: %w", err)
	}
	return o.withItems(ctx, order)
}

func (o *orderRepository) FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	order, err := o.d.FindOrderBySNAndBuyerID(ctx, sn, buyerID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("通过订单序列号及买家ID查找订单失败: %w", err)
	}
	return o.withItems(ctx, order)
}

func (o *orderRepository) withItems(ctx context.Context, order dao.Order) (domain.Order, error) {
	items, err := o.d.FindOrderItemsByOrderID(ctx, order.Id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("通过订单ID查找订单项失败: %w", err)
	}
	return o.toOrderDomain(order, items), nil
}

func (o *orderRepository) ListOrdersByUID(ctx context.Context, offset int, limit int, uid int64) ([]domain.Order, error) {
	os, err := o.d.List(ctx, offset, limit, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		// 列表页不需要订单项,详情页再查
		return o.toOrderDomain(src, nil)
	}), nil
}

func (o *orderRepository) TotalOrders(ctx context.Context, uid int64) (int64, error) {
	return o.d.Total(ctx, uid)
}

func (o *orderRepository) MarkStatus(ctx context.Context, sn string, from domain.Status, to domain.Status, reason string) error {
	return o.d.MarkStatus(ctx, sn, from.ToUint8(), to.ToUint8(), reason)
}

func (o *orderRepository) toOrderEntity(order domain.Order) dao.Order {
	return dao.Order{
		Id:                 order.ID,
		SN:                 order.SN,
		BuyerId:            order.BuyerID,
		Status:             order.Status.ToUint8(),
		PaymentMethod:      order.PaymentMethod,
		ShippingMethod:     order.ShippingMethod,
		CouponCode:         order.CouponCode,
		Subtotal:           order.Subtotal,
		ShippingFee:        order.ShippingFee,
		Discount:           order.Discount,
		Total:              order.Total,
		Recipient:          order.Shipping.Recipient,
		Phone:              order.Shipping.Phone,
		Email:              order.Shipping.Email,
		Street:             order.Shipping.Street,
		Ward:               order.Shipping.Ward,
		District:           order.Shipping.District,
		Province:           order.Shipping.Province,
		CancellationReason: order.CancellationReason,
	}
}

func (o *orderRepository) toOrderItemEntities(items []domain.OrderItem) []dao.OrderItem {
	return slice.Map(items, func(idx int, src domain.OrderItem) dao.OrderItem {
		return dao.OrderItem{
			SKUSN:     src.SKUSN,
			SKUName:   src.SKUName,
			SKUImage:  src.SKUImage,
			UnitPrice: src.UnitPrice,
			Quantity:  src.Quantity,
		}
	})
}

func (o *orderRepository) toOrderDomain(order dao.Order, items []dao.OrderItem) domain.Order {
	return domain.Order{
		ID:             order.Id,
		SN:             order.SN,
		BuyerID:        order.BuyerId,
		Status:         domain.Status(order.Status),
		PaymentMethod:  order.PaymentMethod,
		ShippingMethod: order.ShippingMethod,
		CouponCode:     order.CouponCode,
		Subtotal:       order.Subtotal,
		ShippingFee:    order.ShippingFee,
		Discount:       order.Discount,
		Total:          order.Total,
		Shipping: domain.ShippingSnapshot{
			Recipient: order.Recipient,
			Phone:     order.Phone,
			Email:     order.Email,
			Street:    order.Street,
			Ward:      order.Ward,
			District:  order.District,
			Province:  order.Province,
		},
		Items: slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
			return domain.OrderItem{
				OrderID:   src.OrderId,
				SKUSN:     src.SKUSN,
				SKUName:   src.SKUName,
				SKUImage:  src.SKUImage,
				UnitPrice: src.UnitPrice,
				Quantity:  src.Quantity,
			}
		}),
		CancellationReason: order.CancellationReason,
		ProcessedAt:        order.ProcessedAt,
		ShippedAt:          order.ShippedAt,
		DeliveredAt:        order.DeliveredAt,
		CancelledAt:        order.CancelledAt,
		Ctime:              order.Ctime,
		Utime:              order.Utime,
	}
}
