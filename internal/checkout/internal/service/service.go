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
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/yapee/internal/address"
	"github.com/ecodeclub/yapee/internal/cart"
	"github.com/ecodeclub/yapee/internal/checkout/internal/domain"
	"github.com/ecodeclub/yapee/internal/checkout/internal/event"
	"github.com/ecodeclub/yapee/internal/coupon"
	"github.com/ecodeclub/yapee/internal/order"
	"github.com/ecodeclub/yapee/internal/pkg/sequencenumber"
	"github.com/ecodeclub/yapee/internal/shipping"
	"github.com/gotomicro/ego/core/elog"
)

// Submission 一次提交的全部输入
// 地址二选一:AddressID 引用地址簿,否则用内联的 Address
type Submission struct {
	ShippingMethod string
	PaymentMethod  string
	CouponCode     string
	AddressID      int64
	Address        address.Address
	// SaveAddress 内联地址在下单成功后顺手存入地址簿
	SaveAddress bool
}

// Preview 结算页展示用的金额明细,不创建任何东西
type Preview struct {
	Cart           cart.Cart
	DefaultAddress address.Address
	Subtotal       int64
	ShippingFee    int64
	Discount       int64
	CouponMessage  string
	Total          int64
}

type Service interface {
	Preview(ctx context.Context, uid int64, shippingMethod string, couponCode string) (Preview, error)
	// Submit 步骤固定:校验地址和支付方式、取购物车、算小计、算运费、
	// 算优惠(出错整体失败)、冻结快照和订单行、生成订单号、以 pending 落库。
	// 落库成功后清空购物车、存地址、发事件都是尽力而为,失败只记日志不回滚订单
	Submit(ctx context.Context, uid int64, sub Submission) (order.Order, error)
}

func NewService(cartSvc cart.Service,
	shippingSvc shipping.Service,
	couponSvc coupon.Service,
	addressSvc address.Service,
	orderSvc order.Service,
	snGenerator *sequencenumber.Generator,
	producer event.OrderCreatedEventProducer) Service {
	return &service{
		cartSvc:     cartSvc,
		shippingSvc: shippingSvc,
		couponSvc:   couponSvc,
		addressSvc:  addressSvc,
		orderSvc:    orderSvc,
		snGenerator: snGenerator,
		producer:    producer,
		logger:      elog.DefaultLogger,
	}
}

type service struct {
	cartSvc     cart.Service
	shippingSvc shipping.Service
	couponSvc   coupon.Service
	addressSvc  address.Service
	orderSvc    order.Service
	snGenerator *sequencenumber.Generator
	producer    event.OrderCreatedEventProducer
	logger      *elog.Component
}

func (s *service) Preview(ctx context.Context, uid int64, shippingMethod string, couponCode string) (Preview, error) {
	c, err := s.cartSvc.Detail(ctx, uid)
	if err != nil {
		return Preview{}, fmt.Errorf("获取购物车失败: %w", err)
	}
	defaultAddr, err := s.addressSvc.FindDefault(ctx, uid)
	if err != nil {
		return Preview{}, fmt.Errorf("获取默认地址失败: %w", err)
	}
	subtotal := c.Subtotal()
	fee := s.shippingSvc.Calculate(subtotal, shipping.ParseMethod(shippingMethod))
	res := Preview{
		Cart:           c,
		DefaultAddress: defaultAddr,
		Subtotal:       subtotal,
		ShippingFee:    fee,
		Total:          subtotal + fee,
	}
	if couponCode != "" {
		discount, err := s.couponSvc.Apply(ctx, couponCode, subtotal, fee)
		if err != nil {
			return Preview{}, err
		}
		res.Discount = discount.Amount
		res.CouponMessage = discount.Message
		res.Total = subtotal + fee - discount.Amount
	}
	return res, nil
}

func (s *service) Submit(ctx context.Context, uid int64, sub Submission) (order.Order, error) {
	addr, err := s.resolveAddress(ctx, uid, sub)
	if err != nil {
		return order.Order{}, err
	}
	if !domain.ValidPaymentMethod(sub.PaymentMethod) {
		return order.Order{}, fmt.Errorf("%w: %s", domain.ErrInvalidPaymentMethod, sub.PaymentMethod)
	}

	c, err := s.cartSvc.Detail(ctx, uid)
	if err != nil {
		return order.Order{}, fmt.Errorf("获取购物车失败: %w", err)
	}
	if len(c.Lines) == 0 {
		return order.Order{}, domain.ErrEmptyCart
	}

	subtotal := c.Subtotal()
	fee := s.shippingSvc.Calculate(subtotal, shipping.ParseMethod(sub.ShippingMethod))

	var discount int64
	if sub.CouponCode != "" {
		// 优惠码校验失败则整个提交失败,不产生任何订单
		d, err := s.couponSvc.Apply(ctx, sub.CouponCode, subtotal, fee)
		if err != nil {
			return order.Order{}, err
		}
		discount = d.Amount
	}

	sn, err := s.snGenerator.Generate(uid)
	if err != nil {
		return order.Order{}, fmt.Errorf("生成订单号失败: %w", err)
	}

	// 订单行单价取自购物车里冻结的价格,不回查商品目录,
	// 结算过程中的改价不会影响这笔订单
	o, err := s.orderSvc.CreateOrder(ctx, order.Order{
		SN:      sn,
		BuyerID: uid,
		Items: slice.Map(c.Lines, func(idx int, src cart.CartLine) order.OrderItem {
			return order.OrderItem{
				SKUSN:     src.SKUSN,
				SKUName:   src.Name,
				SKUImage:  src.Image,
				UnitPrice: src.UnitPrice,
				Quantity:  src.Quantity,
			}
		}),
		Shipping: order.ShippingSnapshot{
			Recipient: addr.Recipient,
			Phone:     addr.Phone,
			Email:     addr.Email,
			Street:    addr.Street,
			Ward:      addr.Ward,
			District:  addr.District,
			Province:  addr.Province,
		},
		PaymentMethod:  sub.PaymentMethod,
		ShippingMethod: sub.ShippingMethod,
		CouponCode:     sub.CouponCode,
		Subtotal:       subtotal,
		ShippingFee:    fee,
		Discount:       discount,
		Total:          subtotal + fee - discount,
	})
	if err != nil {
		return order.Order{}, fmt.Errorf("创建订单失败: %w", err)
	}

	s.afterSubmit(ctx, uid, sub, o)
	return o, nil
}

// resolveAddress 引用地址必须存在且属于当前用户,内联地址必须通过字段校验
func (s *service) resolveAddress(ctx context.Context, uid int64, sub Submission) (address.Address, error) {
	if sub.AddressID > 0 {
		addr, err := s.addressSvc.Find(ctx, sub.AddressID, uid)
		if err != nil {
			return address.Address{}, fmt.Errorf("获取收货地址失败: %w", err)
		}
		return addr, nil
	}
	addr := sub.Address
	addr.UID = uid
	if err := addr.Validate(); err != nil {
		return address.Address{}, err
	}
	return addr, nil
}

// afterSubmit 订单已经落库,这里的失败只记日志,不回滚订单
func (s *service) afterSubmit(ctx context.Context, uid int64, sub Submission, o order.Order) {
	if err := s.cartSvc.Clear(ctx, uid); err != nil {
		s.logger.Error("下单后清空购物车失败",
			elog.FieldErr(err),
			elog.Int64("uid", uid),
			elog.String("order_sn", o.SN))
	}
	if sub.SaveAddress && sub.AddressID == 0 {
		addr := sub.Address
		addr.UID = uid
		if _, err := s.addressSvc.Add(ctx, addr, false); err != nil {
			s.logger.Error("下单后保存收货地址失败",
				elog.FieldErr(err),
				elog.Int64("uid", uid))
		}
	}
	evt := event.OrderCreatedEvent{
		OrderSN:       o.SN,
		BuyerID:       uid,
		Total:         o.Total,
		PaymentMethod: o.PaymentMethod,
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送订单创建事件失败",
			elog.FieldErr(err),
			elog.String("order_sn", o.SN))
	}
}
