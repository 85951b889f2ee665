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

//go:build e2e

package integration

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/yapee/internal/address"
	"github.com/ecodeclub/yapee/internal/cart"
	"github.com/ecodeclub/yapee/internal/checkout"
	"github.com/ecodeclub/yapee/internal/checkout/internal/web"
	"github.com/ecodeclub/yapee/internal/coupon"
	"github.com/ecodeclub/yapee/internal/order"
	orderdao "github.com/ecodeclub/yapee/internal/order/internal/repository/dao"
	"github.com/ecodeclub/yapee/internal/product"
	productmocks "github.com/ecodeclub/yapee/internal/product/mocks"
	"github.com/ecodeclub/yapee/internal/shipping"
	"github.com/ecodeclub/yapee/internal/test"
	testioc "github.com/ecodeclub/yapee/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testUID = int64(552)

func TestCheckoutModule(t *testing.T) {
	suite.Run(t, new(CheckoutModuleTestSuite))
}

type CheckoutModuleTestSuite struct {
	suite.Suite
	server     *egin.Component
	db         *egorm.Component
	mq         mq.MQ
	orderDAO   orderdao.OrderDAO
	cartSvc    cart.Service
	addressSvc address.Service
	ctrl       *gomock.Controller
	counter    int64

	mu     sync.Mutex
	prices map[string]int64
}

func (s *CheckoutModuleTestSuite) SetupSuite() {
	s.ctrl = gomock.NewController(s.T())
	s.prices = map[string]int64{
		"SKU100": 150_000,
		"SKU101": 80_000,
	}

	s.db = testioc.InitDB()
	s.mq = testioc.InitMQ()
	ec := testioc.InitCache()

	cartModule := cart.InitModule(ec, s.getProductMockService())
	s.cartSvc = cartModule.Svc
	addressModule := address.InitModule(s.db)
	s.addressSvc = addressModule.Svc
	orderModule := order.InitModule(s.db)
	s.orderDAO = orderdao.NewOrderGORMDAO(s.db)

	mod, err := checkout.InitModule(ec, s.mq, s.cartSvc,
		shipping.InitService(), coupon.InitService(), s.addressSvc, orderModule.Svc)
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: testUID,
		}))
	})
	mod.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *CheckoutModuleTestSuite) TearDownTest() {
	require.NoError(s.T(), s.cartSvc.Clear(context.Background(), testUID))
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `orders`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `order_items`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `addresses`").Error)
	s.setPrice("SKU100", 150_000)
	s.setPrice("SKU101", 80_000)
}

func (s *CheckoutModuleTestSuite) getProductMockService() product.Service {
	mockedProductSvc := productmocks.NewMockService(s.ctrl)
	mockedProductSvc.EXPECT().FindSKUBySN(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, sn string) (product.SKU, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			price, ok := s.prices[sn]
			if !ok {
				return product.SKU{}, fmt.Errorf("SKU的SN非法: %s", sn)
			}
			return product.SKU{
				SN:     sn,
				Name:   "商品" + sn,
				Image:  "image-" + sn,
				Price:  price,
				Status: product.StatusOnShelf,
			}, nil
		}).AnyTimes()
	return mockedProductSvc
}

func (s *CheckoutModuleTestSuite) setPrice(sn string, price int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prices[sn] = price
}

func (s *CheckoutModuleTestSuite) requestID() string {
	s.counter++
	return fmt.Sprintf("request-id-%d-%d", time.Now().UnixNano(), s.counter)
}

func (s *CheckoutModuleTestSuite) inlineAddress() web.Address {
	return web.Address{
		Recipient: "Nguyen Van A",
		Phone:     "0912345678",
		Street:    "12 Ly Thuong Kiet",
		District:  "Quan 3",
		Province:  "TP HCM",
	}
}

func (s *CheckoutModuleTestSuite) submit(t *testing.T, req web.SubmitCheckoutReq) test.Result[web.SubmitCheckoutResp] {
	httpReq, err := http.NewRequest(http.MethodPost, "/checkout/submit", iox.NewJSONReader(req))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.SubmitCheckoutResp]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan()
}

func (s *CheckoutModuleTestSuite) totalOrders(t *testing.T) int64 {
	total, err := s.orderDAO.Total(context.Background(), testUID)
	require.NoError(t, err)
	return total
}

func (s *CheckoutModuleTestSuite) TestSubmit_InlineAddress() {
	t := s.T()
	_, err := s.cartSvc.AddItem(context.Background(), testUID, "SKU100", 2)
	require.NoError(t, err)
	_, err = s.cartSvc.AddItem(context.Background(), testUID, "SKU101", 1)
	require.NoError(t, err)

	consumer, err := s.mq.Consumer("order_created_events", "checkout-test")
	require.NoError(t, err)

	res := s.submit(t, web.SubmitCheckoutReq{
		RequestID:      s.requestID(),
		ShippingMethod: "standard",
		PaymentMethod:  "cod",
		Address:        s.inlineAddress(),
	})
	require.Equal(t, 0, res.Code)
	assert.NotEmpty(t, res.Data.OrderSN)
	// 380,000 的小计,标准配送收 30,000 运费
	assert.Equal(t, int64(410_000), res.Data.Total)

	got, err := s.orderDAO.FindOrderBySNAndBuyerID(context.Background(), res.Data.OrderSN, testUID)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), got.Status)
	assert.Equal(t, int64(380_000), got.Subtotal)
	assert.Equal(t, int64(30_000), got.ShippingFee)
	assert.Equal(t, int64(0), got.Discount)
	assert.Equal(t, got.Subtotal+got.ShippingFee-got.Discount, got.Total)
	assert.Equal(t, "Nguyen Van A", got.Recipient)

	items, err := s.orderDAO.FindOrderItemsByOrderID(context.Background(), got.Id)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	// 下单成功后购物车被清空
	c, err := s.cartSvc.Detail(context.Background(), testUID)
	require.NoError(t, err)
	assert.Empty(t, c.Lines)

	// 事件已发出
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(msg.Value), res.Data.OrderSN)
}

func (s *CheckoutModuleTestSuite) TestSubmit_WithCoupon() {
	t := s.T()
	_, err := s.cartSvc.AddItem(context.Background(), testUID, "SKU100", 2)
	require.NoError(t, err)

	res := s.submit(t, web.SubmitCheckoutReq{
		RequestID:      s.requestID(),
		ShippingMethod: "standard",
		PaymentMethod:  "bank_transfer",
		CouponCode:     "WELCOME10",
		Address:        s.inlineAddress(),
	})
	require.Equal(t, 0, res.Code)
	// 小计 300,000 + 运费 30,000 - 九折优惠 30,000
	assert.Equal(t, int64(300_000), res.Data.Total)
}

// 地址校验失败时整个提交失败,不产生订单
func (s *CheckoutModuleTestSuite) TestSubmit_InvalidPhone() {
	t := s.T()
	_, err := s.cartSvc.AddItem(context.Background(), testUID, "SKU100", 1)
	require.NoError(t, err)

	addr := s.inlineAddress()
	addr.Phone = "123"
	res := s.submit(t, web.SubmitCheckoutReq{
		RequestID:      s.requestID(),
		ShippingMethod: "standard",
		PaymentMethod:  "cod",
		Address:        addr,
	})
	assert.Equal(t, 515003, res.Code)
	assert.Equal(t, int64(0), s.totalOrders(t))
}

// 优惠码非法时整个提交失败,不产生订单,购物车保持原样
func (s *CheckoutModuleTestSuite) TestSubmit_BadCouponAborts() {
	t := s.T()
	_, err := s.cartSvc.AddItem(context.Background(), testUID, "SKU100", 1)
	require.NoError(t, err)

	res := s.submit(t, web.SubmitCheckoutReq{
		RequestID:      s.requestID(),
		ShippingMethod: "standard",
		PaymentMethod:  "cod",
		CouponCode:     "BADCODE",
		Address:        s.inlineAddress(),
	})
	assert.Equal(t, 515003, res.Code)
	assert.Equal(t, "invalid or expired code", res.Msg)
	assert.Equal(t, int64(0), s.totalOrders(t))

	c, err := s.cartSvc.Detail(context.Background(), testUID)
	require.NoError(t, err)
	assert.Len(t, c.Lines, 1)
}

func (s *CheckoutModuleTestSuite) TestSubmit_EmptyCart() {
	t := s.T()
	res := s.submit(t, web.SubmitCheckoutReq{
		RequestID:      s.requestID(),
		ShippingMethod: "standard",
		PaymentMethod:  "cod",
		Address:        s.inlineAddress(),
	})
	assert.Equal(t, 515002, res.Code)
}

func (s *CheckoutModuleTestSuite) TestSubmit_InvalidPaymentMethod() {
	t := s.T()
	_, err := s.cartSvc.AddItem(context.Background(), testUID, "SKU100", 1)
	require.NoError(t, err)

	res := s.submit(t, web.SubmitCheckoutReq{
		RequestID:      s.requestID(),
		ShippingMethod: "standard",
		PaymentMethod:  "crypto",
		Address:        s.inlineAddress(),
	})
	assert.Equal(t, 515003, res.Code)
	assert.Equal(t, int64(0), s.totalOrders(t))
}

// 提交后改价不影响已创建的订单
func (s *CheckoutModuleTestSuite) TestSubmit_PriceDriftImmunity() {
	t := s.T()
	_, err := s.cartSvc.AddItem(context.Background(), testUID, "SKU100", 1)
	require.NoError(t, err)

	// 加购之后商品目录改价
	s.setPrice("SKU100", 999_000)

	res := s.submit(t, web.SubmitCheckoutReq{
		RequestID:      s.requestID(),
		ShippingMethod: "standard",
		PaymentMethod:  "cod",
		Address:        s.inlineAddress(),
	})
	require.Equal(t, 0, res.Code)

	got, err := s.orderDAO.FindOrderBySNAndBuyerID(context.Background(), res.Data.OrderSN, testUID)
	require.NoError(t, err)
	items, err := s.orderDAO.FindOrderItemsByOrderID(context.Background(), got.Id)
	require.NoError(t, err)
	require.Len(t, items, 1)
	// 订单行上的单价是加购时冻结的价格
	assert.Equal(t, int64(150_000), items[0].UnitPrice)
}

// 相同 requestID 的重复提交只会创建一个订单
func (s *CheckoutModuleTestSuite) TestSubmit_Deduplication() {
	t := s.T()
	_, err := s.cartSvc.AddItem(context.Background(), testUID, "SKU100", 1)
	require.NoError(t, err)

	requestID := s.requestID()
	res := s.submit(t, web.SubmitCheckoutReq{
		RequestID:      requestID,
		ShippingMethod: "standard",
		PaymentMethod:  "cod",
		Address:        s.inlineAddress(),
	})
	require.Equal(t, 0, res.Code)

	res = s.submit(t, web.SubmitCheckoutReq{
		RequestID:      requestID,
		ShippingMethod: "standard",
		PaymentMethod:  "cod",
		Address:        s.inlineAddress(),
	})
	assert.Equal(t, 515005, res.Code)
	assert.Equal(t, int64(1), s.totalOrders(t))
}

// saveAddress 的内联地址在下单成功后写入地址簿
func (s *CheckoutModuleTestSuite) TestSubmit_SaveAddressSideEffect() {
	t := s.T()
	_, err := s.cartSvc.AddItem(context.Background(), testUID, "SKU100", 1)
	require.NoError(t, err)

	res := s.submit(t, web.SubmitCheckoutReq{
		RequestID:      s.requestID(),
		ShippingMethod: "standard",
		PaymentMethod:  "cod",
		Address:        s.inlineAddress(),
		SaveAddress:    true,
	})
	require.Equal(t, 0, res.Code)

	addrs, err := s.addressSvc.List(context.Background(), testUID)
	require.NoError(t, err)
	require.Len(t, addrs, 1)
	assert.Equal(t, "Nguyen Van A", addrs[0].Recipient)
}

// 引用地址簿中的地址,快照冻结到订单上
func (s *CheckoutModuleTestSuite) TestSubmit_SavedAddressRef() {
	t := s.T()
	_, err := s.cartSvc.AddItem(context.Background(), testUID, "SKU100", 1)
	require.NoError(t, err)

	id, err := s.addressSvc.Add(context.Background(), address.Address{
		UID:       testUID,
		Recipient: "Tran Thi B",
		Phone:     "0987654321",
		Street:    "5 Nguyen Hue",
		District:  "Quan 1",
		Province:  "TP HCM",
	}, true)
	require.NoError(t, err)

	res := s.submit(t, web.SubmitCheckoutReq{
		RequestID:      s.requestID(),
		ShippingMethod: "express",
		PaymentMethod:  "cod",
		AddressID:      id,
	})
	require.Equal(t, 0, res.Code)

	got, err := s.orderDAO.FindOrderBySNAndBuyerID(context.Background(), res.Data.OrderSN, testUID)
	require.NoError(t, err)
	assert.Equal(t, "Tran Thi B", got.Recipient)
	assert.Equal(t, int64(45_000), got.ShippingFee)
}

func (s *CheckoutModuleTestSuite) TestSubmit_SavedAddressNotFound() {
	t := s.T()
	_, err := s.cartSvc.AddItem(context.Background(), testUID, "SKU100", 1)
	require.NoError(t, err)

	res := s.submit(t, web.SubmitCheckoutReq{
		RequestID:      s.requestID(),
		ShippingMethod: "standard",
		PaymentMethod:  "cod",
		AddressID:      999999,
	})
	assert.Equal(t, 515004, res.Code)
	assert.Equal(t, int64(0), s.totalOrders(t))
}

func (s *CheckoutModuleTestSuite) TestPreview() {
	t := s.T()
	_, err := s.cartSvc.AddItem(context.Background(), testUID, "SKU100", 4)
	require.NoError(t, err)

	httpReq, err := http.NewRequest(http.MethodPost, "/checkout/preview",
		iox.NewJSONReader(web.PreviewCheckoutReq{
			ShippingMethod: "standard",
			CouponCode:     "FREESHIP",
		}))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.PreviewCheckoutResp]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(t, 200, recorder.Code)
	got := recorder.MustScan().Data
	// 600,000 的小计超过免运费门槛,FREESHIP 相当于没有优惠
	assert.Equal(t, int64(600_000), got.Subtotal)
	assert.Equal(t, int64(0), got.ShippingFee)
	assert.Equal(t, int64(0), got.Discount)
	assert.Equal(t, int64(600_000), got.Total)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, int64(4), got.Lines[0].Quantity)
}
