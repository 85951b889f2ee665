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
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/yapee/internal/order"
	"github.com/ecodeclub/yapee/internal/order/internal/domain"
	"github.com/ecodeclub/yapee/internal/order/internal/repository/dao"
	"github.com/ecodeclub/yapee/internal/order/internal/web"
	"github.com/ecodeclub/yapee/internal/test"
	testioc "github.com/ecodeclub/yapee/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testUID = int64(234)

func TestOrderModule(t *testing.T) {
	suite.Run(t, new(OrderModuleTestSuite))
}

type OrderModuleTestSuite struct {
	suite.Suite
	server  *egin.Component
	db      *egorm.Component
	dao     dao.OrderDAO
	svc     order.Service
	counter int64
}

func (s *OrderModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	mod := order.InitModule(s.db)
	s.svc = mod.Svc
	s.dao = dao.NewOrderGORMDAO(s.db)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: testUID,
		}))
	})
	mod.Hdl.PrivateRoutes(server.Engine)
	mod.AdminHdl.RegisterRoutes(server.Engine)
	s.server = server
}

func (s *OrderModuleTestSuite) TearDownSuite() {
	err := s.db.Exec("TRUNCATE TABLE `orders`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `order_items`").Error
	require.NoError(s.T(), err)
}

func (s *OrderModuleTestSuite) createOrder(t *testing.T) order.Order {
	s.counter++
	o, err := s.svc.CreateOrder(context.Background(), domain.Order{
		SN:      fmt.Sprintf("OrderSN-%d", s.counter),
		BuyerID: testUID,
		Items: []domain.OrderItem{
			{
				SKUSN:     "SKU100",
				SKUName:   "商品SKU100",
				SKUImage:  "SKUImage100",
				UnitPrice: 150_000,
				Quantity:  2,
			},
		},
		Shipping: domain.ShippingSnapshot{
			Recipient: "Nguyen Van A",
			Phone:     "0912345678",
			Street:    "12 Ly Thuong Kiet",
			District:  "Quan 3",
			Province:  "TP HCM",
		},
		PaymentMethod:  "cod",
		ShippingMethod: "standard",
		Subtotal:       300_000,
		ShippingFee:    30_000,
		Discount:       0,
		Total:          330_000,
	})
	require.NoError(t, err)
	return o
}

func (s *OrderModuleTestSuite) cancelOrder(t *testing.T, sn, reason string) test.Result[any] {
	httpReq, err := http.NewRequest(http.MethodPost, "/order/cancel",
		iox.NewJSONReader(web.CancelOrderReq{OrderSN: sn, Reason: reason}))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan()
}

func (s *OrderModuleTestSuite) transition(t *testing.T, sn string, next domain.Status) test.Result[any] {
	httpReq, err := http.NewRequest(http.MethodPost, "/order/admin/transition",
		iox.NewJSONReader(web.TransitionOrderReq{OrderSN: sn, Status: next.ToUint8()}))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan()
}

func (s *OrderModuleTestSuite) TestCancel_Pending() {
	t := s.T()
	o := s.createOrder(t)

	res := s.cancelOrder(t, o.SN, "买错了")
	assert.Equal(t, 0, res.Code)

	got, err := s.dao.FindOrderBySN(context.Background(), o.SN)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled.ToUint8(), got.Status)
	assert.Equal(t, "买错了", got.CancellationReason)
	assert.True(t, got.CancelledAt > 0)
}

func (s *OrderModuleTestSuite) TestCancel_Processing() {
	t := s.T()
	o := s.createOrder(t)
	res := s.transition(t, o.SN, domain.StatusProcessing)
	assert.Equal(t, 0, res.Code)

	res = s.cancelOrder(t, o.SN, "不想要了")
	assert.Equal(t, 0, res.Code)

	got, err := s.dao.FindOrderBySN(context.Background(), o.SN)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled.ToUint8(), got.Status)
}

func (s *OrderModuleTestSuite) TestCancel_ReasonRequired() {
	t := s.T()
	o := s.createOrder(t)

	res := s.cancelOrder(t, o.SN, "   ")
	assert.Equal(t, 514004, res.Code)

	got, err := s.dao.FindOrderBySN(context.Background(), o.SN)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending.ToUint8(), got.Status)
}

// 已发货的订单不允许取消,且订单不发生任何改动
func (s *OrderModuleTestSuite) TestCancel_ShippingNotCancellable() {
	t := s.T()
	o := s.createOrder(t)
	s.transition(t, o.SN, domain.StatusProcessing)
	s.transition(t, o.SN, domain.StatusShipping)

	before, err := s.dao.FindOrderBySN(context.Background(), o.SN)
	require.NoError(t, err)

	res := s.cancelOrder(t, o.SN, "来不及了")
	assert.Equal(t, 514003, res.Code)
	assert.Equal(t, "not cancellable in current status", res.Msg)

	after, err := s.dao.FindOrderBySN(context.Background(), o.SN)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func (s *OrderModuleTestSuite) TestCancel_NotFound() {
	t := s.T()
	res := s.cancelOrder(t, "OrderSN-not-exist", "随便")
	assert.Equal(t, 514002, res.Code)
}

// 金额字段在创建后的所有流转中保持不变
func (s *OrderModuleTestSuite) TestTransition_FullChainMoneyImmutable() {
	t := s.T()
	o := s.createOrder(t)

	for _, next := range []domain.Status{
		domain.StatusProcessing,
		domain.StatusShipping,
		domain.StatusCompleted,
	} {
		res := s.transition(t, o.SN, next)
		assert.Equal(t, 0, res.Code)
	}

	got, err := s.dao.FindOrderBySN(context.Background(), o.SN)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted.ToUint8(), got.Status)
	assert.Equal(t, int64(300_000), got.Subtotal)
	assert.Equal(t, int64(30_000), got.ShippingFee)
	assert.Equal(t, int64(0), got.Discount)
	assert.Equal(t, int64(330_000), got.Total)
	assert.True(t, got.ProcessedAt > 0)
	assert.True(t, got.ShippedAt > 0)
	assert.True(t, got.DeliveredAt > 0)
}

// 不允许跳级流转
func (s *OrderModuleTestSuite) TestTransition_NoSkipping() {
	t := s.T()
	o := s.createOrder(t)

	res := s.transition(t, o.SN, domain.StatusShipping)
	assert.Equal(t, 514005, res.Code)

	got, err := s.dao.FindOrderBySN(context.Background(), o.SN)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending.ToUint8(), got.Status)
}

// cancelled/completed 是终态
func (s *OrderModuleTestSuite) TestTransition_TerminalStates() {
	t := s.T()
	o := s.createOrder(t)
	s.cancelOrder(t, o.SN, "不要了")

	res := s.transition(t, o.SN, domain.StatusProcessing)
	assert.Equal(t, 514005, res.Code)
}

func (s *OrderModuleTestSuite) TestListAndDetail() {
	t := s.T()
	o := s.createOrder(t)

	httpReq, err := http.NewRequest(http.MethodPost, "/order/list",
		iox.NewJSONReader(web.ListOrdersReq{Limit: 100}))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	listRecorder := test.NewJSONResponseRecorder[web.ListOrdersResp]()
	s.server.ServeHTTP(listRecorder, httpReq)
	require.Equal(t, 200, listRecorder.Code)
	listResp := listRecorder.MustScan().Data
	assert.True(t, listResp.Total >= 1)

	httpReq, err = http.NewRequest(http.MethodPost, "/order/detail",
		iox.NewJSONReader(web.RetrieveOrderDetailReq{OrderSN: o.SN}))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	detailRecorder := test.NewJSONResponseRecorder[web.RetrieveOrderDetailResp]()
	s.server.ServeHTTP(detailRecorder, httpReq)
	require.Equal(t, 200, detailRecorder.Code)
	got := detailRecorder.MustScan().Data.Order
	assert.Equal(t, o.SN, got.SN)
	assert.Equal(t, "pending", got.StatusName)
	require.Len(t, got.Items, 1)
	assert.Equal(t, int64(150_000), got.Items[0].UnitPrice)
	assert.Equal(t, "Nguyen Van A", got.Shipping.Recipient)
	assert.Equal(t, int64(330_000), got.Total)
}

func (s *OrderModuleTestSuite) TestDetail_NotFound() {
	t := s.T()
	httpReq, err := http.NewRequest(http.MethodPost, "/order/detail",
		iox.NewJSONReader(web.RetrieveOrderDetailReq{OrderSN: "OrderSN-not-exist"}))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.RetrieveOrderDetailResp]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 514002, recorder.MustScan().Code)
}
