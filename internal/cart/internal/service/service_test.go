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
	"errors"
	"sync"
	"testing"

	"github.com/ecodeclub/yapee/internal/cart/internal/domain"
	"github.com/ecodeclub/yapee/internal/product"
	productmocks "github.com/ecodeclub/yapee/internal/product/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testUID = int64(234)

type fakeCartRepository struct {
	mu    sync.Mutex
	carts map[int64]domain.Cart
}

func newFakeCartRepository() *fakeCartRepository {
	return &fakeCartRepository{carts: make(map[int64]domain.Cart)}
}

func (f *fakeCartRepository) GetCart(_ context.Context, uid int64) (domain.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cart, ok := f.carts[uid]
	if !ok {
		return domain.Cart{UID: uid}, nil
	}
	return cart, nil
}

func (f *fakeCartRepository) SaveCart(_ context.Context, cart domain.Cart) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.carts[cart.UID] = cart
	return nil
}

func (f *fakeCartRepository) ClearCart(_ context.Context, uid int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.carts[uid] = domain.Cart{UID: uid}
	return nil
}

func newProductMockService(t *testing.T) product.Service {
	ctrl := gomock.NewController(t)
	mockedProductSvc := productmocks.NewMockService(ctrl)
	skus := map[string]product.SKU{
		"SKU100": {
			ID:     100,
			SN:     "SKU100",
			Name:   "商品SKU100",
			Image:  "SKUImage100",
			Price:  100_000,
			Stock:  100,
			Status: product.StatusOnShelf,
		},
		"SKU101": {
			ID:     101,
			SN:     "SKU101",
			Name:   "商品SKU101",
			Image:  "SKUImage101",
			Price:  50_000,
			Stock:  100,
			Status: product.StatusOnShelf,
		},
	}
	mockedProductSvc.EXPECT().FindSKUBySN(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, sn string) (product.SKU, error) {
		sku, ok := skus[sn]
		if !ok {
			return product.SKU{}, errors.New("SKU的SN非法")
		}
		return sku, nil
	}).AnyTimes()
	return mockedProductSvc
}

func TestService_AddItem(t *testing.T) {
	t.Parallel()
	svc := NewService(newFakeCartRepository(), newProductMockService(t))

	cart, err := svc.AddItem(t.Context(), testUID, "SKU100", 2)
	require.NoError(t, err)
	assert.Equal(t, []domain.CartLine{
		{SKUSN: "SKU100", Name: "商品SKU100", Image: "SKUImage100", UnitPrice: 100_000, Quantity: 2},
	}, cart.Lines)
	assert.Equal(t, int64(200_000), cart.Subtotal())

	// 数量超限截断到10
	cart, err = svc.AddItem(t.Context(), testUID, "SKU100", 15)
	require.NoError(t, err)
	assert.Equal(t, int64(10), cart.Lines[0].Quantity)

	// SKU不存在
	_, err = svc.AddItem(t.Context(), testUID, "SKU999", 1)
	assert.Error(t, err)

	// 数量非法
	_, err = svc.AddItem(t.Context(), testUID, "SKU101", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestService_UpdateQuantity(t *testing.T) {
	t.Parallel()
	svc := NewService(newFakeCartRepository(), newProductMockService(t))

	_, err := svc.AddItem(t.Context(), testUID, "SKU100", 2)
	require.NoError(t, err)

	cart, err := svc.UpdateQuantity(t.Context(), testUID, "SKU100", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), cart.Lines[0].Quantity)
	assert.Equal(t, int64(500_000), cart.Subtotal())

	_, err = svc.UpdateQuantity(t.Context(), testUID, "SKU100", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	// 拒绝后数量保持不变
	cart, err = svc.Detail(t.Context(), testUID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), cart.Lines[0].Quantity)

	_, err = svc.UpdateQuantity(t.Context(), testUID, "SKU999", 3)
	assert.ErrorIs(t, err, domain.ErrLineNotFound)
}

func TestService_RemoveItemAndClear(t *testing.T) {
	t.Parallel()
	svc := NewService(newFakeCartRepository(), newProductMockService(t))

	_, err := svc.AddItem(t.Context(), testUID, "SKU100", 1)
	require.NoError(t, err)
	_, err = svc.AddItem(t.Context(), testUID, "SKU101", 2)
	require.NoError(t, err)

	cart, err := svc.RemoveItem(t.Context(), testUID, "SKU100")
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(100_000), cart.Subtotal())

	// 删除不存在的行是no-op
	cart, err = svc.RemoveItem(t.Context(), testUID, "SKU999")
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 1)

	require.NoError(t, svc.Clear(t.Context(), testUID))
	cart, err = svc.Detail(t.Context(), testUID)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
	assert.Zero(t, cart.Subtotal())
}
