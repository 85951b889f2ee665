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
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/yapee/internal/cart/internal/domain"
)

// 购物车长期有效,给一个足够长的过期时间防止僵尸数据堆积
const cartExpiration = 30 * 24 * time.Hour

type CartRepository interface {
	GetCart(ctx context.Context, uid int64) (domain.Cart, error)
	SaveCart(ctx context.Context, cart domain.Cart) error
	ClearCart(ctx context.Context, uid int64) error
}

func NewCartRepository(ec ecache.Cache) CartRepository {
	return &cartECacheRepository{
		ec: &ecache.NamespaceCache{
			Namespace: "cart:",
			C:         ec,
		},
	}
}

type cartECacheRepository struct {
	ec ecache.Cache
}

func (c *cartECacheRepository) GetCart(ctx context.Context, uid int64) (domain.Cart, error) {
	val := c.ec.Get(ctx, c.cartKey(uid))
	if val.KeyNotFound() {
		return domain.Cart{UID: uid}, nil
	}
	data, err := val.AsString()
	if err != nil {
		return domain.Cart{}, fmt.Errorf("读取购物车缓存失败: %w", err)
	}
	var cart domain.Cart
	if err = json.Unmarshal([]byte(data), &cart); err != nil {
		return domain.Cart{}, fmt.Errorf("反序列化购物车失败: %w", err)
	}
	cart.UID = uid
	return cart, nil
}

func (c *cartECacheRepository) SaveCart(ctx context.Context, cart domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("序列化购物车失败: %w", err)
	}
	if err = c.ec.Set(ctx, c.cartKey(cart.UID), string(data), cartExpiration); err != nil {
		return fmt.Errorf("写入购物车缓存失败: %w", err)
	}
	return nil
}

func (c *cartECacheRepository) ClearCart(ctx context.Context, uid int64) error {
	return c.SaveCart(ctx, domain.Cart{UID: uid})
}

func (c *cartECacheRepository) cartKey(uid int64) string {
	return fmt.Sprintf("u:%d", uid)
}
