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

	"github.com/ecodeclub/yapee/internal/cart/internal/domain"
	"github.com/ecodeclub/yapee/internal/cart/internal/repository"
	"github.com/ecodeclub/yapee/internal/product"
)

//go:generate mockgen -source=./service.go -destination=../../mocks/cart.mock.go -package=cartmocks -typed Service
type Service interface {
	Detail(ctx context.Context, uid int64) (domain.Cart, error)
	// AddItem 商品单价、名称、图片在加入购物车时从商品目录解析并冻结到行上
	AddItem(ctx context.Context, uid int64, skuSN string, quantity int64) (domain.Cart, error)
	UpdateQuantity(ctx context.Context, uid int64, skuSN string, quantity int64) (domain.Cart, error)
	RemoveItem(ctx context.Context, uid int64, skuSN string) (domain.Cart, error)
	Clear(ctx context.Context, uid int64) error
}

func NewService(repo repository.CartRepository, productSvc product.Service) Service {
	return &service{repo: repo, productSvc: productSvc}
}

type service struct {
	repo       repository.CartRepository
	productSvc product.Service
}

func (s *service) Detail(ctx context.Context, uid int64) (domain.Cart, error) {
	return s.repo.GetCart(ctx, uid)
}

func (s *service) AddItem(ctx context.Context, uid int64, skuSN string, quantity int64) (domain.Cart, error) {
	sku, err := s.productSvc.FindSKUBySN(ctx, skuSN)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("商品SKU序列号非法: %w", err)
	}
	cart, err := s.repo.GetCart(ctx, uid)
	if err != nil {
		return domain.Cart{}, err
	}
	err = cart.AddLine(domain.CartLine{
		SKUSN:     sku.SN,
		Name:      sku.Name,
		Image:     sku.Image,
		UnitPrice: sku.Price,
		Quantity:  quantity,
	})
	if err != nil {
		return domain.Cart{}, err
	}
	if err = s.repo.SaveCart(ctx, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

func (s *service) UpdateQuantity(ctx context.Context, uid int64, skuSN string, quantity int64) (domain.Cart, error) {
	cart, err := s.repo.GetCart(ctx, uid)
	if err != nil {
		return domain.Cart{}, err
	}
	if err = cart.SetQuantity(skuSN, quantity); err != nil {
		return domain.Cart{}, err
	}
	if err = s.repo.SaveCart(ctx, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

func (s *service) RemoveItem(ctx context.Context, uid int64, skuSN string) (domain.Cart, error) {
	cart, err := s.repo.GetCart(ctx, uid)
	if err != nil {
		return domain.Cart{}, err
	}
	cart.RemoveLine(skuSN)
	if err = s.repo.SaveCart(ctx, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

func (s *service) Clear(ctx context.Context, uid int64) error {
	return s.repo.ClearCart(ctx, uid)
}
