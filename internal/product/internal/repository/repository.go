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

	"github.com/ecodeclub/yapee/internal/product/internal/domain"
	"github.com/ecodeclub/yapee/internal/product/internal/repository/dao"
)

type ProductRepository interface {
	FindSKUBySN(ctx context.Context, sn string) (domain.SKU, error)
	CreateSKU(ctx context.Context, sku domain.SKU) (int64, error)
}

func NewProductRepository(d dao.ProductDAO) ProductRepository {
	return &productRepository{d: d}
}

type productRepository struct {
	d dao.ProductDAO
}

func (p *productRepository) FindSKUBySN(ctx context.Context, sn string) (domain.SKU, error) {
	sku, err := p.d.FindSKUBySN(ctx, sn)
	if err != nil {
		return domain.SKU{}, err
	}
	return p.toDomainSKU(sku), nil
}

func (p *productRepository) CreateSKU(ctx context.Context, sku domain.SKU) (int64, error) {
	return p.d.CreateSKU(ctx, p.toEntitySKU(sku))
}

func (p *productRepository) toDomainSKU(sku dao.SKU) domain.SKU {
	return domain.SKU{
		ID:     sku.Id,
		SN:     sku.SN,
		Name:   sku.Name,
		Desc:   sku.Description,
		Image:  sku.Image,
		Price:  sku.Price,
		Stock:  sku.Stock,
		Status: domain.SKUStatus(sku.Status),
		Ctime:  sku.Ctime,
		Utime:  sku.Utime,
	}
}

func (p *productRepository) toEntitySKU(sku domain.SKU) dao.SKU {
	return dao.SKU{
		Id:          sku.ID,
		SN:          sku.SN,
		Name:        sku.Name,
		Description: sku.Desc,
		Image:       sku.Image,
		Price:       sku.Price,
		Stock:       sku.Stock,
		Status:      sku.Status.ToUint8(),
	}
}
