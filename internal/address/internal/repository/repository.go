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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/yapee/internal/address/internal/domain"
	"github.com/ecodeclub/yapee/internal/address/internal/repository/dao"
)

type AddressRepository interface {
	List(ctx context.Context, uid int64) ([]domain.Address, error)
	Find(ctx context.Context, id int64, uid int64) (domain.Address, error)
	Create(ctx context.Context, addr domain.Address, asDefault bool) (int64, error)
	Update(ctx context.Context, addr domain.Address) error
	Delete(ctx context.Context, id int64, uid int64) error
	SetDefault(ctx context.Context, id int64, uid int64) error
}

func NewAddressRepository(d dao.AddressDAO) AddressRepository {
	return &addressRepository{d: d}
}

type addressRepository struct {
	d dao.AddressDAO
}

func (a *addressRepository) List(ctx context.Context, uid int64) ([]domain.Address, error) {
	addrs, err := a.d.ListByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(addrs, func(idx int, src dao.Address) domain.Address {
		return a.toDomain(src)
	}), nil
}

func (a *addressRepository) Find(ctx context.Context, id int64, uid int64) (domain.Address, error) {
	addr, err := a.d.FindByIDAndUID(ctx, id, uid)
	if err != nil {
		return domain.Address{}, err
	}
	return a.toDomain(addr), nil
}

func (a *addressRepository) Create(ctx context.Context, addr domain.Address, asDefault bool) (int64, error) {
	return a.d.Create(ctx, a.toEntity(addr), asDefault)
}

func (a *addressRepository) Update(ctx context.Context, addr domain.Address) error {
	return a.d.Update(ctx, a.toEntity(addr))
}

func (a *addressRepository) Delete(ctx context.Context, id int64, uid int64) error {
	return a.d.Delete(ctx, id, uid)
}

func (a *addressRepository) SetDefault(ctx context.Context, id int64, uid int64) error {
	return a.d.SetDefault(ctx, id, uid)
}

func (a *addressRepository) toDomain(addr dao.Address) domain.Address {
	return domain.Address{
		ID:        addr.Id,
		UID:       addr.Uid,
		Recipient: addr.Recipient,
		Phone:     addr.Phone,
		Email:     addr.Email,
		Street:    addr.Street,
		Ward:      addr.Ward,
		District:  addr.District,
		Province:  addr.Province,
		IsDefault: addr.IsDefault,
		Ctime:     addr.Ctime,
		Utime:     addr.Utime,
	}
}

func (a *addressRepository) toEntity(addr domain.Address) dao.Address {
	return dao.Address{
		Id:        addr.ID,
		Uid:       addr.UID,
		Recipient: addr.Recipient,
		Phone:     addr.Phone,
		Email:     addr.Email,
		Street:    addr.Street,
		Ward:      addr.Ward,
		District:  addr.District,
		Province:  addr.Province,
		IsDefault: addr.IsDefault,
	}
}
