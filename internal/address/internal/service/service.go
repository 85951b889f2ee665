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

	"github.com/ecodeclub/yapee/internal/address/internal/domain"
	"github.com/ecodeclub/yapee/internal/address/internal/repository"
)

//go:generate mockgen -source=./service.go -destination=../../mocks/address.mock.go -package=addressmocks -typed Service
type Service interface {
	List(ctx context.Context, uid int64) ([]domain.Address, error)
	Find(ctx context.Context, id int64, uid int64) (domain.Address, error)
	// FindDefault 返回用户的默认地址,没有任何地址时返回零值
	FindDefault(ctx context.Context, uid int64) (domain.Address, error)
	Add(ctx context.Context, addr domain.Address, asDefault bool) (int64, error)
	Update(ctx context.Context, addr domain.Address) error
	Delete(ctx context.Context, id int64, uid int64) error
	SetDefault(ctx context.Context, id int64, uid int64) error
}

func NewService(repo repository.AddressRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.AddressRepository
}

func (s *service) List(ctx context.Context, uid int64) ([]domain.Address, error) {
	return s.repo.List(ctx, uid)
}

func (s *service) Find(ctx context.Context, id int64, uid int64) (domain.Address, error) {
	return s.repo.Find(ctx, id, uid)
}

func (s *service) FindDefault(ctx context.Context, uid int64) (domain.Address, error) {
	addrs, err := s.repo.List(ctx, uid)
	if err != nil {
		return domain.Address{}, err
	}
	for _, addr := range addrs {
		if addr.IsDefault {
			return addr, nil
		}
	}
	return domain.Address{}, nil
}

func (s *service) Add(ctx context.Context, addr domain.Address, asDefault bool) (int64, error) {
	if err := addr.Validate(); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, addr, asDefault)
}

func (s *service) Update(ctx context.Context, addr domain.Address) error {
	if err := addr.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, addr)
}

func (s *service) Delete(ctx context.Context, id int64, uid int64) error {
	return s.repo.Delete(ctx, id, uid)
}

func (s *service) SetDefault(ctx context.Context, id int64, uid int64) error {
	return s.repo.SetDefault(ctx, id, uid)
}
