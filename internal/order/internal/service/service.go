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
	"strings"

	"github.com/ecodeclub/yapee/internal/order/internal/domain"
	"github.com/ecodeclub/yapee/internal/order/internal/repository"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./service.go -destination=../../mocks/order.mock.go -package=ordermocks -typed Service
type Service interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	FindOrderBySN(ctx context.Context, sn string) (domain.Order, error)
	FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	ListOrders(ctx context.Context, offset, limit int, uid int64) ([]domain.Order, int64, error)
	// Transition 履约侧驱动的状态流转,取消走 CancelOrder
	Transition(ctx context.Context, sn string, next domain.Status) error
	CancelOrder(ctx context.Context, buyerID int64, sn string, reason string) error
}

func NewService(repo repository.OrderRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.OrderRepository
}

func (s *service) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	order.Status = domain.StatusPending
	return s.repo.CreateOrder(ctx, order)
}

func (s *service) FindOrderBySN(ctx context.Context, sn string) (domain.Order, error) {
	return s.repo.FindOrderBySN(ctx, sn)
}

func (s *service) FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	return s.repo.FindOrderBySNAndBuyerID(ctx, sn, buyerID)
}

func (s *service) ListOrders(ctx context.Context, offset, limit int, uid int64) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListOrdersByUID(ctx, offset, limit, uid)
		return err
	})

	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalOrders(ctx, uid)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) Transition(ctx context.Context, sn string, next domain.Status) error {
	if next == domain.StatusCancelled {
		return fmt.Errorf("%w: 取消订单必须填写原因", domain.ErrInvalidTransition)
	}
	order, err := s.repo.FindOrderBySN(ctx, sn)
	if err != nil {
		return err
	}
	if !order.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, next)
	}
	return s.repo.MarkStatus(ctx, sn, order.Status, next, "")
}

// CancelOrder 只有 pending/processing 的订单可以取消,失败时不产生任何改动
func (s *service) CancelOrder(ctx context.Context, buyerID int64, sn string, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return domain.ErrReasonRequired
	}
	order, err := s.repo.FindOrderBySNAndBuyerID(ctx, sn, buyerID)
	if err != nil {
		return err
	}
	if !order.Status.CanTransitionTo(domain.StatusCancelled) {
		return domain.ErrNotCancellable
	}
	return s.repo.MarkStatus(ctx, sn, order.Status, domain.StatusCancelled, reason)
}
