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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound = gorm.ErrRecordNotFound
	// ErrDuplicatedOrderSN 订单号撞了唯一索引,正常情况下不应该发生
	ErrDuplicatedOrderSN = errors.New("订单序列号重复")
	// ErrStatusNotMatched 乐观更新时订单状态已被并发修改
	ErrStatusNotMatched = errors.New("订单状态已变更")
)

type OrderDAO interface {
	CreateOrder(ctx context.Context, order Order, items []OrderItem) (int64, error)
	FindOrderBySN(ctx context.Context, sn string) (Order, error)
	FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error)
	FindOrderItemsByOrderID(ctx context.Context, oid int64) ([]OrderItem, error)
	List(ctx context.Context, offset int, limit int, uid int64) ([]Order, error)
	Total(ctx context.Context, uid int64) (int64, error)
	MarkStatus(ctx context.Context, sn string, from uint8, to uint8, reason string) error
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

// CreateOrder 订单和订单项在同一事务中落库,不会出现没有订单项的半个订单
func (d *OrderGORMDAO) CreateOrder(ctx context.Context, order Order, items []OrderItem) (int64, error) {
	now := time.Now().UnixMilli()
	order.Ctime, order.Utime = now, now
	err := d.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		if err := tx.Create(&order).Error; err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) {
				const uniqueIndexConflictErrNo uint16 = 1062
				if me.Number == uniqueIndexConflictErrNo {
					return ErrDuplicatedOrderSN
				}
			}
			return err
		}
		for i := range items {
			items[i].OrderId = order.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		return tx.Create(&items).Error
	})
	return order.Id, err
}

func (d *OrderGORMDAO) FindOrderBySN(ctx context.Context, sn string) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("sn = ?", sn).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).
		Where("sn = ? AND buyer_id = ?", sn, buyerID).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindOrderItemsByOrderID(ctx context.Context, oid int64) ([]OrderItem, error) {
	var res []OrderItem
	err := d.db.WithContext(ctx).Where("order_id = ?", oid).Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) List(ctx context.Context, offset int, limit int, uid int64) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).Where("buyer_id = ?", uid).
		Order("ctime DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) Total(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Order{}).
		Where("buyer_id = ?", uid).Count(&count).Error
	return count, err
}

// MarkStatus 只改状态、对应时间戳和取消原因,金额列在创建后永不改写
// WHERE status = from 做乐观保护,并发流转只有一个能成功
func (d *OrderGORMDAO) MarkStatus(ctx context.Context, sn string, from uint8, to uint8, reason string) error {
	now := time.Now().UnixMilli()
	updates := map[string]any{
		"status": to,
		"utime":  now,
	}
	switch to {
	case 2:
		updates["processed_at"] = now
	case 3:
		updates["shipped_at"] = now
	case 4:
		updates["delivered_at"] = now
	case 5:
		updates["cancelled_at"] = now
		updates["cancellation_reason"] = reason
	}
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("sn = ? AND status = ?", sn, from).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusNotMatched
	}
	return nil
}

type Order struct {
	Id      int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN      string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	BuyerId int64  `gorm:"not null;index:idx_buyer_id;comment:购买者ID"`
	Status  uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:订单状态 1=待处理 2=处理中 3=配送中 4=已完成 5=已取消"`

	PaymentMethod  string `gorm:"type:varchar(32);not null;comment:支付方式 cod/bank_transfer"`
	ShippingMethod string `gorm:"type:varchar(32);not null;comment:配送方式 standard/express/same_day"`
	CouponCode     string `gorm:"type:varchar(64);not null;default:'';comment:使用的优惠码,可为空"`

	Subtotal    int64 `gorm:"not null;comment:商品小计;单位为分"`
	ShippingFee int64 `gorm:"not null;comment:运费;单位为分"`
	Discount    int64 `gorm:"not null;comment:优惠金额;单位为分"`
	Total       int64 `gorm:"not null;comment:实付总价 = 小计 + 运费 - 优惠;单位为分"`

	// 下单时冻结的收货快照
	Recipient string `gorm:"type:varchar(255);not null;comment:收件人姓名"`
	Phone     string `gorm:"type:varchar(32);not null;comment:收件人手机号"`
	Email     string `gorm:"type:varchar(255);not null;default:'';comment:收件人邮箱,可为空"`
	Street    string `gorm:"type:varchar(512);not null;comment:街道地址"`
	Ward      string `gorm:"type:varchar(255);not null;default:'';comment:坊/社,可为空"`
	District  string `gorm:"type:varchar(255);not null;comment:区县"`
	Province  string `gorm:"type:varchar(255);not null;comment:省份"`

	CancellationReason string `gorm:"type:varchar(512);not null;default:'';comment:取消原因,仅取消时有值"`
	ProcessedAt        int64  `gorm:"comment:开始处理时间"`
	ShippedAt          int64  `gorm:"comment:发货时间"`
	DeliveredAt        int64  `gorm:"comment:送达时间"`
	CancelledAt        int64  `gorm:"comment:取消时间"`
	Ctime              int64
	Utime              int64
}

type OrderItem struct {
	Id       int64  `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId  int64  `gorm:"not null;index:idx_order_id;comment:订单自增ID"`
	SKUSN    string `gorm:"column:sku_sn;type:varchar(255);not null;comment:SKU序列号"`
	SKUName  string `gorm:"column:sku_name;type:varchar(255);not null;comment:SKU名称"`
	SKUImage string `gorm:"column:sku_image;type:varchar(512);not null;default:'';comment:SKU图片"`
	// 下单时冻结的单价
	UnitPrice int64 `gorm:"not null;comment:下单时单价;单位为分"`
	Quantity  int64 `gorm:"not null;comment:购买数量"`
	Ctime     int64
	Utime     int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Order{}, &OrderItem{})
}
