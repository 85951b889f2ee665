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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrAddressNotFound = gorm.ErrRecordNotFound

type AddressDAO interface {
	ListByUID(ctx context.Context, uid int64) ([]Address, error)
	FindByIDAndUID(ctx context.Context, id int64, uid int64) (Address, error)
	Create(ctx context.Context, addr Address, asDefault bool) (int64, error)
	Update(ctx context.Context, addr Address) error
	Delete(ctx context.Context, id int64, uid int64) error
	SetDefault(ctx context.Context, id int64, uid int64) error
}

type AddressGORMDAO struct {
	db *egorm.Component
}

func NewAddressGORMDAO(db *egorm.Component) AddressDAO {
	return &AddressGORMDAO{db: db}
}

func (d *AddressGORMDAO) ListByUID(ctx context.Context, uid int64) ([]Address, error) {
	var res []Address
	err := d.db.WithContext(ctx).Where("uid = ?", uid).
		Order("is_default DESC, ctime DESC").
		Find(&res).Error
	return res, err
}

func (d *AddressGORMDAO) FindByIDAndUID(ctx context.Context, id int64, uid int64) (Address, error) {
	var res Address
	err := d.db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).First(&res).Error
	return res, err
}

// Create 用户的第一个地址、或显式要求时设为默认地址
// 设默认时先清掉旧默认,整个操作在一个事务里,不会出现两个默认
func (d *AddressGORMDAO) Create(ctx context.Context, addr Address, asDefault bool) (int64, error) {
	now := time.Now().UnixMilli()
	addr.Ctime, addr.Utime = now, now
	err := d.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		var count int64
		if err := tx.Model(&Address{}).Where("uid = ?", addr.Uid).Count(&count).Error; err != nil {
			return err
		}
		addr.IsDefault = asDefault || count == 0
		if addr.IsDefault {
			err := tx.Model(&Address{}).
				Where("uid = ? AND is_default = ?", addr.Uid, true).
				Updates(map[string]any{"is_default": false, "utime": now}).Error
			if err != nil {
				return err
			}
		}
		return tx.Create(&addr).Error
	})
	return addr.Id, err
}

func (d *AddressGORMDAO) Update(ctx context.Context, addr Address) error {
	res := d.db.WithContext(ctx).Model(&Address{}).
		Where("id = ? AND uid = ?", addr.Id, addr.Uid).
		Updates(map[string]any{
			"recipient": addr.Recipient,
			"phone":     addr.Phone,
			"email":     addr.Email,
			"street":    addr.Street,
			"ward":      addr.Ward,
			"district":  addr.District,
			"province":  addr.Province,
			"utime":     time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAddressNotFound
	}
	return nil
}

// Delete 数据层允许删除默认地址,是否阻止由上层决定
func (d *AddressGORMDAO) Delete(ctx context.Context, id int64, uid int64) error {
	res := d.db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).Delete(&Address{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAddressNotFound
	}
	return nil
}

// SetDefault 原子地把旧默认翻转为false、目标翻转为true
// 两次写在同一事务中,读者不会观察到零个或两个默认地址的中间态
func (d *AddressGORMDAO) SetDefault(ctx context.Context, id int64, uid int64) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		res := tx.Model(&Address{}).
			Where("id = ? AND uid = ?", id, uid).
			Updates(map[string]any{"is_default": true, "utime": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAddressNotFound
		}
		return tx.Model(&Address{}).
			Where("uid = ? AND id != ? AND is_default = ?", uid, id, true).
			Updates(map[string]any{"is_default": false, "utime": now}).Error
	})
}

type Address struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:收货地址自增ID"`
	Uid       int64  `gorm:"not null;index:idx_address_uid;comment:用户ID"`
	Recipient string `gorm:"type:varchar(255);not null;comment:收件人姓名"`
	Phone     string `gorm:"type:varchar(32);not null;comment:收件人手机号"`
	Email     string `gorm:"type:varchar(255);not null;default:'';comment:收件人邮箱,可为空"`
	Street    string `gorm:"type:varchar(512);not null;comment:街道地址"`
	Ward      string `gorm:"type:varchar(255);not null;default:'';comment:坊/社,可为空"`
	District  string `gorm:"type:varchar(255);not null;comment:区县"`
	Province  string `gorm:"type:varchar(255);not null;comment:省份"`
	IsDefault bool   `gorm:"not null;default:false;comment:是否默认地址,每个用户至多一个"`
	Ctime     int64
	Utime     int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Address{})
}
