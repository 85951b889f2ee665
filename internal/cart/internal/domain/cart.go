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

package domain

import "errors"

var (
	ErrInvalidQuantity = errors.New("商品数量非法")
	ErrLineNotFound    = errors.New("购物车中不存在该商品")
)

// MaxQuantityPerLine 单个商品限购数量,超出部分静默截断
const MaxQuantityPerLine = 10

type CartLine struct {
	SKUSN     string `json:"skusn"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int64  `json:"quantity"`
}

// Total 行小计
func (l CartLine) Total() int64 {
	return l.UnitPrice * l.Quantity
}

// Cart 用户会话内的购物车,按加入顺序保存行项目
// 由调用方显式传递,不依赖任何进程级全局状态
type Cart struct {
	UID   int64      `json:"uid"`
	Lines []CartLine `json:"lines"`
}

// AddLine 加入商品,已存在时累加数量,数量超限截断到上限
func (c *Cart) AddLine(line CartLine) error {
	if line.Quantity < 1 {
		return ErrInvalidQuantity
	}
	for i := range c.Lines {
		if c.Lines[i].SKUSN == line.SKUSN {
			c.Lines[i].Quantity = capQuantity(c.Lines[i].Quantity + line.Quantity)
			return nil
		}
	}
	line.Quantity = capQuantity(line.Quantity)
	c.Lines = append(c.Lines, line)
	return nil
}

// SetQuantity 修改某行数量,小于1拒绝并保持原样
func (c *Cart) SetQuantity(skuSN string, quantity int64) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	for i := range c.Lines {
		if c.Lines[i].SKUSN == skuSN {
			c.Lines[i].Quantity = capQuantity(quantity)
			return nil
		}
	}
	return ErrLineNotFound
}

// RemoveLine 删除某行,不存在时静默忽略
func (c *Cart) RemoveLine(skuSN string) {
	for i := range c.Lines {
		if c.Lines[i].SKUSN == skuSN {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Subtotal 每次调用都重新累加,不缓存
func (c *Cart) Subtotal() int64 {
	var res int64
	for _, l := range c.Lines {
		res += l.Total()
	}
	return res
}

func capQuantity(quantity int64) int64 {
	if quantity > MaxQuantityPerLine {
		return MaxQuantityPerLine
	}
	return quantity
}
