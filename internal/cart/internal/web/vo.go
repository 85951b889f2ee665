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

package web

// AddCartItemReq 加入购物车请求
type AddCartItemReq struct {
	SN       string `json:"sn"`
	Quantity int64  `json:"quantity"`
}

// UpdateQuantityReq 修改购物车行数量
type UpdateQuantityReq struct {
	SN       string `json:"sn"`
	Quantity int64  `json:"quantity"`
}

// RemoveCartItemReq 删除购物车行
type RemoveCartItemReq struct {
	SN string `json:"sn"`
}

type CartResp struct {
	Cart Cart `json:"cart"`
}

type Cart struct {
	Lines    []CartLine `json:"lines"`
	Subtotal int64      `json:"subtotal"`
}

type CartLine struct {
	SN        string `json:"sn"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int64  `json:"quantity"`
	LineTotal int64  `json:"lineTotal"`
}
