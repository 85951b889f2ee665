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

type Address struct {
	ID        int64  `json:"id"`
	Recipient string `json:"recipient"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	Street    string `json:"street"`
	Ward      string `json:"ward,omitempty"`
	District  string `json:"district"`
	Province  string `json:"province"`
	IsDefault bool   `json:"isDefault"`
}

type ListAddressesResp struct {
	Addresses []Address `json:"addresses"`
}

// AddAddressReq 新增收货地址
type AddAddressReq struct {
	Address Address `json:"address"`
	// AsDefault 显式要求设为默认,用户的第一个地址总是默认
	AsDefault bool `json:"asDefault"`
}

type AddAddressResp struct {
	ID int64 `json:"id"`
}

// UpdateAddressReq 修改收货地址
type UpdateAddressReq struct {
	Address Address `json:"address"`
}

// DeleteAddressReq 删除收货地址
type DeleteAddressReq struct {
	ID int64 `json:"id"`
}

// SetDefaultAddressReq 设置默认收货地址
type SetDefaultAddressReq struct {
	ID int64 `json:"id"`
}
