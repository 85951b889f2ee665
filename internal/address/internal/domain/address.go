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

import (
	"errors"
	"fmt"
	"regexp"
)

var ErrInvalidAddress = errors.New("收货地址非法")

var (
	phoneRegexp = regexp.MustCompile(`^[0-9]{10,11}$`)
	// 基础校验,完整的邮箱校验交给邮件服务商
	emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

type Address struct {
	ID        int64
	UID       int64
	Recipient string
	Phone     string
	Email     string
	Street    string
	Ward      string
	District  string
	Province  string
	IsDefault bool
	Ctime     int64
	Utime     int64
}

// Validate 校验必填字段与格式, ward和email可选
func (a Address) Validate() error {
	if a.Recipient == "" {
		return fmt.Errorf("%w: 收件人不能为空", ErrInvalidAddress)
	}
	if !phoneRegexp.MatchString(a.Phone) {
		return fmt.Errorf("%w: 手机号格式非法", ErrInvalidAddress)
	}
	if a.Street == "" {
		return fmt.Errorf("%w: 街道地址不能为空", ErrInvalidAddress)
	}
	if a.District == "" {
		return fmt.Errorf("%w: 区县不能为空", ErrInvalidAddress)
	}
	if a.Province == "" {
		return fmt.Errorf("%w: 省份不能为空", ErrInvalidAddress)
	}
	if a.Email != "" && !emailRegexp.MatchString(a.Email) {
		return fmt.Errorf("%w: 邮箱格式非法", ErrInvalidAddress)
	}
	return nil
}
