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

type Method uint8

func (m Method) ToUint8() uint8 {
	return uint8(m)
}

const (
	MethodStandard Method = 1
	MethodExpress  Method = 2
	MethodSameDay  Method = 3
)

const (
	methodStandardTag = "standard"
	methodExpressTag  = "express"
	methodSameDayTag  = "same_day"
)

func (m Method) String() string {
	switch m {
	case MethodExpress:
		return methodExpressTag
	case MethodSameDay:
		return methodSameDayTag
	default:
		return methodStandardTag
	}
}

// ParseMethod 解析前端传递的配送方式标签
// 未知标签回退到标准配送,费用上按付费标准费计算,不报错
func ParseMethod(tag string) Method {
	switch tag {
	case methodExpressTag:
		return MethodExpress
	case methodSameDayTag:
		return MethodSameDay
	case methodStandardTag:
		return MethodStandard
	default:
		return Method(0)
	}
}
