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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()
	all := []Status{StatusPending, StatusProcessing, StatusShipping, StatusCompleted, StatusCancelled}
	allowed := map[Status][]Status{
		StatusPending:    {StatusProcessing, StatusCancelled},
		StatusProcessing: {StatusShipping, StatusCancelled},
		StatusShipping:   {StatusCompleted},
		StatusCompleted:  {},
		StatusCancelled:  {},
	}
	for _, from := range all {
		for _, to := range all {
			want := false
			for _, next := range allowed[from] {
				if to == next {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to),
				"%s -> %s", from, to)
		}
	}
}

func TestStatus_CanTransitionTo_Unknown(t *testing.T) {
	t.Parallel()
	assert.False(t, Status(0).CanTransitionTo(StatusProcessing))
	assert.False(t, StatusPending.CanTransitionTo(Status(0)))
	assert.False(t, StatusPending.CanTransitionTo(Status(99)))
}

func TestStatus_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, "processing", StatusProcessing.String())
	assert.Equal(t, "shipping", StatusShipping.String())
	assert.Equal(t, "completed", StatusCompleted.String())
	assert.Equal(t, "cancelled", StatusCancelled.String())
	assert.Equal(t, "unknown", Status(42).String())
}
