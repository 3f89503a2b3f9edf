// Copyright 2026 RetailNext, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package digest

import (
	"context"
	"strings"

	"github.com/retailnext/pinbatch/mappings"
)

// Aggregate digests the concatenation of all mapping values in canonical
// key order, with no separator. Input order never matters; only the sorted
// key order does.
func Aggregate(ctx context.Context, strategy Strategy, m mappings.FileMapping) (string, error) {
	var combined strings.Builder
	for _, name := range m.Names() {
		combined.WriteString(m[name])
	}
	return strategy.Digest(ctx, []byte(combined.String()))
}
