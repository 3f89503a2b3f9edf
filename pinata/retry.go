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

package pinata

import (
	"context"
	"time"

	"github.com/retailnext/pinbatch/faults"
	"go.uber.org/zap"
)

const DefaultRetriesLimit = 3
const DefaultRetryDelay = time.Second

// WithRetries runs f until it succeeds, the error is not retryable, or the
// attempt limit is reached. The delay doubles after each failed attempt.
// Callers opt in per call site; nothing in this package retries on its own.
func WithRetries(ctx context.Context, limit int, delay time.Duration, f func() error) error {
	lgr := zap.S()
	attempts := 0
	for {
		err := f()
		if err == nil {
			return nil
		}
		attempts++
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if attempts > limit || !faults.IsRetryable(err) {
			return err
		}
		lgr.Warnw("pinata_request_error", "err", err, "attempts", attempts)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
}
