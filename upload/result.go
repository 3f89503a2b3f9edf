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

package upload

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Result records one attempted file upload. A failed attempt has an empty
// CID and a populated Error.
type Result struct {
	FileName string
	CID      string
	Success  bool
	Error    string
}

// Failures is returned when a batch completes but some files did not
// upload. The successful files are already persisted by then.
type Failures []Result

func (f Failures) Error() string {
	return fmt.Sprintf("%d files failed to upload", len(f))
}

func (f Failures) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	for _, result := range f {
		enc.AddString(result.FileName, result.Error)
	}
	return nil
}
