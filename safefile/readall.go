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

package safefile

import (
	"bytes"
	"context"
	"io"
)

const checkContextBytesInterval = 1024 * 1024 * 8
const bufferSize = 4 * 1024 * 8

// ReadAll reads the entire file and verifies the fingerprint both before and
// after reading, so the returned bytes are exactly the version of the file
// this File was created from.
func (f File) ReadAll(ctx context.Context) ([]byte, error) {
	osFile, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := osFile.Close(); closeErr != nil {
			panic(closeErr)
		}
	}()

	var content bytes.Buffer
	if f.fingerprint.size > 0 {
		content.Grow(int(f.fingerprint.size))
	}

	buf := make([]byte, bufferSize)
	var doneCh <-chan struct{}
	var lastCheckedDoneCh int64
	var size int64
	for {
		bytesRead, err := osFile.Read(buf)
		if err != nil && err != io.EOF {
			return nil, err
		}
		if bytesRead > 0 {
			content.Write(buf[0:bytesRead])
		}
		size += int64(bytesRead)
		if err == io.EOF {
			break
		}

		if size-lastCheckedDoneCh > checkContextBytesInterval {
			if doneCh == nil {
				doneCh = ctx.Done()
			}

			select {
			case <-doneCh:
				return nil, ctx.Err()
			default:
				lastCheckedDoneCh = size
			}
		}
	}

	if err := f.CheckFile(osFile); err != nil {
		return nil, err
	}
	return content.Bytes(), nil
}
