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
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
)

// PinFile uploads one file and returns its CID. The metadata name is what
// associates the pin with a file name in later list calls, so it must be
// the mapping key, not the local path.
func (c *httpClient) PinFile(ctx context.Context, name string, content []byte) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		panic(err)
	}
	if _, err = part.Write(content); err != nil {
		panic(err)
	}
	if err = writer.WriteField("pinataMetadata", marshalField(pinMetadata{Name: name})); err != nil {
		panic(err)
	}
	if err = writer.WriteField("pinataOptions", marshalField(pinOptions{CidVersion: 0})); err != nil {
		panic(err)
	}
	if err = writer.Close(); err != nil {
		panic(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/pinning/pinFileToIPFS", &body)
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	return decodePinResponse(resp.Body)
}
