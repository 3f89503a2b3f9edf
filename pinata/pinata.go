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

// Package pinata is a client for the Pinata pinning API.
package pinata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/mailru/easyjson"
	"github.com/retailnext/pinbatch/config"
	"github.com/retailnext/pinbatch/faults"
)

const maxErrorBodyBytes = 4 * 1024

type Client interface {
	TestAuthentication(ctx context.Context) error
	PinFile(ctx context.Context, name string, content []byte) (string, error)
	PinFolder(ctx context.Context, name string, files []FolderFile) (string, error)
	PinList(ctx context.Context, status string, pageLimit, pageOffset int) (PinListPage, error)
	Unpin(ctx context.Context, cid string) error
}

type httpClient struct {
	baseURL   string
	apiKey    string
	apiSecret string
	client    *http.Client
}

func NewClient(cfg *config.Config) (Client, error) {
	if cfg.PinataAPIKey == "" || cfg.PinataAPISecret == "" {
		return nil, faults.Errorf(faults.Configuration, "pinata api key and secret are required")
	}
	parsed, err := url.Parse(cfg.PinataAPIURL)
	if err != nil {
		return nil, faults.New(faults.Configuration, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, faults.Errorf(faults.Configuration, "invalid api url %q", cfg.PinataAPIURL)
	}
	return &httpClient{
		baseURL:   strings.TrimSuffix(cfg.PinataAPIURL, "/"),
		apiKey:    cfg.PinataAPIKey,
		apiSecret: cfg.PinataAPISecret,
		client:    &http.Client{},
	}, nil
}

func (c *httpClient) authenticate(req *http.Request) {
	req.Header.Set("pinata_api_key", c.apiKey)
	req.Header.Set("pinata_secret_api_key", c.apiSecret)
}

// do issues the request and returns the response with its body still open,
// but only for a 200. Any other outcome is turned into a fault and the body
// is consumed here.
func (c *httpClient) do(req *http.Request) (*http.Response, error) {
	c.authenticate(req)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, faults.Classify(err)
	}
	if resp.StatusCode != http.StatusOK {
		defer func() {
			_ = resp.Body.Close()
		}()
		return nil, responseFault(resp)
	}
	return resp, nil
}

func responseFault(resp *http.Response) error {
	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if readErr != nil {
		body = nil
	}
	var parsed errorResponse
	if len(body) > 0 && body[0] == '{' {
		_ = easyjson.Unmarshal(body, &parsed)
	}
	message := parsed.message()
	if message == "" {
		message = strings.TrimSpace(string(body))
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	err := fmt.Errorf("pinata: status %d: %s", resp.StatusCode, message)
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return faults.New(faults.RemoteAuth, err)
	case resp.StatusCode == http.StatusTooManyRequests:
		return faults.New(faults.RateLimited, err)
	case resp.StatusCode >= 500:
		return &faults.Fault{Code: faults.RemoteAPI, Transient: true, Err: err}
	default:
		return faults.New(faults.RemoteAPI, err)
	}
}

func decodePinResponse(body io.Reader) (string, error) {
	var parsed pinResponse
	if err := easyjson.UnmarshalFromReader(body, &parsed); err != nil {
		return "", faults.New(faults.RemoteAPI, err)
	}
	if parsed.IpfsHash == "" {
		return "", faults.Errorf(faults.RemoteAPI, "pin response missing IpfsHash")
	}
	return parsed.IpfsHash, nil
}

func marshalField(v easyjson.Marshaler) string {
	data, err := easyjson.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}

func (c *httpClient) TestAuthentication(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/data/testAuthentication", nil)
	if err != nil {
		panic(err)
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	_ = resp.Body.Close()
	return nil
}

func (c *httpClient) Unpin(ctx context.Context, cid string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/pinning/unpin/"+url.PathEscape(cid), nil)
	if err != nil {
		panic(err)
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	_ = resp.Body.Close()
	return nil
}
