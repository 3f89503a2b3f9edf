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
	"net/http"
	"net/url"
	"strconv"

	"github.com/mailru/easyjson"
	"github.com/retailnext/pinbatch/faults"
)

// PinList fetches one page of pin records. Count is the remote's total for
// the query, not the page size; callers page by offset until a short page.
func (c *httpClient) PinList(ctx context.Context, status string, pageLimit, pageOffset int) (PinListPage, error) {
	query := url.Values{}
	query.Set("status", status)
	query.Set("pageLimit", strconv.Itoa(pageLimit))
	query.Set("pageOffset", strconv.Itoa(pageOffset))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/data/pinList?"+query.Encode(), nil)
	if err != nil {
		panic(err)
	}

	var page PinListPage
	resp, err := c.do(req)
	if err != nil {
		return page, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if err = easyjson.UnmarshalFromReader(resp.Body, &page); err != nil {
		return PinListPage{}, faults.New(faults.RemoteAPI, err)
	}
	return page, nil
}
