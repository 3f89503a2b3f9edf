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

	"github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
)

// CIDStrategy produces a CIDv0 identifier from the content bytes alone.
// It matches what an IPFS node assigns to content that fits in a single
// block; chunked CIDs for larger content come from NodeStrategy.
type CIDStrategy struct{}

var cidPrefix = cid.Prefix{
	Version:  0,
	Codec:    cid.DagProtobuf,
	MhType:   mh.SHA2_256,
	MhLength: -1,
}

func (CIDStrategy) Name() string {
	return "cid-v0"
}

func (CIDStrategy) Digest(ctx context.Context, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c, err := cidPrefix.Sum(content)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}
