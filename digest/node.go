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
	"bytes"
	"context"

	shell "github.com/ipfs/go-ipfs-api"
)

// NodeStrategy asks an IPFS node to compute the CID (hash only, nothing is
// stored or pinned), so chunking and CID version match that node exactly.
type NodeStrategy struct {
	sh *shell.Shell
}

func NewNodeStrategy(apiAddr string) *NodeStrategy {
	return &NodeStrategy{
		sh: shell.NewShell(apiAddr),
	}
}

func (s *NodeStrategy) Name() string {
	return "cid-node"
}

func (s *NodeStrategy) Digest(ctx context.Context, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.sh.Add(bytes.NewReader(content), shell.OnlyHash(true))
}
