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

// Package digest computes content digests. A Strategy turns file content
// into a digest string; the batch pipeline never branches on which strategy
// it is running.
package digest

import (
	"context"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"

	"github.com/retailnext/pinbatch/faults"
	"golang.org/x/crypto/blake2b"
)

type Strategy interface {
	Name() string
	Digest(ctx context.Context, content []byte) (string, error)
}

const (
	AlgorithmSHA256  = "sha256"
	AlgorithmSHA512  = "sha512"
	AlgorithmBlake2b = "blake2b"

	EncodingHex    = "hex"
	EncodingBase64 = "base64"
)

type HashStrategy struct {
	algorithm string
	encoding  string
}

func NewHashStrategy(algorithm, encoding string) (HashStrategy, error) {
	switch algorithm {
	case AlgorithmSHA256, AlgorithmSHA512, AlgorithmBlake2b:
	default:
		return HashStrategy{}, faults.Errorf(faults.Validation, "unsupported algorithm %q", algorithm)
	}
	switch encoding {
	case EncodingHex, EncodingBase64:
	default:
		return HashStrategy{}, faults.Errorf(faults.Validation, "unsupported encoding %q", encoding)
	}
	return HashStrategy{
		algorithm: algorithm,
		encoding:  encoding,
	}, nil
}

func (s HashStrategy) Name() string {
	return s.algorithm + "-" + s.encoding
}

func (s HashStrategy) Digest(ctx context.Context, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var sum []byte
	switch s.algorithm {
	case AlgorithmSHA256:
		digest := sha256.Sum256(content)
		sum = digest[:]
	case AlgorithmSHA512:
		digest := sha512.Sum512(content)
		sum = digest[:]
	case AlgorithmBlake2b:
		digest := blake2b.Sum512(content)
		sum = digest[:]
	default:
		panic("bad algorithm")
	}

	switch s.encoding {
	case EncodingHex:
		return hex.EncodeToString(sum), nil
	case EncodingBase64:
		return base64.StdEncoding.EncodeToString(sum), nil
	default:
		panic("bad encoding")
	}
}
