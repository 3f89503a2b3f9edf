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
	"os"
	"path/filepath"
	"testing"

	"github.com/retailnext/pinbatch/cache"
	"github.com/retailnext/pinbatch/safefile"
)

type countingStrategy struct {
	inner Strategy
	calls int
}

func (s *countingStrategy) Name() string {
	return s.inner.Name()
}

func (s *countingStrategy) Digest(ctx context.Context, content []byte) (string, error) {
	s.calls++
	return s.inner.Digest(ctx, content)
}

func TestCache(t *testing.T) {
	dir, err := os.MkdirTemp("", "")
	if err != nil {
		panic(err)
	}
	defer func() {
		if cleanupErr := os.RemoveAll(dir); cleanupErr != nil {
			panic(cleanupErr)
		}
	}()

	cachePath := filepath.Join(dir, "cache.db")
	testFilePath := filepath.Join(dir, "testfile")
	if err := os.WriteFile(testFilePath, []byte("original content"), 0o644); err != nil {
		panic(err)
	}

	storage, err := cache.Open(cachePath, 0o644)
	if err != nil {
		t.Fatal(err)
	}

	inner, err := NewHashStrategy(AlgorithmSHA256, EncodingHex)
	if err != nil {
		t.Fatal(err)
	}
	counting := &countingStrategy{inner: inner}
	c := NewCache(storage, counting)

	file, err := safefile.NewFile(testFilePath)
	if err != nil {
		t.Fatal(err)
	}
	content, err := file.ReadAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	first, err := c.Get(context.Background(), file, content)
	if err != nil {
		t.Fatal(err)
	}
	if counting.calls != 1 {
		t.Fatalf("expected 1 computation, got %d", counting.calls)
	}

	second, err := c.Get(context.Background(), file, content)
	if err != nil {
		t.Fatal(err)
	}
	if second != first {
		t.Fatalf("cache returned different digest: %q != %q", second, first)
	}
	if counting.calls != 1 {
		t.Fatalf("expected cache hit, got %d computations", counting.calls)
	}

	if closeErr := storage.Close(); closeErr != nil {
		panic(closeErr)
	}
	storage, err = cache.Open(cachePath, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if closeErr := storage.Close(); closeErr != nil {
			panic(closeErr)
		}
	}()
	c = NewCache(storage, counting)

	third, err := c.Get(context.Background(), file, content)
	if err != nil {
		t.Fatal(err)
	}
	if third != first {
		t.Fatalf("digest changed across reopen: %q != %q", third, first)
	}
	if counting.calls != 1 {
		t.Fatalf("expected persisted hit, got %d computations", counting.calls)
	}

	// Rewriting the file invalidates the entry even though the path and
	// inode stay the same.
	if err := os.WriteFile(testFilePath, []byte("rewritten content!"), 0o644); err != nil {
		panic(err)
	}
	file, err = safefile.NewFile(testFilePath)
	if err != nil {
		t.Fatal(err)
	}
	content, err = file.ReadAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	fourth, err := c.Get(context.Background(), file, content)
	if err != nil {
		t.Fatal(err)
	}
	if fourth == first {
		t.Fatal("stale digest served for rewritten file")
	}
	if counting.calls != 2 {
		t.Fatalf("expected recomputation, got %d computations", counting.calls)
	}
}
