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
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestReadAll(t *testing.T) {
	dir, err := os.MkdirTemp("", "")
	if err != nil {
		panic(err)
	}
	defer func() {
		if cleanupErr := os.RemoveAll(dir); cleanupErr != nil {
			panic(cleanupErr)
		}
	}()

	path := filepath.Join(dir, "testfile")
	content := []byte("some test content")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		panic(err)
	}

	file, err := NewFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if file.Len() != int64(len(content)) {
		t.Fatalf("wrong len %d != %d", file.Len(), len(content))
	}

	got, err := file.ReadAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("content mismatch: %q != %q", got, content)
	}
}

func TestFingerprintMismatch(t *testing.T) {
	dir, err := os.MkdirTemp("", "")
	if err != nil {
		panic(err)
	}
	defer func() {
		if cleanupErr := os.RemoveAll(dir); cleanupErr != nil {
			panic(cleanupErr)
		}
	}()

	path := filepath.Join(dir, "testfile")
	if err := os.WriteFile(path, []byte("before"), 0o644); err != nil {
		panic(err)
	}

	file, err := NewFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := file.Check(); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("after, and longer"), 0o644); err != nil {
		panic(err)
	}

	err = file.Check()
	if !IsFingerprintMismatch(err) {
		t.Fatalf("expected fingerprint mismatch, got %v", err)
	}
	if _, err := file.ReadAll(context.Background()); !IsFingerprintMismatch(err) {
		t.Fatalf("expected fingerprint mismatch, got %v", err)
	}
}

func TestCacheEntry(t *testing.T) {
	dir, err := os.MkdirTemp("", "")
	if err != nil {
		panic(err)
	}
	defer func() {
		if cleanupErr := os.RemoveAll(dir); cleanupErr != nil {
			panic(cleanupErr)
		}
	}()

	path := filepath.Join(dir, "testfile")
	if err := os.WriteFile(path, []byte("payload source"), 0o644); err != nil {
		panic(err)
	}

	file, err := NewFile(path)
	if err != nil {
		t.Fatal(err)
	}

	key := file.CacheKey()
	payload := []byte("cached digest value")
	wrapped := file.WrapCacheEntry(payload)

	if got := file.UnwrapCacheEntry(key, wrapped); !bytes.Equal(got, payload) {
		t.Fatalf("unwrap mismatch: %q != %q", got, payload)
	}

	wrongKey := make([]byte, len(key))
	if got := file.UnwrapCacheEntry(wrongKey, wrapped); got != nil {
		t.Fatalf("expected nil for wrong key, got %q", got)
	}

	// A different mtime makes the old entry unusable for the new fingerprint.
	newMtime := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, newMtime, newMtime); err != nil {
		panic(err)
	}
	touched, err := NewFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := touched.UnwrapCacheEntry(touched.CacheKey(), wrapped); got != nil {
		t.Fatalf("expected nil for touched file, got %q", got)
	}
}
