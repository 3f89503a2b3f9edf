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

package discover

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/go-test/deep"
)

func TestFiles(t *testing.T) {
	dir, err := os.MkdirTemp("", "")
	if err != nil {
		panic(err)
	}
	defer func() {
		if cleanupErr := os.RemoveAll(dir); cleanupErr != nil {
			panic(cleanupErr)
		}
	}()

	mustWrite := func(relPath string) {
		path := filepath.Join(dir, relPath)
		if mkdirErr := os.MkdirAll(filepath.Dir(path), 0o755); mkdirErr != nil {
			panic(mkdirErr)
		}
		if writeErr := os.WriteFile(path, []byte(relPath), 0o644); writeErr != nil {
			panic(writeErr)
		}
	}

	mustWrite("file1.png")
	mustWrite("file2.png")
	mustWrite("nested/file3.png")
	mustWrite(".DS_Store")
	mustWrite(".git/config")

	files, err := Files(dir)
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, file := range files {
		relPath, relErr := filepath.Rel(dir, file.Name())
		if relErr != nil {
			panic(relErr)
		}
		got = append(got, relPath)
	}
	sort.Strings(got)

	expected := []string{"file1.png", "file2.png", filepath.Join("nested", "file3.png")}
	if diff := deep.Equal(expected, got); diff != nil {
		t.Fatal(diff)
	}
}

func TestFilesMissingRoot(t *testing.T) {
	_, err := Files(filepath.Join(os.TempDir(), "does-not-exist-pinbatch-test"))
	if err == nil {
		t.Fatal("expected error for missing root")
	}
	if !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
