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

package upload

import (
	"context"
	"path/filepath"
	"sort"
	"testing"

	"github.com/go-test/deep"
	"github.com/retailnext/pinbatch/config"
	"github.com/retailnext/pinbatch/faults"
	"github.com/retailnext/pinbatch/mappings"
)

func TestPinFolder(t *testing.T) {
	folder := makeFolder(t, "1.png", "meta/1.json", "meta/10.json")
	outputDir := t.TempDir()
	client := &fakeClient{}
	cfg := &config.Config{OutputDir: outputDir}
	if err := pinFolder(context.Background(), cfg, client, folder, "folder-cid.json", "assets"); err != nil {
		t.Fatal(err)
	}

	if client.folderName != "assets" {
		t.Errorf("unexpected folder name: %q", client.folderName)
	}
	sort.Strings(client.relPaths)
	if d := deep.Equal(client.relPaths, []string{"1.png", "meta/1.json", "meta/10.json"}); d != nil {
		t.Error(d)
	}

	loaded, err := mappings.Load(filepath.Join(outputDir, "folder-cid.json"))
	if err != nil {
		t.Fatal(err)
	}
	if d := deep.Equal(loaded, mappings.FileMapping{"assets": "QmFolder"}); d != nil {
		t.Error(d)
	}
}

func TestPinFolderDefaultName(t *testing.T) {
	folder := makeFolder(t, "1.png")
	client := &fakeClient{}
	cfg := &config.Config{OutputDir: t.TempDir()}
	if err := pinFolder(context.Background(), cfg, client, folder, "folder-cid.json", ""); err != nil {
		t.Fatal(err)
	}
	if client.folderName != filepath.Base(folder) {
		t.Errorf("folder name %q != %q", client.folderName, filepath.Base(folder))
	}
}

func TestPinFolderValidation(t *testing.T) {
	cfg := &config.Config{OutputDir: t.TempDir()}
	err := pinFolder(context.Background(), cfg, &fakeClient{}, "", "folder-cid.json", "")
	if faults.CodeOf(err) != faults.Validation {
		t.Fatalf("expected validation fault, got %v", err)
	}
}
