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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-test/deep"
)

func TestResolvePrecedence(t *testing.T) {
	raw := Raw{
		OutputDir: "from-file",
		APIKey:    "file-key",
		APISecret: "file-secret",
	}
	cfg := Resolve(Config{OutputDir: "from-flag", PinataAPIKey: "flag-key"}, raw)

	expected := &Config{
		OutputDir:       "from-flag",
		CacheFile:       filepath.Join("from-flag", DefaultCacheFileName),
		PinataAPIURL:    DefaultAPIURL,
		PinataAPIKey:    "flag-key",
		PinataAPISecret: "file-secret",
	}
	if diff := deep.Equal(expected, cfg); diff != nil {
		t.Fatal(diff)
	}
}

func TestResolveDefaults(t *testing.T) {
	cfg := Resolve(Config{}, Raw{})
	expected := &Config{
		OutputDir:    DefaultOutputDir,
		CacheFile:    filepath.Join(DefaultOutputDir, DefaultCacheFileName),
		PinataAPIURL: DefaultAPIURL,
	}
	if diff := deep.Equal(expected, cfg); diff != nil {
		t.Fatal(diff)
	}
}

func TestLoadFile(t *testing.T) {
	dir, err := os.MkdirTemp("", "")
	if err != nil {
		panic(err)
	}
	defer func() {
		if cleanupErr := os.RemoveAll(dir); cleanupErr != nil {
			panic(cleanupErr)
		}
	}()

	path := filepath.Join(dir, "pinbatch.yaml")
	content := "output_dir: build\napi_key: k\napi_secret: s\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		panic(err)
	}

	raw, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	expected := Raw{OutputDir: "build", APIKey: "k", APISecret: "s"}
	if diff := deep.Equal(expected, raw); diff != nil {
		t.Fatal(diff)
	}
}

func TestLoadFileUnknownKey(t *testing.T) {
	dir, err := os.MkdirTemp("", "")
	if err != nil {
		panic(err)
	}
	defer func() {
		if cleanupErr := os.RemoveAll(dir); cleanupErr != nil {
			panic(cleanupErr)
		}
	}()

	path := filepath.Join(dir, "pinbatch.yaml")
	if err := os.WriteFile(path, []byte("api_keyy: oops\n"), 0o644); err != nil {
		panic(err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
}

func TestLoadFileEmpty(t *testing.T) {
	dir, err := os.MkdirTemp("", "")
	if err != nil {
		panic(err)
	}
	defer func() {
		if cleanupErr := os.RemoveAll(dir); cleanupErr != nil {
			panic(cleanupErr)
		}
	}()

	path := filepath.Join(dir, "pinbatch.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		panic(err)
	}

	raw, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := deep.Equal(Raw{}, raw); diff != nil {
		t.Fatal(diff)
	}
}
