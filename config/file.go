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
	"errors"
	"io"

	"github.com/retailnext/pinbatch/safefile"
	"gopkg.in/yaml.v3"
)

type Raw struct {
	OutputDir string `yaml:"output_dir"`
	CacheFile string `yaml:"cache_file"`
	APIURL    string `yaml:"api_url"`
	APIKey    string `yaml:"api_key"`
	APISecret string `yaml:"api_secret"`
}

// LoadFile reads a yaml configuration file. Unknown keys are an error so a
// misspelled credential key cannot silently leave a value unset.
func LoadFile(path string) (Raw, error) {
	var raw Raw

	ref, err := safefile.NewFile(path)
	if err != nil {
		return raw, err
	}
	f, err := ref.Open()
	defer func() {
		if f != nil {
			if closeErr := f.Close(); closeErr != nil {
				panic(closeErr)
			}
		}
	}()
	if err != nil {
		return raw, err
	}

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	err = decoder.Decode(&raw)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	return raw, err
}
