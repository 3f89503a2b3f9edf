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

import "path/filepath"

const (
	DefaultAPIURL             = "https://api.pinata.cloud"
	DefaultOutputDir          = "output"
	DefaultCacheFileName      = "digests.db"
	DefaultDownloadedArtifact = "downloaded-cids.json"
)

type Config struct {
	OutputDir       string
	CacheFile       string
	PinataAPIURL    string
	PinataAPIKey    string
	PinataAPISecret string
}

// Resolve builds the effective configuration. Explicit flag values win over
// file values, file values win over builtins. An unset cache file lands
// next to the other artifacts in the output directory.
func Resolve(flagValues Config, raw Raw) *Config {
	cfg := Config{
		OutputDir:       pick(flagValues.OutputDir, raw.OutputDir, DefaultOutputDir),
		CacheFile:       pick(flagValues.CacheFile, raw.CacheFile, ""),
		PinataAPIURL:    pick(flagValues.PinataAPIURL, raw.APIURL, DefaultAPIURL),
		PinataAPIKey:    pick(flagValues.PinataAPIKey, raw.APIKey, ""),
		PinataAPISecret: pick(flagValues.PinataAPISecret, raw.APISecret, ""),
	}
	if cfg.CacheFile == "" {
		cfg.CacheFile = filepath.Join(cfg.OutputDir, DefaultCacheFileName)
	}
	return &cfg
}

func pick(flagValue, fileValue, builtin string) string {
	if flagValue != "" {
		return flagValue
	}
	if fileValue != "" {
		return fileValue
	}
	return builtin
}
