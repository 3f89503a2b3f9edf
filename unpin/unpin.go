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

package unpin

import (
	"context"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/retailnext/pinbatch/config"
	"github.com/retailnext/pinbatch/faults"
	"github.com/retailnext/pinbatch/mappings"
	"github.com/retailnext/pinbatch/pinata"
	"go.uber.org/zap"
)

func DoUnpin(ctx context.Context, cfg *config.Config) error {
	client, err := pinata.NewClient(cfg)
	if err != nil {
		return err
	}
	return removePin(ctx, cfg, client, *cmdCID, *cmdName)
}

func removePin(ctx context.Context, cfg *config.Config, client pinata.Client, cid, name string) error {
	if cid == "" && name == "" {
		return faults.Errorf(faults.Validation, "either --cid or --name is required")
	}
	if cid != "" && name != "" {
		return faults.Errorf(faults.Validation, "--cid and --name are mutually exclusive")
	}
	if cid == "" {
		path := filepath.Join(cfg.OutputDir, config.DefaultDownloadedArtifact)
		known, err := mappings.Load(path)
		if err != nil {
			return faults.Classify(err)
		}
		cid = known[name]
		if cid == "" {
			return faults.Errorf(faults.Validation, "no cid recorded for %q in %s", name, path)
		}
	}
	if err := client.Unpin(ctx, cid); err != nil {
		return err
	}
	zap.S().Infow("unpinned", "cid", cid)
	color.Green("unpinned %s", cid)
	return nil
}
