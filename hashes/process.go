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

// Package hashes implements the hash and cid commands, which map every file
// in a folder to a content digest and persist the result as an artifact.
package hashes

import (
	"context"
	"os"
	"path/filepath"

	"github.com/retailnext/pinbatch/cache"
	"github.com/retailnext/pinbatch/config"
	"github.com/retailnext/pinbatch/digest"
	"github.com/retailnext/pinbatch/discover"
	"github.com/retailnext/pinbatch/faults"
	"github.com/retailnext/pinbatch/mapper"
	"github.com/retailnext/pinbatch/mappings"
	"go.uber.org/zap"
)

func DoHash(ctx context.Context, cfg *config.Config) error {
	strategy, err := digest.NewHashStrategy(*hashCmdAlgorithm, *hashCmdEncoding)
	if err != nil {
		return err
	}
	p := processor{
		cfg:         cfg,
		folder:      *hashCmdFolder,
		output:      *hashCmdOutput,
		finalOutput: *hashCmdFinalOutput,
		limits:      mapper.Limits{MaxConcurrent: *hashCmdConcurrent},
		strategy:    strategy,
	}
	return p.run(ctx)
}

func DoCID(ctx context.Context, cfg *config.Config) error {
	var strategy digest.Strategy = digest.CIDStrategy{}
	if *cidCmdNode != "" {
		strategy = digest.NewNodeStrategy(*cidCmdNode)
	}
	p := processor{
		cfg:      cfg,
		folder:   *cidCmdFolder,
		output:   *cidCmdOutput,
		limits:   mapper.Limits{MaxConcurrent: *cidCmdConcurrent},
		strategy: strategy,
	}
	return p.run(ctx)
}

type processor struct {
	cfg         *config.Config
	folder      string
	output      string
	finalOutput string
	limits      mapper.Limits
	strategy    digest.Strategy
}

func (p *processor) run(ctx context.Context) error {
	lgr := zap.S()

	if p.folder == "" || p.output == "" {
		return faults.Errorf(faults.Validation, "folder and output are required")
	}
	target := mappings.Target(p.cfg.OutputDir)

	files, err := discover.Files(p.folder)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		lgr.Warnw("no_files_found", "folder", p.folder)
		return mappings.Write(target, p.output, mappings.FileMapping{})
	}

	fn := func(ctx context.Context, item mapper.Item) (string, error) {
		return p.strategy.Digest(ctx, item.Content)
	}
	if p.cfg.CacheFile != "" {
		if err = os.MkdirAll(filepath.Dir(p.cfg.CacheFile), 0o755); err != nil {
			return err
		}
		storage, openErr := cache.Open(p.cfg.CacheFile, 0o644)
		if openErr != nil {
			return openErr
		}
		defer func() {
			if closeErr := storage.Close(); closeErr != nil {
				lgr.Errorw("cache_close_error", "err", closeErr)
			}
		}()
		cached := digest.NewCache(storage, p.strategy)
		fn = func(ctx context.Context, item mapper.Item) (string, error) {
			return cached.Get(ctx, item.File, item.Content)
		}
	}

	result, err := mapper.Run(ctx, files, p.limits, fn, mapper.Hooks{})
	if err != nil {
		return err
	}
	if err = mappings.Write(target, p.output, result); err != nil {
		return err
	}
	lgr.Infow("mapping_written", "artifact", p.output, "files", len(result))

	if p.finalOutput != "" {
		aggregate, aggregateErr := digest.Aggregate(ctx, p.strategy, result)
		if aggregateErr != nil {
			return aggregateErr
		}
		folderName := mappings.BaseName(filepath.Clean(p.folder))
		if err = mappings.Write(target, p.finalOutput, mappings.FileMapping{folderName: aggregate}); err != nil {
			return err
		}
		lgr.Infow("aggregate_written", "artifact", p.finalOutput, "folder", folderName)
	}
	return nil
}
