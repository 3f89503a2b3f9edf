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

// Package upload implements the upload commands. Files already present in
// the known mapping are recorded as successes without touching the remote,
// which is what makes interrupted batches resumable.
package upload

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fatih/color"
	"github.com/retailnext/pinbatch/config"
	"github.com/retailnext/pinbatch/discover"
	"github.com/retailnext/pinbatch/faults"
	"github.com/retailnext/pinbatch/mapper"
	"github.com/retailnext/pinbatch/mappings"
	"github.com/retailnext/pinbatch/metrics"
	"github.com/retailnext/pinbatch/pinata"
	"go.uber.org/zap"
)

func DoFiles(ctx context.Context, cfg *config.Config) error {
	client, err := pinata.NewClient(cfg)
	if err != nil {
		return err
	}
	b := batch{
		cfg:    cfg,
		client: client,
		folder: *cmdFolder,
		output: *filesCmdOutput,
		known:  loadKnown(knownPath(cfg)),
		limits: mapper.Limits{MaxConcurrent: *cmdConcurrent, MinTime: *cmdMinTime},
	}
	outcome, err := b.run(ctx)
	if err != nil {
		return err
	}
	printSummary(outcome)
	if len(outcome.Failures) > 0 {
		return outcome.Failures
	}
	return nil
}

type batch struct {
	cfg    *config.Config
	client pinata.Client
	folder string
	output string
	known  mappings.FileMapping
	limits mapper.Limits
}

type batchOutcome struct {
	Mapping  mappings.FileMapping
	Total    int
	Uploaded int
	Skipped  int
	Failures Failures
}

func (b *batch) run(ctx context.Context) (batchOutcome, error) {
	lgr := zap.S()

	if b.folder == "" || b.output == "" {
		return batchOutcome{}, faults.Errorf(faults.Validation, "folder and output are required")
	}
	target := mappings.Target(b.cfg.OutputDir)

	files, err := discover.Files(b.folder)
	if err != nil {
		return batchOutcome{}, err
	}
	if len(files) == 0 {
		lgr.Warnw("no_files_found", "folder", b.folder)
		empty := mappings.FileMapping{}
		return batchOutcome{Mapping: empty}, mappings.Write(target, b.output, empty)
	}

	p := filesProcessor{
		client:        b.client,
		known:         b.known,
		total:         len(files),
		progressEvery: (len(files) + 9) / 10,
	}
	result, err := mapper.Run(ctx, files, b.limits, p.uploadFile, mapper.Hooks{AfterFile: p.fileDone})
	if err != nil {
		return batchOutcome{}, err
	}
	if err = mappings.Write(target, b.output, result); err != nil {
		return batchOutcome{}, err
	}

	outcome := p.outcome(result)
	lgr.Infow("upload_complete", "total", outcome.Total, "uploaded", outcome.Uploaded, "skipped", outcome.Skipped, "failed", len(outcome.Failures))
	if len(outcome.Failures) > 0 {
		lgr.Errorw("upload_failures", "failures", outcome.Failures)
	}
	return outcome, nil
}

type filesProcessor struct {
	client pinata.Client
	known  mappings.FileMapping

	lock          sync.Mutex
	results       []Result
	completed     int
	total         int
	progressEvery int
}

func (p *filesProcessor) knownCID(name string) (string, bool) {
	cid, ok := p.known[name]
	if !ok || cid == "" {
		return "", false
	}
	return cid, true
}

func (p *filesProcessor) record(result Result) {
	p.lock.Lock()
	p.results = append(p.results, result)
	p.lock.Unlock()
}

// uploadFile isolates per-file upload failures: they are recorded and the
// batch continues. Cancellation still aborts the batch.
func (p *filesProcessor) uploadFile(ctx context.Context, item mapper.Item) (string, error) {
	lgr := zap.S()

	if cid, ok := p.knownCID(item.Name); ok {
		metrics.Pinata.SkippedFiles.Inc()
		metrics.Pinata.SkippedBytes.Add(float64(len(item.Content)))
		p.record(Result{FileName: item.Name, CID: cid, Success: true})
		lgr.Debugw("upload_skipped", "name", item.Name, "cid", cid)
		return cid, nil
	}

	cid, err := p.client.PinFile(ctx, item.Name, item.Content)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		metrics.Pinata.UploadErrors.Inc()
		p.record(Result{FileName: item.Name, Success: false, Error: err.Error()})
		lgr.Warnw("upload_failed", "name", item.Name, "err", err)
		return "", nil
	}

	metrics.Pinata.UploadedFiles.Inc()
	metrics.Pinata.UploadedBytes.Add(float64(len(item.Content)))
	p.record(Result{FileName: item.Name, CID: cid, Success: true})
	lgr.Debugw("upload_done", "name", item.Name, "cid", cid, "size", len(item.Content))
	return cid, nil
}

func (p *filesProcessor) fileDone(name, value string, err error) {
	p.lock.Lock()
	p.completed++
	completed := p.completed
	p.lock.Unlock()
	if completed == p.total || completed%p.progressEvery == 0 {
		zap.S().Infow("upload_progress", "completed", completed, "total", p.total)
	}
}

func (p *filesProcessor) outcome(result mappings.FileMapping) batchOutcome {
	p.lock.Lock()
	defer p.lock.Unlock()
	outcome := batchOutcome{Mapping: result, Total: p.total}
	for _, r := range p.results {
		if !r.Success {
			outcome.Failures = append(outcome.Failures, r)
		} else if _, ok := p.knownCID(r.FileName); ok {
			outcome.Skipped++
		} else {
			outcome.Uploaded++
		}
	}
	return outcome
}

func knownPath(cfg *config.Config) string {
	if *cmdKnown != "" {
		return *cmdKnown
	}
	return filepath.Join(cfg.OutputDir, config.DefaultDownloadedArtifact)
}

func loadKnown(path string) mappings.FileMapping {
	lgr := zap.S()
	known, err := mappings.Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			lgr.Infow("no_known_cids", "path", path)
		} else {
			lgr.Warnw("known_cids_load_error", "path", path, "err", err)
		}
		return mappings.FileMapping{}
	}
	lgr.Infow("known_cids_loaded", "path", path, "count", len(known))
	return known
}

func printSummary(outcome batchOutcome) {
	line := fmt.Sprintf("uploaded %d, skipped %d, failed %d of %d files", outcome.Uploaded, outcome.Skipped, len(outcome.Failures), outcome.Total)
	if len(outcome.Failures) > 0 {
		color.Red("%s", line)
	} else {
		color.Green("%s", line)
	}
}
