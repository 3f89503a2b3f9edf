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

// Package mapper runs a per-file operation across a batch of files under a
// concurrency limit and a minimum dispatch interval, collecting the results
// into a name-keyed mapping.
package mapper

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/retailnext/pinbatch/faults"
	"github.com/retailnext/pinbatch/mappings"
	"github.com/retailnext/pinbatch/safefile"
	"go.uber.org/zap"
)

// Limits bounds how fast a batch may proceed. MaxConcurrent is the number of
// files in flight at once; values below 1 are treated as 1. MinTime is the
// minimum interval between dispatches, zero for no pacing.
type Limits struct {
	MaxConcurrent int
	MinTime       time.Duration
}

// Item is one file presented to a Func, with its content already read and
// verified against the fingerprint taken at discovery time.
type Item struct {
	File    safefile.File
	Name    string
	Content []byte
}

// Func produces the mapping value for one file. An empty value with a nil
// error means the file contributes no entry. A non-nil error aborts the
// rest of the batch.
type Func func(ctx context.Context, item Item) (string, error)

// Hooks are optional observation points around each file. Either field may
// be nil. AfterFile sees the value and error exactly as returned by the Func.
type Hooks struct {
	BeforeFile func(name string)
	AfterFile  func(name, value string, err error)
}

// DuplicateName indicates two paths in a batch share a base name, which
// would silently collapse to one mapping entry.
type DuplicateName struct {
	Name  string
	Paths [2]string
}

func (e DuplicateName) Error() string {
	return fmt.Sprintf("duplicate file name %q: %q and %q", e.Name, e.Paths[0], e.Paths[1])
}

type runner struct {
	ctx    context.Context
	cancel context.CancelFunc
	fn     Func
	hooks  Hooks

	limiter chan struct{}
	wg      sync.WaitGroup

	lock   sync.Mutex
	result mappings.FileMapping
	err    error
}

// Run applies fn to every file and returns the collected mapping. The batch
// fails on the first error; an empty batch returns an empty mapping without
// consulting the limits.
func Run(ctx context.Context, files []safefile.File, limits Limits, fn Func, hooks Hooks) (mappings.FileMapping, error) {
	result := make(mappings.FileMapping)
	if len(files) == 0 {
		return result, nil
	}

	names, err := batchNames(files)
	if err != nil {
		return nil, faults.New(faults.Validation, err)
	}

	maxConcurrent := limits.MaxConcurrent
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	r := runner{
		ctx:     runCtx,
		cancel:  cancel,
		fn:      fn,
		hooks:   hooks,
		limiter: make(chan struct{}, maxConcurrent),
		result:  result,
	}

	doneCh := runCtx.Done()
	var lastDispatch time.Time
dispatch:
	for i, file := range files {
		select {
		case <-doneCh:
			break dispatch
		default:
		}

		if limits.MinTime > 0 && !lastDispatch.IsZero() {
			if wait := limits.MinTime - time.Since(lastDispatch); wait > 0 {
				select {
				case <-doneCh:
					break dispatch
				case <-time.After(wait):
				}
			}
		}

		select {
		case <-doneCh:
			break dispatch
		case r.limiter <- struct{}{}:
			lastDispatch = time.Now()
			r.wg.Add(1)
			go r.processFile(names[i], file)
		}
	}
	r.wg.Wait()

	firstErr := r.err
	if firstErr == nil {
		firstErr = ctx.Err()
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return r.result, nil
}

func (r *runner) processFile(name string, file safefile.File) {
	lgr := zap.S()
	defer func() {
		<-r.limiter
		r.wg.Done()
	}()

	lgr.Debugw("file_processing", "path", file.Name(), "name", name)
	if r.hooks.BeforeFile != nil {
		r.hooks.BeforeFile(name)
	}

	var value string
	content, err := file.ReadAll(r.ctx)
	if err == nil {
		value, err = r.fn(r.ctx, Item{File: file, Name: name, Content: content})
	}

	switch {
	case err == nil:
		lgr.Debugw("file_processed", "path", file.Name(), "name", name)
	case errors.Is(err, context.Canceled):
		lgr.Infow("file_cancelled", "path", file.Name())
	default:
		lgr.Warnw("file_failed", "path", file.Name(), "err", err)
	}

	if r.hooks.AfterFile != nil {
		r.hooks.AfterFile(name, value, err)
	}

	r.lock.Lock()
	if err != nil {
		if r.err == nil {
			r.err = err
			r.cancel()
		}
	} else if value != "" {
		r.result[name] = value
	}
	r.lock.Unlock()
}

func batchNames(files []safefile.File) ([]string, error) {
	names := make([]string, len(files))
	seen := make(map[string]string, len(files))
	for i, file := range files {
		name := mappings.BaseName(file.Name())
		if previous, ok := seen[name]; ok {
			return nil, DuplicateName{Name: name, Paths: [2]string{previous, file.Name()}}
		}
		seen[name] = file.Name()
		names[i] = name
	}
	return names, nil
}
