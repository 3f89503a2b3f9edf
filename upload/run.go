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
	"errors"
	"time"

	"github.com/retailnext/pinbatch/config"
	"github.com/retailnext/pinbatch/mapper"
	"github.com/retailnext/pinbatch/metrics"
	"github.com/retailnext/pinbatch/pinata"
	"go.uber.org/zap"
)

func DoRun(ctx context.Context, cfg *config.Config) error {
	metrics.Run.RegisterMetrics()
	lgr := zap.S()

	client, err := pinata.NewClient(cfg)
	if err != nil {
		return err
	}
	if err = client.TestAuthentication(ctx); err != nil {
		return err
	}
	lgr.Infow("authenticated")

	known := loadKnown(knownPath(cfg))
	b := batch{
		cfg:    cfg,
		client: client,
		folder: *cmdFolder,
		output: *runCmdOutput,
		known:  known,
		limits: mapper.Limits{MaxConcurrent: *cmdConcurrent, MinTime: *cmdMinTime},
	}

	ticker := time.NewTicker(*runCmdInterval)
	defer ticker.Stop()
	doneCh := ctx.Done()

DONE:
	for {
		metrics.Run.InProgressGauge.Set(1)
		lgr.Infow("starting_upload_cycle", "folder", b.folder)
		outcome, cycleErr := b.run(ctx)
		metrics.Run.InProgressGauge.Set(0)
		now := time.Now()
		if errors.Is(cycleErr, context.Canceled) || errors.Is(cycleErr, context.DeadlineExceeded) {
			err = cycleErr
			break DONE
		}
		// CIDs pinned this cycle are skipped on the next one.
		for name, cid := range outcome.Mapping {
			known[name] = cid
		}
		if cycleErr == nil && len(outcome.Failures) == 0 {
			metrics.Run.LastRunAtGauge.Set(float64(now.Unix()))
			metrics.Run.LastRunOkGauge.Set(1)
			metrics.Run.CompletedCounter.Inc()
			lgr.Infow("upload_cycle_complete", "uploaded", outcome.Uploaded, "skipped", outcome.Skipped)
		} else {
			metrics.Run.LastRunOkGauge.Set(0)
			metrics.Run.ErrorCounter.Inc()
			lgr.Errorw("upload_cycle_error", "err", cycleErr, "failed", len(outcome.Failures))
		}

		select {
		case <-doneCh:
			err = ctx.Err()
			break DONE
		case <-ticker.C:
		}
	}
	return err
}
