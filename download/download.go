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

// Package download rebuilds the local name to CID mapping from the remote
// pin list, which is the source of truth for what is actually pinned.
package download

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/retailnext/pinbatch/config"
	"github.com/retailnext/pinbatch/faults"
	"github.com/retailnext/pinbatch/mappings"
	"github.com/retailnext/pinbatch/metrics"
	"github.com/retailnext/pinbatch/pinata"
	"go.uber.org/zap"
)

const (
	StatusAll      = "all"
	StatusPinned   = "pinned"
	StatusUnpinned = "unpinned"
)

const pageLimit = 1000

func DoDownload(ctx context.Context, cfg *config.Config) error {
	client, err := pinata.NewClient(cfg)
	if err != nil {
		return err
	}
	return reconcile(ctx, cfg, client, *cmdOutput, *cmdStatus)
}

func reconcile(ctx context.Context, cfg *config.Config, client pinata.Client, output, status string) error {
	switch status {
	case StatusAll, StatusPinned, StatusUnpinned:
	default:
		return faults.Errorf(faults.Validation, "invalid status %q", status)
	}
	if output == "" {
		return faults.Errorf(faults.Validation, "output is required")
	}

	result, err := fetchAll(ctx, client, status)
	if err != nil {
		return err
	}
	if err = mappings.Write(mappings.Target(cfg.OutputDir), output, result); err != nil {
		return err
	}
	zap.S().Infow("mapping_written", "name", output, "count", len(result))
	printTable(result)
	return nil
}

// fetchAll pages through the pin list until a short page. Each page request
// goes through the retry helper so a transient failure mid-listing does not
// throw away pages already fetched.
func fetchAll(ctx context.Context, client pinata.Client, status string) (mappings.FileMapping, error) {
	lgr := zap.S()
	result := mappings.FileMapping{}
	offset := 0
	for {
		var page pinata.PinListPage
		err := pinata.WithRetries(ctx, pinata.DefaultRetriesLimit, pinata.DefaultRetryDelay, func() error {
			var pageErr error
			page, pageErr = client.PinList(ctx, status, pageLimit, offset)
			return pageErr
		})
		if err != nil {
			return nil, err
		}
		metrics.Pinata.ListPages.Inc()
		metrics.Pinata.ListRows.Add(float64(len(page.Rows)))

		if offset == 0 && page.Count == 0 {
			lgr.Infow("remote_reports_empty", "status", status)
			return result, nil
		}
		for _, row := range page.Rows {
			if row.Name == "" {
				lgr.Debugw("skipping_nameless_pin", "cid", row.CID)
				continue
			}
			result[row.Name] = row.CID
		}
		lgr.Debugw("page_fetched", "offset", offset, "rows", len(page.Rows))
		if len(page.Rows) < pageLimit {
			return result, nil
		}
		offset += pageLimit
	}
}

func printTable(result mappings.FileMapping) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCID")
	fmt.Fprintln(w, "----\t---")
	for _, name := range result.Names() {
		fmt.Fprintf(w, "%s\t%s\n", name, result[name])
	}
	_ = w.Flush()
	color.Green("downloaded %d cids", len(result))
}
