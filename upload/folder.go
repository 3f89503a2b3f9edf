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

	"github.com/fatih/color"
	"github.com/retailnext/pinbatch/config"
	"github.com/retailnext/pinbatch/discover"
	"github.com/retailnext/pinbatch/faults"
	"github.com/retailnext/pinbatch/mappings"
	"github.com/retailnext/pinbatch/metrics"
	"github.com/retailnext/pinbatch/pinata"
	"go.uber.org/zap"
)

func DoFolder(ctx context.Context, cfg *config.Config) error {
	client, err := pinata.NewClient(cfg)
	if err != nil {
		return err
	}
	return pinFolder(ctx, cfg, client, *cmdFolder, *folderCmdOutput, *folderCmdName)
}

// pinFolder uploads the whole folder as one pin. The folder either pins
// completely or not at all, so there is no known-CID bookkeeping here.
func pinFolder(ctx context.Context, cfg *config.Config, client pinata.Client, folder, output, name string) error {
	lgr := zap.S()

	if folder == "" || output == "" {
		return faults.Errorf(faults.Validation, "folder and output are required")
	}
	if name == "" {
		name = mappings.BaseName(filepath.Clean(folder))
	}
	target := mappings.Target(cfg.OutputDir)

	files, err := folderFiles(folder)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		lgr.Warnw("no_files_found", "folder", folder)
		return mappings.Write(target, output, mappings.FileMapping{})
	}

	cid, err := client.PinFolder(ctx, name, files)
	if err != nil {
		return err
	}
	metrics.Pinata.UploadedFiles.Add(float64(len(files)))
	for _, folderFile := range files {
		metrics.Pinata.UploadedBytes.Add(float64(folderFile.File.Len()))
	}

	if err = mappings.Write(target, output, mappings.FileMapping{name: cid}); err != nil {
		return err
	}
	lgr.Infow("folder_pinned", "name", name, "cid", cid, "files", len(files))
	color.Green("pinned folder %s as %s (%d files)", name, cid, len(files))
	return nil
}

func folderFiles(folder string) ([]pinata.FolderFile, error) {
	files, err := discover.Files(folder)
	if err != nil {
		return nil, err
	}
	result := make([]pinata.FolderFile, 0, len(files))
	for _, file := range files {
		relPath, err := filepath.Rel(folder, file.Name())
		if err != nil {
			// Files came from walking folder, so they are always below it.
			panic(err)
		}
		result = append(result, pinata.FolderFile{File: file, RelPath: relPath})
	}
	return result, nil
}
