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

// Package discover lists the regular files under a root folder.
package discover

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/retailnext/pinbatch/safefile"
	"go.uber.org/zap"
)

// Files returns the regular files under root, recursively. Hidden files
// (dot-prefixed) are skipped so that editor droppings and .DS_Store do not
// end up in mappings.
func Files(root string) ([]safefile.File, error) {
	lgr := zap.S()

	var files []safefile.File

	walkErr := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			lgr.Errorw("walk_error", "path", path, "err", err)
			return err
		}

		name := info.Name()
		if strings.HasPrefix(name, ".") {
			if info.IsDir() && path != root {
				return filepath.SkipDir
			}
			if !info.IsDir() {
				lgr.Debugw("skipping_hidden_file", "path", path)
				return nil
			}
		}

		if info.IsDir() {
			return nil
		}
		if !info.Mode().IsRegular() {
			lgr.Debugw("skipping_irregular_file", "path", path, "mode", info.Mode())
			return nil
		}

		files = append(files, safefile.NewFileFromInfo(path, info))
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return files, nil
}
