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

package mappings

import (
	"os"

	"github.com/mailru/easyjson"
	"github.com/retailnext/writefile"
)

func Target(directory string) writefile.Config {
	return writefile.Config{
		Directory:     directory,
		DirectoryMode: 0755,
		FileMode:      0644,
	}
}

// Write persists the mapping as a JSON artifact. The write is atomic; a
// failed batch never leaves a partial artifact behind.
func Write(target writefile.Config, name string, m FileMapping) error {
	return target.WriteFile(name, func(f *os.File) error {
		_, err := easyjson.MarshalToWriter(m, f)
		return err
	})
}

func Load(path string) (FileMapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			panic(closeErr)
		}
	}()

	var m FileMapping
	if err := easyjson.UnmarshalFromReader(f, &m); err != nil {
		return nil, err
	}
	return m, nil
}
