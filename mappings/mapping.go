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

// Package mappings holds the name-to-result tables produced by batch
// operations and their JSON artifact form. Key order is canonical
// everywhere it can be observed: numeric-aware, so "file2" sorts before
// "file10".
package mappings

import (
	"sync"

	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type FileMapping map[string]string

var (
	// collate.Collator is not safe for concurrent use.
	collatorLock sync.Mutex
	collator     = collate.New(language.Und, collate.Numeric)
)

func (m FileMapping) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	collatorLock.Lock()
	collator.SortStrings(names)
	collatorLock.Unlock()
	return names
}

func (m FileMapping) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	for i, name := range m.Names() {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(name)
		w.RawByte(':')
		w.String(m[name])
	}
	w.RawByte('}')
}

func (m *FileMapping) UnmarshalEasyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		*m = nil
		return
	}
	result := make(FileMapping)
	in.Delim('{')
	for !in.IsDelim('}') {
		key := string(in.String())
		in.WantColon()
		result[key] = string(in.String())
		in.WantComma()
	}
	in.Delim('}')
	if in.Error() == nil {
		*m = result
	}
}
