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

package pinata

import (
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

type pinMetadata struct {
	Name string
}

func (v pinMetadata) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"name":`)
	w.String(v.Name)
	w.RawByte('}')
}

type pinOptions struct {
	CidVersion int
}

func (v pinOptions) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"cidVersion":`)
	w.Int(v.CidVersion)
	w.RawByte('}')
}

type pinResponse struct {
	IpfsHash  string
	PinSize   int64
	Timestamp string
}

func (v *pinResponse) UnmarshalEasyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := string(in.String())
		in.WantColon()
		switch key {
		case "IpfsHash":
			v.IpfsHash = string(in.String())
		case "PinSize":
			v.PinSize = in.Int64()
		case "Timestamp":
			v.Timestamp = string(in.String())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

// errorResponse tolerates both error body shapes the service produces:
// {"error":"text"} and {"error":{"reason":...,"details":...}}.
type errorResponse struct {
	Reason  string
	Details string
}

func (v *errorResponse) UnmarshalEasyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := string(in.String())
		in.WantColon()
		switch key {
		case "error":
			if in.IsDelim('{') {
				in.Delim('{')
				for !in.IsDelim('}') {
					nested := string(in.String())
					in.WantColon()
					switch nested {
					case "reason":
						v.Reason = string(in.String())
					case "details":
						v.Details = string(in.String())
					default:
						in.SkipRecursive()
					}
					in.WantComma()
				}
				in.Delim('}')
			} else if in.IsNull() {
				in.Skip()
			} else {
				v.Reason = string(in.String())
			}
		case "message":
			v.Reason = string(in.String())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (v errorResponse) message() string {
	if v.Reason == "" {
		return v.Details
	}
	if v.Details == "" {
		return v.Reason
	}
	return v.Reason + ": " + v.Details
}

// PinRow is one pin record from the list endpoint. Name is empty when the
// remote has no metadata name for the pin.
type PinRow struct {
	CID  string
	Name string
}

func (v *PinRow) UnmarshalEasyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := string(in.String())
		in.WantColon()
		switch key {
		case "ipfs_pin_hash":
			v.CID = string(in.String())
		case "metadata":
			if in.IsNull() {
				in.Skip()
			} else {
				in.Delim('{')
				for !in.IsDelim('}') {
					nested := string(in.String())
					in.WantColon()
					if nested == "name" && !in.IsNull() {
						v.Name = string(in.String())
					} else {
						in.SkipRecursive()
					}
					in.WantComma()
				}
				in.Delim('}')
			}
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

// PinListPage is one page of pin records.
type PinListPage struct {
	Count int64
	Rows  []PinRow
}

func (v *PinListPage) UnmarshalEasyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := string(in.String())
		in.WantColon()
		switch key {
		case "count":
			v.Count = in.Int64()
		case "rows":
			if in.IsNull() {
				in.Skip()
			} else {
				in.Delim('[')
				for !in.IsDelim(']') {
					var row PinRow
					row.UnmarshalEasyJSON(in)
					v.Rows = append(v.Rows, row)
					in.WantComma()
				}
				in.Delim(']')
			}
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}
