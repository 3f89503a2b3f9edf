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
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/go-test/deep"
	"github.com/retailnext/pinbatch/config"
	"github.com/retailnext/pinbatch/faults"
	"github.com/retailnext/pinbatch/safefile"
)

func testClient(t *testing.T, handler http.Handler) Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := NewClient(&config.Config{
		PinataAPIURL:    server.URL,
		PinataAPIKey:    "test-key",
		PinataAPISecret: "test-secret",
	})
	if err != nil {
		t.Fatal(err)
	}
	return client
}

func TestNewClientValidation(t *testing.T) {
	cases := map[string]*config.Config{
		"missing key":    {PinataAPIURL: "https://api.pinata.cloud", PinataAPISecret: "s"},
		"missing secret": {PinataAPIURL: "https://api.pinata.cloud", PinataAPIKey: "k"},
		"relative url":   {PinataAPIURL: "api.pinata.cloud", PinataAPIKey: "k", PinataAPISecret: "s"},
	}
	for name, cfg := range cases {
		_, err := NewClient(cfg)
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		if code := faults.CodeOf(err); code != faults.Configuration {
			t.Fatalf("%s: expected configuration fault, got %v", name, code)
		}
	}
}

func TestTestAuthentication(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/testAuthentication" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("pinata_api_key") != "test-key" || r.Header.Get("pinata_secret_api_key") != "test-secret" {
			t.Error("credentials not sent")
		}
		_, _ = io.WriteString(w, `{"message":"Congratulations! You are communicating with the Pinata API!"}`)
	}))
	if err := client.TestAuthentication(context.Background()); err != nil {
		t.Fatal(err)
	}
}

func TestPinFile(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/pinning/pinFileToIPFS" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			return
		}
		if got := r.FormValue("pinataMetadata"); got != `{"name":"file1.png"}` {
			t.Errorf("unexpected pinataMetadata %q", got)
		}
		if got := r.FormValue("pinataOptions"); got != `{"cidVersion":0}` {
			t.Errorf("unexpected pinataOptions %q", got)
		}
		headers := r.MultipartForm.File["file"]
		if len(headers) != 1 {
			t.Errorf("expected 1 file part, got %d", len(headers))
			return
		}
		if headers[0].Filename != "file1.png" {
			t.Errorf("unexpected part filename %q", headers[0].Filename)
		}
		part, err := headers[0].Open()
		if err != nil {
			t.Errorf("open part: %v", err)
			return
		}
		content, err := io.ReadAll(part)
		if closeErr := part.Close(); closeErr != nil {
			panic(closeErr)
		}
		if err != nil {
			t.Errorf("read part: %v", err)
			return
		}
		if string(content) != "png bytes" {
			t.Errorf("unexpected part content %q", content)
		}
		_, _ = io.WriteString(w, `{"IpfsHash":"QmPinned","PinSize":9,"Timestamp":"2026-01-02T03:04:05Z"}`)
	}))

	cid, err := client.PinFile(context.Background(), "file1.png", []byte("png bytes"))
	if err != nil {
		t.Fatal(err)
	}
	if cid != "QmPinned" {
		t.Fatalf("unexpected cid %q", cid)
	}
}

func TestPinFolder(t *testing.T) {
	dir, err := os.MkdirTemp("", "")
	if err != nil {
		panic(err)
	}
	defer func() {
		if cleanupErr := os.RemoveAll(dir); cleanupErr != nil {
			panic(cleanupErr)
		}
	}()

	var files []FolderFile
	for relPath, content := range map[string]string{
		"1.png":        "image one",
		"meta/1.json":  `{"id":1}`,
		"meta/10.json": `{"id":10}`,
	} {
		fullPath := filepath.Join(dir, filepath.FromSlash(relPath))
		if mkdirErr := os.MkdirAll(filepath.Dir(fullPath), 0o755); mkdirErr != nil {
			panic(mkdirErr)
		}
		if writeErr := os.WriteFile(fullPath, []byte(content), 0o644); writeErr != nil {
			panic(writeErr)
		}
		file, fileErr := safefile.NewFile(fullPath)
		if fileErr != nil {
			t.Fatal(fileErr)
		}
		files = append(files, FolderFile{File: file, RelPath: filepath.FromSlash(relPath)})
	}

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			return
		}
		if got := r.FormValue("pinataMetadata"); got != `{"name":"assets"}` {
			t.Errorf("unexpected pinataMetadata %q", got)
		}
		var partNames []string
		for _, header := range r.MultipartForm.File["file"] {
			partNames = append(partNames, header.Filename)
		}
		sort.Strings(partNames)
		expected := []string{"assets/1.png", "assets/meta/1.json", "assets/meta/10.json"}
		if diff := deep.Equal(expected, partNames); diff != nil {
			t.Error(diff)
		}
		_, _ = io.WriteString(w, `{"IpfsHash":"QmFolder","PinSize":42,"Timestamp":"2026-01-02T03:04:05Z"}`)
	}))

	cid, err := client.PinFolder(context.Background(), "assets", files)
	if err != nil {
		t.Fatal(err)
	}
	if cid != "QmFolder" {
		t.Fatalf("unexpected cid %q", cid)
	}
}

func TestPinList(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/pinList" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		query := r.URL.Query()
		if query.Get("status") != "pinned" || query.Get("pageLimit") != "1000" || query.Get("pageOffset") != "2000" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		_, _ = io.WriteString(w, `{"count":2037,"rows":[`+
			`{"ipfs_pin_hash":"Qm1","metadata":{"name":"file1.png","keyvalues":{"x":"y"}}},`+
			`{"ipfs_pin_hash":"Qm2","metadata":{"name":null}},`+
			`{"ipfs_pin_hash":"Qm3"}]}`)
	}))

	page, err := client.PinList(context.Background(), "pinned", 1000, 2000)
	if err != nil {
		t.Fatal(err)
	}
	if page.Count != 2037 {
		t.Fatalf("unexpected count %d", page.Count)
	}
	expected := []PinRow{
		{CID: "Qm1", Name: "file1.png"},
		{CID: "Qm2"},
		{CID: "Qm3"},
	}
	if diff := deep.Equal(expected, page.Rows); diff != nil {
		t.Fatal(diff)
	}
}

func TestUnpin(t *testing.T) {
	var gotMethod, gotPath string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = io.WriteString(w, "OK")
	}))

	if err := client.Unpin(context.Background(), "QmGone"); err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/pinning/unpin/QmGone" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}
}

func TestResponseFaults(t *testing.T) {
	cases := []struct {
		status    int
		body      string
		code      faults.Code
		retryable bool
	}{
		{http.StatusUnauthorized, `{"error":{"reason":"INVALID_API_KEYS","details":"Invalid API key provided"}}`, faults.RemoteAuth, false},
		{http.StatusForbidden, `{"error":"forbidden"}`, faults.RemoteAuth, false},
		{http.StatusTooManyRequests, `{"error":"rate limited"}`, faults.RateLimited, true},
		{http.StatusInternalServerError, `upstream exploded`, faults.RemoteAPI, true},
		{http.StatusBadRequest, `{"error":{"reason":"bad request"}}`, faults.RemoteAPI, false},
	}

	for _, tc := range cases {
		status, body := tc.status, tc.body
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = io.WriteString(w, body)
		}))
		err := client.TestAuthentication(context.Background())
		if err == nil {
			t.Fatalf("status %d: expected error", tc.status)
		}
		if code := faults.CodeOf(err); code != tc.code {
			t.Fatalf("status %d: expected %v, got %v (%v)", tc.status, tc.code, code, err)
		}
		if retryable := faults.IsRetryable(err); retryable != tc.retryable {
			t.Fatalf("status %d: expected retryable=%v, got %v", tc.status, tc.retryable, retryable)
		}
	}
}
