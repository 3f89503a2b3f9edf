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
	"mime/multipart"
	"net/http"
	"path"
	"path/filepath"

	"github.com/retailnext/pinbatch/safefile"
)

// FolderFile is one file of a folder upload. RelPath is the path below the
// folder root and becomes part of the uploaded directory structure.
type FolderFile struct {
	File    safefile.File
	RelPath string
}

// PinFolder uploads all files as a single directory pin and returns the
// CID of the directory. The body is streamed, so folders larger than
// memory are fine. Either the whole folder pins or the call fails; there
// is no partial result.
func (c *httpClient) PinFolder(ctx context.Context, name string, files []FolderFile) (string, error) {
	bodyReader, bodyWriter := io.Pipe()
	writer := multipart.NewWriter(bodyWriter)
	go func() {
		bodyWriter.CloseWithError(writeFolderBody(writer, name, files))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/pinning/pinFileToIPFS", bodyReader)
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	return decodePinResponse(resp.Body)
}

func writeFolderBody(writer *multipart.Writer, name string, files []FolderFile) error {
	for _, folderFile := range files {
		part, err := writer.CreateFormFile("file", path.Join(name, filepath.ToSlash(folderFile.RelPath)))
		if err != nil {
			return err
		}
		if err = copyFilePart(part, folderFile.File); err != nil {
			return err
		}
	}
	if err := writer.WriteField("pinataMetadata", marshalField(pinMetadata{Name: name})); err != nil {
		return err
	}
	if err := writer.WriteField("pinataOptions", marshalField(pinOptions{CidVersion: 0})); err != nil {
		return err
	}
	return writer.Close()
}

func copyFilePart(part io.Writer, file safefile.File) error {
	osFile, err := file.Open()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := osFile.Close(); closeErr != nil {
			panic(closeErr)
		}
	}()
	if _, err = io.Copy(part, osFile); err != nil {
		return err
	}
	return file.CheckFile(osFile)
}
