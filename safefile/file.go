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

// Package safefile tracks files by a stat fingerprint taken when they are
// first seen, so that content read or cached later can be tied to exactly
// that version of the file.
package safefile

import (
	"os"
	"syscall"
)

func NewFileFromInfo(name string, info os.FileInfo) File {
	file := File{
		name: name,
	}
	file.fingerprint.fromInfo(info)
	return file
}

func NewFile(name string) (File, error) {
	info, err := os.Stat(name)
	if err != nil {
		return File{}, err
	}
	return NewFileFromInfo(name, info), nil
}

type File struct {
	name        string
	fingerprint fingerprint
}

type identity struct {
	device uint64
	inode  uint64
}

type fingerprint struct {
	identity   identity
	size       int64
	mtimeNanos int64
}

func (fp *fingerprint) fromInfo(info os.FileInfo) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		panic("safefile: unsupported FileInfo.Sys()")
	}
	fp.identity.device = uint64(stat.Dev)
	fp.identity.inode = stat.Ino
	fp.size = info.Size()
	fp.mtimeNanos = info.ModTime().UnixNano()
}

func (f File) Name() string {
	return f.name
}

func (f File) Len() int64 {
	return f.fingerprint.size
}

func (f File) Check() error {
	info, err := os.Stat(f.name)
	if err != nil {
		return err
	}
	return f.check(info)
}

func (f File) CheckFile(file *os.File) error {
	info, err := file.Stat()
	if err != nil {
		return err
	}
	return f.check(info)
}

func (f File) check(info os.FileInfo) error {
	var current fingerprint
	current.fromInfo(info)
	if f.fingerprint != current {
		return FingerprintMismatch{
			name:     f.name,
			expected: f.fingerprint,
			actual:   current,
		}
	}
	return nil
}

func (f File) Open() (*os.File, error) {
	file, err := os.Open(f.name)
	if err != nil {
		return nil, err
	}
	err = f.CheckFile(file)
	if err != nil {
		if closeErr := file.Close(); closeErr != nil {
			panic(closeErr)
		}
		return nil, err
	}
	return file, nil
}
