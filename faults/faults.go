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

// Package faults classifies errors so that everything surfaced at the top
// level carries a code and a severity. Errors that reach main without a
// classification are wrapped as system faults rather than left bare.
package faults

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
)

type Code string

const (
	Configuration Code = "configuration"
	Validation    Code = "validation"
	FileSystem    Code = "filesystem"
	Network       Code = "network"
	RemoteAuth    Code = "remote_auth"
	RateLimited   Code = "rate_limited"
	RemoteAPI     Code = "remote_api"
	Processing    Code = "processing"
	System        Code = "system"
)

type Severity string

const (
	SeverityFatal   Severity = "fatal"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

func (c Code) Severity() Severity {
	switch c {
	case Configuration, Validation:
		return SeverityFatal
	case RateLimited:
		return SeverityWarning
	default:
		return SeverityError
	}
}

type Fault struct {
	Code      Code
	Transient bool
	Err       error
}

func (f *Fault) Error() string {
	return string(f.Code) + ": " + f.Err.Error()
}

func (f *Fault) Unwrap() error {
	return f.Err
}

func (f *Fault) Severity() Severity {
	return f.Code.Severity()
}

func New(code Code, err error) *Fault {
	return &Fault{Code: code, Err: err}
}

func Errorf(code Code, format string, args ...interface{}) *Fault {
	return &Fault{Code: code, Err: fmt.Errorf(format, args...)}
}

// Classify maps an error onto the taxonomy. Context cancellation is passed
// through untouched so callers can keep comparing against context.Canceled.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var f *Fault
	if errors.As(err, &f) {
		return f
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) || os.IsNotExist(err) || os.IsPermission(err) {
		return &Fault{Code: FileSystem, Err: err}
	}
	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) {
		return &Fault{Code: Network, Transient: true, Err: err}
	}
	return &Fault{Code: System, Err: err}
}

func CodeOf(err error) Code {
	classified := Classify(err)
	var f *Fault
	if errors.As(classified, &f) {
		return f.Code
	}
	return System
}

// IsRetryable reports whether the retry helper should attempt the operation
// again. Auth, validation, and filesystem faults never are.
func IsRetryable(err error) bool {
	var f *Fault
	if !errors.As(err, &f) {
		var netErr net.Error
		var urlErr *url.Error
		return errors.As(err, &netErr) || errors.As(err, &urlErr)
	}
	if f.Transient {
		return true
	}
	return f.Code == Network || f.Code == RateLimited
}
