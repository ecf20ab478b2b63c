// Copyright 2025 walteh LLC
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

// Package spectrum defines the decoded spectrum record and the decoder
// contract used by the conversion pipeline.
package spectrum

import (
	"context"
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// ErrLengthMismatch is returned when wavenumbers and intensities differ in length.
var ErrLengthMismatch = errors.Base("wavenumber and intensity counts differ")

// 📈 Record is one decoded spectrum: parallel wavenumber and intensity samples.
// Wavenumbers[i] pairs with Intensities[i].
type Record struct {
	Wavenumbers []float64
	Intensities []float64
}

// 🏭 NewRecord builds a record, rejecting mismatched sample counts
func NewRecord(wavenumbers, intensities []float64) (Record, error) {
	r := Record{Wavenumbers: wavenumbers, Intensities: intensities}
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}

// Len returns the number of (wavenumber, intensity) pairs.
func (r Record) Len() int {
	return len(r.Wavenumbers)
}

// 🔍 Validate checks the length invariant
func (r Record) Validate() error {
	if len(r.Wavenumbers) != len(r.Intensities) {
		return errors.Errorf("%w: %d wavenumbers, %d intensities", ErrLengthMismatch, len(r.Wavenumbers), len(r.Intensities))
	}
	return nil
}

// 🔌 Decoder turns one instrument file into a Record.
type Decoder interface {
	// Decode reads and parses the file at path. Failures are reported as *DecodeError.
	Decode(ctx context.Context, path string) (Record, error)
}

// DecodeError reports a malformed or unreadable instrument file.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// 🏭 NewDecodeError wraps err as a *DecodeError for path
func NewDecodeError(path string, err error) error {
	return errors.WithStack(&DecodeError{Path: path, Err: err})
}
