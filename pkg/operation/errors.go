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

package operation

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// 🚫 Startup errors. A run that hits one of these touches no source file.
var (
	ErrInvalidSourceDirectory = errors.Base("invalid source directory")
	ErrDestinationUnwritable  = errors.Base("destination directory is not writable")
	ErrNoSourceFilesFound     = errors.Base("no source files found")
)

// ErrDirectoryAccess is returned by enumerators when a directory cannot be listed.
var ErrDirectoryAccess = errors.Base("directory access")

// 📛 Per-file stages. A *FileError always matches exactly one of these.
var (
	ErrDecode = errors.Base("decode failed")
	ErrEncode = errors.Base("encode failed")
	ErrWrite  = errors.Base("write failed")
)

// FileError is a failure isolated to a single source file.
type FileError struct {
	Filename string
	Stage    error
	Err      error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%v: %v", e.Stage, e.Err)
}

// Unwrap exposes both the stage sentinel and the cause to errors.Is/As.
func (e *FileError) Unwrap() []error {
	return []error{e.Stage, e.Err}
}

func newFileError(filename string, stage, err error) error {
	return &FileError{Filename: filename, Stage: stage, Err: err}
}
