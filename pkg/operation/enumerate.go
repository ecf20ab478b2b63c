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
	"context"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📂 Enumerator lists the convertible files of a directory
type Enumerator interface {
	// Enumerate returns base names in listing order. A directory without
	// matches yields an empty slice and no error.
	Enumerate(ctx context.Context, dir string) ([]string, error)
}

// 🔍 ExtensionEnumerator keeps regular files whose name ends in a fixed extension
type ExtensionEnumerator struct {
	pattern string
}

var _ Enumerator = (*ExtensionEnumerator)(nil)

// 🏭 NewExtensionEnumerator creates an enumerator for ext (for example ".wdf").
// Matching is case-sensitive.
func NewExtensionEnumerator(ext string) *ExtensionEnumerator {
	return &ExtensionEnumerator{pattern: "*" + ext}
}

func (e *ExtensionEnumerator) Enumerate(ctx context.Context, dir string) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Errorf("%w: listing %s: %w", ErrDirectoryAccess, dir, err)
	}

	files := []string{}
	for _, entry := range entries {
		matched, err := doublestar.Match(e.pattern, entry.Name())
		if err != nil {
			return nil, errors.Errorf("matching %s against %q: %w", entry.Name(), e.pattern, err)
		}
		if !matched {
			continue
		}
		if !isRegularFile(filepath.Join(dir, entry.Name()), entry) {
			logger.Debug().Str("name", entry.Name()).Msg("skipping non-regular entry")
			continue
		}
		files = append(files, entry.Name())
	}

	logger.Debug().Str("dir", dir).Int("count", len(files)).Msg("enumerated source files")
	return files, nil
}

// isRegularFile follows symlinks so linked files are still converted
func isRegularFile(path string, entry os.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
