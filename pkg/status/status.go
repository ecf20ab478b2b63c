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

package status

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📁 Permissions for created directories and converted files
const (
	DirMode  os.FileMode = 0755
	FileMode os.FileMode = 0644
)

// tempSuffix marks in-flight writes; readers never see a half-written target
const tempSuffix = ".tmp"

// 💾 Storage handles all destination file system operations
type Storage interface {
	// CreateDir creates dir and any missing parents
	CreateDir(ctx context.Context, dir string) error
	// WriteFileAtomic replaces path with content so that readers see either
	// the old file or the complete new one
	WriteFileAtomic(ctx context.Context, path string, content []byte) error
}

// 🔧 Manager implements Storage on the local file system
type Manager struct{}

var _ Storage = (*Manager)(nil)

// 🏭 NewManager creates a new storage manager
func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) CreateDir(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, DirMode); err != nil {
		return errors.Errorf("creating directory: %w", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return errors.Errorf("checking directory: %w", err)
	}
	if !info.IsDir() {
		return errors.Errorf("%s is not a directory", dir)
	}

	zerolog.Ctx(ctx).Debug().Str("dir", dir).Msg("destination directory ready")
	return nil
}

func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	tempPath := path + tempSuffix

	// Write to temp file
	if err := os.WriteFile(tempPath, content, FileMode); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("writing temp file: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", filepath.Base(path)).
		Int("bytes", len(content)).
		Msg("wrote file")
	return nil
}
