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
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDir(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(t *testing.T, root string) string
		wantErr     bool
		errContains string
	}{
		{
			name: "nested_missing_parents",
			setup: func(t *testing.T, root string) string {
				return filepath.Join(root, "a", "b", "c")
			},
		},
		{
			name: "already_exists",
			setup: func(t *testing.T, root string) string {
				return root
			},
		},
		{
			name: "parent_is_a_file",
			setup: func(t *testing.T, root string) string {
				blocker := filepath.Join(root, "blocker")
				require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
				return filepath.Join(blocker, "out")
			},
			wantErr:     true,
			errContains: "creating directory",
		},
		{
			name: "target_is_a_file",
			setup: func(t *testing.T, root string) string {
				target := filepath.Join(root, "target")
				require.NoError(t, os.WriteFile(target, []byte("x"), 0644))
				return target
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := zerolog.New(zerolog.NewTestWriter(t))
			ctx := logger.WithContext(context.Background())
			dir := tt.setup(t, t.TempDir())

			err := NewManager().CreateDir(ctx, dir)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)

			info, err := os.Stat(dir)
			require.NoError(t, err)
			assert.True(t, info.IsDir(), "directory should exist")
		})
	}
}

func TestWriteFileAtomic(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(t *testing.T, path string)
		content     string
		wantErr     bool
		errContains string
	}{
		{
			name:    "new_file",
			content: "fresh",
		},
		{
			name: "overwrites_existing",
			setup: func(t *testing.T, path string) {
				require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0644))
			},
			content: "new",
		},
		{
			name: "target_is_directory",
			setup: func(t *testing.T, path string) {
				require.NoError(t, os.MkdirAll(filepath.Join(path, "child"), 0755))
			},
			content:     "never lands",
			wantErr:     true,
			errContains: "renaming temp file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := zerolog.New(zerolog.NewTestWriter(t))
			ctx := logger.WithContext(context.Background())
			dir := t.TempDir()
			path := filepath.Join(dir, "out.txt")

			if tt.setup != nil {
				tt.setup(t, path)
			}

			err := NewManager().WriteFileAtomic(ctx, path, []byte(tt.content))

			// The temp file never survives, success or failure
			_, statErr := os.Stat(path + tempSuffix)
			assert.True(t, os.IsNotExist(statErr), "temp file should be cleaned up")

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(got))
		})
	}
}
