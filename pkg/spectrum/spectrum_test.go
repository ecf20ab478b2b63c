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

package spectrum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestNewRecord(t *testing.T) {
	tests := []struct {
		name        string
		wavenumbers []float64
		intensities []float64
		wantLen     int
		wantErr     bool
	}{
		{
			name:        "matching_lengths",
			wavenumbers: []float64{100, 200},
			intensities: []float64{0.5, 1.2},
			wantLen:     2,
		},
		{
			name:    "empty",
			wantLen: 0,
		},
		{
			name:        "mismatched_lengths",
			wavenumbers: []float64{100, 200},
			intensities: []float64{0.5},
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRecord(tt.wavenumbers, tt.intensities)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrLengthMismatch)
				assert.Contains(t, err.Error(), "2 wavenumbers, 1 intensities")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, r.Len())
		})
	}
}

func TestDecodeError(t *testing.T) {
	cause := errors.New("truncated block")
	err := NewDecodeError("/data/a.wdf", cause)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "/data/a.wdf", decodeErr.Path)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "decoding /data/a.wdf: truncated block", err.Error())
}
