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

package wdf

import (
	"bytes"
	"context"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/wdfconv/pkg/spectrum"
)

// 🧪 fixture describes a synthetic WDF file
type fixture struct {
	xs       []float32
	ys       []float32
	count    uint64
	skipData bool
}

// 🧪 build encodes the fixture using the block layout the decoder expects
func (f fixture) build(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer

	writeHeader := func(id string, size int) {
		buf.WriteString(id)
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(0)))
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(size)))
	}
	writeFloats := func(vs []float32) {
		for _, v := range vs {
			require.NoError(t, binary.Write(&buf, binary.LittleEndian, math.Float32bits(v)))
		}
	}

	header := make([]byte, 512)
	copy(header[0:4], BlockFile)
	binary.LittleEndian.PutUint64(header[8:16], 512)
	binary.LittleEndian.PutUint32(header[offsetPointsPerSpectrum:], uint32(len(f.ys)))
	binary.LittleEndian.PutUint64(header[offsetSpectrumCount:], f.count)
	binary.LittleEndian.PutUint32(header[offsetXListLength:], uint32(len(f.xs)))
	buf.Write(header)

	writeHeader(BlockXList, blockHeaderSize+xlistPreambleSize+4*len(f.xs))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(1)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(1)))
	writeFloats(f.xs)

	if !f.skipData {
		writeHeader(BlockData, blockHeaderSize+4*len(f.ys))
		writeFloats(f.ys)
	}

	return buf.Bytes()
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    func(t *testing.T) []byte
		check   func(t *testing.T, rec spectrum.Record)
		wantErr error
	}{
		{
			name: "single_spectrum",
			data: fixture{xs: []float32{100, 200.5}, ys: []float32{0.5, 1.2}, count: 1}.build,
			check: func(t *testing.T, rec spectrum.Record) {
				assert.Equal(t, []float64{100, 200.5}, rec.Wavenumbers)
				assert.Equal(t, []float64{0.5, 1.2}, rec.Intensities, "float32 samples should widen to their shortest decimal")
			},
		},
		{
			name:    "map_file",
			data:    fixture{xs: []float32{1}, ys: []float32{2}, count: 4}.build,
			wantErr: ErrUnsupportedMap,
		},
		{
			name:    "no_spectra",
			data:    fixture{xs: []float32{1}, ys: []float32{2}, count: 0}.build,
			wantErr: ErrNoSpectra,
		},
		{
			name:    "missing_data_block",
			data:    fixture{xs: []float32{1}, ys: []float32{2}, count: 1, skipData: true}.build,
			wantErr: ErrMissingBlock,
		},
		{
			name: "wrong_magic",
			data: func(t *testing.T) []byte {
				b := fixture{xs: []float32{1}, ys: []float32{2}, count: 1}.build(t)
				copy(b[0:4], "ZZZZ")
				return b
			},
			wantErr: ErrNotWDF,
		},
		{
			name: "truncated_file",
			data: func(t *testing.T) []byte {
				b := fixture{xs: []float32{1, 2, 3}, ys: []float32{4, 5, 6}, count: 1}.build(t)
				return b[:len(b)-6]
			},
			wantErr: ErrTruncated,
		},
		{
			name:    "mismatched_axis",
			data:    fixture{xs: []float32{1, 2}, ys: []float32{3}, count: 1}.build,
			wantErr: spectrum.ErrLengthMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.data(t)
			rec, err := Parse(bytes.NewReader(data), int64(len(data)))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, rec)
		})
	}
}

func TestDecoder(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	ctx := logger.WithContext(context.Background())
	dir := t.TempDir()

	t.Run("valid_file", func(t *testing.T) {
		path := filepath.Join(dir, "ok.wdf")
		data := fixture{xs: []float32{1500, 1501}, ys: []float32{10, 20}, count: 1}.build(t)
		require.NoError(t, os.WriteFile(path, data, 0644))

		rec, err := NewDecoder().Decode(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, 2, rec.Len())
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := NewDecoder().Decode(ctx, filepath.Join(dir, "nope.wdf"))
		var decodeErr *spectrum.DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("garbage_file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.wdf")
		require.NoError(t, os.WriteFile(path, []byte("definitely not a spectrum file"), 0644))

		_, err := NewDecoder().Decode(ctx, path)
		var decodeErr *spectrum.DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, path, decodeErr.Path)
		assert.ErrorIs(t, err, ErrNotWDF)
	})
}
