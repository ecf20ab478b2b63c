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
	"context"
	"encoding/binary"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/walteh/wdfconv/pkg/spectrum"
	"gitlab.com/tozd/go/errors"
)

// 📏 Layout constants (all values little-endian)
const (
	blockHeaderSize = 16 // id[4] uid[4] size[8]

	offsetPointsPerSpectrum = 60 // uint32, inside WDF1
	offsetSpectrumCount     = 72 // uint64, inside WDF1
	offsetXListLength       = 88 // uint32, inside WDF1
	minHeaderBlockSize      = offsetXListLength + 4

	xlistPreambleSize = 8 // data type + unit, both uint32
)

// Block identifiers
const (
	BlockFile  = "WDF1"
	BlockXList = "XLST"
	BlockData  = "DATA"
)

var (
	ErrNotWDF         = errors.Base("not a WDF file")
	ErrTruncated      = errors.Base("truncated block")
	ErrMissingBlock   = errors.Base("missing block")
	ErrUnsupportedMap = errors.Base("multi-spectrum files are not supported")
	ErrNoSpectra      = errors.Base("file contains no spectra")
)

// 🎯 Decoder implements spectrum.Decoder for single-spectrum WDF files
type Decoder struct{}

var _ spectrum.Decoder = (*Decoder)(nil)

// 🏭 NewDecoder creates a new WDF decoder
func NewDecoder() *Decoder {
	return &Decoder{}
}

// 📖 Decode opens path and parses it. Errors are always *spectrum.DecodeError.
func (d *Decoder) Decode(ctx context.Context, path string) (spectrum.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return spectrum.Record{}, spectrum.NewDecodeError(path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return spectrum.Record{}, spectrum.NewDecodeError(path, err)
	}

	rec, err := Parse(f, info.Size())
	if err != nil {
		return spectrum.Record{}, spectrum.NewDecodeError(path, err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Int("points", rec.Len()).Msg("decoded spectrum")
	return rec, nil
}

// block locates one block inside the file
type block struct {
	id     string
	offset int64
	size   int64
}

// 🔍 Parse reads the single spectrum held in a WDF file of the given size
func Parse(r io.ReaderAt, size int64) (spectrum.Record, error) {
	blocks, err := scanBlocks(r, size)
	if err != nil {
		return spectrum.Record{}, err
	}

	header, ok := blocks[BlockFile]
	if !ok || header.offset != 0 {
		return spectrum.Record{}, ErrNotWDF
	}
	if header.size < minHeaderBlockSize {
		return spectrum.Record{}, errors.Errorf("%w: %s is %d bytes", ErrTruncated, BlockFile, header.size)
	}

	points, err := readUint32(r, offsetPointsPerSpectrum)
	if err != nil {
		return spectrum.Record{}, err
	}
	count, err := readUint64(r, offsetSpectrumCount)
	if err != nil {
		return spectrum.Record{}, err
	}
	xlen, err := readUint32(r, offsetXListLength)
	if err != nil {
		return spectrum.Record{}, err
	}

	switch {
	case count == 0:
		return spectrum.Record{}, ErrNoSpectra
	case count > 1:
		return spectrum.Record{}, errors.Errorf("%w: %d spectra", ErrUnsupportedMap, count)
	}

	xlist, ok := blocks[BlockXList]
	if !ok {
		return spectrum.Record{}, errors.Errorf("%w: %s", ErrMissingBlock, BlockXList)
	}
	data, ok := blocks[BlockData]
	if !ok {
		return spectrum.Record{}, errors.Errorf("%w: %s", ErrMissingBlock, BlockData)
	}

	wavenumbers, err := readFloats(r, xlist, blockHeaderSize+xlistPreambleSize, int(xlen))
	if err != nil {
		return spectrum.Record{}, err
	}
	intensities, err := readFloats(r, data, blockHeaderSize, int(points))
	if err != nil {
		return spectrum.Record{}, err
	}

	return spectrum.NewRecord(wavenumbers, intensities)
}

// scanBlocks walks the block chain and records the first block of each id
func scanBlocks(r io.ReaderAt, size int64) (map[string]block, error) {
	blocks := make(map[string]block)
	hdr := make([]byte, blockHeaderSize)

	for offset := int64(0); offset < size; {
		if size-offset < blockHeaderSize {
			return nil, errors.Errorf("%w: trailing %d bytes at offset %d", ErrTruncated, size-offset, offset)
		}
		if _, err := r.ReadAt(hdr, offset); err != nil {
			return nil, errors.Errorf("reading block header at %d: %w", offset, err)
		}

		id := string(hdr[0:4])
		blockSize := binary.LittleEndian.Uint64(hdr[8:16])
		if offset == 0 && id != BlockFile {
			return nil, ErrNotWDF
		}
		if blockSize < blockHeaderSize || blockSize > uint64(size-offset) {
			return nil, errors.Errorf("%w: %s at offset %d claims %d bytes", ErrTruncated, id, offset, blockSize)
		}

		if _, seen := blocks[id]; !seen {
			blocks[id] = block{id: id, offset: offset, size: int64(blockSize)}
		}
		offset += int64(blockSize)
	}

	return blocks, nil
}

func readUint32(r io.ReaderAt, offset int64) (uint32, error) {
	buf := make([]byte, 4)
	if _, err := r.ReadAt(buf, offset); err != nil {
		return 0, errors.Errorf("reading uint32 at %d: %w", offset, err)
	}
	return binary.LittleEndian.Uint32(buf), nil
}

func readUint64(r io.ReaderAt, offset int64) (uint64, error) {
	buf := make([]byte, 8)
	if _, err := r.ReadAt(buf, offset); err != nil {
		return 0, errors.Errorf("reading uint64 at %d: %w", offset, err)
	}
	return binary.LittleEndian.Uint64(buf), nil
}

// readFloats reads n float32 values starting skip bytes into b
func readFloats(r io.ReaderAt, b block, skip int64, n int) ([]float64, error) {
	need := skip + int64(n)*4
	if need > b.size {
		return nil, errors.Errorf("%w: %s holds %d bytes, need %d", ErrTruncated, b.id, b.size, need)
	}

	out := make([]float64, n)
	if n == 0 {
		return out, nil
	}

	buf := make([]byte, n*4)
	if _, err := r.ReadAt(buf, b.offset+skip); err != nil {
		return nil, errors.Errorf("reading %s samples: %w", b.id, err)
	}

	for i := range out {
		out[i] = widen(math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:])))
	}
	return out, nil
}

// widen converts through the shortest float32 decimal so 1.2f stays 1.2
func widen(f float32) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(float64(f), 'g', -1, 32), 64)
	if err != nil {
		return float64(f)
	}
	return v
}
