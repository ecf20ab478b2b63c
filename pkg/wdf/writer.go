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
	"encoding/binary"
	"math"

	"github.com/walteh/wdfconv/pkg/spectrum"
)

// headerBlockSize is the size of the WDF1 block written by Marshal
const headerBlockSize = 512

// 📝 Marshal encodes rec as a minimal single-spectrum file (WDF1, XLST, DATA)
// that Parse reads back. Samples are narrowed to float32.
func Marshal(rec spectrum.Record) ([]byte, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	n := rec.Len()

	header := make([]byte, headerBlockSize)
	putBlockHeader(header, BlockFile, headerBlockSize)
	binary.LittleEndian.PutUint32(header[offsetPointsPerSpectrum:], uint32(n))
	binary.LittleEndian.PutUint64(header[offsetSpectrumCount:], 1)
	binary.LittleEndian.PutUint32(header[offsetXListLength:], uint32(n))
	buf.Write(header)

	xlist := make([]byte, blockHeaderSize+xlistPreambleSize+4*n)
	putBlockHeader(xlist, BlockXList, len(xlist))
	putFloats(xlist[blockHeaderSize+xlistPreambleSize:], rec.Wavenumbers)
	buf.Write(xlist)

	data := make([]byte, blockHeaderSize+4*n)
	putBlockHeader(data, BlockData, len(data))
	putFloats(data[blockHeaderSize:], rec.Intensities)
	buf.Write(data)

	return buf.Bytes(), nil
}

func putBlockHeader(b []byte, id string, size int) {
	copy(b[0:4], id)
	binary.LittleEndian.PutUint64(b[8:16], uint64(size))
}

func putFloats(b []byte, vs []float64) {
	for i, v := range vs {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(float32(v)))
	}
}
