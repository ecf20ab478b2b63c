package text

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/walteh/wdfconv/pkg/spectrum"
	"gitlab.com/tozd/go/errors"
)

// Header is the first line of every converted file.
const Header = "Raman Shift (cm⁻¹)\tIntensity (a.u.)"

// ErrInvariantViolation is returned when a record breaks the equal-length rule.
var ErrInvariantViolation = errors.Base("invariant violation")

// TabularEncoder renders spectrum records as two tab-separated columns
type TabularEncoder struct{}

// NewTabularEncoder creates a new TabularEncoder
func NewTabularEncoder() *TabularEncoder {
	return &TabularEncoder{}
}

// Encode implements operation.Encoder
func (e *TabularEncoder) Encode(rec spectrum.Record) ([]byte, error) {
	return Encode(rec)
}

// Encode writes the header line followed by one "wavenumber\tintensity" line
// per sample, in record order.
func Encode(rec spectrum.Record) ([]byte, error) {
	if err := rec.Validate(); err != nil {
		return nil, errors.Errorf("%w: %w", ErrInvariantViolation, err)
	}

	var buf bytes.Buffer
	buf.Grow(len(Header) + 1 + rec.Len()*24)

	buf.WriteString(Header)
	buf.WriteByte('\n')
	for i := range rec.Wavenumbers {
		buf.WriteString(FormatFloat(rec.Wavenumbers[i]))
		buf.WriteByte('\t')
		buf.WriteString(FormatFloat(rec.Intensities[i]))
		buf.WriteByte('\n')
	}

	return buf.Bytes(), nil
}

// FormatFloat renders v in its shortest round-trip form. Integral values keep a
// trailing ".0"; magnitudes below 1e-4 or from 1e16 up use exponent notation.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	if abs := math.Abs(v); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
