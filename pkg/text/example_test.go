package text_test

import (
	"fmt"

	"github.com/walteh/wdfconv/pkg/spectrum"
	"github.com/walteh/wdfconv/pkg/text"
)

func ExampleEncode() {
	// Build a record the way a decoder would
	rec, err := spectrum.NewRecord(
		[]float64{100.0, 200.0},
		[]float64{0.5, 1.2},
	)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// Render it
	out, err := text.Encode(rec)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Print(string(out))

	// Output:
	// Raman Shift (cm⁻¹)	Intensity (a.u.)
	// 100.0	0.5
	// 200.0	1.2
}

func ExampleFormatFloat() {
	fmt.Println(text.FormatFloat(1520))
	fmt.Println(text.FormatFloat(0.000012))

	// Output:
	// 1520.0
	// 1.2e-05
}
