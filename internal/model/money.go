package model

import "fmt"

// Cents is a money amount in hundredths of the display currency. Backend
// payloads carry prices as decimal numbers; they are converted once at the
// ingestion boundary so cart arithmetic stays exact.
type Cents int64

// CentsFromFloat rounds a backend decimal amount to the nearest cent.
// Negative amounts are clamped to zero (prices are non-negative).
func CentsFromFloat(v float64) Cents {
	if v <= 0 {
		return 0
	}
	return Cents(v*100 + 0.5)
}

// Float64 converts back to the decimal representation the backend expects.
func (c Cents) Float64() float64 {
	return float64(c) / 100
}

func (c Cents) String() string {
	if c < 0 {
		return "-" + (-c).String()
	}
	return fmt.Sprintf("%d.%02d", c/100, c%100)
}
