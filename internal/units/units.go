// Package units contains helpers to convert sizes to human-readable strings.
package units

import (
	"fmt"
	"math"
)

//nolint:gochecknoglobals
var unitPrefixes = []string{"K", "M", "G", "T"}

const unitBase = 1024.0

// BytesString formats the given byte count using the largest base-1024
// unit in which the value is at least 1, with one decimal place rounded
// half up. Values below 1K are rendered as whole bytes.
func BytesString(b int64) string {
	f := float64(b)
	if f < unitBase {
		return fmt.Sprintf("%vB", b)
	}

	for _, p := range unitPrefixes[:len(unitPrefixes)-1] {
		f /= unitBase
		if f < unitBase {
			return oneDecimal(f) + p
		}
	}

	return oneDecimal(f/unitBase) + unitPrefixes[len(unitPrefixes)-1]
}

func oneDecimal(f float64) string {
	return fmt.Sprintf("%.1f", math.Floor(f*10+0.5)/10)
}
