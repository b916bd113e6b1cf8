// Package layout turns text plus font attributes into measured lines.
//
// The pipeline is: bidi segmentation (golang.org/x/text/unicode/bidi),
// shaping (go-text/typesetting HarfBuzz by default), break analysis
// (simplified UAX #14), then greedy line building. The package computes
// dimensions only; it produces no rendering output.
package layout

// Direction specifies horizontal text direction.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return "Unknown"
	}
}
