// Package style provides shared UI styling primitives including colors and
// icons for consistent visual presentation across the CLI.
package style

// Color is a hex RGB color understood by termenv.RGBColor.
type Color string

// Palette.
const (
	Slate  Color = "#667085"
	Green  Color = "#22A06B"
	Red    Color = "#D93025"
	Yellow Color = "#F59E0B"
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
)
