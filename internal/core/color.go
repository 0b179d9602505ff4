package core

// Color is the foreground color of a screen cell. The platform maps each
// value to an ANSI color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorYellow        // Status messages
	ColorWhite         // Free tile borders
	ColorGray          // Blocked tile borders, chrome

	// Suit labels and highlights
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
)
