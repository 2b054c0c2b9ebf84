package core

// Color represents a foreground color for a screen cell.
// The platform maps these onto terminal styles.
type Color uint8

// Predefined colors for runner elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorGray
	ColorDim
	ColorBrightWhite
)
