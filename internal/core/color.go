package core

// Color is a foreground color for a screen cell. The terminal platform maps
// each value to an ANSI 256-color code.
type Color uint8

// Palette for the lunchroom.
const (
	ColorDefault Color = iota
	ColorRed           // adversary
	ColorGreen         // prompts
	ColorYellow        // stun marks, titles
	ColorBlue          // player
	ColorWhite         // HUD text
	ColorBrown         // tables, projectiles
	ColorDarkBrown     // floor
	ColorOrange        // trays
	ColorGray          // table legs
	ColorCyan          // windows
)
