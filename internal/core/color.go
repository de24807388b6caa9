package core

// Color represents a foreground color for a screen cell.
// Terminal frontends map it to ANSI codes, the windowed frontend to RGB.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorSand
	ColorSilver
	ColorDarkGray
)

var colorHex = map[Color]string{
	ColorDefault:       "#d0d0d0",
	ColorRed:           "#b22222",
	ColorGreen:         "#00a000",
	ColorYellow:        "#c0c000",
	ColorBlue:          "#0000ff",
	ColorMagenta:       "#a000a0",
	ColorCyan:          "#00a0a0",
	ColorWhite:         "#ffffff",
	ColorBrightRed:     "#ff5555",
	ColorBrightGreen:   "#55ff55",
	ColorBrightYellow:  "#ffff55",
	ColorBrightBlue:    "#5555ff",
	ColorBrightMagenta: "#ff55ff",
	ColorBrightCyan:    "#55ffff",
	ColorBrightWhite:   "#ffffff",
	ColorOrange:        "#ff8700",
	ColorGray:          "#939393",
	ColorSand:          "#d9c7af",
	ColorSilver:        "#cbcbc9",
	ColorDarkGray:      "#4a4a4a",
}

// Hex returns the color as a "#rrggbb" string.
func (c Color) Hex() string {
	if h, ok := colorHex[c]; ok {
		return h
	}
	return colorHex[ColorDefault]
}

// RGB returns the color's red, green and blue components.
func (c Color) RGB() (r, g, b uint8) {
	h := c.Hex()
	return hexByte(h[1:3]), hexByte(h[3:5]), hexByte(h[5:7])
}

func hexByte(s string) uint8 {
	var v uint8
	for i := 0; i < len(s); i++ {
		ch := s[i]
		v <<= 4
		switch {
		case ch >= '0' && ch <= '9':
			v |= ch - '0'
		case ch >= 'a' && ch <= 'f':
			v |= ch - 'a' + 10
		}
	}
	return v
}
