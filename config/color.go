package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"favicongen/favicon"
)

// ParseColor reads a background colour. Accepted forms are "transparent"
// (or empty), "white", "black", "#RGB", "#RRGGBB", "#RRGGBBAA", "R,G,B"
// and "R,G,B,A" with decimal components.
func ParseColor(input string) (color.Color, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	switch s {
	case "", "transparent", "none":
		return color.NRGBA{}, nil
	case "white":
		return color.NRGBA{255, 255, 255, 255}, nil
	case "black":
		return color.NRGBA{0, 0, 0, 255}, nil
	}

	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) == 6 {
			hex += "ff"
		}
		if len(hex) != 8 {
			return nil, badColor(input)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, badColor(input)
		}
		return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return nil, badColor(input)
	}
	c := [4]uint8{3: 255}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return nil, badColor(input)
		}
		c[i] = uint8(v)
	}
	return color.NRGBA{c[0], c[1], c[2], c[3]}, nil
}

func badColor(s string) error {
	return fmt.Errorf("%w: bad colour %q", favicon.ErrInvalidConfig, s)
}
