package canvas

import (
	"image/color"
	"strings"
)

var named = map[string]color.RGBA{
	"black":   {0, 0, 0, 255},
	"white":   {255, 255, 255, 255},
	"red":     {255, 0, 0, 255},
	"green":   {0, 128, 0, 255},
	"blue":    {0, 0, 255, 255},
	"gray":    {128, 128, 128, 255},
	"grey":    {128, 128, 128, 255},
	"silver":  {192, 192, 192, 255},
	"maroon":  {128, 0, 0, 255},
	"navy":    {0, 0, 128, 255},
	"teal":    {0, 128, 128, 255},
	"purple":  {128, 0, 128, 255},
	"olive":   {128, 128, 0, 255},
	"lime":    {0, 255, 0, 255},
	"yellow":  {255, 255, 0, 255},
	"orange":  {255, 165, 0, 255},
	"aqua":    {0, 255, 255, 255},
	"fuchsia": {255, 0, 255, 255},
}

// RGBA resolves hex ("#rgb", "#rrggbb") and a few named colors. Transparent
// resolves to a zero color; anything unknown reports false.
func (c Color) RGBA() (color.RGBA, bool) {
	s := strings.ToLower(strings.TrimSpace(string(c)))
	if s == string(Transparent) {
		return color.RGBA{}, true
	}
	if rgba, ok := named[s]; ok {
		return rgba, true
	}
	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, false
	}

	hex := s[1:]
	switch len(hex) {
	case 3:
		r, ok1 := hexNibble(hex[0])
		g, ok2 := hexNibble(hex[1])
		b, ok3 := hexNibble(hex[2])
		return color.RGBA{r * 17, g * 17, b * 17, 255}, ok1 && ok2 && ok3
	case 6:
		r, ok1 := hexByte(hex[0:2])
		g, ok2 := hexByte(hex[2:4])
		b, ok3 := hexByte(hex[4:6])
		return color.RGBA{r, g, b, 255}, ok1 && ok2 && ok3
	}
	return color.RGBA{}, false
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

func hexByte(s string) (uint8, bool) {
	hi, ok1 := hexNibble(s[0])
	lo, ok2 := hexNibble(s[1])
	return hi<<4 | lo, ok1 && ok2
}
