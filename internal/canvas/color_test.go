package canvas

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor_RGBA(t *testing.T) {
	tests := []struct {
		in   Color
		want color.RGBA
		ok   bool
	}{
		{"#0070f3", color.RGBA{0x00, 0x70, 0xf3, 255}, true},
		{"#FF4040", color.RGBA{0xff, 0x40, 0x40, 255}, true},
		{"#999", color.RGBA{0x99, 0x99, 0x99, 255}, true},
		{"white", color.RGBA{255, 255, 255, 255}, true},
		{"Navy", color.RGBA{0, 0, 128, 255}, true},
		{Transparent, color.RGBA{}, true},
		{"#12", color.RGBA{}, false},
		{"#zzzzzz", color.RGBA{}, false},
		{"chartreuse", color.RGBA{}, false},
		{"", color.RGBA{}, false},
		{"rgb(17,17,17)", color.RGBA{}, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			got, ok := tt.in.RGBA()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
