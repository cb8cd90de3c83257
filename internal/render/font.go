package render

import (
	"fmt"
	"log"
	"os"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
)

// FontConfig holds the font used for all chart text. It is built once at
// startup and treated as immutable from then on; every render reads it,
// none mutate it.
type FontConfig struct {
	font   *truetype.Font
	custom bool
}

// LoadFont builds the font configuration. When path names a readable TTF
// it is used for all labels (so non-Latin text renders correctly);
// otherwise the renderer's built-in font is used. A missing or unusable
// font file is logged but never surfaced as an error.
func LoadFont(path string) (*FontConfig, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			font, parseErr := truetype.Parse(data)
			if parseErr == nil {
				return &FontConfig{font: font, custom: true}, nil
			}
			log.Printf("Font file %s is not a usable TTF (%v), using built-in font", path, parseErr)
		case os.IsNotExist(err):
			log.Printf("Font file %s not found, using built-in font", path)
		default:
			log.Printf("Cannot read font file %s (%v), using built-in font", path, err)
		}
	}

	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("loading built-in font: %w", err)
	}
	return &FontConfig{font: font}, nil
}

// Font returns the truetype font for chart text.
func (c *FontConfig) Font() *truetype.Font {
	return c.font
}

// Custom reports whether a user-supplied font file is in use.
func (c *FontConfig) Custom() bool {
	return c.custom
}
