// Package fonts provides the fonts used for raster text.
//
// The Go font family ships inside golang.org/x/image, so raster exports need
// no system fonts. Vector output keeps the configured font-family name and
// leaves font matching to the viewer.
package fonts

import (
	"strconv"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Parsed fonts (computed once on first access).
var (
	regular, bold *opentype.Font
	parseErr      error
	parseOnce     sync.Once
)

func load() error {
	parseOnce.Do(func() {
		if regular, parseErr = opentype.Parse(goregular.TTF); parseErr != nil {
			return
		}
		bold, parseErr = opentype.Parse(gobold.TTF)
	})
	return parseErr
}

// IsBold reports whether a CSS font-weight value selects a bold face:
// "bold", "bolder" or a numeric weight of at least 600.
func IsBold(weight string) bool {
	w := strings.ToLower(strings.TrimSpace(weight))
	switch w {
	case "bold", "bolder":
		return true
	}
	n, err := strconv.Atoi(w)
	return err == nil && n >= 600
}

// Face returns a face of the given pixel size for a CSS font-weight value.
// Callers own the returned face and should Close it.
func Face(weight string, size float64) (font.Face, error) {
	if err := load(); err != nil {
		return nil, err
	}
	f := regular
	if IsBold(weight) {
		f = bold
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
