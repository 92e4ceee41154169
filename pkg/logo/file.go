package logo

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"

	apperr "github.com/matzehuels/logomaker/pkg/errors"
	"github.com/matzehuels/logomaker/pkg/shape"
)

// File is a logo description read from TOML. Template, when set, is applied
// before the overlay.
//
//	template = "tech"
//	text = "Acme Robotics"
//	shapeSize = 180
type File struct {
	Template string
	Partial  Partial
}

type fileDoc struct {
	Template        string      `toml:"template"`
	Shape           *shape.Kind `toml:"shape"`
	Text            *string     `toml:"text"`
	ShapeColor      *string     `toml:"shapeColor"`
	TextColor       *string     `toml:"textColor"`
	BackgroundColor *string     `toml:"backgroundColor"`
	FontSize        *int        `toml:"fontSize"`
	FontFamily      *string     `toml:"fontFamily"`
	FontWeight      *string     `toml:"fontWeight"`
	ShapeSize       *int        `toml:"shapeSize"`
	TextY           *int        `toml:"textY"`
}

// LoadPartial reads a logo file from path.
func LoadPartial(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, apperr.Wrap(apperr.ErrCodeNotFound, err, "open logo file %s", path)
	}
	defer f.Close()
	return DecodePartial(f)
}

// DecodePartial parses a logo file. Unknown keys are rejected so that typos
// do not silently fall back to the current value.
func DecodePartial(r io.Reader) (File, error) {
	var doc fileDoc
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		if apperr.GetCode(err) != "" {
			return File{}, err
		}
		return File{}, apperr.Wrap(apperr.ErrCodeInvalidInput, err, "parse logo file")
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return File{}, apperr.New(apperr.ErrCodeInvalidInput, "unknown key %q in logo file", undec[0].String())
	}
	if doc.Template != "" {
		if _, err := LookupTemplate(doc.Template); err != nil {
			return File{}, err
		}
	}
	return File{
		Template: doc.Template,
		Partial: Partial{
			Shape:           doc.Shape,
			Text:            doc.Text,
			ShapeColor:      doc.ShapeColor,
			TextColor:       doc.TextColor,
			BackgroundColor: doc.BackgroundColor,
			FontSize:        doc.FontSize,
			FontFamily:      doc.FontFamily,
			FontWeight:      doc.FontWeight,
			ShapeSize:       doc.ShapeSize,
			TextY:           doc.TextY,
		},
	}, nil
}

// Apply applies the file to s: template first, then the overlay.
func (f File) Apply(s *Store) error {
	if f.Template != "" {
		if err := s.ApplyTemplate(f.Template); err != nil {
			return err
		}
	}
	return s.Set(f.Partial)
}
