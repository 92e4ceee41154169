package logo

import (
	"strconv"
	"strings"

	apperr "github.com/matzehuels/logomaker/pkg/errors"
	"github.com/matzehuels/logomaker/pkg/shape"
)

// FormInput is the raw content of an editor form. Every field is the text a
// user typed; empty fields other than Text are treated as absent.
type FormInput struct {
	Text            string `json:"text"`
	Shape           string `json:"shape,omitempty"`
	ShapeColor      string `json:"shapeColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	FontSize        string `json:"fontSize,omitempty"`
	FontFamily      string `json:"fontFamily,omitempty"`
	FontWeight      string `json:"fontWeight,omitempty"`
	ShapeSize       string `json:"shapeSize,omitempty"`
	TextY           string `json:"textY,omitempty"`
}

// Partial converts the form into an overlay. The company name always takes
// part: an empty or whitespace-only name becomes DefaultText.
func (f FormInput) Partial() (Partial, error) {
	p := Partial{Text: Ptr(FallbackText(f.Text))}

	if v := strings.TrimSpace(f.Shape); v != "" {
		k, err := shape.Parse(v)
		if err != nil {
			return Partial{}, err
		}
		p.Shape = &k
	}

	p.ShapeColor = optString(f.ShapeColor)
	p.TextColor = optString(f.TextColor)
	p.BackgroundColor = optString(f.BackgroundColor)
	p.FontFamily = optString(f.FontFamily)
	p.FontWeight = optString(f.FontWeight)

	var err error
	if p.FontSize, err = optInt("fontSize", f.FontSize); err != nil {
		return Partial{}, err
	}
	if p.ShapeSize, err = optInt("shapeSize", f.ShapeSize); err != nil {
		return Partial{}, err
	}
	if p.TextY, err = optInt("textY", f.TextY); err != nil {
		return Partial{}, err
	}
	return p, nil
}

// Sync folds form input into the record. Nothing is changed when any field
// fails to parse.
func (s *Store) Sync(form FormInput) error {
	p, err := form.Partial()
	if err != nil {
		return err
	}
	return s.Set(p)
}

// FallbackText returns text, or DefaultText when text is blank.
func FallbackText(text string) string {
	if strings.TrimSpace(text) == "" {
		return DefaultText
	}
	return text
}

func optString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func optInt(field, v string) (*int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, apperr.New(apperr.ErrCodeValidationFailed, "%s must be an integer, got %q", field, v)
	}
	return &n, nil
}
