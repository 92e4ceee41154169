package suggest

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	apperr "github.com/matzehuels/logomaker/pkg/errors"
)

// wireSuggestion tolerates the loose typing models tend to produce.
type wireSuggestion struct {
	Title           string     `json:"title"`
	Reasoning       string     `json:"reasoning"`
	Shape           string     `json:"shape"`
	ShapeColor      string     `json:"shapeColor"`
	TextColor       string     `json:"textColor"`
	BackgroundColor string     `json:"backgroundColor"`
	FontSize        flexInt    `json:"fontSize"`
	FontFamily      string     `json:"fontFamily"`
	FontWeight      flexString `json:"fontWeight"`
}

// Parse extracts suggestions from a model answer. Surrounding prose and
// Markdown code fences are ignored; the first JSON array of suggestion
// objects is decoded.
func Parse(raw string) ([]Suggestion, error) {
	if strings.IndexByte(raw, '[') < 0 {
		return nil, apperr.New(apperr.ErrCodeInvalidFormat, "AI response contains no suggestion list")
	}

	var (
		wire    []wireSuggestion
		lastErr error
		empty   bool
	)
	for i := 0; i < len(raw); i++ {
		if raw[i] != '[' {
			continue
		}
		var candidate []wireSuggestion
		if err := json.NewDecoder(strings.NewReader(raw[i:])).Decode(&candidate); err != nil {
			lastErr = err
			continue
		}
		if len(candidate) == 0 {
			empty = true
			continue
		}
		wire = candidate
		break
	}
	if wire == nil {
		if empty {
			return nil, apperr.New(apperr.ErrCodeInvalidFormat, "AI response contains no suggestions")
		}
		return nil, apperr.Wrap(apperr.ErrCodeInvalidFormat, lastErr, "AI response is not a valid suggestion list")
	}

	out := make([]Suggestion, len(wire))
	for i, w := range wire {
		out[i] = Suggestion{
			Title:           strings.TrimSpace(w.Title),
			Reasoning:       strings.TrimSpace(w.Reasoning),
			Shape:           strings.ToLower(strings.TrimSpace(w.Shape)),
			ShapeColor:      strings.TrimSpace(w.ShapeColor),
			TextColor:       strings.TrimSpace(w.TextColor),
			BackgroundColor: strings.TrimSpace(w.BackgroundColor),
			FontSize:        int(w.FontSize),
			FontFamily:      strings.TrimSpace(w.FontFamily),
			FontWeight:      strings.TrimSpace(string(w.FontWeight)),
		}
	}
	return out, nil
}

// flexInt accepts 40, 40.0, "40" and "40px". Anything else, including
// values outside [0, MaxInt32], decodes as 0.
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSuffix(strings.Trim(string(bytes.TrimSpace(data)), `"`), "px")
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && f >= 0 && f <= math.MaxInt32 {
		*n = flexInt(f)
	}
	return nil
}

// flexString accepts strings and bare numbers ("bold", 700).
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = flexString(str)
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	*s = flexString(bytes.TrimSpace(data))
	return nil
}
