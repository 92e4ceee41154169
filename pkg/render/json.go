package render

import (
	"encoding/json"

	"github.com/matzehuels/logomaker/pkg/geometry"
	"github.com/matzehuels/logomaker/pkg/logo"
)

// Document is the JSON export: the configuration together with the computed
// shape geometry in canvas coordinates relative to Origin.
type Document struct {
	Config   logo.Config       `json:"config"`
	Canvas   int               `json:"canvas"`
	Origin   geometry.Point    `json:"origin"`
	Geometry geometry.Geometry `json:"geometry"`
	CSS      string            `json:"css"`
}

// NewDocument builds the JSON export document for cfg.
func NewDocument(cfg logo.Config) (Document, error) {
	g, err := geometry.Compute(cfg.Shape, geometry.ForShapeSize(cfg.ShapeSize))
	if err != nil {
		return Document{}, err
	}
	return Document{
		Config:   cfg,
		Canvas:   CanvasSize,
		Origin:   geometry.Point{X: CenterX, Y: CenterY},
		Geometry: g,
		CSS:      CSS(cfg),
	}, nil
}

// RenderJSON renders the export document as indented JSON.
func RenderJSON(cfg logo.Config) ([]byte, error) {
	doc, err := NewDocument(cfg)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}
