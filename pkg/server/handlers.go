package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/logomaker/pkg/buildinfo"
	apperr "github.com/matzehuels/logomaker/pkg/errors"
	"github.com/matzehuels/logomaker/pkg/geometry"
	"github.com/matzehuels/logomaker/pkg/logo"
	"github.com/matzehuels/logomaker/pkg/pipeline"
	"github.com/matzehuels/logomaker/pkg/render"
	"github.com/matzehuels/logomaker/pkg/shape"
	"github.com/matzehuels/logomaker/pkg/suggest"
)

type healthResponse struct {
	Status string `json:"status"`
	buildinfo.Info
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Info: buildinfo.Current()})
}

type shapeInfo struct {
	Name  string `json:"name"`
	Index int    `json:"index"`
}

func (s *Server) handleShapes(w http.ResponseWriter, r *http.Request) {
	kinds := shape.Kinds()
	out := make([]shapeInfo, len(kinds))
	for i, k := range kinds {
		out[i] = shapeInfo{Name: k.String(), Index: k.Index()}
	}
	writeJSON(w, http.StatusOK, out)
}

type geometryResponse struct {
	Shape     string            `json:"shape"`
	ShapeSize int               `json:"shapeSize"`
	Geometry  geometry.Geometry `json:"geometry"`
}

// handleGeometry returns the outline of a shape for the ?size= shape size.
func (s *Server) handleGeometry(w http.ResponseWriter, r *http.Request) {
	kind, err := shape.Parse(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, err)
		return
	}

	size := logo.DefaultShapeSize
	if v := r.URL.Query().Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, apperr.New(apperr.ErrCodeInvalidInput, "size must be a positive integer, got %q", v))
			return
		}
		size = n
	}

	g, err := geometry.Compute(kind, geometry.ForShapeSize(size))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, geometryResponse{Shape: kind.String(), ShapeSize: size, Geometry: g})
}

type templateInfo struct {
	Name string `json:"name"`
	logo.Template
}

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	all := logo.Templates()
	names := logo.TemplateNames()
	out := make([]templateInfo, 0, len(names))
	for _, name := range names {
		out = append(out, templateInfo{Name: name, Template: all[name]})
	}
	writeJSON(w, http.StatusOK, out)
}

// renderRequest builds the record rendered by POST /api/render/{format}.
type renderRequest struct {
	Template string          `json:"template,omitempty"`
	Config   logo.Partial    `json:"config"`
	Form     *logo.FormInput `json:"form,omitempty"`
	Pixels   int             `json:"pixels,omitempty"`
	NoShadow bool            `json:"noShadow,omitempty"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	f, err := render.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		writeError(w, err)
		return
	}

	var req renderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	result, err := s.cfg.Runner.Execute(r.Context(), pipeline.Options{
		Template: req.Template,
		Config:   req.Config,
		Form:     req.Form,
		Formats:  []render.Format{f},
		Pixels:   req.Pixels,
		NoShadow: req.NoShadow,
		Logger:   s.cfg.Logger,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	name := result.Filename(f)
	if err := apperr.ValidatePath(name); err != nil {
		writeError(w, err)
		return
	}

	data := result.Artifacts[f]
	w.Header().Set("Content-Type", f.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("X-Config-Hash", result.ConfigHash)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// suggestionRequest describes the record to improve the same way a render
// request does.
type suggestionRequest struct {
	APIKey      string          `json:"apiKey,omitempty"`
	Description string          `json:"description"`
	Template    string          `json:"template,omitempty"`
	Config      logo.Partial    `json:"config"`
	Form        *logo.FormInput `json:"form,omitempty"`
	Refresh     bool            `json:"refresh,omitempty"`
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	var req suggestionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	store, err := pipeline.Build(pipeline.Options{Template: req.Template, Config: req.Config, Form: req.Form})
	if err != nil {
		writeError(w, err)
		return
	}

	key := req.APIKey
	if key == "" {
		key = s.cfg.APIKey
	}

	batch, err := s.cfg.Suggest.Suggest(r.Context(), suggest.Request{
		APIKey:      key,
		Description: req.Description,
		Config:      store.Config(),
		Refresh:     req.Refresh,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, batch)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.New(apperr.ErrCodeInvalidInput, "request body is empty")
		}
		if apperr.GetCode(err) != "" {
			return err
		}
		return apperr.Wrap(apperr.ErrCodeInvalidInput, err, "invalid request body")
	}
	return nil
}
