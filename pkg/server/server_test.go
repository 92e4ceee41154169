package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/matzehuels/logomaker/pkg/suggest"
)

type fakeProvider struct {
	answer string
	calls  int
	prompt suggest.Prompt
}

func (p *fakeProvider) Name() string  { return "fake" }
func (p *fakeProvider) Model() string { return "fake-1" }
func (p *fakeProvider) Complete(_ context.Context, prompt suggest.Prompt) (string, error) {
	p.calls++
	p.prompt = prompt
	return p.answer, nil
}

const fakeAnswer = `[{"title":"Bold","reasoning":"stands out","shape":"square","shapeColor":"#111111","textColor":"#ffffff","backgroundColor":"#eeeeee","fontSize":44,"fontFamily":"Arial","fontWeight":"bold"}]`

func newTestServer(t *testing.T, cfg Config) (*Server, *fakeProvider, *[]string) {
	t.Helper()
	p := &fakeProvider{answer: fakeAnswer}
	var keys []string
	factory := func(apiKey string) (suggest.Provider, error) {
		keys = append(keys, apiKey)
		return p, nil
	}
	logger := log.New(io.Discard)
	cfg.Logger = logger
	cfg.Suggest = suggest.NewService(factory, suggest.WithLogger(logger))
	return New(cfg), p, &keys
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	s, _, _ := newTestServer(t, Config{})
	rec := do(t, s, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestShapes(t *testing.T) {
	s, _, _ := newTestServer(t, Config{})
	rec := do(t, s, http.MethodGet, "/api/shapes", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var shapes []shapeInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &shapes))
	require.Len(t, shapes, 6)
	assert.Equal(t, shapeInfo{Name: "circle", Index: 0}, shapes[0])
}

func TestGeometry(t *testing.T) {
	s, _, _ := newTestServer(t, Config{})

	rec := do(t, s, http.MethodGet, "/api/shapes/diamond?size=60", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Shape     string `json:"shape"`
		ShapeSize int    `json:"shapeSize"`
		Geometry  struct {
			Type   string `json:"type"`
			Points []struct{ X, Y float64 }
		} `json:"geometry"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "diamond", body.Shape)
	assert.Equal(t, 60, body.ShapeSize)
	assert.Equal(t, "polygon", body.Geometry.Type)
	assert.Len(t, body.Geometry.Points, 4)

	rec = do(t, s, http.MethodGet, "/api/shapes/hexagon", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_SHAPE", string(decodeError(t, rec).Code))

	rec = do(t, s, http.MethodGet, "/api/shapes/circle?size=big", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTemplates(t *testing.T) {
	s, _, _ := newTestServer(t, Config{})
	rec := do(t, s, http.MethodGet, "/api/templates", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list []struct {
		Name       string `json:"name"`
		Shape      string `json:"shape"`
		ShapeColor string `json:"shapeColor"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 4)
	assert.Equal(t, "modern", list[0].Name)
	assert.Equal(t, "circle", list[0].Shape)
	assert.Equal(t, "#667eea", list[0].ShapeColor)
}

func TestRenderSVG(t *testing.T) {
	s, _, _ := newTestServer(t, Config{})
	rec := do(t, s, http.MethodPost, "/api/render/svg",
		`{"template":"minimal","form":{"text":"Acme Robotics","fontSize":"30"}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="acme-robotics-logo.svg"`, rec.Header().Get("Content-Disposition"))
	assert.NotEmpty(t, rec.Header().Get("X-Config-Hash"))
	body := rec.Body.String()
	assert.Contains(t, body, "<rect id=\"logoShape\"")
	assert.Contains(t, body, `font-size="30"`)
	assert.Contains(t, body, "Acme Robotics")
}

func TestRenderFilenameIsSafe(t *testing.T) {
	s, _, _ := newTestServer(t, Config{})
	rec := do(t, s, http.MethodPost, "/api/render/svg", `{"config":{"text":"../../etc/passwd"}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, `attachment; filename=".-.-etc-passwd-logo.svg"`, rec.Header().Get("Content-Disposition"))
}

func TestRenderCSS(t *testing.T) {
	s, _, _ := newTestServer(t, Config{})
	rec := do(t, s, http.MethodPost, "/api/render/css", `{"config":{"shapeColor":"#abcdef"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fill: #abcdef;")
}

func TestRenderErrors(t *testing.T) {
	s, _, _ := newTestServer(t, Config{})

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		code   string
	}{
		{"unknown format", "/api/render/gif", `{}`, http.StatusBadRequest, "INVALID_FORMAT"},
		{"unknown template", "/api/render/svg", `{"template":"retro"}`, http.StatusNotFound, "TEMPLATE_NOT_FOUND"},
		{"bad form integer", "/api/render/svg", `{"form":{"fontSize":"huge"}}`, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"empty body", "/api/render/svg", ``, http.StatusBadRequest, "INVALID_INPUT"},
		{"unknown field", "/api/render/svg", `{"colour":"red"}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"too many pixels", "/api/render/png", `{"pixels":100000}`, http.StatusBadRequest, "INVALID_INPUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, string(decodeError(t, rec).Code))
		})
	}
}

func TestNotFoundRoute(t *testing.T) {
	s, _, _ := newTestServer(t, Config{})
	rec := do(t, s, http.MethodGet, "/api/nothing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", string(decodeError(t, rec).Code))
}

func TestSuggestions(t *testing.T) {
	s, p, keys := newTestServer(t, Config{APIKey: "server-key"})

	rec := do(t, s, http.MethodPost, "/api/suggestions",
		`{"description":"a bakery","template":"creative","config":{"text":"Crumbs"}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var batch suggest.Batch
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &batch))
	require.Len(t, batch.Suggestions, 1)
	assert.Equal(t, "Bold", batch.Suggestions[0].Title)
	assert.NotEmpty(t, batch.ID)

	assert.Equal(t, []string{"server-key"}, *keys)
	assert.Equal(t, 1, p.calls)
	assert.Contains(t, p.prompt.User, "Business: a bakery")
	assert.Contains(t, p.prompt.User, `"text": "Crumbs"`)

	rec = do(t, s, http.MethodPost, "/api/suggestions", `{"apiKey":"user-key","description":"a bakery","refresh":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"server-key", "user-key"}, *keys)
}

func TestSuggestionsValidation(t *testing.T) {
	s, p, _ := newTestServer(t, Config{})

	rec := do(t, s, http.MethodPost, "/api/suggestions", `{"description":"a bakery"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", string(decodeError(t, rec).Code))

	rec = do(t, s, http.MethodPost, "/api/suggestions", `{"apiKey":"k","description":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, p.calls)
}

func TestSuggestionsRateLimit(t *testing.T) {
	s, _, _ := newTestServer(t, Config{APIKey: "k", RateLimit: 1, Burst: 1})

	rec := do(t, s, http.MethodPost, "/api/suggestions", `{"description":"a bakery"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/suggestions", `{"description":"a bakery"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "RATE_LIMITED", string(decodeError(t, rec).Code))

	rec = do(t, s, http.MethodPost, "/api/render/css", `{}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSuggestionsRateLimitPerClient(t *testing.T) {
	s, _, _ := newTestServer(t, Config{APIKey: "k", RateLimit: 1, Burst: 1})

	from := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/suggestions", strings.NewReader(`{"description":"a bakery"}`))
		req.Header.Set("X-Real-IP", ip)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusOK, from("203.0.113.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, from("203.0.113.1").Code)
	assert.Equal(t, http.StatusOK, from("203.0.113.2").Code, "another client keeps its own budget")
}

func TestClientLimiterSweep(t *testing.T) {
	l := newClientLimiter(rate.Every(time.Minute), 1)
	start := time.Now()
	for i := 0; i < limiterSweep; i++ {
		l.allow(fmt.Sprintf("10.0.%d.%d", i/256, i%256), start)
	}
	require.Len(t, l.clients, limiterSweep)

	later := start.Add(limiterIdle + time.Second)
	assert.True(t, l.allow("192.0.2.7", later))
	assert.Len(t, l.clients, 1, "idle clients are dropped")
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusConflict, statusFor("SUGGESTION_CONSUMED"))
	assert.Equal(t, http.StatusBadGateway, statusFor("NETWORK_ERROR"))
	assert.Equal(t, http.StatusGatewayTimeout, statusFor("TIMEOUT"))
	assert.Equal(t, http.StatusInternalServerError, statusFor("INTERNAL_ERROR"))
}
