package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/arvidh/chartstudio/internal/amplify"
	"github.com/arvidh/chartstudio/internal/preview"
	"github.com/arvidh/chartstudio/pkg/models"
)

// exportFilename is the suggested name for downloaded images.
const exportFilename = "chart_high_res.png"

// decodeChartRequest parses, defaults and validates a chart request body.
func decodeChartRequest(r *http.Request) (*models.ChartRequest, error) {
	var req models.ChartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: malformed request body: %v", models.ErrInvalidInput, err)
	}
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

// respondChartError maps pipeline errors onto HTTP statuses: anything a
// user can fix is a 400 with a visible message, the rest is a 500.
func (s *Server) respondChartError(w http.ResponseWriter, err error) {
	if errors.Is(err, models.ErrInvalidInput) {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.respondError(w, http.StatusInternalServerError, err.Error())
}

// handleRenderChart renders the request as a PNG: 300 DPI, transparent
// background. With ?download=1 the response carries an attachment
// disposition for the browser's save dialog.
// POST /api/v1/charts/render
func (s *Server) handleRenderChart(w http.ResponseWriter, r *http.Request) {
	req, err := decodeChartRequest(r)
	if err != nil {
		s.respondChartError(w, err)
		return
	}

	amplified, err := amplify.Amplify(req.Values(), req.Factor)
	if err != nil {
		s.respondChartError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := s.renderer.Render(req, amplified, &buf); err != nil {
		s.respondChartError(w, err)
		return
	}

	if r.URL.Query().Get("download") == "1" {
		w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

// handlePreviewChart renders the request as an interactive HTML page for
// the UI's preview frame.
// POST /api/v1/charts/preview
func (s *Server) handlePreviewChart(w http.ResponseWriter, r *http.Request) {
	req, err := decodeChartRequest(r)
	if err != nil {
		s.respondChartError(w, err)
		return
	}

	amplified, err := amplify.Amplify(req.Values(), req.Factor)
	if err != nil {
		s.respondChartError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := preview.Chart(req, amplified, &buf); err != nil {
		s.respondChartError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

// handleDefaults returns the starter dataset and styling the UI seeds
// itself with.
// GET /api/v1/defaults
func (s *Server) handleDefaults(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.defaults)
}
