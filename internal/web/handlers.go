package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/pkorolev/leadflow/internal/client"
	"github.com/pkorolev/leadflow/internal/export"
	"github.com/pkorolev/leadflow/internal/model"
	"github.com/pkorolev/leadflow/internal/validate"
)

// maxRequestBytes caps the JSON bodies the API accepts.
const maxRequestBytes = 1 << 20

// leadRequest is the landing form payload.
type leadRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Website string `json:"website,omitempty"`
}

// leadResponse carries the generated report back to the page. HTML is
// sanitized server side so the page can inject it directly.
type leadResponse struct {
	FullReport string             `json:"full_report"`
	HTML       string             `json:"html"`
	Source     model.ReportSource `json:"source"`
}

type errorResponse struct {
	Error  string            `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

type exportRequest struct {
	FullReport string `json:"full_report"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "landing.html", nil); err != nil {
		// Headers are already out; nothing to do but log.
		fmt.Printf("render landing page: %v\n", err)
	}
}

func (s *Server) handleLead(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	if !s.limiter.Allow(clientIP(r)) {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "too many requests, slow down"})
		return
	}

	var req leadRequest
	body := io.LimitReader(r.Body, maxRequestBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	sub := model.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Website: req.Website,
	}

	if errs := validate.Submission(sub); errs != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  "invalid lead details",
			Fields: errs,
		})
		return
	}

	report, err := s.pipeline.Generate(r.Context(), sub)
	if err != nil {
		status := http.StatusInternalServerError
		msg := "report generation failed"
		switch {
		case client.IsTransport(err):
			status = http.StatusBadGateway
			msg = "report service unavailable, please try again"
		case client.IsMalformed(err):
			status = http.StatusBadGateway
			msg = "report service returned an unusable response"
		}
		writeJSON(w, status, errorResponse{Error: msg})
		return
	}

	writeJSON(w, http.StatusOK, leadResponse{
		FullReport: report.FullReport,
		HTML:       string(s.pipeline.Renderer().HTML(report)),
		Source:     report.Source,
	})
}

func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var req exportRequest
	body := io.LimitReader(r.Body, maxRequestBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if strings.TrimSpace(req.FullReport) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "full_report is required"})
		return
	}

	// Render to a buffer first so a mid-document failure can still
	// produce a clean error response.
	var buf bytes.Buffer
	report := &model.Report{FullReport: req.FullReport}
	if err := export.RenderPDF(report, &buf); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "PDF rendering failed"})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", s.cfg.Output.PDFName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// clientIP extracts the caller address for rate limiting, preferring
// the first X-Forwarded-For hop when present.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
