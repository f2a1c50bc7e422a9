package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/turtacn/AyurChem-Intelligence/internal/application/analysis"
	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/AyurChem-Intelligence/pkg/errors"
)

// DefaultMaxBodySize caps the /api/analyze request body when no limit is configured.
const DefaultMaxBodySize int64 = 1 << 20

// AnalyzeRequest is the POST /api/analyze body.
type AnalyzeRequest struct {
	Text string `json:"text"`
}

type AnalysisHandler struct {
	svc         analysis.Service
	logger      logging.Logger
	maxBodySize int64
}

func NewAnalysisHandler(svc analysis.Service, logger logging.Logger, maxBodySize int64) *AnalysisHandler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if maxBodySize <= 0 {
		maxBodySize = DefaultMaxBodySize
	}
	return &AnalysisHandler{svc: svc, logger: logger, maxBodySize: maxBodySize}
}

// Analyze handles POST /api/analyze.  A missing body, malformed JSON or a
// blank text field all answer 400 "No text provided".
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	body := http.MaxBytesReader(w, r.Body, h.maxBodySize)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "request body too large"})
			return
		}
		if err != io.EOF {
			h.logger.Debug("malformed analyze body", logging.Err(err))
		}
		writeError(w, r, h.logger, errors.InvalidParam(analysis.NoTextMessage))
		return
	}

	resp, err := h.svc.Analyze(r.Context(), req.Text)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Demo handles GET /demo.
func (h *AnalysisHandler) Demo(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.Demo(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

//Personal.AI order the ending
