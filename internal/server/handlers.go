package server

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/matzehuels/vennsets/pkg/buildinfo"
	"github.com/matzehuels/vennsets/pkg/errors"
	"github.com/matzehuels/vennsets/pkg/history"
	"github.com/matzehuels/vennsets/pkg/pipeline"
	"github.com/matzehuels/vennsets/pkg/render/venn"
	"github.com/matzehuels/vennsets/pkg/sets"
)

// OperationResponse is the body of a successful render.
type OperationResponse struct {
	Result      sets.Result `json:"result"`
	Cardinality int         `json:"cardinality"`
	Image       string      `json:"image"` // data:image/png;base64,...
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	Cached      bool        `json:"cached"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code"`
}

// HistoryResponse is the body of GET /api/v1/history.
type HistoryResponse struct {
	Records []history.Record `json:"records"`
}

type operationInfo struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (s *Server) handleOperation(w http.ResponseWriter, r *http.Request) {
	opts, err := pipeline.DecodeRequest(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			s.writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{
				Error: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
				Code:  errors.ErrCodeInvalidInput,
			})
			return
		}
		s.writeError(w, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, OperationResponse{
		Result:      res.Result,
		Cardinality: res.Cardinality,
		Image:       res.Image.DataURI(),
		Width:       res.Image.Width,
		Height:      res.Image.Height,
		Cached:      res.CacheInfo.Hit,
	})
}

func (s *Server) handleOperations(w http.ResponseWriter, r *http.Request) {
	ops := sets.Operations()
	out := make([]operationInfo, 0, len(ops))
	for _, op := range ops {
		p, err := venn.ProfileFor(op)
		if err != nil {
			s.writeError(w, err)
			return
		}
		out = append(out, operationInfo{Name: op.String(), Title: p.Title, Description: p.Description})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	recs, err := s.runner.Recent(r.Context(), limit)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "read history"))
		return
	}
	if recs == nil {
		recs = []history.Record{}
	}
	s.writeJSON(w, http.StatusOK, HistoryResponse{Records: recs})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	info := buildinfo.Get()
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": info.Version,
		"commit":  info.Commit,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("write response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "code", code, "err", err)
	}
	s.writeJSON(w, status, ErrorResponse{Error: errors.UserMessage(err), Code: code})
}
