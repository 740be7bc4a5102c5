package server

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ironsheep/element-lens/internal/capture"
	"github.com/ironsheep/element-lens/internal/pipeline"
)

//go:embed static/index.html
var indexHTML []byte

// AnalyzeResponse is the body of a successful lookup.
type AnalyzeResponse struct {
	Element string `json:"element"`
	Details string `json:"details"`
}

type errorResponse struct {
	Error string `json:"error"`
}

const (
	msgNoImage  = "No image provided"
	msgTooLarge = "Image too large"
	msgNoText   = "No element symbol detected in the image"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleAnalyze stores the uploaded image, runs the pipeline on it and maps
// the outcome onto the JSON contract described in the package doc.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)
	if r.ContentLength > s.opts.MaxUploadBytes {
		log.Warn("upload rejected", "size", r.ContentLength, "limit", s.opts.MaxUploadBytes)
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: msgTooLarge})
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxUploadBytes)

	file, header, err := r.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn("upload rejected", "limit", tooLarge.Limit)
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: msgTooLarge})
			return
		}
		log.Debug("no image in request", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgNoImage})
		return
	}
	defer file.Close()

	src := capture.Upload{Reader: file, Filename: header.Filename, Dir: s.opts.TempDir}
	path, cleanup, err := src.Acquire(r.Context())
	if err != nil {
		log.Error("store upload", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: fmt.Sprintf("Server error: %v", err)})
		return
	}
	defer cleanup()

	res, err := s.analyzer.Analyze(r.Context(), path)
	if err != nil {
		log.Warn("analysis failed", "error", err)
		writeJSON(w, http.StatusOK, errorResponse{Error: fmt.Sprintf("Error processing image: %v", err)})
		return
	}

	log.Info("analysis finished", "kind", res.Kind.String(), "symbol", res.Symbol)
	code, body := analyzeBody(res)
	writeJSON(w, code, body)
}

// analyzeBody maps a pipeline result to its HTTP status and JSON body.
func analyzeBody(res pipeline.Result) (int, any) {
	switch res.Kind {
	case pipeline.KindDone:
		return http.StatusOK, AnalyzeResponse{Element: res.Element(), Details: res.Details}
	case pipeline.KindNoText:
		return http.StatusOK, errorResponse{Error: msgNoText}
	case pipeline.KindNotFound:
		return http.StatusOK, errorResponse{
			Error: fmt.Sprintf("Element symbol '%s' not found in our database", res.Symbol),
		}
	case pipeline.KindQueryFailed:
		return http.StatusOK, errorResponse{Error: fmt.Sprintf("Error processing image: %v", res.Err)}
	default:
		return http.StatusInternalServerError, errorResponse{
			Error: fmt.Sprintf("Server error: unexpected result %s", res.Kind),
		}
	}
}
