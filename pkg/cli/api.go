package cli

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mchmarny/gunghap/pkg/match"
)

const maxRequestBytes = 1 << 16

type matchRequest struct {
	A       string `json:"a"`
	B       string `json:"b"`
	Letters bool   `json:"letters,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		slog.Error("failed to write health response", "error", err)
	}
}

func matchQueryAPIHandler(opts []match.Option) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		req := &matchRequest{
			A:       q.Get("a"),
			B:       q.Get("b"),
			Letters: q.Get("letters") == "true",
		}
		writeMatch(w, req, opts)
	}
}

func matchBodyAPIHandler(opts []match.Option) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req matchRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
			slog.Debug("error decoding match request", "error", err)
			writeError(w, http.StatusBadRequest, "invalid JSON body, expected {\"a\": ..., \"b\": ...}")
			return
		}
		writeMatch(w, &req, opts)
	}
}

func writeMatch(w http.ResponseWriter, req *matchRequest, opts []match.Option) {
	if req.Letters {
		opts = append(append([]match.Option(nil), opts...), match.WithLetters())
	}

	res, err := match.Compute(req.A, req.B, opts...)
	if errors.Is(err, match.ErrInsufficientInput) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to compute score", "error", err)
		writeError(w, http.StatusInternalServerError, "error computing score")
		return
	}

	slog.Debug("score computed", "merged", res.Merged, "score", res.Score)
	writeJSON(w, http.StatusOK, res)
}

func strokesAPIHandler(normalize bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text := r.URL.Query().Get("text")
		if normalize {
			text = match.Normalize(text)
		}
		writeJSON(w, http.StatusOK, match.Letters(text))
	}
}
