package server

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"party-lab/errors"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps err onto its HTTP status. Internal failures are logged and hidden.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.log.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, errorResponse{Error: errors.PublicMessage(err)})
}

// decodeJSON reads a bounded JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body, err := readBody(w, r)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: malformed JSON body", errors.ErrInvalidInput)
	}
	return nil
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBody))
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", errors.ErrInvalidInput, tooLarge.Limit)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable body", errors.ErrInvalidInput)
	}
	return body, nil
}
