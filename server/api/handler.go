package api

import (
	"encoding/json"
	"net/http"

	"github.com/MMansij/New-Int/pkg/pipeline"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	pipeline *pipeline.Pipeline
}

func New(p *pipeline.Pipeline) (*Handler, error) {
	h := &Handler{
		pipeline: p,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Post("/submit", h.handleSubmit)
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	text := http.StatusText(code)

	if err != nil && err.Error() != "" {
		text = err.Error()
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(ErrorResponse{
		Error: text,
	})
}
