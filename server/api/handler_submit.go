package api

import (
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MMansij/New-Int/pkg/pipeline"
)

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	file, err := h.readFile(r)

	if err != nil {
		if errors.Is(err, ErrNoFile) {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		writeError(w, http.StatusInternalServerError, err)
		return
	}

	result, err := h.pipeline.Run(r.Context(), *file)

	if err != nil {
		var stageErr *pipeline.StageError

		if errors.As(err, &stageErr) {
			slog.ErrorContext(r.Context(), "document pipeline failed", "stage", stageErr.Stage, "error", err)
		} else {
			slog.ErrorContext(r.Context(), "document pipeline failed", "error", err)
		}

		writeError(w, http.StatusInternalServerError, err)
		return
	}

	kv := result.Document.KeyValueData

	if kv == nil {
		kv = map[string]string{}
	}

	writeJson(w, SubmitResponse{
		DocumentType:  result.Document.DocumentType,
		KeyValueData:  kv,
		SpokenSummary: result.Document.SpokenSummary,

		AudioBase64: base64.StdEncoding.EncodeToString(result.Audio.Content),
	})
}
