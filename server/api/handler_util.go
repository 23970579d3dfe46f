package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/MMansij/New-Int/pkg/provider"
)

var ErrNoFile = errors.New("No file uploaded")

// maxUploadSize bounds the multipart body kept in memory before parts spill
// to temporary files.
const maxUploadSize = 32 << 20

func (h *Handler) readFile(r *http.Request) (*provider.File, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, ErrNoFile
	}

	file, header, err := r.FormFile("file")

	if err != nil {
		return nil, ErrNoFile
	}

	defer file.Close()

	data, err := io.ReadAll(file)

	if err != nil {
		return nil, err
	}

	return &provider.File{
		Name: header.Filename,

		Content:     data,
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}
