package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/MMansij/New-Int/server/api"
)

type SubmissionService struct {
	Options []RequestOption
}

func NewSubmissionService(opts ...RequestOption) SubmissionService {
	return SubmissionService{
		Options: opts,
	}
}

type SubmissionRequest struct {
	Name   string
	Reader io.Reader
}

type Submission struct {
	DocumentType  string
	KeyValueData  map[string]string
	SpokenSummary string

	Audio []byte
}

func (r *SubmissionService) New(ctx context.Context, input SubmissionRequest, opts ...RequestOption) (*Submission, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	var data bytes.Buffer
	w := multipart.NewWriter(&data)

	file, err := w.CreateFormFile("file", input.Name)

	if err != nil {
		return nil, err
	}

	if _, err := io.Copy(file, input.Reader); err != nil {
		return nil, err
	}

	w.Close()

	req, _ := http.NewRequestWithContext(ctx, "POST", c.URL+"/api/submit", &data)
	req.Header.Set("Content-Type", w.FormDataContentType())

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var result api.ErrorResponse

		if err := json.NewDecoder(resp.Body).Decode(&result); err == nil && result.Error != "" {
			return nil, errors.New(result.Error)
		}

		return nil, errors.New(resp.Status)
	}

	var result api.SubmitResponse

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	audio, err := base64.StdEncoding.DecodeString(result.AudioBase64)

	if err != nil {
		return nil, err
	}

	return &Submission{
		DocumentType:  result.DocumentType,
		KeyValueData:  result.KeyValueData,
		SpokenSummary: result.SpokenSummary,

		Audio: audio,
	}, nil
}
