package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MMansij/New-Int/pkg/client"

	"github.com/stretchr/testify/require"
)

func TestSubmission(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/submit", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		require.Equal(t, "doc.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"document_type":"Invoice","key_value_data":{"Amount":"1"},"spoken_summary":"One.","audio_base64":"ZHVtbXk6T25lLg=="}`))
	}))

	defer server.Close()

	c := client.New(server.URL + "/")

	result, err := c.Submissions.New(context.Background(), client.SubmissionRequest{
		Name:   "doc.jpg",
		Reader: strings.NewReader("jpeg"),
	})

	require.NoError(t, err)

	require.Equal(t, "Invoice", result.DocumentType)
	require.Equal(t, map[string]string{"Amount": "1"}, result.KeyValueData)
	require.Equal(t, "One.", result.SpokenSummary)
	require.Equal(t, []byte("dummy:One."), result.Audio)
}

func TestSubmissionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"textract timeout"}`))
	}))

	defer server.Close()

	_, err := client.New(server.URL).Submissions.New(context.Background(), client.SubmissionRequest{
		Name:   "doc.jpg",
		Reader: strings.NewReader("jpeg"),
	})

	require.EqualError(t, err, "textract timeout")
}
