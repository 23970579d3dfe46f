package api

type SubmitResponse struct {
	DocumentType  string            `json:"document_type"`
	KeyValueData  map[string]string `json:"key_value_data"`
	SpokenSummary string            `json:"spoken_summary"`

	AudioBase64 string `json:"audio_base64"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
