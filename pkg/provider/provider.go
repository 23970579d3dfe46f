package provider

// File is an uploaded document as received from the client.
type File struct {
	Name string

	Content     []byte
	ContentType string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
}

func (u *Usage) Total() int {
	if u == nil {
		return 0
	}

	return u.InputTokens + u.OutputTokens
}
