package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var controlChars = regexp.MustCompile(`[\x00-\x1f]+`)

// Clean removes ASCII control characters, cuts the text down to its outermost
// JSON object and drops trailing commas before closing brackets.
func Clean(text string) string {
	return dropTrailingCommas(trim(text))
}

func trim(text string) string {
	text = controlChars.ReplaceAllString(text, "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start >= 0 && end > start {
		text = text[start : end+1]
	}

	return text
}

// dropTrailingCommas removes commas followed only by whitespace and a closing
// bracket. String literals are copied unchanged.
func dropTrailingCommas(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		ch := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}

			b.WriteByte(ch)
			continue
		}

		switch ch {
		case '"':
			inString = true

		case ',':
			j := i + 1

			for j < len(text) && (text[j] == ' ' || text[j] == '\t' || text[j] == '\n' || text[j] == '\r') {
				j++
			}

			if j < len(text) && (text[j] == '}' || text[j] == ']') {
				continue
			}
		}

		b.WriteByte(ch)
	}

	return b.String()
}

type payload struct {
	DocumentType  *string                    `json:"document_type"`
	KeyValueData  map[string]json.RawMessage `json:"key_value_data"`
	SpokenSummary *string                    `json:"spoken_summary"`
	Summary       *string                    `json:"summary"`
}

// Decode parses model output. Trailing commas are only repaired when the
// output is not valid JSON as is. Any failure yields the fallback result.
func Decode(text string) *Result {
	text = trim(text)

	doc, err := decode(text)

	if err != nil {
		doc, err = decode(dropTrailingCommas(text))
	}

	if err != nil {
		return Fallback()
	}

	return Parsed(doc)
}

func decode(text string) (Document, error) {
	var p payload

	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return Document{}, err
	}

	if p.DocumentType == nil && p.KeyValueData == nil && p.SpokenSummary == nil && p.Summary == nil {
		return Document{}, errors.New("no document fields")
	}

	doc := DefaultDocument()

	if p.DocumentType != nil && *p.DocumentType != "" {
		doc.DocumentType = *p.DocumentType
	}

	for k, v := range p.KeyValueData {
		doc.KeyValueData[k] = renderValue(v)
	}

	if p.SpokenSummary != nil && *p.SpokenSummary != "" {
		doc.SpokenSummary = *p.SpokenSummary
	} else if p.Summary != nil && *p.Summary != "" {
		doc.SpokenSummary = *p.Summary
	}

	return doc, nil
}

func renderValue(v json.RawMessage) string {
	var s string

	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}

	var compact bytes.Buffer

	if err := json.Compact(&compact, v); err != nil {
		return string(v)
	}

	return compact.String()
}
