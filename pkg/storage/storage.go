package storage

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MMansij/New-Int/pkg/provider"

	"github.com/google/uuid"
)

type Provider interface {
	Store(ctx context.Context, file File) (*Locator, error)
}

type File = provider.File

var (
	ErrInvalidLocator = errors.New("invalid storage locator")
)

// Error is returned when a document could not be persisted.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return "storage: " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

type Locator struct {
	Scheme string
	Bucket string
	Key    string
}

func (l Locator) String() string {
	return l.Scheme + "://" + l.Bucket + "/" + l.Key
}

var locatorPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9+.-]*)://([^/]+)/(.+)$`)

// ParseLocator accepts only the scheme://bucket/key form.
func ParseLocator(s string) (*Locator, error) {
	m := locatorPattern.FindStringSubmatch(s)

	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocator, s)
	}

	return &Locator{
		Scheme: m[1],
		Bucket: m[2],
		Key:    m[3],
	}, nil
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]`)

func SanitizeName(name string) string {
	if name == "" {
		return "upload.bin"
	}

	return unsafeName.ReplaceAllString(name, "_")
}

// ObjectKey returns a collision free key that keeps the original extension.
func ObjectKey(prefix, name string) string {
	key := strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + uuid.NewString() + "-" + SanitizeName(name)

	prefix = strings.Trim(prefix, "/")

	if prefix == "" {
		return key
	}

	return prefix + "/" + key
}

func ContentType(file File) string {
	if file.ContentType != "" {
		return file.ContentType
	}

	return "application/octet-stream"
}
