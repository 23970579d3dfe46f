package memory_test

import (
	"context"
	"testing"

	"github.com/MMansij/New-Int/pkg/storage"
	"github.com/MMansij/New-Int/pkg/storage/memory"

	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	s := memory.New("docs")

	content := []byte("pdf-bytes")

	l, err := s.Store(context.Background(), storage.File{
		Name:    "doc.pdf",
		Content: content,
	})

	require.NoError(t, err)
	require.Equal(t, "mem", l.Scheme)
	require.Equal(t, "docs", l.Bucket)

	content[0] = 'x'

	f, ok := s.Get(l.Key)
	require.True(t, ok)

	require.Equal(t, "pdf-bytes", string(f.Content))
	require.Equal(t, "application/octet-stream", f.ContentType)

	_, err = storage.ParseLocator(l.String())
	require.NoError(t, err)
}

func TestStoreCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := memory.New("")

	_, err := s.Store(ctx, storage.File{Name: "a.png"})

	var serr *storage.Error
	require.ErrorAs(t, err, &serr)
	require.Equal(t, 0, s.Len())
}

func TestStoreEvictsOldest(t *testing.T) {
	s := memory.New("docs", memory.WithCapacity(2))

	var locators []*storage.Locator

	for _, name := range []string{"a.pdf", "b.pdf", "c.pdf"} {
		l, err := s.Store(context.Background(), storage.File{Name: name, Content: []byte(name)})
		require.NoError(t, err)

		locators = append(locators, l)
	}

	require.Equal(t, 2, s.Len())

	_, ok := s.Get(locators[0].Key)
	require.False(t, ok)

	f, ok := s.Get(locators[2].Key)
	require.True(t, ok)
	require.Equal(t, "c.pdf", string(f.Content))
}

func TestStoreWithoutRetention(t *testing.T) {
	s := memory.New("docs", memory.WithCapacity(0))

	l, err := s.Store(context.Background(), storage.File{Name: "a.pdf", Content: []byte("x")})
	require.NoError(t, err)
	require.Equal(t, "mem", l.Scheme)

	require.Zero(t, s.Len())
}
