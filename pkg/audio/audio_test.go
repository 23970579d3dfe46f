package audio_test

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"testing"
	"testing/iotest"

	"github.com/MMansij/New-Int/pkg/audio"

	"github.com/stretchr/testify/require"
)

func TestConcat(t *testing.T) {
	cases := []struct {
		name   string
		chunks [][]byte
	}{
		{
			name: "no chunks",
		},
		{
			name:   "single chunk",
			chunks: [][]byte{[]byte("zz")},
		},
		{
			name:   "many chunks",
			chunks: [][]byte{[]byte("ab"), []byte("cd"), []byte("e")},
		},
	}

	for _, tc := range cases {
		expected := bytes.Join(tc.chunks, nil)

		shapes := map[string]func() any{
			"buffer": func() any {
				return bytes.Join(tc.chunks, nil)
			},

			"slice": func() any {
				return tc.chunks
			},

			"sequence": func() any {
				return slices.Values(tc.chunks)
			},

			"channel": func() any {
				ch := make(chan []byte)

				go func() {
					defer close(ch)

					for _, c := range tc.chunks {
						ch <- c
					}
				}()

				return ch
			},

			"reader": func() any {
				return iotest.OneByteReader(bytes.NewReader(bytes.Join(tc.chunks, nil)))
			},
		}

		for shape, stream := range shapes {
			t.Run(tc.name+"/"+shape, func(t *testing.T) {
				p, err := audio.From(stream())
				require.NoError(t, err)

				data, err := audio.Concat(p)
				require.NoError(t, err)

				require.Equal(t, len(expected), len(data))
				require.True(t, bytes.Equal(expected, data))
			})
		}
	}
}

func TestConcatReaderError(t *testing.T) {
	broken := io.MultiReader(bytes.NewReader([]byte("ab")), iotest.ErrReader(errors.New("connection reset")))

	_, err := audio.Concat(audio.Stream(broken))
	require.EqualError(t, err, "connection reset")
}

func TestFromUnsupported(t *testing.T) {
	_, err := audio.From(42)
	require.ErrorIs(t, err, audio.ErrUnsupported)
}
