package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
)

// Producer yields the chunks of an audio stream in order.
type Producer = iter.Seq2[[]byte, error]

var ErrUnsupported = errors.New("unsupported audio stream")

// From selects the adapter for a backend audio stream. Supported shapes are a
// single buffer, a synchronous chunk sequence and an asynchronous stream.
func From(stream any) (Producer, error) {
	switch v := stream.(type) {
	case nil:
		return Buffer(nil), nil

	case []byte:
		return Buffer(v), nil

	case [][]byte:
		return Slice(v), nil

	case iter.Seq[[]byte]:
		return Chunks(v), nil

	case <-chan []byte:
		return Channel(v), nil

	case chan []byte:
		return Channel(v), nil

	case io.Reader:
		return Stream(v), nil

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, stream)
	}
}

func Buffer(data []byte) Producer {
	return func(yield func([]byte, error) bool) {
		if len(data) == 0 {
			return
		}

		yield(data, nil)
	}
}

func Slice(chunks [][]byte) Producer {
	return func(yield func([]byte, error) bool) {
		for _, c := range chunks {
			if !yield(c, nil) {
				return
			}
		}
	}
}

func Chunks(seq iter.Seq[[]byte]) Producer {
	return func(yield func([]byte, error) bool) {
		for c := range seq {
			if !yield(c, nil) {
				return
			}
		}
	}
}

// Channel drains chunks until the sender closes ch.
func Channel(ch <-chan []byte) Producer {
	return func(yield func([]byte, error) bool) {
		for c := range ch {
			if !yield(c, nil) {
				return
			}
		}
	}
}

// Stream reads r until EOF. The chunk passed to yield is only valid until the
// next iteration.
func Stream(r io.Reader) Producer {
	return func(yield func([]byte, error) bool) {
		if c, ok := r.(io.Closer); ok {
			defer c.Close()
		}

		buf := make([]byte, 32*1024)

		for {
			n, err := r.Read(buf)

			if n > 0 {
				if !yield(buf[:n], nil) {
					return
				}
			}

			if errors.Is(err, io.EOF) {
				return
			}

			if err != nil {
				yield(nil, err)
				return
			}
		}
	}
}

func Concat(p Producer) ([]byte, error) {
	var result bytes.Buffer

	for chunk, err := range p {
		if err != nil {
			return nil, err
		}

		result.Write(chunk)
	}

	return result.Bytes(), nil
}
