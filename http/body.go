package http

import "io"

// Body is a message payload: either a fully buffered byte sequence or, for
// streamed responses, a live producer which is drained at serialization
// time. Parsed messages always carry the buffered variant.
type Body struct {
	buffered []byte
	stream   io.Reader
}

func BodyOf(b []byte) Body {
	return Body{buffered: b}
}

func StreamBody(r io.Reader) Body {
	return Body{stream: r}
}

// IsStream reports whether the body must be drained from a producer instead
// of being available upfront.
func (b Body) IsStream() bool {
	return b.stream != nil
}

func (b Body) Buffered() []byte {
	return b.buffered
}

func (b Body) Stream() io.Reader {
	return b.stream
}
