package http1

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"

	"github.com/wildfiremedia/engine/http/status"
	"github.com/wildfiremedia/engine/kv"
	"github.com/wildfiremedia/engine/transport"
)

// Builder constructs a concrete message kind out of raw parsed parts. The
// start-line components are handed over verbatim: interpreting and validating
// them (method recognition, protocol version, status code) is the builder's
// job, not the parser's.
type Builder[M any] func(startLine [3][]byte, headers *kv.Storage, body []byte) (M, error)

// Parse consumes exactly one message off the client: a start line, a header
// block and a body framed by the headers. The parser carries no state across
// invocations except what remains unread in the client.
func Parse[M any](client transport.Client, headersPrealloc int, build Builder[M]) (M, error) {
	var none M

	startLine, err := parseStartLine(client)
	if err != nil {
		return none, err
	}

	headers, err := parseHeaders(client, headersPrealloc)
	if err != nil {
		return none, err
	}

	body, err := parseBody(client, headers)
	if err != nil {
		return none, err
	}

	return build(startLine, headers, body)
}

func parseStartLine(client transport.Client) (parts [3][]byte, err error) {
	line, err := client.ReadLine()
	if err != nil {
		return parts, err
	}

	if len(line) == 0 {
		return parts, status.ErrStreamEmpty
	}

	// at most 2 splits, so the third component is free to contain spaces.
	// A response reason phrase relies on that
	split := splitBy(line, ' ', 2)
	if len(split) != 3 {
		return parts, status.ErrInvalidStartLine
	}

	return [3][]byte(split), nil
}

func parseHeaders(client transport.Client, prealloc int) (*kv.Storage, error) {
	headers := kv.NewPrealloc(prealloc)

	for {
		line, err := client.ReadLine()
		if err != nil {
			return nil, err
		}

		if len(line) == 0 {
			return headers, nil
		}

		if line[0] == ' ' || line[0] == '\t' {
			// an obs-fold continuation of the most recently set field. The
			// continuation text is glued onto the value with no separator
			if !headers.AppendToLast(string(trimOWS(line))) {
				return nil, status.ErrInvalidRequest
			}

			continue
		}

		split := splitBy(line, ':', 1)
		if len(split) != 2 {
			// a field line without a colon is tolerated, just ignored
			continue
		}

		key := split[0]
		if last := key[len(key)-1]; last == ' ' || last == '\t' {
			return nil, status.ErrInvalidKeyWhitespace
		}

		headers.Set(string(key), string(trimOWS(split[1])))
	}
}

func parseBody(client transport.Client, headers *kv.Storage) ([]byte, error) {
	if cl, found := headers.Get("content-length"); found {
		if length, err := strconv.Atoi(cl); err == nil && length >= 0 {
			return readExact(client, length)
		}

		// an unparseable or negative content-length degrades to an absent one
	}

	if te, found := headers.Get("transfer-encoding"); found && isChunked(te) {
		return readChunked(client)
	}

	return nil, nil
}

// readExact reads n bytes off the client. The stream ending earlier is not
// an error at this layer: whatever arrived is the body.
func readExact(client transport.Client, n int) ([]byte, error) {
	body := make([]byte, 0, n)

	for n > 0 {
		piece, err := client.Read(n)
		if err != nil {
			if err == io.EOF {
				return body, nil
			}

			return nil, err
		}

		body = append(body, piece...)
		n -= len(piece)
	}

	return body, nil
}

// maxChunkSize bounds a single chunk. A size line past it cannot be acted on
// without the cursor arithmetic below overflowing, so it terminates the body
// the same way an unparseable one does.
const maxChunkSize = 16 * 1024 * 1024

// readChunked decodes the chunked transfer coding. A size line which is
// empty, zero, oversized or not a hex integer terminates the body, which
// covers the terminal zero-size chunk as well. Trailer field lines, if any,
// are left unread.
func readChunked(client transport.Client) (body []byte, err error) {
	for {
		line, err := client.ReadLine()
		if err != nil {
			return nil, err
		}

		if len(line) == 0 {
			return body, nil
		}

		size, perr := strconv.ParseUint(uf.B2S(line), 16, 63)
		if perr != nil || size == 0 || size > maxChunkSize {
			return body, nil
		}

		// the chunk payload is followed by its own CRLF, consumed with it
		chunk, err := readExact(client, int(size)+2)
		if err != nil {
			return nil, err
		}

		if len(chunk) > 2 {
			body = append(body, chunk[:len(chunk)-2]...)
		}
	}
}

// isChunked reports whether the final applied transfer coding is chunked.
func isChunked(te string) bool {
	if comma := strings.LastIndexByte(te, ','); comma >= 0 {
		te = te[comma+1:]
	}

	return strcomp.EqualFold(strings.Trim(te, " \t"), "chunked")
}

// splitBy breaks the sequence on the delimiter, performing at most maxSplits
// splits and omitting empty runs, so consecutive delimiters don't produce
// empty parts.
func splitBy(b []byte, delim byte, maxSplits int) (parts [][]byte) {
	for maxSplits > 0 {
		boundary := bytes.IndexByte(b, delim)
		if boundary < 0 {
			break
		}

		if boundary > 0 {
			parts = append(parts, b[:boundary])
			maxSplits--
		}

		b = b[boundary+1:]
	}

	// a delimiter run right before the remainder is not part of it
	for len(b) > 0 && b[0] == delim {
		b = b[1:]
	}

	if len(b) > 0 {
		parts = append(parts, b)
	}

	return parts
}

func trimOWS(b []byte) []byte {
	return bytes.Trim(b, " \t")
}
