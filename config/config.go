package config

import "time"

type (
	NET struct {
		// ReadBufferSize is the size of the block, in bytes, used to batch
		// reads from the socket. Line scanning is byte-at-a-time on top of
		// it, so this is what amortizes the syscall overhead.
		ReadBufferSize int
		// ReadTimeout controls the maximal lifetime of IDLE connections. If
		// no data was received in this period of time, the connection is
		// closed.
		ReadTimeout time.Duration
	}

	HTTP struct {
		// HeadersPrealloc is the number of seats initially allocated in a
		// request's header storage.
		HeadersPrealloc int
		// ResponseBuffSize is the initial size of the per-connection buffer
		// the response is rendered into.
		ResponseBuffSize int
	}
)

// Config holds engine tuning knobs, mainly restrictions, timeouts and
// pre-allocations.
//
// Always modify the defaults (returned via Default()) instead of constructing
// the struct manually, otherwise zero values are taken literally.
type Config struct {
	NET  NET
	HTTP HTTP
}

// Default returns a well-balanced default config.
func Default() *Config {
	return &Config{
		NET: NET{
			ReadBufferSize: 2 * 1024,
			ReadTimeout:    30 * time.Second,
		},
		HTTP: HTTP{
			HeadersPrealloc:  10,
			ResponseBuffSize: 1024,
		},
	}
}
