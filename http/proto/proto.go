package proto

import "github.com/indigo-web/utils/uf"

type Protocol uint8

const (
	Unknown Protocol = 0
	HTTP10  Protocol = 1 << iota
	HTTP11

	HTTP1 = HTTP10 | HTTP11
)

func (p Protocol) String() string {
	lut := [...]string{HTTP10: "HTTP/1.0", HTTP11: "HTTP/1.1"}
	if int(p) >= len(lut) {
		return ""
	}

	return lut[p]
}

const (
	tokenLength  = len("HTTP/x.x")
	majorOffset  = len("HTTP/x") - 1
	minorOffset  = len("HTTP/x.x") - 1
	schemePrefix = "HTTP/"
)

var versionLUT = [10][10]Protocol{
	1: {0: HTTP10, 1: HTTP11},
}

// FromBytes interprets a protocol token as it appears on the wire, e.g.
// "HTTP/1.1". Anything unrecognized maps to Unknown.
func FromBytes(raw []byte) Protocol {
	if len(raw) != tokenLength || uf.B2S(raw[:majorOffset]) != schemePrefix {
		return Unknown
	}

	return Parse(raw[majorOffset]-'0', raw[minorOffset]-'0')
}

func Parse(major, minor uint8) Protocol {
	if major > 9 || minor > 9 {
		return Unknown
	}

	return versionLUT[major][minor]
}
