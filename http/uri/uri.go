package uri

import (
	"bytes"

	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/internal/hexconv"

	"github.com/indigo-web/utils/uf"
)

// Mode controls how pedantic the request-target grammar is.
type Mode uint8

const (
	// Strict rejects broken percent-escapes, raw control bytes and
	// non-ASCII octets in the path.
	Strict Mode = iota + 1
	// Relaxed passes everything it cannot decode through literally.
	Relaxed
)

var (
	ErrEmptyTarget   = status.NewError(status.BadRequest, "empty request target")
	ErrBadEscape     = status.NewError(status.BadRequest, "invalid percent-escape in request target")
	ErrBadChar       = status.NewError(status.BadRequest, "disallowed character in request target")
	ErrBadScheme     = status.NewError(status.BadRequest, "malformed scheme in absolute request target")
	ErrBadAuthority  = status.NewError(status.BadRequest, "malformed authority in request target")
	ErrMissingSlash  = status.NewError(status.BadRequest, "absolute request target without a path")
	ErrAsteriskExtra = status.NewError(status.BadRequest, "asterisk-form target must be a sole asterisk")
)

// Target is a parsed request target. Exactly one of the four RFC 9112
// forms is represented:
//
//   - origin-form: Path and Query set;
//   - absolute-form: Scheme, Host, Path and Query set;
//   - authority-form: only Host set;
//   - asterisk-form: Path is "*".
type Target struct {
	Scheme string
	Host   string
	Path   string
	Query  string
}

// Parse interprets raw as an HTTP request target. The raw bytes are
// copied, never aliased, so the returned Target outlives any underlying
// connection buffer.
func Parse(raw []byte, mode Mode) (Target, error) {
	switch {
	case len(raw) == 0:
		return Target{}, ErrEmptyTarget
	case raw[0] == '/':
		return parseOriginForm(raw, mode)
	case raw[0] == '*':
		if len(raw) != 1 {
			return Target{}, ErrAsteriskExtra
		}

		return Target{Path: "*"}, nil
	default:
		return parseAbsoluteOrAuthority(raw, mode)
	}
}

func parseOriginForm(raw []byte, mode Mode) (t Target, err error) {
	path := raw
	if question := bytes.IndexByte(raw, '?'); question != -1 {
		path, t.Query = raw[:question], string(raw[question+1:])
	}

	t.Path, err = decodePath(path, mode)

	return t, err
}

func parseAbsoluteOrAuthority(raw []byte, mode Mode) (t Target, err error) {
	scheme, rest, found := cutScheme(raw)
	if !found {
		// authority-form, used by CONNECT: nothing but host and port
		if !validAuthority(raw) {
			return Target{}, ErrBadAuthority
		}

		return Target{Host: string(raw)}, nil
	}

	if len(scheme) == 0 {
		return Target{}, ErrBadScheme
	}

	slash := bytes.IndexByte(rest, '/')
	if slash == -1 {
		// https://example.com is tolerated as https://example.com/
		if !validAuthority(rest) {
			return Target{}, ErrBadAuthority
		}

		return Target{Scheme: string(scheme), Host: string(rest), Path: "/"}, nil
	}

	authority := rest[:slash]
	if !validAuthority(authority) {
		return Target{}, ErrBadAuthority
	}

	t, err = parseOriginForm(rest[slash:], mode)
	t.Scheme, t.Host = string(scheme), string(authority)

	return t, err
}

// cutScheme splits "scheme://rest" apart. Scheme validity (ALPHA followed
// by alphanumerics, '+', '-' or '.') is checked on the way.
func cutScheme(raw []byte) (scheme, rest []byte, found bool) {
	for i, char := range raw {
		if char == ':' {
			if len(raw)-i < len("://") || raw[i+1] != '/' || raw[i+2] != '/' {
				return nil, nil, false
			}

			return raw[:i], raw[i+len("://"):], true
		}

		if !isSchemeChar(char, i == 0) {
			return nil, nil, false
		}
	}

	return nil, nil, false
}

func isSchemeChar(char byte, first bool) bool {
	alpha := char|0x20 >= 'a' && char|0x20 <= 'z'
	if first {
		return alpha
	}

	return alpha || (char >= '0' && char <= '9') || char == '+' || char == '-' || char == '.'
}

func validAuthority(raw []byte) bool {
	if len(raw) == 0 {
		return false
	}

	for _, char := range raw {
		if char <= ' ' || char == '/' || char == '?' || char == 0x7f {
			return false
		}
	}

	return true
}

// decodePath resolves percent-escapes into a freshly allocated buffer.
// The input is never written to.
func decodePath(raw []byte, mode Mode) (string, error) {
	if bytes.IndexByte(raw, '%') == -1 {
		if err := checkPathChars(raw, mode); err != nil {
			return "", err
		}

		return string(raw), nil
	}

	decoded := make([]byte, 0, len(raw))

	for i := 0; i < len(raw); i++ {
		char := raw[i]
		if char != '%' {
			if err := checkPathChar(char, mode); err != nil {
				return "", err
			}

			decoded = append(decoded, char)
			continue
		}

		if i+2 >= len(raw) {
			if mode == Strict {
				return "", ErrBadEscape
			}

			decoded = append(decoded, raw[i:]...)
			break
		}

		hi, lo := hexconv.Parse(raw[i+1]), hexconv.Parse(raw[i+2])
		if hi == hexconv.Invalid || lo == hexconv.Invalid {
			if mode == Strict {
				return "", ErrBadEscape
			}

			decoded = append(decoded, char)
			continue
		}

		decoded = append(decoded, hi<<4|lo)
		i += 2
	}

	return uf.B2S(decoded), nil
}

func checkPathChars(raw []byte, mode Mode) error {
	for _, char := range raw {
		if err := checkPathChar(char, mode); err != nil {
			return err
		}
	}

	return nil
}

func checkPathChar(char byte, mode Mode) error {
	if mode != Strict {
		return nil
	}

	if char < ' ' || char >= 0x7f {
		return ErrBadChar
	}

	return nil
}
