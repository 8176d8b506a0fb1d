package http1

import (
	"bytes"
	"strings"

	"github.com/lumen-web/lumen/config"
	"github.com/lumen-web/lumen/http/headers"
	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/transport"

	"github.com/indigo-web/utils/strcomp"
)

// headerParser is the default header-block tokenizer. Parsing is
// all-or-nothing: into is reset on entry, so suspending on an incomplete
// line leaves no partial state behind and the whole block is re-parsed
// from the same offset on the next attempt.
type headerParser struct {
	cfg *config.Headers
}

func newHeaderParser(cfg *config.Headers) *headerParser {
	return &headerParser{cfg: cfg}
}

func (h *headerParser) Parse(data []byte, pos int, into *headers.Headers) (int, error) {
	into.Reset()
	sectionStart := pos

	for {
		if pos-sectionStart > h.cfg.Space.Maximal {
			return 0, status.ErrHeaderFieldsTooLarge
		}

		lf := bytes.IndexByte(data[pos:], '\n')
		if lf == -1 {
			if len(data)-sectionStart > h.cfg.Space.Maximal {
				return 0, status.ErrHeaderFieldsTooLarge
			}

			return 0, transport.ErrMoreData
		}

		line := data[pos : pos+lf]
		pos += lf + 1

		if len(line) > 0 && line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}

		if len(line) == 0 {
			return pos, h.finish(into)
		}

		if line[0] == ' ' || line[0] == '\t' {
			// obs-fold continuation lines are a smuggling vector and were
			// deprecated long ago
			return 0, status.ErrBadRequest
		}

		if err := h.parseLine(line, into); err != nil {
			return 0, err
		}
	}
}

func (h *headerParser) parseLine(line []byte, into *headers.Headers) error {
	colon := bytes.IndexByte(line, ':')
	if colon < 1 {
		return status.ErrBadRequest
	}

	key, value := line[:colon], trimSpaces(line[colon+1:])

	switch {
	case len(key) > h.cfg.MaxKeyLength, len(value) > h.cfg.MaxValueLength:
		return status.ErrHeaderFieldsTooLarge
	case into.Len() >= h.cfg.Number.Maximal:
		return status.ErrTooManyHeaders
	}

	k, v := string(key), string(value)
	into.Add(k, v)

	return h.derive(k, v, into)
}

// derive extracts the handful of fields the framing decision and the
// message loop depend on, while the entries are passing by anyway.
func (h *headerParser) derive(key, value string, into *headers.Headers) error {
	switch {
	case strcomp.EqualFold(key, "content-length"):
		if into.HasContentLength {
			// duplicate content-lengths desynchronize framing between
			// parsers, reject them wholesale
			return status.ErrBadRequest
		}

		length, ok := parseContentLength(value)
		if !ok {
			return status.ErrBadRequest
		}

		into.ContentLength, into.HasContentLength = length, true
	case strcomp.EqualFold(key, "content-type"):
		into.ContentType = value
	case strcomp.EqualFold(key, "transfer-encoding"):
		toks, err := appendEncodingTokens(into.TransferEncoding, value, h.cfg.MaxEncodingTokens)
		if err != nil {
			return err
		}

		into.TransferEncoding = toks
	case strcomp.EqualFold(key, "host"):
		if into.HasHost {
			return status.ErrBadRequest
		}

		into.HasHost = true
	case strcomp.EqualFold(key, "trailer"):
		into.HasTrailer = true
	case strcomp.EqualFold(key, "upgrade"):
		into.Upgrade = value
	case strcomp.EqualFold(key, "connection"):
		into.Connection = value
	case strcomp.EqualFold(key, "expect"):
		into.ExpectsContinue = strcomp.EqualFold(value, "100-continue")
	}

	return nil
}

func (h *headerParser) finish(into *headers.Headers) error {
	te := into.TransferEncoding
	into.Chunked = len(te) > 0 && strcomp.EqualFold(te[len(te)-1], "chunked")

	return nil
}

func parseContentLength(value string) (length int, ok bool) {
	if len(value) == 0 {
		return 0, false
	}

	for _, char := range []byte(value) {
		if char < '0' || char > '9' {
			return 0, false
		}

		if length > (1<<31-1-int(char-'0'))/10 {
			return 0, false
		}

		length = length*10 + int(char-'0')
	}

	return length, true
}

func appendEncodingTokens(toks []string, value string, maxTokens int) ([]string, error) {
	for len(value) > 0 {
		var token string
		comma := strings.IndexByte(value, ',')
		if comma == -1 {
			token, value = value, ""
		} else {
			token, value = value[:comma], value[comma+1:]
		}

		token = strings.TrimSpace(token)
		if len(token) == 0 {
			continue
		}

		if len(toks)+1 > maxTokens {
			return nil, status.ErrTooManyEncodingTokens
		}

		toks = append(toks, token)
	}

	return toks, nil
}

func trimSpaces(b []byte) []byte {
	for len(b) > 0 && (b[0] == ' ' || b[0] == '\t') {
		b = b[1:]
	}

	for len(b) > 0 && (b[len(b)-1] == ' ' || b[len(b)-1] == '\t') {
		b = b[:len(b)-1]
	}

	return b
}
