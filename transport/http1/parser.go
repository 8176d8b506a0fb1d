package http1

import (
	"fmt"
	"strings"

	"github.com/lumen-web/lumen/config"
	"github.com/lumen-web/lumen/http"
	"github.com/lumen-web/lumen/http/headers"
	"github.com/lumen-web/lumen/http/method"
	"github.com/lumen-web/lumen/http/proto"
	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/http/uri"
	"github.com/lumen-web/lumen/http/ws"
	"github.com/lumen-web/lumen/transport"

	"github.com/indigo-web/utils/strcomp"
)

type parserState uint8

const (
	eAwaitingMessage parserState = iota + 1
	eFixedBody
	eChunkedBody
	eEntityEnd
	eCompleted
	eFailed
)

// rawTargetHeader carries the exact undecoded request-target bytes when
// the diagnostic is enabled in the config.
const rawTargetHeader = "Raw-Request-URI"

// Parser drives repeated parsing of pipelined messages on a single
// connection. The driver appends arriving byte segments via Push, signals
// upstream completion via Close and pulls events via Poll; Poll never
// blocks and instead suspends by returning a NeedMoreData event.
//
// The request head (request line and header section) is parsed in one
// all-or-nothing attempt: on insufficient data the attempt is abandoned
// with no side effects and redone from the message start once more bytes
// arrive. Heads are small and bounded, so redoing beats checkpointing.
//
// The emitted *http.Request, strict inline bodies and entity chunks alias
// parser-owned memory and are valid until the next Push or Poll call.
type Parser struct {
	cfg       *config.Config
	request   *http.Request
	headers   transport.HeaderParser
	target    transport.TargetParser
	fixed     transport.FixedStreamer
	chunked   transport.ChunkedStreamer
	handshake transport.HandshakeDetector
	buf       []byte
	pos       int
	err       error
	state     parserState
	closed    bool
	virgin    bool
}

// Collaborators lets single seams of the loop be substituted, mostly by
// tests. Zero-valued fields fall back to the in-package defaults.
type Collaborators struct {
	Headers   transport.HeaderParser
	Target    transport.TargetParser
	Fixed     transport.FixedStreamer
	Chunked   transport.ChunkedStreamer
	Handshake transport.HandshakeDetector
}

func NewParser(cfg *config.Config) *Parser {
	return NewParserWith(cfg, Collaborators{})
}

func NewParserWith(cfg *config.Config, collab Collaborators) *Parser {
	if collab.Headers == nil {
		collab.Headers = newHeaderParser(&cfg.Headers)
	}
	if collab.Target == nil {
		collab.Target = uriGrammar{}
	}
	if collab.Fixed == nil {
		collab.Fixed = newFixedStreamer()
	}
	if collab.Chunked == nil {
		collab.Chunked = newChunkedStreamer(cfg.Body.MaxSize)
	}
	if collab.Handshake == nil {
		collab.Handshake = wsDetector{}
	}

	return &Parser{
		cfg:       cfg,
		request:   &http.Request{Headers: headers.NewPrealloc(cfg.Headers.Number.Default)},
		headers:   collab.Headers,
		target:    collab.Target,
		fixed:     collab.Fixed,
		chunked:   collab.Chunked,
		handshake: collab.Handshake,
		state:     eAwaitingMessage,
		virgin:    true,
	}
}

// Push appends a newly arrived byte segment. Everything before the
// consumed offset belongs to finished elements and is dropped on the way,
// so the buffer never grows beyond one in-flight message head plus
// whatever the driver over-read.
func (p *Parser) Push(data []byte) {
	if p.pos > 0 {
		p.buf = append(p.buf[:0], p.buf[p.pos:]...)
		p.pos = 0
	}

	p.buf = append(p.buf, data...)
}

// Close signals that upstream has no more bytes. At a message boundary
// with nothing buffered this is a clean completion; anywhere else it is a
// truncation.
func (p *Parser) Close() {
	p.closed = true
}

// Poll returns the next event. Calling it is the downstream readiness
// signal: the loop performs no work and emits nothing between calls.
func (p *Parser) Poll() http.Event {
	switch p.state {
	case eAwaitingMessage:
		return p.pollHead()
	case eFixedBody:
		return p.pollBody(p.fixed)
	case eChunkedBody:
		return p.pollBody(p.chunked)
	case eEntityEnd:
		p.state = eAwaitingMessage
		return http.Event{Kind: http.EntityEnd}
	case eCompleted:
		return http.Event{Kind: http.StreamEnd}
	case eFailed:
		return http.Event{Kind: http.Failure, Err: p.err}
	default:
		panic(fmt.Sprintf("BUG: unexpected parser state: %v", p.state))
	}
}

func (p *Parser) pollHead() http.Event {
	if p.pos >= len(p.buf) {
		if p.closed {
			p.state = eCompleted
			return http.Event{Kind: http.StreamEnd}
		}

		return http.Event{Kind: http.NeedMoreData}
	}

	c := cursor{data: p.buf, pos: p.pos}

	m, rawMethod, c, err := parseMethod(c, &p.cfg.RequestLine, p.virgin)
	if err != nil {
		return p.suspendOrFail(err)
	}

	target, rawTarget, c, err := parseTarget(c, &p.cfg.RequestLine, p.target)
	if err != nil {
		return p.suspendOrFail(err)
	}

	pr, c, err := parseProto(c)
	if err != nil {
		return p.suspendOrFail(err)
	}

	req := p.request
	req.Reset()
	hdrs := req.Headers

	headersEnd, err := p.headers.Parse(p.buf, c.pos, hdrs)
	if err != nil {
		return p.suspendOrFail(err)
	}

	framing, err := decideFraming(m, pr, hdrs, len(p.buf)-headersEnd, p.cfg.Body.MaxSize)
	if err != nil {
		return p.fail(err)
	}

	// the head is complete: from here on the attempt cannot be abandoned
	// anymore and committing state is safe
	p.virgin = false
	p.pos = headersEnd

	req.Method = m
	req.RawMethod = rawMethod
	req.Target = target
	req.RawTarget = string(rawTarget)
	req.Proto = pr
	req.ContentLength = hdrs.ContentLength
	req.Framing = framing
	req.ExpectsContinue = hdrs.ExpectsContinue
	req.CloseAfterResponse = closeAfterResponse(pr, hdrs.Connection)

	switch framing.Kind {
	case http.FramingEmpty:
	case http.FramingStrict:
		req.Body = p.buf[p.pos : p.pos+framing.Length]
		p.pos += framing.Length
	case http.FramingFixedLength:
		p.fixed.Init(framing.Length)
		p.state = eFixedBody
	case http.FramingChunked:
		stripChunked(hdrs)
		p.chunked.Init(hdrs.HasTrailer)
		p.state = eChunkedBody
	}

	if m == method.GET {
		if key, value, ok := p.handshake.Detect(hdrs, hdrs.HasHost); ok {
			hdrs.Prepend(key, value)
		}
	}

	if p.cfg.RequestLine.RawTargetHeader {
		hdrs.Prepend(rawTargetHeader, req.RawTarget)
	}

	return http.Event{Kind: http.RequestStart, Request: req}
}

func (p *Parser) pollBody(streamer transport.EntityStreamer) http.Event {
	chunk, newPos, done, err := streamer.Stream(p.buf, p.pos)
	// bytes handed to a streamer are consumed exactly once: a suspending
	// streamer may already have eaten framing bytes into its own state, so
	// its position is committed before the verdict is translated
	p.pos = newPos

	if err != nil {
		return p.suspendOrFail(err)
	}

	switch {
	case !done:
		return http.Event{Kind: http.EntityPart, Chunk: chunk}
	case len(chunk) > 0:
		p.state = eEntityEnd
		return http.Event{Kind: http.EntityPart, Chunk: chunk}
	default:
		p.state = eAwaitingMessage
		return http.Event{Kind: http.EntityEnd}
	}
}

// suspendOrFail translates a collaborator's verdict: insufficient data
// suspends the loop, unless upstream already closed, which turns the
// suspension into a truncation failure. Everything else is fatal.
func (p *Parser) suspendOrFail(err error) http.Event {
	if err == transport.ErrMoreData {
		if p.closed {
			return p.fail(status.ErrTruncatedStream)
		}

		return http.Event{Kind: http.NeedMoreData}
	}

	return p.fail(err)
}

// fail is sticky: once the connection's byte-stream alignment is lost,
// every subsequent Poll reports the same failure.
func (p *Parser) fail(err error) http.Event {
	p.state = eFailed
	p.err = err

	return http.Event{Kind: http.Failure, Err: err}
}

func closeAfterResponse(pr proto.Proto, connection string) bool {
	if hasConnectionToken(connection, "close") {
		return true
	}

	return pr == proto.HTTP10 && !hasConnectionToken(connection, "keep-alive")
}

func hasConnectionToken(value, token string) bool {
	for len(value) > 0 {
		var current string
		if comma := strings.IndexByte(value, ','); comma == -1 {
			current, value = value, ""
		} else {
			current, value = value[:comma], value[comma+1:]
		}

		if strcomp.EqualFold(strings.TrimSpace(current), token) {
			return true
		}
	}

	return false
}

// uriGrammar adapts the uri package to the TargetParser seam.
type uriGrammar struct{}

func (uriGrammar) Parse(raw []byte, mode uri.Mode) (uri.Target, error) {
	return uri.Parse(raw, mode)
}

// wsDetector adapts the ws package to the HandshakeDetector seam.
type wsDetector struct{}

func (wsDetector) Detect(hdrs *headers.Headers, hostPresent bool) (key, value string, ok bool) {
	return ws.Detect(hdrs, hostPresent)
}
