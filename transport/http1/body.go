package http1

import (
	"io"
	"math"

	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/transport"

	"github.com/indigo-web/chunkedbody"
)

// fixedStreamer delivers a Content-Length delimited entity, slicing
// chunks straight out of the connection buffer.
type fixedStreamer struct {
	remaining int
}

func newFixedStreamer() *fixedStreamer {
	return new(fixedStreamer)
}

func (f *fixedStreamer) Init(length int) {
	f.remaining = length
}

func (f *fixedStreamer) Stream(data []byte, pos int) (chunk []byte, newPos int, done bool, err error) {
	if f.remaining == 0 {
		return nil, pos, true, nil
	}

	if pos >= len(data) {
		return nil, pos, false, transport.ErrMoreData
	}

	chunk = data[pos:]
	if len(chunk) > f.remaining {
		chunk = chunk[:f.remaining]
	}

	f.remaining -= len(chunk)

	return chunk, pos + len(chunk), f.remaining == 0, nil
}

// chunkedStreamer delivers a chunked transfer coding delimited entity.
// The heavy lifting is done by the chunkedbody parser, which checkpoints
// its own state between calls; this wrapper only tracks the cumulative
// size so a stream of small chunks cannot grow without bound.
type chunkedStreamer struct {
	parser     *chunkedbody.Parser
	maxBodyLen uint
	received   uint
	hasTrailer bool
}

func newChunkedStreamer(maxBodyLen uint) *chunkedStreamer {
	return &chunkedStreamer{
		parser:     chunkedbody.NewParser(chunkedbody.DefaultSettings()),
		maxBodyLen: maxBodyLen,
	}
}

func (c *chunkedStreamer) Init(hasTrailer bool) {
	c.hasTrailer = hasTrailer
	c.received = 0
}

func (c *chunkedStreamer) Stream(data []byte, pos int) (chunk []byte, newPos int, done bool, err error) {
	if pos >= len(data) {
		return nil, pos, false, transport.ErrMoreData
	}

	chunk, extra, err := c.parser.Parse(data[pos:], c.hasTrailer)
	switch err {
	case nil:
	case io.EOF:
		done = true
	default:
		return nil, pos, false, status.ErrBadChunk
	}

	received, overflows := adduint(c.received, uint(len(chunk)))
	if overflows || received > c.maxBodyLen {
		return nil, pos, false, status.ErrBodyTooLarge
	}

	c.received = received
	newPos = len(data) - len(extra)

	if len(chunk) == 0 && !done {
		// everything consumed went into chunk-size lines and delimiters
		return nil, newPos, false, transport.ErrMoreData
	}

	return chunk, newPos, done, nil
}

func adduint(x, y uint) (uint, bool) {
	return x + y, math.MaxUint-x < y
}
