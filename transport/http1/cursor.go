package http1

// cursor is an offset into the connection's append-growing buffer.
// Sub-slicing is O(1) and never copies. Cursors travel by value: a parse
// attempt that cannot complete simply discards its copy, which is what
// makes abandoning an attempt on insufficient data side-effect free.
type cursor struct {
	data []byte
	pos  int
}

func (c cursor) eof() bool {
	return c.pos >= len(c.data)
}

func (c cursor) head() byte {
	return c.data[c.pos]
}

// rest returns everything from the cursor to the buffered end.
func (c cursor) rest() []byte {
	return c.data[c.pos:]
}

func (c cursor) advance(n int) cursor {
	c.pos += n
	return c
}
