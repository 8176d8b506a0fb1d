// Package lumen is an incremental, resumable HTTP/1.x request parser.
// It turns arbitrarily fragmented byte segments into a sequence of
// structured request events without ever touching a socket: the
// transport driver owns all I/O and feeds the parser through a small
// push/pull surface.
package lumen

import (
	"github.com/lumen-web/lumen/config"
	"github.com/lumen-web/lumen/transport"
	"github.com/lumen-web/lumen/transport/http1"
)

// New returns a parser for a single connection, wired with the default
// collaborators. Pass nil to run with config.Default(). The config is
// never written to and may be shared between connections.
func New(cfg *config.Config) transport.Parser {
	if cfg == nil {
		cfg = config.Default()
	}

	return http1.NewParser(cfg)
}
