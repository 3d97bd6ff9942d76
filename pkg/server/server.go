/*
Package server exposes the matching engine over two independent network
protocols sharing one corpus and one engine.

Protocol A is an MCP tool call. The frontend registers a single tool,
find_words, taking a `letters` array of single-character strings and
returning the matched words as a JSON array. Served over streamable HTTP
at the /mcp endpoint.

Protocol B is a plain HTTP query endpoint:

	GET /find_words?letters=a,c,e,h,i,s,t

which answers 200 with a JSON array body, 404 for unknown paths, and 500
with a plain-text message on internal failure.

Both protocols are thin adapters: parse request, call the engine, serialize
the result. Neither duplicates any matching logic, so a result set obtained
over one protocol always satisfies the same constructibility invariant as
the other. A bad request is answered with a structured error or 4xx to that
caller only; the listeners keep serving.

Start binds both listeners before returning, so a port already in use is
reported to the launcher instead of dying later inside a goroutine.
*/
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wordhive/wordhive/internal/logger"
	"github.com/wordhive/wordhive/pkg/config"
	"github.com/wordhive/wordhive/pkg/match"
)

// Frontend serves the engine on both protocols.
type Frontend struct {
	engine  *match.Engine
	cfg     config.ServerConfig
	version string
	logger  *log.Logger

	mcpSrv *http.Server
	apiSrv *http.Server
	errCh  chan error
}

// NewFrontend creates a frontend over the given engine. The version string
// is advertised in the MCP handshake.
func NewFrontend(engine *match.Engine, cfg config.ServerConfig, version string) *Frontend {
	return &Frontend{
		engine:  engine,
		cfg:     cfg,
		version: version,
		logger:  logger.New("frontend"),
		errCh:   make(chan error, 2),
	}
}

// Start binds both listeners and begins serving in the background. A bind
// failure on either port is returned immediately and nothing is left
// running. Serve-time failures are delivered on Err.
func (f *Frontend) Start() error {
	mcpLn, err := net.Listen("tcp", f.cfg.MCPAddr)
	if err != nil {
		return fmt.Errorf("binding tool listener on %s: %w", f.cfg.MCPAddr, err)
	}
	apiLn, err := net.Listen("tcp", f.cfg.HTTPAddr)
	if err != nil {
		mcpLn.Close()
		return fmt.Errorf("binding query listener on %s: %w", f.cfg.HTTPAddr, err)
	}

	f.mcpSrv = &http.Server{Handler: f.MCPHandler()}
	f.apiSrv = &http.Server{Handler: f.router()}

	go f.serve("tool", f.mcpSrv, mcpLn)
	go f.serve("query", f.apiSrv, apiLn)

	f.logger.Infof("tool listener on %s (endpoint /mcp)", mcpLn.Addr())
	f.logger.Infof("query listener on %s (endpoint /find_words)", apiLn.Addr())
	return nil
}

// Err delivers serve-time listener failures. Closed-server shutdowns are
// not reported.
func (f *Frontend) Err() <-chan error {
	return f.errCh
}

// Shutdown stops both listeners, waiting for in-flight queries up to the
// context deadline.
func (f *Frontend) Shutdown(ctx context.Context) error {
	var firstErr error
	for _, srv := range []*http.Server{f.mcpSrv, f.apiSrv} {
		if srv == nil {
			continue
		}
		if err := srv.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (f *Frontend) serve(name string, srv *http.Server, ln net.Listener) {
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		f.logger.Errorf("%s listener failed: %v", name, err)
		f.errCh <- fmt.Errorf("%s listener: %w", name, err)
	}
}

// lookup runs one query and prepares the caller-facing ordering: longest
// words first, alphabetical within a length. Never nil, so serializers
// emit [] instead of null for empty results.
func (f *Frontend) lookup(alphabet match.Alphabet) []string {
	start := time.Now()
	words := f.engine.Match(alphabet)
	match.SortByLengthDesc(words)
	f.logger.Debugf("find_words: %d matches in %v", len(words), time.Since(start))
	if words == nil {
		words = []string{}
	}
	return words
}
