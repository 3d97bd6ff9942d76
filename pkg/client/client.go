/*
Package client gives calling agents one uniform word lookup regardless of
remote service health.

A Finder tries the remote frontend once, with a bounded wait, and on any
failure (connection refused, timeout, error response, malformed payload)
silently re-runs the matching engine in-process against the embedded
secondary corpus. The caller always receives a result set and never a
transport error; failures are only visible in the logs. There are no
retries within a query, retry policy belongs to the orchestration layer.
*/
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
	mcpclient "github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/wordhive/wordhive/pkg/config"
	"github.com/wordhive/wordhive/pkg/corpus"
	"github.com/wordhive/wordhive/pkg/match"
	"github.com/wordhive/wordhive/pkg/server"
)

// Transport selects how the remote attempt is made.
const (
	TransportMCP  = "mcp"
	TransportHTTP = "http"
)

// Finder answers word queries, preferring the remote frontend.
type Finder struct {
	cfg   config.ClientConfig
	local *match.Engine
	httpc *http.Client
}

// IsWord reports whether the word is in the local dictionary. Membership
// checks never go over the wire: the trie lookup is cheaper than any
// round trip and the answer is needed even when the remote is down.
func (f *Finder) IsWord(word string) bool {
	return f.local.Corpus().Contains(word)
}

// NewFinder creates a Finder with the embedded corpus as its local
// fallback engine.
func NewFinder(cfg config.ClientConfig) *Finder {
	return NewFinderWithFallback(cfg, corpus.Fallback())
}

// NewFinderWithFallback creates a Finder with an explicit fallback corpus.
func NewFinderWithFallback(cfg config.ClientConfig, fallback *corpus.Corpus) *Finder {
	return &Finder{
		cfg:   cfg,
		local: match.NewEngine(fallback),
		httpc: &http.Client{},
	}
}

// FindWords returns every word constructible from the given letters,
// longest first. The remote frontend is tried once within the configured
// timeout; any failure falls through to the local engine. The returned
// slice is never nil on the fallback path unless the secondary corpus has
// no matches either, which is a normal empty answer.
func (f *Finder) FindWords(ctx context.Context, letters []string) []string {
	ctx, cancel := context.WithTimeout(ctx, f.cfg.Timeout())
	defer cancel()

	words, err := f.remote(ctx, letters)
	if err != nil {
		log.Warnf("remote find_words failed, using local fallback: %v", err)
		words = f.local.Match(match.NewAlphabet(letters))
		match.SortByLengthDesc(words)
		return words
	}

	log.Debugf("remote find_words returned %d words", len(words))
	return words
}

func (f *Finder) remote(ctx context.Context, letters []string) ([]string, error) {
	switch f.cfg.Transport {
	case TransportHTTP:
		return f.remoteHTTP(ctx, letters)
	case TransportMCP, "":
		return f.remoteMCP(ctx, letters)
	default:
		return nil, fmt.Errorf("unknown client transport %q", f.cfg.Transport)
	}
}

// remoteMCP performs one find_words tool call against the MCP endpoint.
func (f *Finder) remoteMCP(ctx context.Context, letters []string) ([]string, error) {
	c, err := mcpclient.NewStreamableHttpClient(f.cfg.MCPURL)
	if err != nil {
		return nil, fmt.Errorf("creating tool client for %s: %w", f.cfg.MCPURL, err)
	}
	defer c.Close()

	if err := c.Start(ctx); err != nil {
		return nil, fmt.Errorf("starting tool client: %w", err)
	}

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{Name: "wordhive-client", Version: "1"}
	if _, err := c.Initialize(ctx, initReq); err != nil {
		return nil, fmt.Errorf("initializing tool session: %w", err)
	}

	callReq := mcp.CallToolRequest{}
	callReq.Params.Name = server.FindWordsToolName
	callReq.Params.Arguments = map[string]any{"letters": letters}

	result, err := c.CallTool(ctx, callReq)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", server.FindWordsToolName, err)
	}
	if result.IsError {
		return nil, fmt.Errorf("%s returned an error: %s", server.FindWordsToolName, firstText(result.Content))
	}

	text := firstText(result.Content)
	if text == "" {
		return nil, fmt.Errorf("%s returned no text content", server.FindWordsToolName)
	}

	var words []string
	if err := json.Unmarshal([]byte(text), &words); err != nil {
		return nil, fmt.Errorf("decoding %s result: %w", server.FindWordsToolName, err)
	}
	return words, nil
}

// remoteHTTP performs one GET against the plain query endpoint.
func (f *Finder) remoteHTTP(ctx context.Context, letters []string) ([]string, error) {
	u, err := url.Parse(f.cfg.HTTPURL)
	if err != nil {
		return nil, fmt.Errorf("parsing query URL %s: %w", f.cfg.HTTPURL, err)
	}
	q := u.Query()
	q.Set("letters", strings.Join(letters, ","))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("building find_words request: %w", err)
	}

	resp, err := f.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("find_words returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var words []string
	if err := json.NewDecoder(resp.Body).Decode(&words); err != nil {
		return nil, fmt.Errorf("decoding find_words response: %w", err)
	}
	return words, nil
}

// firstText returns the first text content block, "" when there is none.
func firstText(content []mcp.Content) string {
	for _, c := range content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}
