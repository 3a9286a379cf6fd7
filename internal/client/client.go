// Package client implements the JSON-RPC 2.0 request path to the travel
// search MCP server. Every search category is a thin argument-shaping wrapper
// over a single Call.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/travelmcp/travelmcp/internal/config"
	"github.com/travelmcp/travelmcp/internal/detection"
	"github.com/travelmcp/travelmcp/internal/jsonrpc"
	"github.com/travelmcp/travelmcp/internal/mcp"
)

type Client struct {
	serverURL string
	clientID  string
	httpc     *http.Client
	engine    *detection.Engine // nil disables outbound secret scanning
	nextID    atomic.Int64
}

func New(cfg *config.Config, engine *detection.Engine) *Client {
	return &Client{
		serverURL: cfg.ServerURL,
		clientID:  cfg.ClientID,
		httpc:     &http.Client{},
		engine:    engine,
	}
}

// Call sends a single JSON-RPC request and returns the decoded response. Any
// transport failure (dial error, non-2xx status, unreadable or malformed
// body) is converted into an in-band error response; Call never returns nil.
func (c *Client) Call(ctx context.Context, method string, params any) *jsonrpc.Response {
	id := c.nextID.Add(1)
	body, err := json.Marshal(jsonrpc.Request{
		JSONRPC: jsonrpc.Version,
		ID:      id,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return errResponse(id, "failed to marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serverURL, bytes.NewReader(body))
	if err != nil {
		return errResponse(id, "failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Client-Id", c.clientID)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return errResponse(id, "request failed: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errResponse(id, "failed to read response body: %v", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errResponse(id, "server returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var out jsonrpc.Response
	if err := json.Unmarshal(respBody, &out); err != nil {
		return errResponse(id, "failed to decode response: %v", err)
	}
	return &out
}

// CallTool invokes a named tool. When scanning is enabled and an argument
// value trips the detection engine, the call is blocked before any network
// traffic happens.
func (c *Client) CallTool(ctx context.Context, name string, arguments map[string]any) *jsonrpc.Response {
	if c.engine != nil {
		if findings := c.engine.Detect(arguments); len(findings) > 0 {
			var details strings.Builder
			for _, f := range findings {
				fmt.Fprintf(&details, "%s\n", f.Description)
			}
			return errResponse(0, "blocked: arguments contain sensitive information. Details: %s", details.String())
		}
	}
	return c.Call(ctx, mcp.MethodToolsCall, mcp.CallParams{Name: name, Arguments: arguments})
}

// ListTools fetches the server's tool catalog.
func (c *Client) ListTools(ctx context.Context) *jsonrpc.Response {
	return c.Call(ctx, mcp.MethodToolsList, nil)
}

func (c *Client) SearchFlights(ctx context.Context, departure, arrival, date string) *jsonrpc.Response {
	return c.CallTool(ctx, mcp.ToolSearchFlights, map[string]any{
		"departure": departure,
		"arrival":   arrival,
		"date":      date,
	})
}

func (c *Client) SearchHotels(ctx context.Context, location, checkIn, checkOut string, adults int) *jsonrpc.Response {
	if adults <= 0 {
		adults = 2
	}
	return c.CallTool(ctx, mcp.ToolSearchHotels, map[string]any{
		"location": location,
		"checkIn":  checkIn,
		"checkOut": checkOut,
		"adults":   adults,
	})
}

func (c *Client) SearchRestaurants(ctx context.Context, location, cuisine string) *jsonrpc.Response {
	arguments := map[string]any{"location": location}
	if cuisine != "" {
		arguments["cuisine"] = cuisine
	}
	return c.CallTool(ctx, mcp.ToolSearchRestaurants, arguments)
}

func (c *Client) SearchAttractions(ctx context.Context, location, category string) *jsonrpc.Response {
	arguments := map[string]any{"location": location}
	if category != "" {
		arguments["category"] = category
	}
	return c.CallTool(ctx, mcp.ToolSearchAttractions, arguments)
}

// VideoOptions are the optional filters of a YouTube video search. Zero
// values are left out of the request entirely.
type VideoOptions struct {
	Duration   string // short, medium, long
	UploadDate string // hour, today, week, month, year
	SortBy     string // relevance, upload_date, view_count, rating
	MaxResults int    // 1-50, defaults to 20
}

func (c *Client) SearchVideos(ctx context.Context, query string, opts VideoOptions) *jsonrpc.Response {
	if opts.MaxResults <= 0 {
		opts.MaxResults = 20
	}
	arguments := map[string]any{
		"query":      query,
		"maxResults": opts.MaxResults,
	}
	if opts.Duration != "" {
		arguments["duration"] = opts.Duration
	}
	if opts.UploadDate != "" {
		arguments["uploadDate"] = opts.UploadDate
	}
	if opts.SortBy != "" {
		arguments["sortBy"] = opts.SortBy
	}
	return c.CallTool(ctx, mcp.ToolSearchVideos, arguments)
}

func errResponse(id int64, format string, args ...any) *jsonrpc.Response {
	return &jsonrpc.Response{
		JSONRPC: jsonrpc.Version,
		ID:      id,
		Error: &jsonrpc.Error{
			Code:    jsonrpc.InternalError,
			Message: fmt.Sprintf(format, args...),
		},
	}
}
