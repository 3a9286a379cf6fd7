// Package mcptest hosts an in-process stand-in for the travel search MCP
// server, used by tests through httptest.NewServer.
package mcptest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/travelmcp/travelmcp/internal/jsonrpc"
	"github.com/travelmcp/travelmcp/internal/mcp"
)

// Server implements tools/list and tools/call with canned payloads and
// records every request it decodes, so tests can assert the exact wire shape
// a client produced.
type Server struct {
	router *mux.Router

	mu       sync.Mutex
	requests []RecordedRequest
}

// RecordedRequest is one decoded JSON-RPC request as it arrived on the wire.
type RecordedRequest struct {
	ID     int64
	Method string
	Params mcp.CallParams
}

func New() *Server {
	s := &Server{router: mux.NewRouter()}
	s.router.HandleFunc("/mcp", s.handleRPC).Methods("POST")
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Requests returns a snapshot of everything received so far.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	var req struct {
		JSONRPC string          `json:"jsonrpc"`
		ID      int64           `json:"id"`
		Method  string          `json:"method"`
		Params  json.RawMessage `json:"params"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeResponse(w, &jsonrpc.Response{
			JSONRPC: jsonrpc.Version,
			Error:   &jsonrpc.Error{Code: jsonrpc.ParseError, Message: "Parse error"},
		})
		return
	}

	var params mcp.CallParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			writeResponse(w, &jsonrpc.Response{
				JSONRPC: jsonrpc.Version,
				ID:      req.ID,
				Error:   &jsonrpc.Error{Code: jsonrpc.InvalidParams, Message: "Invalid params"},
			})
			return
		}
	}
	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{ID: req.ID, Method: req.Method, Params: params})
	s.mu.Unlock()

	switch req.Method {
	case mcp.MethodToolsList:
		writeResult(w, req.ID, mcp.ListToolsResult{Tools: toolCatalog})
	case mcp.MethodToolsCall:
		s.handleToolCall(w, req.ID, params)
	default:
		writeResponse(w, &jsonrpc.Response{
			JSONRPC: jsonrpc.Version,
			ID:      req.ID,
			Error:   &jsonrpc.Error{Code: jsonrpc.MethodNotFound, Message: fmt.Sprintf("Method not found: %s", req.Method)},
		})
	}
}

func (s *Server) handleToolCall(w http.ResponseWriter, id int64, params mcp.CallParams) {
	payload, ok := cannedPayloads[params.Name]
	if !ok {
		writeResponse(w, &jsonrpc.Response{
			JSONRPC: jsonrpc.Version,
			ID:      id,
			Error:   &jsonrpc.Error{Code: jsonrpc.InvalidParams, Message: fmt.Sprintf("Unknown tool: %s", params.Name)},
		})
		return
	}
	writeResult(w, id, mcp.CallResult{
		Content: []mcp.ContentBlock{{Type: "text", Text: payload}},
	})
}

func writeResult(w http.ResponseWriter, id int64, result any) {
	raw, _ := json.Marshal(result)
	writeResponse(w, &jsonrpc.Response{JSONRPC: jsonrpc.Version, ID: id, Result: raw})
}

func writeResponse(w http.ResponseWriter, resp *jsonrpc.Response) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Canned per-tool payloads, JSON-encoded the way the real server embeds them
// in text content blocks.
var cannedPayloads = map[string]string{
	mcp.ToolSearchFlights:     `{"flights":[{"airline":"Example Air","departure":"JFK","arrival":"LHR","price":412}]}`,
	mcp.ToolSearchHotels:      `{"hotels":[{"name":"Harbor View","rating":4.5,"pricePerNight":180}]}`,
	mcp.ToolSearchRestaurants: `{"restaurants":[{"name":"Trattoria Roma","cuisine":"italian","rating":4.2}]}`,
	mcp.ToolSearchAttractions: `{"attractions":[{"name":"City Museum","category":"museums"}]}`,
	mcp.ToolSearchVideos:      `{"videos":[{"title":"Travel guide","channel":"Wander","views":120345}]}`,
}

var toolCatalog = []mcp.Tool{
	{
		Name:        mcp.ToolSearchFlights,
		Description: "Search for flight information using departure and arrival locations",
		InputSchema: objectSchema(map[string]any{
			"departure": map[string]any{"type": "string", "description": "Departure city or airport"},
			"arrival":   map[string]any{"type": "string", "description": "Arrival city or airport"},
			"date":      map[string]any{"type": "string", "description": "Departure date (YYYY-MM-DD)"},
		}, "departure", "arrival", "date"),
	},
	{
		Name:        mcp.ToolSearchHotels,
		Description: "Search for hotels in a specific location using TripAdvisor data",
		InputSchema: objectSchema(map[string]any{
			"location": map[string]any{"type": "string", "description": "Location to search for hotels"},
			"checkIn":  map[string]any{"type": "string", "description": "Check-in date (YYYY-MM-DD)"},
			"checkOut": map[string]any{"type": "string", "description": "Check-out date (YYYY-MM-DD)"},
			"adults":   map[string]any{"type": "integer", "description": "Number of adults", "default": 2},
		}, "location", "checkIn", "checkOut"),
	},
	{
		Name:        mcp.ToolSearchRestaurants,
		Description: "Search for restaurants in a specific location using TripAdvisor data",
		InputSchema: objectSchema(map[string]any{
			"location": map[string]any{"type": "string", "description": "Location to search for restaurants"},
			"cuisine":  map[string]any{"type": "string", "description": "Optional cuisine type filter"},
		}, "location"),
	},
	{
		Name:        mcp.ToolSearchAttractions,
		Description: "Search for attractions and activities in a specific location using TripAdvisor data",
		InputSchema: objectSchema(map[string]any{
			"location": map[string]any{"type": "string", "description": "Location to search for attractions"},
			"category": map[string]any{"type": "string", "description": "Optional category filter (e.g., museums, parks, tours)"},
		}, "location"),
	},
	{
		Name:        mcp.ToolSearchVideos,
		Description: "Search for YouTube videos using SerpAPI YouTube search",
		InputSchema: objectSchema(map[string]any{
			"query":      map[string]any{"type": "string", "description": "Search query for YouTube videos"},
			"duration":   map[string]any{"type": "string", "description": "Optional duration filter (short, medium, long)"},
			"uploadDate": map[string]any{"type": "string", "description": "Optional upload date filter (hour, today, week, month, year)"},
			"sortBy":     map[string]any{"type": "string", "description": "Optional sort order (relevance, upload_date, view_count, rating)"},
			"maxResults": map[string]any{"type": "integer", "description": "Maximum number of results (default: 20, max: 50)", "default": 20},
		}, "query"),
	},
}

func objectSchema(properties map[string]any, required ...string) map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}
