package mcp

// Methods consumed from the travel search MCP server.
const (
	MethodToolsList = "tools/list"
	MethodToolsCall = "tools/call"
)

// Tool names exposed by the server.
const (
	ToolSearchFlights     = "search_flights"
	ToolSearchHotels      = "search_hotels"
	ToolSearchRestaurants = "search_restaurants"
	ToolSearchAttractions = "search_attractions"
	ToolSearchVideos      = "search_youtube_videos"
)

// CallParams is the params object of a tools/call request.
type CallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// CallResult is the result object of a tools/call response. Text blocks
// frequently carry a JSON document encoded as a string.
type CallResult struct {
	Content []ContentBlock `json:"content"`
	IsError bool           `json:"isError,omitempty"`
}

type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ListToolsResult is the result object of a tools/list response.
type ListToolsResult struct {
	Tools []Tool `json:"tools"`
}

type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema,omitempty"`
}
