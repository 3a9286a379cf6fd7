// Package format renders JSON-RPC responses for the terminal. Rendering is a
// pure function of the response; it never touches program state.
package format

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/travelmcp/travelmcp/internal/jsonrpc"
	"github.com/travelmcp/travelmcp/internal/mcp"
)

const divider = "------------------------------------------------------------"

// Render produces the human-readable form of a search response. Text content
// blocks carrying embedded JSON are pretty-printed; anything unparseable is
// shown verbatim.
func Render(resp *jsonrpc.Response, label string) string {
	var b strings.Builder

	if resp.Error != nil {
		fmt.Fprintf(&b, "Error: %s\n", resp.Error.Error())
		return b.String()
	}

	fmt.Fprintf(&b, "%s results:\n%s\n", label, divider)

	var result mcp.CallResult
	if err := json.Unmarshal(resp.Result, &result); err == nil && len(result.Content) > 0 {
		for _, block := range result.Content {
			if block.Type != "text" {
				continue
			}
			if pretty, ok := prettyJSON(block.Text); ok {
				fmt.Fprintf(&b, "%s\n", pretty)
			} else {
				fmt.Fprintf(&b, "%s\n", block.Text)
			}
		}
		return b.String()
	}

	if len(resp.Result) > 0 {
		fmt.Fprintf(&b, "%s\n", string(resp.Result))
		return b.String()
	}

	fmt.Fprintf(&b, "Error: empty response\n")
	return b.String()
}

// RenderTools produces a numbered listing of the server's tool catalog.
func RenderTools(resp *jsonrpc.Response) string {
	var b strings.Builder

	if resp.Error != nil {
		fmt.Fprintf(&b, "Error listing tools: %s\n", resp.Error.Error())
		return b.String()
	}

	var result mcp.ListToolsResult
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		fmt.Fprintf(&b, "Error listing tools: %s\n", string(resp.Result))
		return b.String()
	}

	fmt.Fprintf(&b, "Available tools:\n%s\n", divider)
	for i, tool := range result.Tools {
		fmt.Fprintf(&b, "%d. %s\n   %s\n", i+1, tool.Name, tool.Description)
	}
	return b.String()
}

func prettyJSON(text string) (string, bool) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return "", false
	}
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", false
	}
	return string(pretty), true
}
