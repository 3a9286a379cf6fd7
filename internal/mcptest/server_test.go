package mcptest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/travelmcp/travelmcp/internal/jsonrpc"
	"github.com/travelmcp/travelmcp/internal/mcp"
)

func post(t *testing.T, url, body string) *jsonrpc.Response {
	t.Helper()
	httpResp, err := http.Post(url+"/mcp", "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer httpResp.Body.Close()
	var resp jsonrpc.Response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return &resp
}

func TestServesOnlyTheMCPRoute(t *testing.T) {
	server := httptest.NewServer(New())
	defer server.Close()

	httpResp, err := http.Post(server.URL+"/", "application/json", bytes.NewBufferString(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 off the /mcp route, got %d", httpResp.StatusCode)
	}
}

func TestMalformedParamsReturnsErrorWithoutRecording(t *testing.T) {
	mock := New()
	server := httptest.NewServer(mock)
	defer server.Close()

	resp := post(t, server.URL, `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":[1,2]}`)

	if resp.Error == nil || resp.Error.Code != jsonrpc.InvalidParams {
		t.Fatalf("expected invalid params error, got %+v", resp)
	}
	if got := mock.Requests(); len(got) != 0 {
		t.Errorf("expected malformed request not to be recorded, got %v", got)
	}
}

func TestUnknownToolReturnsError(t *testing.T) {
	server := httptest.NewServer(New())
	defer server.Close()

	resp := post(t, server.URL, `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"search_trains"}}`)

	if resp.Error == nil || resp.Error.Code != jsonrpc.InvalidParams {
		t.Fatalf("expected invalid params error, got %+v", resp)
	}
}

func TestUnknownMethodReturnsError(t *testing.T) {
	server := httptest.NewServer(New())
	defer server.Close()

	resp := post(t, server.URL, `{"jsonrpc":"2.0","id":1,"method":"prompts/list"}`)

	if resp.Error == nil || resp.Error.Code != jsonrpc.MethodNotFound {
		t.Fatalf("expected method not found error, got %+v", resp)
	}
}

func TestToolsListCatalog(t *testing.T) {
	server := httptest.NewServer(New())
	defer server.Close()

	resp := post(t, server.URL, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}
	var result mcp.ListToolsResult
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if len(result.Tools) != 5 {
		t.Fatalf("expected 5 tools, got %d", len(result.Tools))
	}
	if result.Tools[0].InputSchema["type"] != "object" {
		t.Errorf("expected object input schema, got %v", result.Tools[0].InputSchema)
	}
}
