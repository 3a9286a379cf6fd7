package jsonrpc

import (
	"encoding/json"
	"testing"
)

func TestErrorUnmarshalObject(t *testing.T) {
	var resp Response
	if err := json.Unmarshal([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32601,"message":"Method not found"}}`), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Error == nil {
		t.Fatal("expected error to be set")
	}
	if resp.Error.Code != MethodNotFound || resp.Error.Message != "Method not found" {
		t.Errorf("unexpected error: %+v", resp.Error)
	}
}

func TestErrorUnmarshalBareString(t *testing.T) {
	// the original server's clients synthesize {"error": "..."} responses
	var resp Response
	if err := json.Unmarshal([]byte(`{"error":"boom"}`), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Error == nil || resp.Error.Message != "boom" {
		t.Fatalf("expected bare string error 'boom', got %+v", resp.Error)
	}
	if resp.Error.Code != 0 {
		t.Errorf("expected no code for bare string errors, got %d", resp.Error.Code)
	}
}

func TestErrorString(t *testing.T) {
	e := &Error{Code: -32601, Message: "Method not found"}
	if got := e.Error(); got != "Method not found (code -32601)" {
		t.Errorf("unexpected error string: %q", got)
	}
	e = &Error{Message: "boom"}
	if got := e.Error(); got != "boom" {
		t.Errorf("unexpected error string: %q", got)
	}
}

func TestRequestOmitsEmptyParams(t *testing.T) {
	b, err := json.Marshal(Request{JSONRPC: Version, ID: 1, Method: "tools/list"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	json.Unmarshal(b, &m)
	if _, present := m["params"]; present {
		t.Errorf("expected params to be omitted when empty, got %s", b)
	}
}
