// Package feedback provides tests for report construction
package feedback

import (
	"encoding/json"
	"reflect"
	"testing"
)

// TestBuildReportDefaults verifies every optional field gets its documented
// default when the input is empty.
func TestBuildReportDefaults(t *testing.T) {
	r := BuildReport(map[string]any{}, "my-server")

	if r.ServerName != "my-server" {
		t.Errorf("ServerName = %q, want my-server", r.ServerName)
	}
	if r.WhatINeeded != "" || r.WhatITried != "" {
		t.Errorf("required text fields should default to empty, got %q / %q", r.WhatINeeded, r.WhatITried)
	}
	if r.GapType != GapOther {
		t.Errorf("GapType = %q, want %q", r.GapType, GapOther)
	}
	for name, v := range map[string]string{
		"Suggestion": r.Suggestion,
		"UserGoal":   r.UserGoal,
		"Resolution": r.Resolution,
		"AgentModel": r.AgentModel,
		"SessionID":  r.SessionID,
	} {
		if v != "" {
			t.Errorf("%s = %q, want empty string", name, v)
		}
	}
	if r.ToolsAvailable == nil {
		t.Error("ToolsAvailable should be an empty slice, not nil")
	}
	if len(r.ToolsAvailable) != 0 {
		t.Errorf("ToolsAvailable = %v, want empty", r.ToolsAvailable)
	}
}

// TestBuildReportGapTypeFallback verifies absent, empty, and mistyped
// gap_type values all normalize to "other".
func TestBuildReportGapTypeFallback(t *testing.T) {
	cases := []struct {
		name string
		args map[string]any
		want string
	}{
		{"absent", map[string]any{}, GapOther},
		{"empty", map[string]any{"gap_type": ""}, GapOther},
		{"mistyped", map[string]any{"gap_type": 42}, GapOther},
		{"set", map[string]any{"gap_type": GapMissingTool}, GapMissingTool},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BuildReport(tc.args, "s").GapType; got != tc.want {
				t.Errorf("GapType = %q, want %q", got, tc.want)
			}
		})
	}
}

// TestBuildReportToolsFiltering verifies non-string elements are dropped
// silently while string elements keep their relative order.
func TestBuildReportToolsFiltering(t *testing.T) {
	r := BuildReport(map[string]any{
		"tools_available": []any{"alpha", 1, "beta", nil, map[string]any{}, "gamma"},
	}, "s")

	want := []string{"alpha", "beta", "gamma"}
	if !reflect.DeepEqual(r.ToolsAvailable, want) {
		t.Errorf("ToolsAvailable = %v, want %v", r.ToolsAvailable, want)
	}
}

// TestBuildReportToolsNotASequence verifies a non-sequence value degrades to
// an empty slice rather than failing.
func TestBuildReportToolsNotASequence(t *testing.T) {
	for _, v := range []any{"read_file,write_file", 7, map[string]any{"a": 1}} {
		r := BuildReport(map[string]any{"tools_available": v}, "s")
		if len(r.ToolsAvailable) != 0 {
			t.Errorf("ToolsAvailable for %T input = %v, want empty", v, r.ToolsAvailable)
		}
	}
}

// TestBuildReportServerNameFromHost verifies the server name comes from the
// host, never from the caller's arguments.
func TestBuildReportServerNameFromHost(t *testing.T) {
	r := BuildReport(map[string]any{"server_name": "spoofed"}, "real-server")
	if r.ServerName != "real-server" {
		t.Errorf("ServerName = %q, want real-server", r.ServerName)
	}
}

// TestReportWirePayload verifies the end-to-end wire shape: exact snake_case
// keys, defaults filled in, and tools_available as [] rather than null.
func TestReportWirePayload(t *testing.T) {
	r := BuildReport(map[string]any{
		"what_i_needed": "a log-tail tool",
		"what_i_tried":  "grepped output manually",
		"gap_type":      "missing_tool",
	}, "my-server")

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var wire map[string]any
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	wantKeys := []string{
		"server_name", "what_i_needed", "what_i_tried", "gap_type",
		"suggestion", "user_goal", "resolution", "agent_model",
		"session_id", "tools_available",
	}
	if len(wire) != len(wantKeys) {
		t.Errorf("payload has %d keys, want %d", len(wire), len(wantKeys))
	}
	for _, k := range wantKeys {
		if _, ok := wire[k]; !ok {
			t.Errorf("payload missing key %q", k)
		}
	}

	if wire["gap_type"] != "missing_tool" {
		t.Errorf("gap_type = %v, want missing_tool", wire["gap_type"])
	}
	if wire["suggestion"] != "" {
		t.Errorf("suggestion = %v, want empty string", wire["suggestion"])
	}
	tools, ok := wire["tools_available"].([]any)
	if !ok {
		t.Fatalf("tools_available = %v, want a JSON array", wire["tools_available"])
	}
	if len(tools) != 0 {
		t.Errorf("tools_available = %v, want []", tools)
	}
}
