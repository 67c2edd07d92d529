// Package feedback lets an agent report gaps in a server's tool surface —
// missing tools, incomplete results, missing parameters — to the PatchworkMCP
// sidecar. The whole pathway is best-effort: building a report cannot fail,
// and submitting one always returns a human-readable message, never an error.
package feedback

// Report is the structured record describing one feedback event. Every field
// is populated after BuildReport; the zero values are the documented defaults,
// so the record serializes without null or missing keys.
type Report struct {
	ServerName     string   `json:"server_name"`
	WhatINeeded    string   `json:"what_i_needed"`
	WhatITried     string   `json:"what_i_tried"`
	GapType        string   `json:"gap_type"`
	Suggestion     string   `json:"suggestion"`
	UserGoal       string   `json:"user_goal"`
	Resolution     string   `json:"resolution"`
	AgentModel     string   `json:"agent_model"`
	SessionID      string   `json:"session_id"`
	ToolsAvailable []string `json:"tools_available"`
}

// BuildReport converts raw tool-call arguments into a fully populated Report.
// serverName comes from the hosting server, never from the arguments.
//
// Missing or mistyped values degrade to defaults instead of failing: a
// feedback tool must never block the caller's workflow over malformed
// telemetry input.
func BuildReport(args map[string]any, serverName string) Report {
	r := Report{
		ServerName:     serverName,
		WhatINeeded:    getString(args, "what_i_needed"),
		WhatITried:     getString(args, "what_i_tried"),
		GapType:        getString(args, "gap_type"),
		Suggestion:     getString(args, "suggestion"),
		UserGoal:       getString(args, "user_goal"),
		Resolution:     getString(args, "resolution"),
		AgentModel:     getString(args, "agent_model"),
		SessionID:      getString(args, "session_id"),
		ToolsAvailable: getStringSlice(args, "tools_available"),
	}

	if r.GapType == "" {
		r.GapType = GapOther
	}

	return r
}

// getString reads a string-typed value from the arguments, or "".
func getString(args map[string]any, key string) string {
	if v, ok := args[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// getStringSlice reads a sequence value and keeps its string elements in
// order, silently dropping everything else. A missing key or a non-sequence
// value yields an empty slice, not nil, so the field marshals as [].
func getStringSlice(args map[string]any, key string) []string {
	out := []string{}
	seq, ok := args[key].([]any)
	if !ok {
		return out
	}
	for _, v := range seq {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
