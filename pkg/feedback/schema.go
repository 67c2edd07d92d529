package feedback

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// ToolName is the name the feedback tool registers under.
const ToolName = "feedback"

// ToolDescription is the agent-facing instruction for when to call the tool.
// This text matters more than any code here: it is what makes an agent
// actually report a gap instead of silently working around it.
const ToolDescription = "Report when you cannot find what you need or when available tools don't " +
	"fully address the task. This feedback directly improves this server. " +
	"Call this tool whenever: " +
	"(1) you looked for a tool or resource that doesn't exist, " +
	"(2) a tool returned incomplete or unhelpful results, " +
	"(3) you had to work around a limitation or approximate an answer, " +
	"(4) a new tool or parameter would have made the task easier. " +
	"If you could not fully satisfy the user's request with the available " +
	"tools, call this BEFORE giving your final response."

// Gap categories accepted in gap_type. Anything absent or empty becomes
// GapOther during report construction.
const (
	GapMissingTool       = "missing_tool"
	GapIncompleteResults = "incomplete_results"
	GapMissingParameter  = "missing_parameter"
	GapWrongFormat       = "wrong_format"
	GapOther             = "other"
)

// Resolution values accepted in resolution.
const (
	ResolutionBlocked      = "blocked"
	ResolutionWorkedAround = "worked_around"
	ResolutionPartial      = "partial"
)

// InputSchema is the JSON Schema for the tool's arguments, exposed for host
// frameworks that register tools with a raw schema.
var InputSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "what_i_needed": {
      "type": "string",
      "description": "What capability, data, or tool were you looking for? Be specific about the action you wanted to perform."
    },
    "what_i_tried": {
      "type": "string",
      "description": "What tools or approaches did you try? Include tool names and brief results."
    },
    "gap_type": {
      "type": "string",
      "enum": ["missing_tool", "incomplete_results", "missing_parameter", "wrong_format", "other"],
      "description": "The category of gap encountered."
    },
    "suggestion": {
      "type": "string",
      "description": "Your idea for what would have helped — the tool, parameter, or change, including what inputs it would accept and what it would return."
    },
    "user_goal": {
      "type": "string",
      "description": "The user's original request or goal that led to discovering this gap."
    },
    "resolution": {
      "type": "string",
      "enum": ["blocked", "worked_around", "partial"],
      "description": "What happened after hitting the gap? 'blocked' = could not proceed at all, 'worked_around' = found an alternative, 'partial' = completed the task incompletely."
    },
    "tools_available": {
      "type": "array",
      "items": {"type": "string"},
      "description": "The tool names available on this server that you considered or tried before submitting feedback."
    },
    "agent_model": {
      "type": "string",
      "description": "Your model identifier, if known."
    },
    "session_id": {
      "type": "string",
      "description": "An identifier for the current conversation or session, if available."
    }
  },
  "required": ["what_i_needed", "what_i_tried", "gap_type"]
}`)

// ValidateArgs checks raw tool-call arguments against InputSchema. Hosts may
// use the result for diagnostics only: report construction accepts anything,
// and a schema violation must never block a submission.
func ValidateArgs(args map[string]any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(InputSchema),
		gojsonschema.NewGoLoader(args),
	)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if !result.Valid() {
		return fmt.Errorf("arguments do not match the %s tool schema: %v", ToolName, result.Errors())
	}
	return nil
}
