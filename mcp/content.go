package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/viant/mcp-protocol/schema"
)

// normalizeContent converts a handler result into the uniform content
// sequence the transport expects. Strings and byte slices pass through as
// text, values already shaped as content are kept, everything else is
// serialized to compact JSON. Serialization never fails the call: an
// unmarshalable value degrades to its fmt representation.
func normalizeContent(value interface{}) []schema.CallToolResultContentElem {
	switch actual := value.(type) {
	case nil:
		return []schema.CallToolResultContentElem{{Type: "text", Text: ""}}
	case string:
		return []schema.CallToolResultContentElem{{Type: "text", Text: actual}}
	case []byte:
		return []schema.CallToolResultContentElem{{Type: "text", Text: string(actual)}}
	case schema.CallToolResultContentElem:
		return []schema.CallToolResultContentElem{actual}
	case []schema.CallToolResultContentElem:
		return actual
	default:
		data, err := json.Marshal(value)
		if err != nil {
			return []schema.CallToolResultContentElem{{Type: "text", Text: fmt.Sprintf("%v", value)}}
		}
		return []schema.CallToolResultContentElem{{Type: "text", Text: string(data)}}
	}
}

// errorResult wraps an execution failure as a tool error result so that the
// failure reaches the caller verbatim instead of being swallowed.
func errorResult(err error) *schema.CallToolResult {
	isError := true
	return &schema.CallToolResult{
		IsError: &isError,
		Content: []schema.CallToolResultContentElem{{Type: "text", Text: err.Error()}},
	}
}
