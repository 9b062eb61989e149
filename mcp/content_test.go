package mcp

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/mcp-protocol/schema"
)

func TestNormalizeContent(t *testing.T) {
	testCases := []struct {
		description string
		input       interface{}
		expect      string
	}{
		{
			description: "nil becomes empty text",
			input:       nil,
			expect:      "",
		},
		{
			description: "string passes through",
			input:       "plain",
			expect:      "plain",
		},
		{
			description: "bytes pass through as text",
			input:       []byte("raw"),
			expect:      "raw",
		},
		{
			description: "struct serialized to compact JSON",
			input:       struct{ N int }{N: 3},
			expect:      `{"N":3}`,
		},
		{
			description: "map serialized deterministically",
			input:       map[string]interface{}{"b": 2, "a": 1},
			expect:      `{"a":1,"b":2}`,
		},
	}

	for _, testCase := range testCases {
		actual := normalizeContent(testCase.input)
		if assert.Len(t, actual, 1, testCase.description) {
			assert.EqualValues(t, "text", actual[0].Type, testCase.description)
			assert.EqualValues(t, testCase.expect, actual[0].Text, testCase.description)
		}
	}
}

func TestNormalizeContentDeterministic(t *testing.T) {
	value := map[string]interface{}{"z": []int{1, 2}, "a": "x", "m": map[string]int{"k": 1}}
	first := normalizeContent(value)
	second := normalizeContent(value)
	assert.EqualValues(t, first, second)
}

func TestNormalizeContentKeepsShapedContent(t *testing.T) {
	elem := schema.CallToolResultContentElem{Type: "text", Text: "already shaped"}
	assert.EqualValues(t, []schema.CallToolResultContentElem{elem}, normalizeContent(elem))
	assert.EqualValues(t, []schema.CallToolResultContentElem{elem}, normalizeContent([]schema.CallToolResultContentElem{elem}))
}

func TestErrorResult(t *testing.T) {
	result := errorResult(fmt.Errorf("boom"))
	if assert.NotNil(t, result.IsError) {
		assert.True(t, *result.IsError)
	}
	assert.EqualValues(t, "boom", result.Content[0].Text)
}
