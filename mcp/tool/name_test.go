package tool

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWireName(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expect      string
	}{
		{description: "safe name passes through", input: "add", expect: "add"},
		{description: "underscores pass through", input: "snake_case_fn", expect: "snake_case_fn"},
		{description: "dashes pass through", input: "with-dash", expect: "with-dash"},
		{description: "dots sanitized", input: "dotted.name", expect: "dotted_name"},
		{description: "spaces and punctuation sanitized", input: "weird name!", expect: "weird_name_"},
	}
	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expect, WireName(testCase.input), testCase.description)
	}

	long := strings.Repeat("very_long_function_name_", 5)
	assert.Len(t, WireName(long), maxWireName, "over-long name truncated to the cap")
}

func TestWireNameDeterministic(t *testing.T) {
	long := strings.Repeat("x", 200)
	assert.EqualValues(t, WireName(long), WireName(long))
}

func TestCodecRoundTrip(t *testing.T) {
	codec := NewCodec()

	wire, err := codec.Encode("main", "demo", "add")
	assert.NoError(t, err)
	assert.EqualValues(t, "add", wire)

	// Idempotent: a second encode of the same triple is not a collision.
	again, err := codec.Encode("main", "demo", "add")
	assert.NoError(t, err)
	assert.EqualValues(t, wire, again)

	fn, ok := codec.Decode(wire)
	assert.True(t, ok)
	assert.EqualValues(t, "main.demo.add", fn.Full())
}

func TestCodecCollision(t *testing.T) {
	codec := NewCodec()

	_, err := codec.Encode("main", "demo", "my.func")
	assert.NoError(t, err)

	// Distinct function sanitizing to the same wire name must be rejected,
	// not silently shadow the earlier one.
	_, err = codec.Encode("main", "demo", "my_func")
	assert.ErrorIs(t, err, ErrCollision)

	fn, ok := codec.Decode("my_func")
	assert.True(t, ok)
	assert.EqualValues(t, "my.func", fn.Name)
}

func TestParseFunctionName(t *testing.T) {
	fn, ok := ParseFunctionName("main.demo.add")
	assert.True(t, ok)
	assert.EqualValues(t, FunctionName{Catalog: "main", Schema: "demo", Name: "add"}, fn)

	for _, raw := range []string{"add", "main.demo", "main..add", "a.b.c.d", ""} {
		_, ok := ParseFunctionName(raw)
		assert.False(t, ok, raw)
	}
}
