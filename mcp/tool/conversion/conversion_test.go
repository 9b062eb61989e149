package conversion

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ucmcp/ucmcp/uc"
)

func addParams() []uc.ParameterInfo {
	return []uc.ParameterInfo{
		{Name: "x", TypeName: uc.TypeInt, Position: 0},
		{Name: "y", TypeName: uc.TypeInt, Position: 1},
	}
}

func TestInputSchemaRequired(t *testing.T) {
	inputSchema, err := InputSchema(addParams())
	assert.NoError(t, err)

	assert.EqualValues(t, "object", inputSchema.Type)
	assert.EqualValues(t, []string{"x", "y"}, inputSchema.Required)
	assert.EqualValues(t, "integer", inputSchema.Properties["x"]["type"])
	assert.EqualValues(t, "integer", inputSchema.Properties["y"]["type"])
}

func TestInputSchemaOptionalWithDefault(t *testing.T) {
	inputSchema, err := InputSchema([]uc.ParameterInfo{
		{Name: "limit", TypeName: uc.TypeInt, Position: 0, ParameterDefault: "10"},
		{Name: "label", TypeName: uc.TypeString, Position: 1, Nullable: true},
	})
	assert.NoError(t, err)

	assert.Empty(t, inputSchema.Required)
	assert.EqualValues(t, float64(10), inputSchema.Properties["limit"]["default"])
	assert.NotContains(t, inputSchema.Properties["label"], "default")
}

func TestInputSchemaTypeMapping(t *testing.T) {
	cases := map[string]string{
		uc.TypeLong:      "integer",
		uc.TypeDouble:    "number",
		"DECIMAL(10,2)":  "number",
		uc.TypeBoolean:   "boolean",
		uc.TypeTimestamp: "string",
		"ARRAY<INT>":     "array",
		"MAP<STRING,INT>": "object",
	}
	for typeName, want := range cases {
		got, err := jsonTypeFor(typeName)
		assert.NoError(t, err, typeName)
		assert.EqualValues(t, want, got, typeName)
	}
}

func TestInputSchemaUnsupportedTypeFailsClosed(t *testing.T) {
	_, err := InputSchema([]uc.ParameterInfo{{Name: "v", TypeName: "GEOGRAPHY", Position: 0}})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "v")
}

func TestInputSchemaDeterministic(t *testing.T) {
	first, err := InputSchema(addParams())
	assert.NoError(t, err)
	second, err := InputSchema(addParams())
	assert.NoError(t, err)

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	assert.EqualValues(t, string(a), string(b))
}

func TestValidateArguments(t *testing.T) {
	inputSchema, err := InputSchema(addParams())
	assert.NoError(t, err)

	assert.NoError(t, ValidateArguments(inputSchema, map[string]interface{}{"x": 2, "y": 3}))

	err = ValidateArguments(inputSchema, map[string]interface{}{"x": 2})
	var vErr *ValidationError
	if assert.ErrorAs(t, err, &vErr) {
		assert.EqualValues(t, []string{"y"}, vErr.Fields)
	}

	err = ValidateArguments(inputSchema, map[string]interface{}{"x": 2, "y": 3, "z": 1})
	if assert.ErrorAs(t, err, &vErr) {
		assert.EqualValues(t, []string{"z"}, vErr.Fields)
	}

	err = ValidateArguments(inputSchema, map[string]interface{}{"x": "two", "y": 3})
	if assert.ErrorAs(t, err, &vErr) {
		assert.EqualValues(t, []string{"x"}, vErr.Fields)
	}

	// JSON numbers arrive as float64; integral values are acceptable integers.
	assert.NoError(t, ValidateArguments(inputSchema, map[string]interface{}{"x": float64(2), "y": float64(3)}))
	err = ValidateArguments(inputSchema, map[string]interface{}{"x": 2.5, "y": 3})
	assert.ErrorAs(t, err, &vErr)
}

func TestDecodeArgumentsAppliesDefaults(t *testing.T) {
	inputSchema, err := InputSchema([]uc.ParameterInfo{
		{Name: "name", TypeName: uc.TypeString, Position: 0},
		{Name: "limit", TypeName: uc.TypeInt, Position: 1, ParameterDefault: "10"},
	})
	assert.NoError(t, err)

	decoded, err := DecodeArguments(inputSchema, map[string]interface{}{"name": "test"})
	assert.NoError(t, err)
	assert.EqualValues(t, "test", decoded["name"])
	assert.EqualValues(t, float64(10), decoded["limit"])
}

func TestTypeFromInputSchema(t *testing.T) {
	inputSchema, err := InputSchema(addParams())
	assert.NoError(t, err)

	structType, err := TypeFromInputSchema(inputSchema)
	assert.NoError(t, err)
	assert.EqualValues(t, reflect.Struct, structType.Kind())

	field, ok := structType.FieldByName("X")
	if assert.True(t, ok, "expected X field in generated struct") {
		assert.EqualValues(t, reflect.Int64, field.Type.Kind())
		assert.EqualValues(t, `json:"x"`, string(field.Tag))
	}
}

func TestExportedName(t *testing.T) {
	cases := map[string]string{
		"max_results": "MaxResults",
		"name":        "Name",
		"page-token":  "PageToken",
		"1st":         "F1st",
	}
	for in, want := range cases {
		assert.EqualValues(t, want, exportedName(in), in)
	}
}
