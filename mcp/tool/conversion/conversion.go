package conversion

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	schema "github.com/viant/mcp-protocol/schema"
	"github.com/viant/x"

	"github.com/ucmcp/ucmcp/uc"
)

// typeRegistry holds dynamic Go types generated from input schemas.
var typeRegistry = x.NewRegistry()

// Registry returns the registry of dynamic types.
func Registry() *x.Registry {
	return typeRegistry
}

// RegisterType registers a Go type for schema-based conversion.
func RegisterType(t reflect.Type, options ...x.Option) {
	typeRegistry.Register(x.NewType(t, options...))
}

// ------------------------------------------------------------------
//  Catalog parameter list → MCP input schema
// ------------------------------------------------------------------

// InputSchema builds the tool input schema for a catalog function's
// parameter list. The result is deterministic for a given parameter list:
// properties are derived per parameter and the required list is ordered by
// parameter position, so clients may cache schemas by tool name.
//
// A parameter is required when it is not nullable and declares no default.
// An unrecognized parameter type yields an error so that the caller can omit
// that one function from the advertised set instead of shipping a schema the
// arguments could never validate against.
func InputSchema(params []uc.ParameterInfo) (schema.ToolInputSchema, error) {
	result := schema.ToolInputSchema{
		Type:       "object",
		Properties: make(map[string]map[string]interface{}, len(params)),
	}

	ordered := make([]uc.ParameterInfo, len(params))
	copy(ordered, params)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Position < ordered[j].Position })

	for _, param := range ordered {
		jsonType, err := jsonTypeFor(param.TypeName)
		if err != nil {
			return schema.ToolInputSchema{}, fmt.Errorf("parameter %q: %w", param.Name, err)
		}
		prop := map[string]interface{}{"type": jsonType}
		if param.Comment != "" {
			prop["description"] = param.Comment
		}
		hasDefault := param.ParameterDefault != ""
		if hasDefault {
			prop["default"] = parseDefault(param.ParameterDefault, jsonType)
		}
		result.Properties[param.Name] = prop

		if !param.Nullable && !hasDefault {
			result.Required = append(result.Required, param.Name)
		}
	}
	return result, nil
}

// jsonTypeFor maps a catalog type name to its JSON schema type. Unknown
// types fail closed.
func jsonTypeFor(typeName string) (string, error) {
	base := typeName
	if idx := strings.IndexAny(base, "(<"); idx != -1 {
		base = base[:idx]
	}
	switch strings.ToUpper(strings.TrimSpace(base)) {
	case uc.TypeInt, uc.TypeLong, uc.TypeShort, uc.TypeByte:
		return "integer", nil
	case uc.TypeFloat, uc.TypeDouble, uc.TypeDecimal:
		return "number", nil
	case uc.TypeBoolean:
		return "boolean", nil
	case uc.TypeString, uc.TypeChar, uc.TypeVarchar, uc.TypeBinary,
		uc.TypeDate, uc.TypeTimestamp, uc.TypeTimestampNTZ, uc.TypeInterval:
		return "string", nil
	case uc.TypeArray:
		return "array", nil
	case uc.TypeMap, uc.TypeStruct:
		return "object", nil
	default:
		return "", fmt.Errorf("unsupported catalog type %q", typeName)
	}
}

// parseDefault turns the catalog's textual default into a JSON value of the
// declared type, falling back to the raw text when it does not parse.
func parseDefault(raw, jsonType string) interface{} {
	if jsonType == "string" {
		return strings.Trim(raw, "'\"")
	}
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return v
	}
	return raw
}

// ------------------------------------------------------------------
//  Argument validation & decoding
// ------------------------------------------------------------------

// ValidationError carries the offending fields of a failed argument check.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid arguments: %s (%s)", e.Reason, strings.Join(e.Fields, ", "))
}

// ValidateArguments checks the argument map against the schema: every
// required property must be present, no unknown properties are accepted and
// each value must match its declared JSON type. Defaults declared by the
// schema are not treated as missing fields.
func ValidateArguments(inputSchema schema.ToolInputSchema, args map[string]interface{}) error {
	var missing []string
	for _, name := range inputSchema.Required {
		if _, ok := args[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &ValidationError{Fields: missing, Reason: "missing required"}
	}

	var unknown, mismatched []string
	for name, value := range args {
		prop, ok := inputSchema.Properties[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		declared, _ := prop["type"].(string)
		if value != nil && !matchesJSONType(value, declared) {
			mismatched = append(mismatched, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return &ValidationError{Fields: unknown, Reason: "unknown"}
	}
	if len(mismatched) > 0 {
		sort.Strings(mismatched)
		return &ValidationError{Fields: mismatched, Reason: "type mismatch"}
	}
	return nil
}

func matchesJSONType(value interface{}, jsonType string) bool {
	switch jsonType {
	case "string":
		_, ok := value.(string)
		return ok
	case "boolean":
		_, ok := value.(bool)
		return ok
	case "integer":
		switch v := value.(type) {
		case int, int32, int64:
			return true
		case float64:
			return v == float64(int64(v))
		case json.Number:
			_, err := v.Int64()
			return err == nil
		}
		return false
	case "number":
		switch value.(type) {
		case int, int32, int64, float32, float64, json.Number:
			return true
		}
		return false
	case "array":
		return reflect.ValueOf(value).Kind() == reflect.Slice
	case "object":
		return reflect.ValueOf(value).Kind() == reflect.Map
	default:
		// No declared type constrains nothing.
		return true
	}
}

// DecodeArguments validates args against the schema, fills declared defaults
// for absent optional properties and round-trips the result through a
// dynamically generated struct type so the caller gets a canonical argument
// map. The generated type is cached in the shared registry.
func DecodeArguments(inputSchema schema.ToolInputSchema, args map[string]interface{}) (map[string]interface{}, error) {
	if args == nil {
		args = map[string]interface{}{}
	}
	if err := ValidateArguments(inputSchema, args); err != nil {
		return nil, err
	}

	canonical := make(map[string]interface{}, len(inputSchema.Properties))
	for name, prop := range inputSchema.Properties {
		if value, ok := args[name]; ok {
			canonical[name] = value
			continue
		}
		if def, ok := prop["default"]; ok {
			canonical[name] = def
		}
	}

	structType, err := TypeFromInputSchema(inputSchema)
	if err != nil {
		return nil, err
	}
	if structType.NumField() == 0 {
		return canonical, nil
	}
	data, err := json.Marshal(canonical)
	if err != nil {
		return nil, err
	}
	instance := reflect.New(structType).Interface()
	if err := json.Unmarshal(data, instance); err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}
	return canonical, nil
}

// ------------------------------------------------------------------
//  JSON Schema → Go reflect.Type helpers
// ------------------------------------------------------------------

// TypeFromInputSchema converts a tool input schema into a dynamically
// generated Go struct type suitable for decoding argument payloads. When the
// schema does not define any properties an empty struct type is returned.
func TypeFromInputSchema(inputSchema schema.ToolInputSchema) (reflect.Type, error) {
	if len(inputSchema.Properties) == 0 {
		return reflect.StructOf([]reflect.StructField{}), nil
	}

	fields, err := buildFields(inputSchema.Properties, inputSchema.Required)
	if err != nil {
		return nil, err
	}

	t := reflect.StructOf(fields)
	// Keep the dynamically generated type in the registry so it can be reused
	// across calls against the same tool.
	RegisterType(t)
	return t, nil
}

func buildFields(props map[string]map[string]interface{}, required []string) ([]reflect.StructField, error) {
	keys := make([]string, 0, len(props))
	for name := range props {
		keys = append(keys, name)
	}
	sort.Strings(keys)

	requiredSet := make(map[string]struct{}, len(required))
	for _, n := range required {
		requiredSet[n] = struct{}{}
	}

	var fields []reflect.StructField
	for _, name := range keys {
		def := props[name]
		fieldType, err := goTypeFromDef(def)
		if err != nil {
			return nil, fmt.Errorf("failed to determine type for field %q: %w", name, err)
		}
		tagName := name
		if _, ok := requiredSet[name]; !ok {
			tagName += ",omitempty"
		}
		fields = append(fields, reflect.StructField{
			Name: exportedName(name),
			Type: fieldType,
			Tag:  reflect.StructTag(fmt.Sprintf("json:%q", tagName)),
		})
	}
	return fields, nil
}

// exportedName turns a property name like "max_results" into an exported Go
// identifier ("MaxResults").
func exportedName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	})
	if len(parts) == 0 {
		return "Field"
	}
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	result := b.String()
	if result[0] >= '0' && result[0] <= '9' {
		result = "F" + result
	}
	return result
}

func goTypeFromDef(def map[string]interface{}) (reflect.Type, error) {
	rawType := def["type"]
	var typeStr string
	switch v := rawType.(type) {
	case string:
		typeStr = v
	case []interface{}:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				typeStr = s
			}
		}
	}
	switch typeStr {
	case "string":
		return reflect.TypeOf(""), nil
	case "integer":
		return reflect.TypeOf(int64(0)), nil
	case "number":
		return reflect.TypeOf(float64(0)), nil
	case "boolean":
		return reflect.TypeOf(true), nil
	case "object":
		return reflect.TypeOf(map[string]interface{}{}), nil
	case "array":
		return reflect.SliceOf(reflect.TypeOf(new(interface{})).Elem()), nil
	default:
		return reflect.TypeOf(new(interface{})).Elem(), nil
	}
}
