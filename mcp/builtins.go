package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpschema "github.com/viant/mcp-protocol/schema"

	"github.com/ucmcp/ucmcp/internal/conv"
	"github.com/ucmcp/ucmcp/mcp/tool"
	"github.com/ucmcp/ucmcp/uc"
)

// Built-in administrative tool names. Built-ins always win a name collision
// against a same-named catalog function.
const (
	toolListFunctions  = "uc_list_functions"
	toolGetFunction    = "uc_get_function"
	toolCreateFunction = "uc_create_function"
)

// listFunctionsArgs are the arguments of uc_list_functions. All fields are
// advisory pass-through to the catalog client; nothing is enforced locally.
type listFunctionsArgs struct {
	MaxResults *int64   `json:"max_results,omitempty"`
	PageToken  *string  `json:"page_token,omitempty"`
	Timeout    *float64 `json:"timeout,omitempty"`
}

type getFunctionArgs struct {
	Name string `json:"name"`
}

// parameterDefinition is one declarative parameter of uc_create_function.
type parameterDefinition struct {
	Name     string `json:"name"`
	TypeName string `json:"type_name"`
	Comment  string `json:"comment,omitempty"`
	Nullable bool   `json:"nullable,omitempty"`
	Default  string `json:"default,omitempty"`
}

// createFunctionArgs is the declarative function definition forwarded to the
// catalog. The routine body is never evaluated by the gateway.
type createFunctionArgs struct {
	Name              string                `json:"name"`
	RoutineDefinition string                `json:"routine_definition"`
	Comment           string                `json:"comment,omitempty"`
	Parameters        []parameterDefinition `json:"parameters,omitempty"`
	DataType          string                `json:"data_type,omitempty"`
}

// registerBuiltins populates the fixed, ordered built-in tool table.
func (s *Service) registerBuiltins() {
	s.builtins = []toolEntry{
		{
			name: toolListFunctions,
			description: "List functions within the specified parent catalog and schema. " +
				"There is no guarantee of a specific ordering of the elements in the array.",
			inputSchema: mcpschema.ToolInputSchema{
				Type: "object",
				Properties: map[string]map[string]interface{}{
					"max_results": {"type": "integer", "description": "Maximum number of functions to return."},
					"page_token":  {"type": "string", "description": "Opaque pagination token to go to next page based on previous query."},
					"timeout":     {"type": "number", "description": "Maximum time (in seconds) to wait for the request to complete."},
				},
			},
			handler: s.handleListFunctions,
		},
		{
			name: toolGetFunction,
			description: "Get a function within a parent catalog and schema. " +
				"The function is resolved against the configured catalog and schema.",
			inputSchema: mcpschema.ToolInputSchema{
				Type: "object",
				Properties: map[string]map[string]interface{}{
					"name": {"type": "string", "description": "Name of the function, relative to the configured parent schema."},
				},
				Required: []string{"name"},
			},
			handler: s.handleGetFunction,
		},
		{
			name: toolCreateFunction,
			description: "Create a function within the configured parent catalog and schema from a " +
				"declarative definition. The routine body is registered with the catalog verbatim, " +
				"never executed by this server.",
			inputSchema: mcpschema.ToolInputSchema{
				Type: "object",
				Properties: map[string]map[string]interface{}{
					"name":               {"type": "string", "description": "Name of the function to create."},
					"routine_definition": {"type": "string", "description": "Routine body registered with the catalog."},
					"comment":            {"type": "string", "description": "Free-text description of the function."},
					"parameters": {
						"type": "array",
						"description": "Input parameters: objects with name, type_name and " +
							"optional comment, nullable and default.",
					},
					"data_type": {"type": "string", "description": "Return type of the function.", "default": uc.TypeString},
				},
				Required: []string{"name", "routine_definition"},
			},
			handler: s.handleCreateFunction,
		},
	}

	s.builtinIndex = make(map[string]*toolEntry, len(s.builtins))
	for i := range s.builtins {
		s.builtinIndex[s.builtins[i].name] = &s.builtins[i]
	}
}

// builtinByName resolves a built-in tool by exact name.
func (s *Service) builtinByName(name string) (*toolEntry, bool) {
	entry, ok := s.builtinIndex[name]
	return entry, ok
}

func (s *Service) handleListFunctions(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	var in listFunctionsArgs
	if err := conv.Convert(args, &in); err != nil {
		return nil, err
	}
	request := uc.ListFunctionsRequest{
		Catalog:    s.config.Catalog,
		Schema:     s.config.Schema,
		MaxResults: int(conv.Dereference(in.MaxResults)),
		PageToken:  conv.Dereference(in.PageToken),
		Timeout:    conv.Dereference(in.Timeout),
	}
	return s.client.ListFunctions(ctx, request)
}

func (s *Service) handleGetFunction(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	var in getFunctionArgs
	if err := conv.Convert(args, &in); err != nil {
		return nil, err
	}
	full := tool.FunctionName{Catalog: s.config.Catalog, Schema: s.config.Schema, Name: in.Name}
	return s.client.GetFunction(ctx, full.Full())
}

func (s *Service) handleCreateFunction(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	var in createFunctionArgs
	if err := conv.Convert(args, &in); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.RoutineDefinition) == "" {
		return nil, fmt.Errorf("routine_definition must not be empty")
	}
	if in.DataType == "" {
		in.DataType = uc.TypeString
	}

	params := make([]uc.ParameterInfo, 0, len(in.Parameters))
	for i, p := range in.Parameters {
		if p.Name == "" || p.TypeName == "" {
			return nil, fmt.Errorf("parameter %d: name and type_name are required", i)
		}
		params = append(params, uc.ParameterInfo{
			Name:             p.Name,
			TypeName:         strings.ToUpper(p.TypeName),
			Position:         i,
			Nullable:         p.Nullable,
			ParameterDefault: p.Default,
			Comment:          p.Comment,
		})
	}

	request := uc.CreateFunctionRequest{FunctionInfo: uc.FunctionInfo{
		Name:              in.Name,
		CatalogName:       s.config.Catalog,
		SchemaName:        s.config.Schema,
		Comment:           in.Comment,
		DataType:          strings.ToUpper(in.DataType),
		RoutineDefinition: in.RoutineDefinition,
	}}
	if len(params) > 0 {
		request.FunctionInfo.InputParams = &uc.ParameterInfos{Parameters: params}
	}
	return s.client.CreateFunction(ctx, request)
}
