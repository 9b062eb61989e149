package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/phuslu/log"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"

	"github.com/ucmcp/ucmcp/internal/conv"
	"github.com/ucmcp/ucmcp/mcp/tool"
	"github.com/ucmcp/ucmcp/mcp/tool/conversion"
	"github.com/ucmcp/ucmcp/uc"
)

// ChangeNotifier receives a signal after the advertised tool set changed.
// The protocol layer adapts it onto a tools/list_changed notification.
type ChangeNotifier interface {
	ToolListChanged(ctx context.Context)
}

// ListTools computes the advertised tool catalog: built-ins merged with the
// catalog functions enumerated on this call.
func (s *Service) ListTools(ctx context.Context) ([]mcpschema.Tool, error) {
	entries, err := s.tools(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]mcpschema.Tool, 0, len(entries))
	for _, e := range entries {
		result = append(result, mcpschema.Tool{
			Name:        e.name,
			Description: conv.Pointer(e.description),
			InputSchema: e.inputSchema,
		})
	}
	return result, nil
}

// CallTool resolves a tool call by name, validates the arguments against the
// resolved tool's schema and invokes the handler exactly once. Resolution
// order: built-in by exact name, then wire-name decode, then a raw
// fully-qualified name within the configured catalog and schema. An
// unresolvable name is an unknown-tool error, distinct from a validation
// failure and from a downstream execution failure.
func (s *Service) CallTool(ctx context.Context, name string, args map[string]interface{}, notifier ChangeNotifier) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	if entry, ok := s.builtinByName(name); ok {
		return s.callBuiltin(ctx, entry, args, notifier)
	}
	fn, ok := s.resolveRemote(name)
	if !ok {
		return nil, jsonrpc.NewError(jsonrpc.MethodNotFound, fmt.Sprintf("unknown tool: %v", name), nil)
	}
	return s.callRemote(ctx, fn, args)
}

func (s *Service) callBuiltin(ctx context.Context, entry *toolEntry, args map[string]interface{}, notifier ChangeNotifier) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	canonical, err := conversion.DecodeArguments(entry.inputSchema, args)
	if err != nil {
		return nil, validationError(err)
	}
	output, err := entry.handler(ctx, canonical)
	if err != nil {
		log.Debug().Err(err).Str("tool", entry.name).Msg("built-in tool failed")
		return errorResult(err), nil
	}
	// The advertised set changed: a freshly created function shows up in the
	// next listing. Exactly one notification per successful create.
	if entry.name == toolCreateFunction && notifier != nil {
		notifier.ToolListChanged(ctx)
	}
	return &mcpschema.CallToolResult{Content: normalizeContent(output)}, nil
}

func (s *Service) callRemote(ctx context.Context, fn tool.FunctionName, args map[string]interface{}) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	full := fn.Full()

	// Re-fetch the function to validate against its current schema; the
	// catalog is the source of truth and the advertised set is never cached.
	info, err := s.client.GetFunction(ctx, full)
	if err != nil {
		var notFound *uc.NotFoundError
		if errors.As(err, &notFound) {
			return nil, jsonrpc.NewError(jsonrpc.MethodNotFound, fmt.Sprintf("unknown tool: %v", full), nil)
		}
		return nil, jsonrpc.NewError(jsonrpc.InternalError, err.Error(), nil)
	}

	inputSchema, err := conversion.InputSchema(info.Parameters())
	if err != nil {
		return nil, jsonrpc.NewError(jsonrpc.InternalError,
			fmt.Sprintf("cannot build schema for %v: %v", full, err), nil)
	}
	canonical, err := conversion.DecodeArguments(inputSchema, args)
	if err != nil {
		return nil, validationError(err)
	}

	result, err := s.client.ExecuteFunction(ctx, full, canonical)
	if err != nil {
		log.Debug().Err(err).Str("function", full).Msg("remote execution failed")
		return errorResult(err), nil
	}
	if result != nil && result.Error != "" {
		return errorResult(fmt.Errorf("%s", result.Error)), nil
	}
	return &mcpschema.CallToolResult{Content: normalizeContent(result)}, nil
}

// resolveRemote maps a non-built-in tool name onto a fully-qualified catalog
// function: first via the wire-name mapping populated by listings, then by
// accepting a raw dotted name scoped to the configured catalog and schema.
func (s *Service) resolveRemote(name string) (tool.FunctionName, bool) {
	if fn, ok := s.codec.Decode(name); ok {
		return fn, true
	}
	if fn, ok := tool.ParseFunctionName(name); ok &&
		fn.Catalog == s.config.Catalog && fn.Schema == s.config.Schema {
		return fn, true
	}
	return tool.FunctionName{}, false
}

// validationError converts an argument check failure into a caller-visible
// invalid-params error carrying the offending fields.
func validationError(err error) *jsonrpc.Error {
	var vErr *conversion.ValidationError
	if errors.As(err, &vErr) {
		return jsonrpc.NewError(jsonrpc.InvalidParams, vErr.Error(), nil)
	}
	return jsonrpc.NewError(jsonrpc.InvalidParams, err.Error(), nil)
}
