package mcp

import (
	"context"
	"errors"

	"github.com/phuslu/log"
	mcpschema "github.com/viant/mcp-protocol/schema"

	"github.com/ucmcp/ucmcp/mcp/tool"
	"github.com/ucmcp/ucmcp/mcp/tool/conversion"
	"github.com/ucmcp/ucmcp/uc"
)

// toolEntry holds metadata and execution handler for one advertised tool.
// Only built-ins carry a handler; catalog entries are metadata-only and every
// call to them routes through the dispatcher, which validates against the
// function's current schema before executing remotely.
type toolEntry struct {
	name        string
	description string
	inputSchema mcpschema.ToolInputSchema
	handler     func(ctx context.Context, args map[string]interface{}) (interface{}, error)
}

// tools returns the full advertised tool set: built-ins first, then the
// catalog functions enumerated on this very call. The dynamic part is never
// cached; the remote catalog is the source of truth and stale capability
// lists must not be served.
func (s *Service) tools(ctx context.Context) ([]toolEntry, error) {
	dynamic, err := s.dynamicTools(ctx)
	if err != nil {
		return nil, err
	}
	return mergeToolEntries(s.builtins, dynamic), nil
}

// dynamicTools enumerates every function in the configured catalog+schema
// pair and projects each into a tool entry. Paging is transparent: all pages
// are consumed before returning. A function that cannot be projected (schema
// generation failure, name collision) is omitted from the result with a
// logged warning rather than failing the whole listing.
func (s *Service) dynamicTools(ctx context.Context) ([]toolEntry, error) {
	var entries []toolEntry
	pageToken := ""
	for {
		page, err := s.client.ListFunctions(ctx, uc.ListFunctionsRequest{
			Catalog:   s.config.Catalog,
			Schema:    s.config.Schema,
			PageToken: pageToken,
		})
		if err != nil {
			return nil, err
		}
		for _, fn := range page.Functions {
			if entry, ok := s.projectFunction(fn); ok {
				entries = append(entries, entry)
			}
		}
		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}
	return entries, nil
}

// projectFunction turns one catalog function into a tool entry. The bool
// result reports whether the function is advertisable.
func (s *Service) projectFunction(fn uc.FunctionInfo) (toolEntry, bool) {
	catalog, schema := fn.CatalogName, fn.SchemaName
	if catalog == "" {
		catalog = s.config.Catalog
	}
	if schema == "" {
		schema = s.config.Schema
	}
	full := tool.FunctionName{Catalog: catalog, Schema: schema, Name: fn.Name}

	// Compare the wire form, not the raw name: a function like "uc get_function"
	// sanitizes onto a built-in name and would otherwise vanish in the merge
	// without a trace.
	if _, clash := s.builtinIndex[tool.WireName(fn.Name)]; clash {
		log.Warn().Str("function", full.Full()).Msg("function name shadows a built-in tool, omitted from listing")
		return toolEntry{}, false
	}

	inputSchema, err := conversion.InputSchema(fn.Parameters())
	if err != nil {
		log.Warn().Err(err).Str("function", full.Full()).Msg("cannot generate input schema, omitted from listing")
		return toolEntry{}, false
	}

	wire, err := s.codec.Encode(catalog, schema, fn.Name)
	if err != nil {
		if errors.Is(err, tool.ErrCollision) {
			log.Warn().Err(err).Str("function", full.Full()).Msg("wire name collision, omitted from listing")
			return toolEntry{}, false
		}
		log.Warn().Err(err).Str("function", full.Full()).Msg("cannot encode wire name, omitted from listing")
		return toolEntry{}, false
	}

	return toolEntry{
		name:        wire,
		description: fn.Comment,
		inputSchema: inputSchema,
	}, true
}

// mergeToolEntries concatenates the entry sets, skipping duplicates so that
// every registration path behaves consistently. The first definition of a
// name wins, which gives built-ins precedence over same-named catalog
// functions.
func mergeToolEntries(sets ...[]toolEntry) []toolEntry {
	size := 0
	for _, set := range sets {
		size += len(set)
	}
	existing := make(map[string]struct{}, size)
	merged := make([]toolEntry, 0, size)
	for _, set := range sets {
		for _, e := range set {
			if _, dup := existing[e.name]; dup {
				continue
			}
			existing[e.name] = struct{}{}
			merged = append(merged, e)
		}
	}
	return merged
}
