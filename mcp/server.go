package mcp

import (
	"context"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	protocolclient "github.com/viant/mcp-protocol/client"
	"github.com/viant/mcp-protocol/logger"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
)

// methodToolsListChanged is the notification emitted after a successful
// create-function call.
const methodToolsListChanged = "notifications/tools/list_changed"

// NewHandler returns an MCP implementer backed by the dispatcher. The
// per-connection registry is seeded with the current tool set so that every
// transport sees a consistent catalog; listing and calling delegate to the
// dispatcher which recomputes the dynamic set per request.
func (s *Service) NewHandler(ctx context.Context, notifier transport.Notifier, l logger.Logger, cli protocolclient.Operations) (serverproto.Handler, error) {
	impl := serverproto.NewDefaultHandler(notifier, l, cli)
	h := &gatewayHandler{
		DefaultHandler: impl,
		service:        s,
		notifier:       &notifierAdapter{notifier: notifier},
	}

	tools, err := s.tools(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tools {
		entry := tools[i]
		toolEntry := &serverproto.ToolEntry{
			Metadata: mcpschema.Tool{
				Name:        entry.name,
				Description: &tools[i].description,
				InputSchema: entry.inputSchema,
			},
		}
		toolEntry.Handler = func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
			return s.CallTool(ctx, request.Params.Name, request.Params.Arguments, h.notifier)
		}
		impl.Registry.ToolRegistry.Put(entry.name, toolEntry)
	}
	return h, nil
}

// gatewayHandler overrides the registry-backed list/call operations with the
// dispatcher so that the advertised set is recomputed on every listing.
type gatewayHandler struct {
	*serverproto.DefaultHandler
	service  *Service
	notifier ChangeNotifier
}

// The overrides must keep the exact operation signatures, otherwise the
// promoted registry-backed methods would be shadowed without replacing them.
var _ serverproto.Handler = (*gatewayHandler)(nil)

func (h *gatewayHandler) ListTools(ctx context.Context, request *mcpschema.ListToolsRequest) (*mcpschema.ListToolsResult, *jsonrpc.Error) {
	tools, err := h.service.ListTools(ctx)
	if err != nil {
		return nil, jsonrpc.NewError(jsonrpc.InternalError, err.Error(), nil)
	}
	return &mcpschema.ListToolsResult{Tools: tools}, nil
}

func (h *gatewayHandler) CallTool(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	return h.service.CallTool(ctx, request.Params.Name, request.Params.Arguments, h.notifier)
}

// notifierAdapter bridges the dispatcher's change signal onto the transport
// notification channel.
type notifierAdapter struct {
	notifier transport.Notifier
}

func (n *notifierAdapter) ToolListChanged(ctx context.Context) {
	if n.notifier == nil {
		return
	}
	_ = n.notifier.Notify(ctx, &jsonrpc.Notification{Method: methodToolsListChanged})
}
