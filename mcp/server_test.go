package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	mcpschema "github.com/viant/mcp-protocol/schema"

	"github.com/ucmcp/ucmcp/uc"
)

// The protocol-facing handler must serve the dispatcher through the plain
// operation request shapes so that listing recomputes the advertised set per
// request instead of replaying the connection-time registry snapshot.
func TestGatewayHandlerServesDispatcher(t *testing.T) {
	client := &mockCatalog{pages: []uc.FunctionInfoList{{Functions: []uc.FunctionInfo{addFunction()}}}}
	svc := newTestService(t, client)
	notifier := &countingNotifier{}
	h := &gatewayHandler{service: svc, notifier: notifier}

	listResult, listErr := h.ListTools(context.Background(), &mcpschema.ListToolsRequest{})
	assert.Nil(t, listErr)
	if assert.NotNil(t, listResult) {
		assert.Len(t, listResult.Tools, 4)
	}

	callResult, callErr := h.CallTool(context.Background(), &mcpschema.CallToolRequest{
		Params: mcpschema.CallToolRequestParams{
			Name:      "add",
			Arguments: mcpschema.CallToolRequestParamsArguments{"x": 2, "y": 3},
		},
	})
	assert.Nil(t, callErr)
	assert.NotNil(t, callResult)
	assert.Len(t, client.executeCalls, 1)
}

func TestGatewayHandlerNotifiesOnCreate(t *testing.T) {
	client := &mockCatalog{}
	svc := newTestService(t, client)
	notifier := &countingNotifier{}
	h := &gatewayHandler{service: svc, notifier: notifier}

	result, callErr := h.CallTool(context.Background(), &mcpschema.CallToolRequest{
		Params: mcpschema.CallToolRequestParams{
			Name: toolCreateFunction,
			Arguments: mcpschema.CallToolRequestParamsArguments{
				"name":               "greet",
				"routine_definition": "return 'hi'",
			},
		},
	})
	assert.Nil(t, callErr)
	assert.NotNil(t, result)
	assert.EqualValues(t, 1, notifier.count)
}
