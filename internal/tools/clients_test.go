package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleListClients_DefaultPagination(t *testing.T) {
	broker := newMockBroker(t, 200, `{"data":[],"meta":{"count":0}}`)
	clientTools := NewClientTools(broker.client())

	result, err := clientTools.handleListClients(context.Background(), newToolRequest(map[string]any{}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	assert.Equal(t, "GET", broker.lastMethod)
	assert.Equal(t, "/clients", broker.lastPath)
	require.Len(t, broker.lastQuery, 2, "only page and limit are sent by default")
	assert.Equal(t, []string{"1"}, broker.lastQuery["page"])
	assert.Equal(t, []string{"100"}, broker.lastQuery["limit"])
}

func TestHandleListClients_OverridesAndAllowList(t *testing.T) {
	broker := newMockBroker(t, 200, `{"data":[]}`)
	clientTools := NewClientTools(broker.client())

	result, err := clientTools.handleListClients(context.Background(), newToolRequest(map[string]any{
		"page":        float64(3),
		"limit":       float64(50),
		"clientid":    "abc",
		"clean_start": true,
		"proto_ver":   float64(5),
		"bogus":       "x",
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	assert.Equal(t, []string{"3"}, broker.lastQuery["page"])
	assert.Equal(t, []string{"50"}, broker.lastQuery["limit"])
	assert.Equal(t, []string{"abc"}, broker.lastQuery["clientid"])
	assert.Equal(t, []string{"true"}, broker.lastQuery["clean_start"])
	assert.Equal(t, []string{"5"}, broker.lastQuery["proto_ver"])
	assert.NotContains(t, broker.lastQuery, "bogus", "unknown keys are never forwarded")
}

func TestHandleListClients_FuzzyFilters(t *testing.T) {
	broker := newMockBroker(t, 200, `{"data":[]}`)
	clientTools := NewClientTools(broker.client())

	_, err := clientTools.handleListClients(context.Background(), newToolRequest(map[string]any{
		"like_clientid":   "sensor-",
		"like_username":   "iot",
		"like_ip_address": "10.0.",
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"sensor-"}, broker.lastQuery["like_clientid"])
	assert.Equal(t, []string{"iot"}, broker.lastQuery["like_username"])
	assert.Equal(t, []string{"10.0."}, broker.lastQuery["like_ip_address"])
}

func TestHandleGetClientInfo_MissingClientID(t *testing.T) {
	broker := newMockBroker(t, 200, `{}`)
	clientTools := NewClientTools(broker.client())

	result, err := clientTools.handleGetClientInfo(context.Background(), newToolRequest(map[string]any{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "Client ID is required")
	assert.Zero(t, broker.requestCount())
}

func TestHandleGetClientInfo_Success(t *testing.T) {
	broker := newMockBroker(t, 200, `{"clientid":"c1","connected":true}`)
	clientTools := NewClientTools(broker.client())

	result, err := clientTools.handleGetClientInfo(context.Background(), newToolRequest(map[string]any{
		"clientid": "c1",
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	assert.Equal(t, "GET", broker.lastMethod)
	assert.Equal(t, "/clients/c1", broker.lastPath)
	envelope := resultEnvelope(t, result)
	assert.Equal(t, map[string]any{"clientid": "c1", "connected": true}, envelope["result"])
}

func TestHandleKickClient_MissingClientID(t *testing.T) {
	broker := newMockBroker(t, 204, ``)
	clientTools := NewClientTools(broker.client())

	result, err := clientTools.handleKickClient(context.Background(), newToolRequest(map[string]any{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Zero(t, broker.requestCount())
}

func TestHandleKickClient_IssuesDelete(t *testing.T) {
	broker := newMockBroker(t, 204, ``)
	clientTools := NewClientTools(broker.client())

	result, err := clientTools.handleKickClient(context.Background(), newToolRequest(map[string]any{
		"clientid": "c1",
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	assert.Equal(t, "DELETE", broker.lastMethod)
	assert.Equal(t, "/clients/c1", broker.lastPath)
}

func TestHandleKickClient_NotFound(t *testing.T) {
	broker := newMockBroker(t, 404, `{"code":"CLIENTID_NOT_FOUND","message":"Client ID not found"}`)
	clientTools := NewClientTools(broker.client())

	result, err := clientTools.handleKickClient(context.Background(), newToolRequest(map[string]any{
		"clientid": "missing",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, "Client ID not found", resultText(t, result))
}
