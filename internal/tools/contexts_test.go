package tools

import (
	"encoding/json"
	"reflect"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleContextVariants_ClosedSet(t *testing.T) {
	assert.Len(t, ruleContextVariants, 17)

	expected := []string{
		"$bridges/mqtt:*",
		"alarm.activated",
		"alarm.deactivated",
		"client.check_authn_complete",
		"client.check_authz_complete",
		"client.connack",
		"client.connected",
		"client.disconnected",
		"delivery.dropped",
		"message.acked",
		"message.delivered",
		"message.dropped",
		"message.publish",
		"message.transformation_failed",
		"schema.validation_failed",
		"session.subscribed",
		"session.unsubscribed",
	}
	assert.Equal(t, expected, ruleEvents())
}

func TestRuleEvents_SortedAndStable(t *testing.T) {
	events := ruleEvents()
	assert.True(t, sort.StringsAreSorted(events))
	assert.Equal(t, events, ruleEvents())
}

// Every context variant must expose the event/event_type discriminator pair
// in its JSON shape.
func TestRuleContextVariants_CarryDiscriminatorFields(t *testing.T) {
	for event, variant := range ruleContextVariants {
		data, err := json.Marshal(variant)
		require.NoError(t, err, "variant for %s", event)

		var fields map[string]any
		require.NoError(t, json.Unmarshal(data, &fields))
		assert.Contains(t, fields, "event", "variant for %s", event)
		assert.Contains(t, fields, "event_type", "variant for %s", event)
	}
}

func TestPublishContext_JSONShape(t *testing.T) {
	context := PublishContext{
		Event:             "message.publish",
		EventType:         "message_publish",
		ID:                "0005E27C",
		ClientID:          "c1",
		Username:          "u1",
		Payload:           "hello",
		Peerhost:          "127.0.0.1",
		Topic:             "t/1",
		PublishReceivedAt: 1700000000000,
		QoS:               1,
	}

	data, err := json.Marshal(context)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"event": "message.publish",
		"event_type": "message_publish",
		"id": "0005E27C",
		"clientid": "c1",
		"username": "u1",
		"payload": "hello",
		"peerhost": "127.0.0.1",
		"topic": "t/1",
		"publish_received_at": 1700000000000,
		"qos": 1
	}`, string(data))
}

// The variants are documentation for an untyped pass-through boundary; each
// one must be a plain struct, not a pointer or interface wrapper.
func TestRuleContextVariants_AreStructs(t *testing.T) {
	for event, variant := range ruleContextVariants {
		assert.Equal(t, reflect.Struct, reflect.TypeOf(variant).Kind(), "variant for %s", event)
	}
}
