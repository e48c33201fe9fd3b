package tools

import "sort"

// The rule_test endpoint accepts a context object describing a sample broker
// event for the SQL under test. The accepted shapes form a closed set
// discriminated by the event/event_type field pair. The adapter forwards the
// context verbatim and never deep-validates it against its variant; the types
// below document the boundary and feed the tool schema.

// PublishContext is the sample payload for a message.publish event.
type PublishContext struct {
	Event             string `json:"event"`      // "message.publish"
	EventType         string `json:"event_type"` // "message_publish"
	ID                string `json:"id"`
	ClientID          string `json:"clientid"`
	Username          string `json:"username,omitempty"`
	Payload           string `json:"payload"`
	Peerhost          string `json:"peerhost"`
	Topic             string `json:"topic"`
	PublishReceivedAt int64  `json:"publish_received_at"`
	QoS               int    `json:"qos"`
}

// SubscribeContext is the sample payload for a session.subscribed event.
type SubscribeContext struct {
	Event     string `json:"event"`      // "session.subscribed"
	EventType string `json:"event_type"` // "session_subscribed"
	ID        string `json:"id"`
	ClientID  string `json:"clientid"`
	Username  string `json:"username,omitempty"`
	Payload   string `json:"payload"`
	Peerhost  string `json:"peerhost"`
	Topic     string `json:"topic"`
	QoS       int    `json:"qos"`
}

// UnsubscribeContext is the sample payload for a session.unsubscribed event.
type UnsubscribeContext struct {
	Event     string `json:"event"`      // "session.unsubscribed"
	EventType string `json:"event_type"` // "session_unsubscribed"
	ID        string `json:"id"`
	ClientID  string `json:"clientid"`
	Username  string `json:"username,omitempty"`
	Payload   string `json:"payload"`
	Peerhost  string `json:"peerhost"`
	Topic     string `json:"topic"`
	QoS       int    `json:"qos"`
}

// DeliveredContext is the sample payload for a message.delivered event.
type DeliveredContext struct {
	Event        string `json:"event"`      // "message.delivered"
	EventType    string `json:"event_type"` // "message_delivered"
	ID           string `json:"id"`
	FromClientID string `json:"from_clientid"`
	FromUsername string `json:"from_username,omitempty"`
	ClientID     string `json:"clientid"`
	Username     string `json:"username,omitempty"`
	Payload      string `json:"payload"`
	Peerhost     string `json:"peerhost"`
	Topic        string `json:"topic"`
	QoS          int    `json:"qos"`
}

// AckedContext is the sample payload for a message.acked event.
type AckedContext struct {
	Event        string `json:"event"`      // "message.acked"
	EventType    string `json:"event_type"` // "message_acked"
	ID           string `json:"id"`
	FromClientID string `json:"from_clientid"`
	FromUsername string `json:"from_username,omitempty"`
	ClientID     string `json:"clientid"`
	Username     string `json:"username,omitempty"`
	Payload      string `json:"payload"`
	Peerhost     string `json:"peerhost"`
	Topic        string `json:"topic"`
	QoS          int    `json:"qos"`
}

// DroppedContext is the sample payload for a message.dropped event.
type DroppedContext struct {
	Event     string `json:"event"`      // "message.dropped"
	EventType string `json:"event_type"` // "message_dropped"
	ID        string `json:"id"`
	Reason    string `json:"reason"`
	ClientID  string `json:"clientid"`
	Username  string `json:"username,omitempty"`
	Payload   string `json:"payload"`
	Peerhost  string `json:"peerhost"`
	Topic     string `json:"topic"`
	QoS       int    `json:"qos"`
}

// ConnectedContext is the sample payload for a client.connected event.
type ConnectedContext struct {
	Event          string `json:"event"`      // "client.connected"
	EventType      string `json:"event_type"` // "client_connected"
	ClientID       string `json:"clientid"`
	Username       string `json:"username,omitempty"`
	Mountpoint     string `json:"mountpoint"`
	Peername       string `json:"peername"`
	Sockname       string `json:"sockname"`
	ProtoName      string `json:"proto_name"`
	ProtoVer       string `json:"proto_ver"`
	Keepalive      int    `json:"keepalive"`
	CleanStart     bool   `json:"clean_start"`
	ExpiryInterval int    `json:"expiry_interval"`
	IsBridge       bool   `json:"is_bridge"`
	ConnectedAt    int64  `json:"connected_at"`
}

// DisconnectedContext is the sample payload for a client.disconnected event.
type DisconnectedContext struct {
	Event          string `json:"event"`      // "client.disconnected"
	EventType      string `json:"event_type"` // "client_disconnected"
	ClientID       string `json:"clientid"`
	Username       string `json:"username,omitempty"`
	Reason         string `json:"reason"`
	Peername       string `json:"peername"`
	Sockname       string `json:"sockname"`
	DisconnectedAt int64  `json:"disconnected_at"`
}

// ConnackContext is the sample payload for a client.connack event.
type ConnackContext struct {
	Event          string `json:"event"`      // "client.connack"
	EventType      string `json:"event_type"` // "client_connack"
	ReasonCode     string `json:"reason_code"`
	ClientID       string `json:"clientid"`
	CleanStart     bool   `json:"clean_start"`
	Username       string `json:"username,omitempty"`
	Peername       string `json:"peername"`
	Sockname       string `json:"sockname"`
	ProtoName      string `json:"proto_name"`
	ProtoVer       string `json:"proto_ver"`
	Keepalive      int    `json:"keepalive"`
	ExpiryInterval int    `json:"expiry_interval"`
	ConnectedAt    int64  `json:"connected_at"`
}

// CheckAuthzCompleteContext is the sample payload for a
// client.check_authz_complete event.
type CheckAuthzCompleteContext struct {
	Event       string `json:"event"`      // "client.check_authz_complete"
	EventType   string `json:"event_type"` // "client_check_authz_complete"
	ClientID    string `json:"clientid"`
	Username    string `json:"username,omitempty"`
	Peerhost    string `json:"peerhost"`
	Topic       string `json:"topic"`
	Action      string `json:"action"`
	AuthzSource string `json:"authz_source"`
	Result      string `json:"result"`
}

// CheckAuthnCompleteContext is the sample payload for a
// client.check_authn_complete event.
type CheckAuthnCompleteContext struct {
	Event       string `json:"event"`      // "client.check_authn_complete"
	EventType   string `json:"event_type"` // "client_check_authn_complete"
	ClientID    string `json:"clientid"`
	Username    string `json:"username,omitempty"`
	ReasonCode  string `json:"reason_code"`
	Peername    string `json:"peername"`
	IsAnonymous bool   `json:"is_anonymous,omitempty"`
	IsSuperuser bool   `json:"is_superuser,omitempty"`
}

// BridgeMQTTContext is the sample payload for a message received over an MQTT
// bridge. The event tag carries the bridge name, e.g. "$bridges/mqtt:my_bridge".
type BridgeMQTTContext struct {
	Event             string `json:"event"`
	EventType         string `json:"event_type"`
	ID                string `json:"id"`
	Payload           string `json:"payload"`
	Topic             string `json:"topic"`
	Server            string `json:"server"`
	Dup               string `json:"dup"`
	Retain            string `json:"retain"`
	MessageReceivedAt int64  `json:"message_received_at"`
	QoS               int    `json:"qos"`
}

// DeliveryDroppedContext is the sample payload for a delivery.dropped event.
type DeliveryDroppedContext struct {
	Event        string `json:"event"`      // "delivery.dropped"
	EventType    string `json:"event_type"` // "delivery_dropped"
	ID           string `json:"id"`
	Reason       string `json:"reason"`
	FromClientID string `json:"from_clientid"`
	FromUsername string `json:"from_username,omitempty"`
	ClientID     string `json:"clientid"`
	Username     string `json:"username,omitempty"`
	Payload      string `json:"payload"`
	Peerhost     string `json:"peerhost"`
	Topic        string `json:"topic"`
	QoS          int    `json:"qos"`
}

// SchemaValidationFailedContext is the sample payload for a
// schema.validation_failed event.
type SchemaValidationFailedContext struct {
	Event      string `json:"event"`      // "schema.validation_failed"
	EventType  string `json:"event_type"` // "schema_validation_failed"
	Validation string `json:"validation"`
	ClientID   string `json:"clientid"`
	Username   string `json:"username,omitempty"`
	Payload    string `json:"payload"`
	Peerhost   string `json:"peerhost"`
	Topic      string `json:"topic"`
	QoS        int    `json:"qos"`
}

// MessageTransformationFailedContext is the sample payload for a
// message.transformation_failed event.
type MessageTransformationFailedContext struct {
	Event          string `json:"event"`      // "message.transformation_failed"
	EventType      string `json:"event_type"` // "message_transformation_failed"
	Transformation string `json:"transformation"`
	ClientID       string `json:"clientid"`
	Username       string `json:"username,omitempty"`
	Payload        string `json:"payload"`
	Peerhost       string `json:"peerhost"`
	Topic          string `json:"topic"`
	QoS            int    `json:"qos"`
}

// AlarmActivatedContext is the sample payload for an alarm.activated event.
type AlarmActivatedContext struct {
	Event       string         `json:"event"`      // "alarm.activated"
	EventType   string         `json:"event_type"` // "alarm_activated"
	Name        string         `json:"name"`
	Message     string         `json:"message"`
	Details     map[string]any `json:"details"`
	ActivatedAt int64          `json:"activated_at"`
}

// AlarmDeactivatedContext is the sample payload for an alarm.deactivated event.
type AlarmDeactivatedContext struct {
	Event         string         `json:"event"`      // "alarm.deactivated"
	EventType     string         `json:"event_type"` // "alarm_deactivated"
	Name          string         `json:"name"`
	Message       string         `json:"message"`
	Details       map[string]any `json:"details"`
	ActivatedAt   int64          `json:"activated_at"`
	DeactivatedAt int64          `json:"deactivated_at"`
}

// ruleContextVariants maps each event tag to its context shape. It is the
// closed set the validate_sql tool documents to callers.
var ruleContextVariants = map[string]any{
	"message.publish":               PublishContext{},
	"session.subscribed":            SubscribeContext{},
	"session.unsubscribed":          UnsubscribeContext{},
	"message.delivered":             DeliveredContext{},
	"message.acked":                 AckedContext{},
	"message.dropped":               DroppedContext{},
	"client.connected":              ConnectedContext{},
	"client.disconnected":           DisconnectedContext{},
	"client.connack":                ConnackContext{},
	"client.check_authz_complete":   CheckAuthzCompleteContext{},
	"client.check_authn_complete":   CheckAuthnCompleteContext{},
	"$bridges/mqtt:*":               BridgeMQTTContext{},
	"delivery.dropped":              DeliveryDroppedContext{},
	"schema.validation_failed":      SchemaValidationFailedContext{},
	"message.transformation_failed": MessageTransformationFailedContext{},
	"alarm.activated":               AlarmActivatedContext{},
	"alarm.deactivated":             AlarmDeactivatedContext{},
}

// ruleEvents returns the supported event tags in stable order, for use in the
// validate_sql tool description.
func ruleEvents() []string {
	events := make([]string, 0, len(ruleContextVariants))
	for event := range ruleContextVariants {
		events = append(events, event)
	}
	sort.Strings(events)
	return events
}
