// Package webhook decodes Notion webhook deliveries and verifies their
// signatures.
package webhook

import (
	"fmt"

	json "github.com/goccy/go-json"
)

type EventType string

const (
	PageCreated           EventType = "page.created"
	PagePropertiesUpdated EventType = "page.properties_updated"
	PageContentUpdated    EventType = "page.content_updated"
	PageMoved             EventType = "page.moved"
	PageDeleted           EventType = "page.deleted"
	PageUndeleted         EventType = "page.undeleted"
	PageLocked            EventType = "page.locked"
	PageUnlocked          EventType = "page.unlocked"

	DatabaseCreated        EventType = "database.created"
	DatabaseContentUpdated EventType = "database.content_updated"
	DatabaseMoved          EventType = "database.moved"
	DatabaseDeleted        EventType = "database.deleted"
	DatabaseUndeleted      EventType = "database.undeleted"
	DatabaseSchemaUpdated  EventType = "database.schema_updated"

	DataSourceContentUpdated EventType = "data_source.content_updated"
	DataSourceCreated        EventType = "data_source.created"
	DataSourceDeleted        EventType = "data_source.deleted"
	DataSourceMoved          EventType = "data_source.moved"
	DataSourceSchemaUpdated  EventType = "data_source.schema_updated"
	DataSourceUndeleted      EventType = "data_source.undeleted"

	CommentCreated EventType = "comment.created"
	CommentUpdated EventType = "comment.updated"
	CommentDeleted EventType = "comment.deleted"
)

// payload describes which data fields an event type carries.
type payload int

const (
	parentOnly payload = iota
	withUpdatedProperties
	withUpdatedBlocks
	withSchemaChanges
	withPageID
)

var eventPayloads = map[EventType]payload{
	PageCreated:              parentOnly,
	PagePropertiesUpdated:    withUpdatedProperties,
	PageContentUpdated:       withUpdatedBlocks,
	PageMoved:                parentOnly,
	PageDeleted:              parentOnly,
	PageUndeleted:            parentOnly,
	PageLocked:               parentOnly,
	PageUnlocked:             parentOnly,
	DatabaseCreated:          parentOnly,
	DatabaseContentUpdated:   withUpdatedBlocks,
	DatabaseMoved:            parentOnly,
	DatabaseDeleted:          parentOnly,
	DatabaseUndeleted:        parentOnly,
	DatabaseSchemaUpdated:    withSchemaChanges,
	DataSourceContentUpdated: withUpdatedBlocks,
	DataSourceCreated:        parentOnly,
	DataSourceDeleted:        parentOnly,
	DataSourceMoved:          parentOnly,
	DataSourceSchemaUpdated:  withSchemaChanges,
	DataSourceUndeleted:      parentOnly,
	CommentCreated:           withPageID,
	CommentUpdated:           withPageID,
	CommentDeleted:           withPageID,
}

// Known reports whether the event type has a typed payload.
func (t EventType) Known() bool {
	_, ok := eventPayloads[t]
	return ok
}

type AuthorType string

const (
	AuthorPerson AuthorType = "person"
	AuthorBot    AuthorType = "bot"
	AuthorAgent  AuthorType = "agent"
)

func (t *AuthorType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch v := AuthorType(s); v {
	case AuthorPerson, AuthorBot, AuthorAgent:
		*t = v
		return nil
	}
	return fmt.Errorf("unknown author type %q", s)
}

type Author struct {
	Type AuthorType `json:"type"`
	ID   string     `json:"id"`
}

type EntityType string

const (
	EntityPage       EntityType = "page"
	EntityBlock      EntityType = "block"
	EntityDatabase   EntityType = "database"
	EntityDataSource EntityType = "data_source"
	EntitySpace      EntityType = "space"
	EntityComment    EntityType = "comment"
)

func (t *EntityType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch v := EntityType(s); v {
	case EntityPage, EntityBlock, EntityDatabase, EntityDataSource, EntitySpace, EntityComment:
		*t = v
		return nil
	}
	return fmt.Errorf("unknown entity type %q", s)
}

type Entity struct {
	Type EntityType `json:"type"`
	ID   string     `json:"id"`
}

type PropertyAction string

const (
	PropertyCreated PropertyAction = "created"
	PropertyUpdated PropertyAction = "updated"
	PropertyDeleted PropertyAction = "deleted"
)

// PropertyChange is one column change of a schema_updated event.
type PropertyChange struct {
	Action PropertyAction `json:"action"`
	ID     string         `json:"id"`
	Name   string         `json:"name"`
}

// Data is the event specific payload. Which fields are set depends on the
// event type; Raw always holds the payload as received.
type Data struct {
	Parent            *Entity
	PageID            string
	UpdatedBlocks     []Entity
	UpdatedProperties []string
	SchemaChanges     []PropertyChange
	Raw               json.RawMessage
}

func decodeData(t EventType, raw json.RawMessage) (Data, error) {
	out := Data{Raw: raw}
	kind, ok := eventPayloads[t]
	if !ok || len(raw) == 0 {
		return out, nil
	}
	var common struct {
		Parent            *Entity         `json:"parent"`
		PageID            string          `json:"page_id"`
		UpdatedBlocks     []Entity        `json:"updated_blocks"`
		UpdatedProperties json.RawMessage `json:"updated_properties"`
	}
	if err := json.Unmarshal(raw, &common); err != nil {
		return out, fmt.Errorf("failed to decode %s data: %w", t, err)
	}
	out.Parent = common.Parent
	switch kind {
	case withPageID:
		out.PageID = common.PageID
	case withUpdatedBlocks:
		out.UpdatedBlocks = common.UpdatedBlocks
	case withUpdatedProperties:
		if len(common.UpdatedProperties) > 0 {
			if err := json.Unmarshal(common.UpdatedProperties, &out.UpdatedProperties); err != nil {
				return out, fmt.Errorf("failed to decode %s properties: %w", t, err)
			}
		}
	case withSchemaChanges:
		if len(common.UpdatedProperties) > 0 {
			if err := json.Unmarshal(common.UpdatedProperties, &out.SchemaChanges); err != nil {
				return out, fmt.Errorf("failed to decode %s properties: %w", t, err)
			}
		}
	}
	return out, nil
}

// Event is one webhook delivery.
type Event struct {
	ID             string    `json:"id"`
	Timestamp      string    `json:"timestamp"`
	WorkspaceID    string    `json:"workspace_id"`
	WorkspaceName  string    `json:"workspace_name"`
	SubscriptionID string    `json:"subscription_id"`
	IntegrationID  string    `json:"integration_id"`
	Type           EventType `json:"type"`
	Authors        []Author  `json:"authors"`
	AccessibleBy   []Author  `json:"accessible_by,omitempty"`
	AttemptNumber  int       `json:"attempt_number"`
	Entity         Entity    `json:"entity"`
	Data           Data      `json:"-"`
}

// eventWire carries the event fields next to the raw data object.
type eventWire struct {
	ID             string          `json:"id"`
	Timestamp      string          `json:"timestamp"`
	WorkspaceID    string          `json:"workspace_id"`
	WorkspaceName  string          `json:"workspace_name"`
	SubscriptionID string          `json:"subscription_id"`
	IntegrationID  string          `json:"integration_id"`
	Type           EventType       `json:"type"`
	Authors        []Author        `json:"authors"`
	AccessibleBy   []Author        `json:"accessible_by,omitempty"`
	AttemptNumber  int             `json:"attempt_number"`
	Entity         Entity          `json:"entity"`
	Data           json.RawMessage `json:"data,omitempty"`
}

func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(eventWire{
		ID:             e.ID,
		Timestamp:      e.Timestamp,
		WorkspaceID:    e.WorkspaceID,
		WorkspaceName:  e.WorkspaceName,
		SubscriptionID: e.SubscriptionID,
		IntegrationID:  e.IntegrationID,
		Type:           e.Type,
		Authors:        e.Authors,
		AccessibleBy:   e.AccessibleBy,
		AttemptNumber:  e.AttemptNumber,
		Entity:         e.Entity,
		Data:           e.Data.Raw,
	})
}

func (e *Event) UnmarshalJSON(data []byte) error {
	var wire eventWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	d, err := decodeData(wire.Type, wire.Data)
	if err != nil {
		return err
	}
	*e = Event{
		ID:             wire.ID,
		Timestamp:      wire.Timestamp,
		WorkspaceID:    wire.WorkspaceID,
		WorkspaceName:  wire.WorkspaceName,
		SubscriptionID: wire.SubscriptionID,
		IntegrationID:  wire.IntegrationID,
		Type:           wire.Type,
		Authors:        wire.Authors,
		AccessibleBy:   wire.AccessibleBy,
		AttemptNumber:  wire.AttemptNumber,
		Entity:         wire.Entity,
		Data:           d,
	}
	return nil
}

// Decode parses a webhook delivery body.
func Decode(body []byte) (*Event, error) {
	var e Event
	if err := json.Unmarshal(body, &e); err != nil {
		return nil, fmt.Errorf("failed to decode webhook event: %w", err)
	}
	return &e, nil
}

// Verification is the body of the one-time subscription handshake.
type Verification struct {
	VerificationToken string `json:"verification_token"`
}

// DecodeVerification reports whether body is a handshake and returns it.
func DecodeVerification(body []byte) (*Verification, bool) {
	var probe struct {
		VerificationToken string `json:"verification_token"`
		Type              string `json:"type"`
	}
	if err := json.Unmarshal(body, &probe); err != nil || probe.VerificationToken == "" || probe.Type != "" {
		return nil, false
	}
	return &Verification{VerificationToken: probe.VerificationToken}, true
}
