package testmodels

import "github.com/go-openapi/strfmt"

// MatchRecord is the test fixture entity. Tournament and MatchID feed the
// key-map macros, and EntityKind is the discriminator the reader registry
// dispatches on.
type MatchRecord struct {

	// Kind discriminator stored with every row.
	EntityKind string `json:"EntityKind"`

	// Tournament groups all of an event's matches into one partition.
	// Required: true
	Tournament string `json:"Tournament"`

	// Identifier of the match within its tournament.
	// Required: true
	MatchID string `json:"MatchID"`

	// Display name of the winning player.
	Winner string `json:"Winner,omitempty"`

	// Final score of the deciding game.
	Score int32 `json:"Score,omitempty"`

	// Timestamp when the match was played.
	// Required: true
	// Format: date-time
	PlayedAt *strfmt.DateTime `json:"PlayedAt"`

	// Timestamp when the record was stored.
	// Required: true
	// Format: date-time
	RecordedAt *strfmt.DateTime `json:"RecordedAt"`
}
