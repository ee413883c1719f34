package model

import "time"

// Event is an audit record appended by every committed ledger operation
type Event struct {
	ID         uint64 `db:"id"`
	CampaignID int64  `db:"campaign_id"`
	Seq        uint32 `db:"seq"`

	Type   EventType `db:"type"`
	Actor  Address   `db:"actor"`
	Amount Amount    `db:"amount"`

	CreatedAt time.Time `db:"created_at"`
}

// EventType ...
type EventType int

const (
	// EventTypeLaunch ...
	EventTypeLaunch EventType = 1

	// EventTypeCancel ...
	EventTypeCancel EventType = 2

	// EventTypePledge ...
	EventTypePledge EventType = 3

	// EventTypeUnpledge ...
	EventTypeUnpledge EventType = 4

	// EventTypeClaim ...
	EventTypeClaim EventType = 5

	// EventTypeRefund ...
	EventTypeRefund EventType = 6
)

var eventTypeNames = map[EventType]string{
	EventTypeLaunch:   "launch",
	EventTypeCancel:   "cancel",
	EventTypePledge:   "pledge",
	EventTypeUnpledge: "unpledge",
	EventTypeClaim:    "claim",
	EventTypeRefund:   "refund",
}

// String ...
func (t EventType) String() string {
	name, ok := eventTypeNames[t]
	if !ok {
		return "unknown"
	}
	return name
}
