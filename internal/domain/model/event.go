package model

import "time"

const (
	EventNoticePublished = "notice_published"
	EventComplaintRaised = "complaint_raised"
)

// Event is what the services push onto the redis notification queue and the
// notification worker pops back off.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	EntityID  string    `json:"entity_id"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}
