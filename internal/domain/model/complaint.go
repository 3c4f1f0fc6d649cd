package model

import "time"

type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "PENDING"
	ComplaintInProgress ComplaintStatus = "IN_PROGRESS"
	ComplaintResolved   ComplaintStatus = "RESOLVED"
)

func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintPending, ComplaintInProgress, ComplaintResolved:
		return true
	}
	return false
}

// Complaint is append-only from the resident's side; only the status moves
// after creation, and only an admin moves it.
type Complaint struct {
	ID           string          `json:"id"`
	ResidentID   string          `json:"residentId"`
	ResidentName string          `json:"residentName"`
	Type         string          `json:"type"` // Water, Electricity, Cleaning, Internet, Food, Other
	Description  string          `json:"description"`
	Status       ComplaintStatus `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}
