package model

import (
	"time"
)

const (
	RoleResident = "RESIDENT"
	RoleAdmin    = "ADMIN"
)

func ValidRole(role string) bool {
	return role == RoleResident || role == RoleAdmin
}

// User is the public profile shape served to clients. The stored password
// hash never crosses the wire; plaintext passwords travel only inbound on
// the registration and login requests.
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	Role           string    `json:"role"`
	RoomNumber     string    `json:"roomNumber,omitempty"`
	PhoneNumber    string    `json:"phoneNumber,omitempty"`
	EntryDate      *string   `json:"entryDate,omitempty"`
	ExitDate       *string   `json:"exitDate,omitempty"`
	IsRentPaid     bool      `json:"isRentPaid"`
	PaidMonths     []string  `json:"paidMonths,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
