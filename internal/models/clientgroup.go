package models

import (
	"strings"
	"time"
)

// GroupStatus tracks a client group's position in the advice lifecycle
type GroupStatus string

const (
	GroupStatusProspect   GroupStatus = "prospect"
	GroupStatusOnboarding GroupStatus = "onboarding"
	GroupStatusActive     GroupStatus = "active"
	GroupStatusReview     GroupStatus = "review"
	GroupStatusArchived   GroupStatus = "archived"
)

// Rank orders statuses for display: working groups first, archived last.
func (s GroupStatus) Rank() int {
	switch s {
	case GroupStatusActive:
		return 0
	case GroupStatusOnboarding:
		return 1
	case GroupStatusProspect:
		return 2
	case GroupStatusReview:
		return 3
	case GroupStatusArchived:
		return 4
	default:
		return 5
	}
}

// Marker returns the table annotation for a status: review groups need
// attention, archived groups are parenthesized.
func (s GroupStatus) Marker() string {
	switch s {
	case GroupStatusReview:
		return "!"
	case GroupStatusArchived:
		return "~"
	default:
		return ""
	}
}

// ClientGroup represents a household or entity the practice advises.
// A group holds one or more clients and any special relationships
// (accountant, solicitor, POA) attached to it.
type ClientGroup struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	AdviserName string      `json:"adviser_name"`
	Status      GroupStatus `json:"status"`
	Clients     []Client    `json:"clients,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Client is a member of a client group.
type Client struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth,omitempty"` // Raw date string from API (e.g. "1962-07-04")
	Email       string `json:"email,omitempty"`
}

// FullName returns the client's display name.
func (c *Client) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// DateOfBirthDisplay renders the date of birth as dd/mm/yyyy, or the raw
// value when it isn't a parseable date.
func (c *Client) DateOfBirthDisplay() string {
	if c.DateOfBirth == "" {
		return "-"
	}
	d, err := time.Parse("2006-01-02", c.DateOfBirth)
	if err != nil {
		return c.DateOfBirth
	}
	return d.Format("02/01/2006")
}

// CreatedDisplay renders the created date as dd/mm/yyyy.
func (g *ClientGroup) CreatedDisplay() string {
	if g.CreatedAt.IsZero() {
		return "-"
	}
	return g.CreatedAt.Format("02/01/2006")
}

// ClientGroupCreate is the payload for creating a client group.
type ClientGroupCreate struct {
	Name        string      `json:"name"`
	AdviserName string      `json:"adviser_name,omitempty"`
	Status      GroupStatus `json:"status,omitempty"`
	Clients     []Client    `json:"clients,omitempty"`
}

// ClientGroupUpdate is the payload for a partial client group update.
// Nil fields are left unchanged by the platform.
type ClientGroupUpdate struct {
	Name        *string      `json:"name,omitempty"`
	AdviserName *string      `json:"adviser_name,omitempty"`
	Status      *GroupStatus `json:"status,omitempty"`
}
