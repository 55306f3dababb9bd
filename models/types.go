package models

import "time"

// Visualization metrics accepted by the API and CLI
const (
	MetricSeats = "seats"
	MetricVotes = "votes"
)

// Request types

type PartyInput struct {
	Name      string  `json:"name"`
	Seats     float64 `json:"seats"`
	VoteShare float64 `json:"vote_share"`
	Color     string  `json:"color,omitempty"`
}

type PollInput struct {
	Name    string       `json:"name"`
	Parties []PartyInput `json:"parties"`
}

// CreateTrackerRequest either asks for NumPolls random polls or supplies them in Polls.
type CreateTrackerRequest struct {
	Seats    int         `json:"seats"`
	Parties  []string    `json:"parties"`
	NumPolls int         `json:"num_polls"`
	Random   bool        `json:"random"`
	Seed     *uint64     `json:"seed,omitempty"`
	Polls    []PollInput `json:"polls,omitempty"`
}

// Response types

type CreateTrackerResponse struct {
	TrackerID string `json:"tracker_id"`
	AdminKey  string `json:"admin_key"`
}

type AddPollResponse struct {
	Name      string `json:"name"`
	PollCount int    `json:"poll_count"`
}

// Domain views

type PollView struct {
	Name     string  `json:"name"`
	Capacity int     `json:"capacity"`
	Parties  []Party `json:"parties"`
}

type TrackerView struct {
	ID        string     `json:"id"`
	Seats     int        `json:"seats"`
	Parties   []string   `json:"parties"`
	Capacity  int        `json:"capacity"`
	Polls     []PollView `json:"polls"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewPollView snapshots a poll for JSON encoding.
func NewPollView(p *Poll) PollView {
	return PollView{
		Name:     p.Name(),
		Capacity: p.Capacity(),
		Parties:  p.Parties(),
	}
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
