package dtos

import "time"

// APIResponse is the standard envelope for every JSON endpoint.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime string `json:"response_time,omitempty"`
	Data         any    `json:"data,omitempty"`
}

type ComponentResponse struct {
	ID            string    `json:"id"`
	Category      string    `json:"category"`
	AircraftModel string    `json:"aircraft_model"`
	IsUsed        bool      `json:"is_used"`
	TeamID        string    `json:"team_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type AircraftResponse struct {
	ID           string    `json:"id"`
	Model        string    `json:"model"`
	SerialNumber string    `json:"serial_number"`
	IsProduced   bool      `json:"is_produced"`
	CreatedAt    time.Time `json:"created_at"`
}

// InstallResponse returns the post-mutation snapshots directly so clients
// do not need a second round trip to observe the new state.
type InstallResponse struct {
	Aircraft  AircraftResponse  `json:"aircraft"`
	Component ComponentResponse `json:"component"`
}

type RecycleResponse struct {
	Destroyed int      `json:"destroyed"`
	IDs       []string `json:"ids"`
}

type MissingPartsResponse struct {
	AircraftID string   `json:"aircraft_id"`
	Missing    []string `json:"missing"`
	Complete   bool     `json:"complete"`
}

type TeamResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// Category the team may manufacture; empty for the assembly crew.
	ProducesCategory string `json:"produces_category,omitempty"`
}

type PersonnelResponse struct {
	ID       string        `json:"id"`
	Username string        `json:"username"`
	Role     string        `json:"role,omitempty"`
	Team     *TeamResponse `json:"team,omitempty"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
