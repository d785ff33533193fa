package dtos

// Request DTOs. Validation tags are enforced by common.DecodeAndValidate
// before any service code runs; enum membership is checked again in the
// services because the closed sets live in constants, not in tags.

type CreateComponentRequest struct {
	Category      string `json:"category" validate:"required"`
	AircraftModel string `json:"aircraft_model" validate:"required"`
}

type CreateAircraftRequest struct {
	Model string `json:"model" validate:"required"`
	// Optional; a UUID serial is generated when empty.
	SerialNumber string `json:"serial_number" validate:"omitempty,min=4,max=64"`
}

type InstallComponentRequest struct {
	AircraftID  string `json:"aircraft_id" validate:"required,uuid4"`
	ComponentID string `json:"component_id" validate:"required,uuid4"`
}

type UninstallComponentRequest struct {
	AircraftID  string `json:"aircraft_id" validate:"required,uuid4"`
	ComponentID string `json:"component_id" validate:"required,uuid4"`
}

type RecycleComponentsRequest struct {
	ComponentIDs []string `json:"component_ids" validate:"required,min=1,dive,uuid4"`
}

type RegisterPersonnelRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	TeamID   string `json:"team_id" validate:"required,uuid4"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
