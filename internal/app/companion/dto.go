package companion

import (
	"petverse/internal/app/ports"
	"petverse/internal/domain/pet"
)

type CreateRequest struct {
	OwnerID     string          `json:"-"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Labels      []string        `json:"labels"`
	Personality pet.Personality `json:"personality"`
}

type CreateResponse struct {
	Companion pet.Companion  `json:"companion"`
	Analysis  ports.Analysis `json:"analysis"`
}

type SwitchRequest struct {
	OwnerID     string `json:"-"`
	CompanionID string `json:"companion_id"`
}

type RemoveRequest struct {
	OwnerID     string
	CompanionID string
}

type Response struct {
	ActiveCompanionID string          `json:"active_companion_id"`
	Companions        []pet.Companion `json:"companions"`
}
