package dto

import "github.com/pawsitiveapps/pet-scheduler/internal/models"

// PublicServiceDTO is the public catalog shape. The active flag is omitted
// on purpose: the public listing only ever contains active services.
type PublicServiceDTO struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
}

type AdminServiceDTO struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	IsActive        bool   `json:"isActive"`
}

func PublicService(s models.Service) PublicServiceDTO {
	return PublicServiceDTO{
		ID:              s.ID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
	}
}

func AdminService(s models.Service) AdminServiceDTO {
	return AdminServiceDTO{
		ID:              s.ID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		IsActive:        s.IsActive,
	}
}
