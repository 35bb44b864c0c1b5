package dto

type TimeSlotDTO struct {
	StartISO string `json:"startISO"`
	Label    string `json:"label"`
}
