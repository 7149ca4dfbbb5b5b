package dto

import "canteen/shared"

// Metadata describes the pagination envelope returned alongside list responses.
type Metadata struct {
	Total     int `json:"total"`
	TotalPage int `json:"total_page"`
	Page      int `json:"page"`
	Limit     int `json:"limit"`
}

func NewMetadata(total, page, limit int) Metadata {
	return Metadata{
		Total:     total,
		TotalPage: shared.CalculateTotalPage(total, limit),
		Page:      page,
		Limit:     limit,
	}
}
