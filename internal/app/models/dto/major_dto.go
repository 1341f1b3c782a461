package dto

import "github.com/yigit/majorpath/internal/app/models"

// MajorListResponse lists the majors catalog
type MajorListResponse struct {
	Success bool           `json:"success" example:"true"`
	Data    []models.Major `json:"data"`
}

// MajorDetailResponse is a major flattened next to the success flag
type MajorDetailResponse struct {
	Success     bool   `json:"success" example:"true"`
	ID          int64  `json:"id" example:"1"`
	Name        string `json:"name" example:"Teknik Informatika"`
	Description string `json:"description"`
}
