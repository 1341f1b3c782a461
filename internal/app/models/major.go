package models

// Major is one academic field of study. Reference data, looked up by name.
type Major struct {
	ID          int64  `json:"id" db:"id" example:"1"`
	Name        string `json:"name" db:"name" example:"Teknik Informatika"`
	Description string `json:"description" db:"description" example:"Jurusan yang mempelajari pengembangan perangkat lunak..."`
}
