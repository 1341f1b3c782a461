package models

import (
	"time"
)

// PredictionSession is one saved questionnaire submission with its ranked recommendations
type PredictionSession struct {
	ID              int64            `json:"id" db:"id" example:"12"`
	UserID          int64            `json:"userId" db:"user_id" example:"1"`
	CreatedAt       time.Time        `json:"createdAt" db:"created_at" example:"2024-05-01T08:00:00Z"`
	Answers         []Answer         `json:"answers"`         // Insertion order
	Recommendations []Recommendation `json:"recommendations"` // Score descending
}

// Answer is one questionnaire field value stored with a session
type Answer struct {
	ID        int64  `json:"id" db:"id"`
	UserID    int64  `json:"userId" db:"user_id"`
	SessionID int64  `json:"sessionId" db:"session_id"`
	Question  string `json:"question" db:"question" example:"Minat_Teknologi"`
	Answer    string `json:"answer" db:"answer" example:"Ya"`
}

// Recommendation is one ranked major of a session
type Recommendation struct {
	ID        int64   `json:"id" db:"id"`
	UserID    int64   `json:"userId" db:"user_id"`
	SessionID int64   `json:"sessionId" db:"session_id"`
	MajorID   int64   `json:"majorId" db:"major_id"`
	Score     float64 `json:"score" db:"score" example:"0.87"`
	Major     *Major  `json:"major,omitempty"` // Relation, no db tag
}

// AnswerInput is an answer to be stored; Answer is nil when the value was absent.
type AnswerInput struct {
	Question string
	Answer   *string
}

// RecommendationInput is a recommendation to be stored; Score is nil when absent.
type RecommendationInput struct {
	MajorName string
	Score     *float64
}

// NewSession carries everything persisted by one save-result call
type NewSession struct {
	UserID          int64
	Answers         []AnswerInput
	Recommendations []RecommendationInput
}
