package dto

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/yigit/majorpath/internal/app/models"
)

// FlexString accepts a JSON string, number or boolean and keeps its text.
// A JSON null on a *FlexString field leaves the pointer nil.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	switch {
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("false")):
		*f = FlexString(data)
		return nil
	case len(data) > 0 && (data[0] == '-' || (data[0] >= '0' && data[0] <= '9')):
		*f = FlexString(data)
		return nil
	}
	return fmt.Errorf("answer must be a string, number or boolean")
}

// FlexFloat accepts a JSON number or a numeric string.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch n := v.(type) {
	case float64:
		*f = FlexFloat(n)
		return nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return fmt.Errorf("score %q is not numeric", n)
		}
		*f = FlexFloat(parsed)
		return nil
	}
	return fmt.Errorf("score must be a number")
}

// AnswerPayload is one submitted questionnaire answer
type AnswerPayload struct {
	Question string      `json:"question" example:"Minat_Teknologi"`
	Answer   *FlexString `json:"answer" swaggertype:"string" example:"Ya"`
}

// RecommendationPayload is one submitted ranked major
type RecommendationPayload struct {
	MajorName string     `json:"majorName" example:"Teknik Informatika"`
	Score     *FlexFloat `json:"score" swaggertype:"number" example:"0.91"`
}

// SaveResultRequest echoes a prediction back for storage. Nil slices mean the
// key was absent; empty slices are accepted.
type SaveResultRequest struct {
	UserID          *int64                  `json:"userId" example:"1"`
	Answers         []AnswerPayload         `json:"answers"`
	Recommendations []RecommendationPayload `json:"recommendations"`
}

// ToAnswerInputs converts payloads for persistence
func ToAnswerInputs(payloads []AnswerPayload) []models.AnswerInput {
	inputs := make([]models.AnswerInput, 0, len(payloads))
	for _, p := range payloads {
		input := models.AnswerInput{Question: p.Question}
		if p.Answer != nil {
			value := string(*p.Answer)
			input.Answer = &value
		}
		inputs = append(inputs, input)
	}
	return inputs
}

// ToRecommendationInputs converts payloads for persistence
func ToRecommendationInputs(payloads []RecommendationPayload) []models.RecommendationInput {
	inputs := make([]models.RecommendationInput, 0, len(payloads))
	for _, p := range payloads {
		input := models.RecommendationInput{MajorName: p.MajorName}
		if p.Score != nil {
			score := float64(*p.Score)
			input.Score = &score
		}
		inputs = append(inputs, input)
	}
	return inputs
}

// SaveResultResponse reports the stored session
type SaveResultResponse struct {
	Success   bool   `json:"success" example:"true"`
	Message   string `json:"message" example:"Result saved"`
	SessionID int64  `json:"sessionId" example:"12"`
}

// HistoryResponse lists a user's sessions, most recent first
type HistoryResponse struct {
	Success bool                       `json:"success" example:"true"`
	Data    []models.PredictionSession `json:"data"`
	Count   int                        `json:"count" example:"3"`
}

// SessionResponse wraps a single session
type SessionResponse struct {
	Success bool                     `json:"success" example:"true"`
	Data    models.PredictionSession `json:"data"`
}
