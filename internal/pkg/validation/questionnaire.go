package validation

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/yigit/majorpath/internal/pkg/apperrors"
)

// Questionnaire maps questionnaire field keys to their submitted values.
type Questionnaire map[string]string

// NormalizeQuestionnaire turns a decoded JSON object into a Questionnaire.
// Strings pass through, numbers lose trailing zeros, null becomes "" and
// nested values are re-encoded as JSON. Keys are kept even when not part of
// the fixed schema.
func NormalizeQuestionnaire(raw map[string]interface{}) Questionnaire {
	out := make(Questionnaire, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case nil:
			out[key] = ""
		case string:
			out[key] = v
		case float64:
			out[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case json.Number:
			out[key] = v.String()
		case bool:
			out[key] = strconv.FormatBool(v)
		default:
			encoded, err := json.Marshal(v)
			if err != nil {
				out[key] = fmt.Sprint(v)
				continue
			}
			out[key] = string(encoded)
		}
	}
	return out
}

// ValidateQuestionnaire checks q against the fixed schema and returns the
// first failing rule as an *apperrors.ValidationError. The order is: empty
// input, missing fields (all of them reported), gender, interests, skills,
// final grade.
func ValidateQuestionnaire(q Questionnaire) error {
	if len(q) == 0 {
		return &apperrors.ValidationError{
			Kind:    apperrors.ErrEmptyInput,
			Message: "input is empty or invalid",
		}
	}

	var missing []string
	for _, field := range RequiredFields {
		if _, ok := q[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return &apperrors.ValidationError{
			Kind:          apperrors.ErrMissingFields,
			MissingFields: missing,
			Message:       "required fields are missing",
		}
	}

	if !slices.Contains(GenderValues, q[FieldGender]) {
		return apperrors.NewEnumError(FieldGender, GenderValues)
	}

	for _, field := range InterestFields {
		if !slices.Contains(InterestValues, q[field]) {
			return apperrors.NewEnumError(field, InterestValues)
		}
	}

	for _, field := range SkillFields {
		if !slices.Contains(SkillLevels, q[field]) {
			return apperrors.NewEnumError(field, SkillLevels)
		}
	}

	if _, err := ParseFinalGrade(q[FieldFinalGrade]); err != nil {
		return err
	}

	return nil
}

// ParseFinalGrade parses the final grade and enforces the [0, 100] range.
func ParseFinalGrade(value string) (float64, error) {
	rangeErr := &apperrors.ValidationError{
		Kind:    apperrors.ErrInvalidRange,
		Field:   FieldFinalGrade,
		Message: fmt.Sprintf("%s must be a number between %g and %g", FieldFinalGrade, MinFinalGrade, MaxFinalGrade),
	}

	value = strings.TrimSpace(value)
	// ParseFloat also reads hex floats such as 0x1p6; grades are decimal only
	if digits := strings.TrimLeft(value, "+-"); strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, rangeErr
	}

	grade, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, rangeErr
	}
	// NaN fails both comparisons, so check it explicitly
	if grade != grade || grade < MinFinalGrade || grade > MaxFinalGrade {
		return 0, rangeErr
	}
	return grade, nil
}
