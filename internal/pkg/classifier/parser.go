package classifier

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/yigit/majorpath/internal/pkg/apperrors"
)

// SentinelPrefix marks the authoritative result line in the classifier output.
const SentinelPrefix = ">>> Final result:"

// MajorScore is one ranked entry of a classification.
type MajorScore struct {
	MajorName string  `json:"majorName" example:"Teknik Informatika"`
	Score     float64 `json:"score" example:"0.9"`
}

// Result is the decoded sentinel line.
type Result struct {
	// Prediction is the single best match when the classifier reports one
	Prediction *string
	Ranking    []MajorScore
}

// Top3 returns the ranking as [name, score] pairs.
func (r *Result) Top3() [][]interface{} {
	pairs := make([][]interface{}, 0, len(r.Ranking))
	for _, entry := range r.Ranking {
		pairs = append(pairs, []interface{}{entry.MajorName, entry.Score})
	}
	return pairs
}

type sentinelPayload struct {
	Top3       []json.RawMessage `json:"top3"`
	Prediction interface{}       `json:"prediction"`
}

// ParseOutput scans lines from last to first and returns the first sentinel
// line that decodes to an object with a non-empty top3 list of [name, score]
// pairs. Malformed candidates are skipped so later diagnostic chatter or an
// earlier partial result cannot hide a valid one.
func ParseOutput(lines []string) (*Result, error) {
	if len(lines) == 0 {
		return nil, &apperrors.PredictionError{
			Kind:    apperrors.ErrNoPredictionOutput,
			Details: "classifier produced no output",
		}
	}

	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(line, SentinelPrefix) {
			continue
		}

		result, err := decodeSentinel(strings.TrimSpace(strings.TrimPrefix(line, SentinelPrefix)))
		if err != nil {
			continue
		}
		return result, nil
	}

	raw := make([]string, len(lines))
	copy(raw, lines)
	return nil, &apperrors.PredictionError{
		Kind:      apperrors.ErrMalformedPredictionOutput,
		Details:   "no valid prediction result found",
		RawOutput: raw,
	}
}

func decodeSentinel(body string) (*Result, error) {
	var payload sentinelPayload
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return nil, err
	}
	if len(payload.Top3) == 0 {
		return nil, fmt.Errorf("top3 is missing or empty")
	}

	ranking := make([]MajorScore, 0, len(payload.Top3))
	for idx, rawPair := range payload.Top3 {
		entry, err := decodePair(rawPair)
		if err != nil {
			return nil, fmt.Errorf("top3[%d]: %w", idx, err)
		}
		ranking = append(ranking, entry)
	}

	result := &Result{Ranking: ranking}
	if name, ok := payload.Prediction.(string); ok && name != "" {
		result.Prediction = &name
	}
	return result, nil
}

func decodePair(raw json.RawMessage) (MajorScore, error) {
	var pair []interface{}
	if err := json.Unmarshal(raw, &pair); err != nil {
		return MajorScore{}, err
	}
	if len(pair) < 2 {
		return MajorScore{}, fmt.Errorf("expected [name, score], got %d elements", len(pair))
	}

	name, ok := pair[0].(string)
	if !ok || strings.TrimSpace(name) == "" {
		return MajorScore{}, fmt.Errorf("major name is not a non-empty string")
	}

	score, err := coerceScore(pair[1])
	if err != nil {
		return MajorScore{}, err
	}
	return MajorScore{MajorName: name, Score: score}, nil
}

// coerceScore accepts JSON numbers and numeric strings; no clamping.
func coerceScore(v interface{}) (float64, error) {
	switch s := v.(type) {
	case float64:
		return s, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, fmt.Errorf("score %q is not numeric", s)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("score has unsupported type %T", v)
	}
}
