package classifier

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/majorpath/internal/pkg/apperrors"
)

func TestParseOutput_SentinelAfterChatter(t *testing.T) {
	lines := []string{
		"loading model...",
		"features: 12",
		`>>> Final result: {"top3": [["Teknik Informatika", 0.91], ["Sistem Informasi", 0.85], ["Matematika", 0.6]], "prediction": "Teknik Informatika"}`,
	}

	result, err := ParseOutput(lines)
	require.NoError(t, err)
	require.NotNil(t, result.Prediction)
	assert.Equal(t, "Teknik Informatika", *result.Prediction)
	assert.Equal(t, []MajorScore{
		{MajorName: "Teknik Informatika", Score: 0.91},
		{MajorName: "Sistem Informasi", Score: 0.85},
		{MajorName: "Matematika", Score: 0.6},
	}, result.Ranking)
	assert.Equal(t, [][]interface{}{
		{"Teknik Informatika", 0.91},
		{"Sistem Informasi", 0.85},
		{"Matematika", 0.6},
	}, result.Top3())
}

func TestParseOutput_LastValidSentinelWins(t *testing.T) {
	lines := []string{
		`>>> Final result: {"top3": [["Psikologi", 0.5]]}`,
		`>>> Final result: {"top3": [["Kedokteran", 0.8]]}`,
		"done",
	}

	result, err := ParseOutput(lines)
	require.NoError(t, err)
	require.Len(t, result.Ranking, 1)
	assert.Equal(t, "Kedokteran", result.Ranking[0].MajorName)
	assert.Nil(t, result.Prediction)
}

func TestParseOutput_SkipsMalformedTrailingSentinel(t *testing.T) {
	lines := []string{
		`>>> Final result: {"top3": [["Farmasi", "0.7"]]}`,
		`>>> Final result: {not json`,
	}

	result, err := ParseOutput(lines)
	require.NoError(t, err)
	assert.Equal(t, []MajorScore{{MajorName: "Farmasi", Score: 0.7}}, result.Ranking)
}

func TestParseOutput_NoOutput(t *testing.T) {
	_, err := ParseOutput(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNoPredictionOutput))
}

func TestParseOutput_NoSentinel(t *testing.T) {
	lines := []string{"hello", "world"}

	_, err := ParseOutput(lines)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrMalformedPredictionOutput))

	var predErr *apperrors.PredictionError
	require.True(t, errors.As(err, &predErr))
	assert.Equal(t, lines, predErr.RawOutput)
}

func TestParseOutput_RejectsBadShapes(t *testing.T) {
	cases := map[string]string{
		"empty top3":      `>>> Final result: {"top3": []}`,
		"missing top3":    `>>> Final result: {"prediction": "Psikologi"}`,
		"short pair":      `>>> Final result: {"top3": [["Psikologi"]]}`,
		"non-numeric":     `>>> Final result: {"top3": [["Psikologi", "high"]]}`,
		"name not string": `>>> Final result: {"top3": [[1, 0.5]]}`,
		"not an object":   `>>> Final result: [1, 2, 3]`,
		"prefix mid-line": `log >>> Final result: {"top3": [["Psikologi", 0.5]]}`,
	}

	for name, line := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseOutput([]string{line})
			assert.True(t, errors.Is(err, apperrors.ErrMalformedPredictionOutput), "got %v", err)
		})
	}
}

func TestParseOutput_ScoresAreNotClamped(t *testing.T) {
	result, err := ParseOutput([]string{`>>> Final result: {"top3": [["Hukum", 1.7], ["Akuntansi", -0.2]]}`})
	require.NoError(t, err)
	assert.Equal(t, 1.7, result.Ranking[0].Score)
	assert.Equal(t, -0.2, result.Ranking[1].Score)
}
