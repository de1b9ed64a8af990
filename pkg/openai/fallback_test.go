package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-golf-advising-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestComputeHandicapEstimate(t *testing.T) {
	cases := []struct {
		name string
		avg  *int
		want int
	}{
		{"nil average defaults to 20", nil, 20},
		{"zero average defaults to 20", intPtr(0), 20},
		{"average 90 estimates 18", intPtr(90), 18},
		{"average 72 estimates scratch", intPtr(72), 0},
		{"below rating clamps to zero", intPtr(65), 0},
		{"very high average clamps to 54", intPtr(140), 54},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, computeHandicapEstimate(tc.avg))
		})
	}
}

func TestParseLastTenScores(t *testing.T) {
	t.Run("keeps plausible rounds only", func(t *testing.T) {
		scores := parseLastTenScores("88, 92, abc, 55, 151, 101")
		assert.Equal(t, []int{88, 92, 101}, scores)
	})

	t.Run("empty input yields nothing", func(t *testing.T) {
		assert.Empty(t, parseLastTenScores(""))
	})
}

func TestFallbackEstimateFromLastTenScores(t *testing.T) {
	// No explicit average; the mean of the score list drives the estimate.
	out := Fallback(&domain.WizardPayload{LastTenScores: strPtr("90, 90, 90")})
	assert.Equal(t, 18, out.Scoring.HandicapCalculation.Estimate)
}

func TestFallbackFlexTiers(t *testing.T) {
	cases := []struct {
		speed    float64
		wantFlex string
		wantLoft string
	}{
		{110, "X", "9-10°"},
		{100, "S", "10-11°"},
		{90, "R", "11-12°"},
		{80, "A", "11-12°"},
	}
	for _, tc := range cases {
		out := Fallback(&domain.WizardPayload{DriverSwingSpeedMph: floatPtr(tc.speed)})
		assert.Contains(t, out.Equipment.Driver.ShaftGraphite, tc.wantFlex+" flex")
		assert.Equal(t, tc.wantLoft, out.Equipment.Driver.Loft)
	}
}

func TestFallbackBallSoftness(t *testing.T) {
	fast := Fallback(&domain.WizardPayload{DriverBallSpeedMph: floatPtr(170)})
	assert.Equal(t, "Firm", fast.Equipment.Ball.Softness)

	slow := Fallback(&domain.WizardPayload{DriverBallSpeedMph: floatPtr(150)})
	assert.Equal(t, "Medium", slow.Equipment.Ball.Softness)
}

func TestFallbackNilPayload(t *testing.T) {
	out := Fallback(nil)
	require.NotNil(t, out)
	assert.True(t, out.Complete())
	assert.Equal(t, 20, out.Scoring.HandicapCalculation.Estimate)
}

func TestGenerateWithoutKeyUsesFallback(t *testing.T) {
	client := NewClient("", "")

	out := client.Generate(context.Background(), &domain.WizardPayload{AvgScore18: intPtr(90)})
	require.NotNil(t, out)
	assert.Equal(t, 18, out.Scoring.HandicapCalculation.Estimate)
}

func TestGenerateUsesCompletionWhenComplete(t *testing.T) {
	remote := domain.StructuredRecommendations{}
	remote.GameImprovements.Plan.Putting = []string{"Gate drill"}
	remote.Scoring.HandicapCalculation.Method = "remote"
	content, err := json.Marshal(remote)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": string(content)}},
			},
		})
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)
	out := client.Generate(context.Background(), &domain.WizardPayload{})
	require.NotNil(t, out)
	assert.Equal(t, "remote", out.Scoring.HandicapCalculation.Method)
}

func TestGenerateFallsBackOnRemoteFailure(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		out := NewClient("test-key", srv.URL).Generate(context.Background(), nil)
		require.NotNil(t, out)
		assert.True(t, out.Complete())
	})

	t.Run("incomplete completion", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"content": "{}"}},
				},
			})
		}))
		defer srv.Close()

		out := NewClient("test-key", srv.URL).Generate(context.Background(), nil)
		require.NotNil(t, out)
		// {} misses the practice plan, so the deterministic method wins.
		assert.Equal(t, "Average score based estimate (CR=72, Slope=113)", out.Scoring.HandicapCalculation.Method)
	})
}
