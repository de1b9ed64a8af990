package openai

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go-golf-advising-backend/internal/domain"
)

func clamp(n, min, max float64) float64 {
	return math.Max(min, math.Min(max, n))
}

// computeHandicapEstimate derives a rough index from an 18-hole average,
// assuming Course Rating 72 and Slope 113. No average means the neutral 20.
func computeHandicapEstimate(avg *int) int {
	if avg == nil || *avg == 0 {
		return 20
	}
	idx := (float64(*avg) - 72) * 113 / 113
	return int(math.Round(clamp(idx, 0, 54)))
}

// parseLastTenScores extracts plausible round scores (60-150) from the
// free-text comma list the wizard collects.
func parseLastTenScores(raw string) []int {
	var scores []int
	for _, part := range strings.Split(raw, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 60 || n > 150 {
			continue
		}
		scores = append(scores, n)
	}
	return scores
}

func strOr(p *string, fallback string) string {
	if p != nil && *p != "" {
		return *p
	}
	return fallback
}

// Fallback produces a deterministic recommendations object from the wizard
// payload alone. It is the substitute for the remote generator and the
// contract tests pin its behavior.
func Fallback(payload *domain.WizardPayload) *domain.StructuredRecommendations {
	if payload == nil {
		payload = &domain.WizardPayload{}
	}

	avg := payload.AvgScore18
	if avg == nil && payload.LastTenScores != nil {
		if scores := parseLastTenScores(*payload.LastTenScores); len(scores) > 0 {
			sum := 0
			for _, s := range scores {
				sum += s
			}
			mean := int(math.Round(float64(sum) / float64(len(scores))))
			avg = &mean
		}
	}
	estimate := computeHandicapEstimate(avg)

	driverSS := 95.0
	if payload.DriverSwingSpeedMph != nil {
		driverSS = *payload.DriverSwingSpeedMph
	}

	var graphiteFlex string
	switch {
	case driverSS >= 105:
		graphiteFlex = "X"
	case driverSS >= 95:
		graphiteFlex = "S"
	case driverSS >= 85:
		graphiteFlex = "R"
	default:
		graphiteFlex = "A"
	}
	steelFlex := strOr(payload.ShaftFlex, graphiteFlex)

	var loft string
	switch {
	case driverSS >= 105:
		loft = "9-10°"
	case driverSS >= 95:
		loft = "10-11°"
	default:
		loft = "11-12°"
	}

	ballSoftness := "Medium"
	if payload.DriverBallSpeedMph != nil && *payload.DriverBallSpeedMph >= 165 {
		ballSoftness = "Firm"
	}

	return &domain.StructuredRecommendations{
		Equipment: domain.EquipmentSpecs{
			Driver: domain.DriverSpec{
				Head:          "Forged titanium head with mid-MOI",
				Loft:          loft,
				Lie:           "Standard",
				ShaftSteel:    fmt.Sprintf("Not typical (driver). If used: %s", steelFlex),
				ShaftGraphite: fmt.Sprintf("%s flex, mid-kick, %s", graphiteFlex, strOr(payload.ShaftMaterial, "Graphite")),
			},
			Iron: domain.IronSpec{
				Head:          strOr(payload.ClubsBrandModel, "Cavity-back irons"),
				Lie:           "Fit via static/dynamic (use wrist-to-floor)",
				ShaftSteel:    fmt.Sprintf("%s flex, mid-weight", strOr(payload.ShaftFlex, "R")),
				ShaftGraphite: fmt.Sprintf("%s flex, low-mid torque", strOr(payload.ShaftFlex, "R")),
			},
			Wedges: domain.WedgeSpec{
				Heads:         "Gap/Sand/Lob with varied bounce",
				Grind:         "Match turf interaction and shot style",
				Lie:           "Standard; adjust for pull/push tendencies",
				ShaftSteel:    fmt.Sprintf("%s flex", strOr(payload.ShaftFlex, "R")),
				ShaftGraphite: fmt.Sprintf("%s flex", strOr(payload.ShaftFlex, "R")),
			},
			Grip: domain.GripSpec{
				Size: strOr(payload.GripSize, "Standard"),
				Type: strOr(payload.GripType, "Rubber"),
			},
			Ball: domain.BallSpec{
				Type:     strOr(payload.BallBrandModel, "Tour or Mid-compression"),
				Softness: ballSoftness,
			},
			Putter: domain.PutterSpec{
				Head:   "Mallet for stability (or blade for feel)",
				Length: "33-35 inches, fit by posture",
				Lie:    "Standard; adjust for aim bias",
			},
		},
		GameImprovements: domain.GameImprovements{
			Plan: domain.PracticePlan{
				LongGame: []string{
					"2x/week swing speed or launch monitor sessions",
					"Driver/6-iron start line and curvature control drills",
					"Course management: layup vs. attack decisions",
				},
				ShortGame: []string{
					"Wedge ladder drills (carry/roll control)",
					"Bunker entry and exit technique (bounce usage)",
					"Up-and-down challenge sets (varied lies)",
				},
				Putting: []string{
					"Gate drill for start line",
					"Tempo metronome sessions (32-36 bpm typical)",
					"Lag putting distances and green reading practice",
				},
			},
			Extras: domain.PlanExtras{
				TrainingAids:      []string{"Swing speed trainer", "Putting mirror", "Alignment sticks"},
				Apps:              []string{"Arccos", "GolfShot", "V1 Golf"},
				EnjoymentUpgrades: []string{"Music-ready cart speaker", "Comfort grip upgrade", "Course photography goals"},
			},
		},
		Scoring: domain.Scoring{
			HandicapCalculation: domain.HandicapCalculation{
				Estimate: estimate,
				Method:   "Average score based estimate (CR=72, Slope=113)",
				Notes: []string{
					"For official index, post scores and use course/slope specific differentials",
					"Use best differentials from recent rounds per WHS rules",
				},
			},
		},
	}
}
