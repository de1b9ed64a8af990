package domain

import "context"

// ============================================================================
// Rule-based recommendations
// ============================================================================

type Recommendation struct {
	Text string `json:"text"`
}

// ============================================================================
// Structured recommendations (fitting wizard)
// ============================================================================

// WizardPayload carries the full fitting-wizard submission. Every field is
// optional; the generator fills gaps with conservative defaults.
type WizardPayload struct {
	// Body & physical info
	HeightCm         *float64 `json:"heightCm,omitempty"`
	WeightKg         *float64 `json:"weightKg,omitempty"`
	WristToFloorCm   *float64 `json:"wristToFloorCm,omitempty"`
	GloveSize        *string  `json:"gloveSize,omitempty"`
	Age              *int     `json:"age,omitempty"`
	FitnessLevel     *string  `json:"fitnessLevel,omitempty"`
	FlexibilityLevel *string  `json:"flexibilityLevel,omitempty"`

	// Swing data & equipment
	DriverSwingSpeedMph  *float64 `json:"driverSwingSpeedMph,omitempty"`
	DriverBallSpeedMph   *float64 `json:"driverBallSpeedMph,omitempty"`
	SixIronSwingSpeedMph *float64 `json:"sixIronSwingSpeedMph,omitempty"`
	SixIronBallSpeedMph  *float64 `json:"sixIronBallSpeedMph,omitempty"`
	DriverCarryYds       *float64 `json:"driverCarryYds,omitempty"`
	SevenIronCarryYds    *float64 `json:"sevenIronCarryYds,omitempty"`
	ClubsBrandModel      *string  `json:"clubsBrandModel,omitempty"`
	ShaftFlex            *string  `json:"shaftFlex,omitempty"`
	ShaftMaterial        *string  `json:"shaftMaterial,omitempty"`
	GripType             *string  `json:"gripType,omitempty"`
	GripSize             *string  `json:"gripSize,omitempty"`
	BallBrandModel       *string  `json:"ballBrandModel,omitempty"`
	ShotShape            *string  `json:"shotShape,omitempty"`
	CommonMiss           *string  `json:"commonMiss,omitempty"`

	// Game & scoring
	Handicap        *int    `json:"handicap,omitempty"`
	AvgScore18      *int    `json:"avgScore18,omitempty"`
	BestRecentRound *int    `json:"bestRecentRound,omitempty"`
	LastTenScores   *string `json:"lastTenScores,omitempty"`
	Strengths       *string `json:"strengths,omitempty"`
	Weaknesses      *string `json:"weaknesses,omitempty"`
}

type DriverSpec struct {
	Head          string `json:"head"`
	Loft          string `json:"loft"`
	Lie           string `json:"lie"`
	ShaftSteel    string `json:"shaftSteel"`
	ShaftGraphite string `json:"shaftGraphite"`
}

type IronSpec struct {
	Head          string `json:"head"`
	Lie           string `json:"lie"`
	ShaftSteel    string `json:"shaftSteel"`
	ShaftGraphite string `json:"shaftGraphite"`
}

type WedgeSpec struct {
	Heads         string `json:"heads"`
	Grind         string `json:"grind"`
	Lie           string `json:"lie"`
	ShaftSteel    string `json:"shaftSteel"`
	ShaftGraphite string `json:"shaftGraphite"`
}

type GripSpec struct {
	Size string `json:"size"`
	Type string `json:"type"`
}

type BallSpec struct {
	Type     string `json:"type"`
	Softness string `json:"softness"`
}

type PutterSpec struct {
	Head   string `json:"head"`
	Length string `json:"length"`
	Lie    string `json:"lie"`
}

type EquipmentSpecs struct {
	Driver DriverSpec `json:"driver"`
	Iron   IronSpec   `json:"iron"`
	Wedges WedgeSpec  `json:"wedges"`
	Grip   GripSpec   `json:"grip"`
	Ball   BallSpec   `json:"ball"`
	Putter PutterSpec `json:"putter"`
}

type PracticePlan struct {
	LongGame  []string `json:"longGame"`
	ShortGame []string `json:"shortGame"`
	Putting   []string `json:"putting"`
}

type PlanExtras struct {
	TrainingAids      []string `json:"trainingAids"`
	Apps              []string `json:"apps"`
	EnjoymentUpgrades []string `json:"enjoymentUpgrades"`
}

type GameImprovements struct {
	Plan   PracticePlan `json:"plan"`
	Extras PlanExtras   `json:"extras"`
}

type HandicapCalculation struct {
	Estimate int      `json:"estimate"`
	Method   string   `json:"method"`
	Notes    []string `json:"notes"`
}

type Scoring struct {
	HandicapCalculation HandicapCalculation `json:"handicapCalculation"`
}

type StructuredRecommendations struct {
	Equipment        EquipmentSpecs   `json:"equipment"`
	GameImprovements GameImprovements `json:"gameImprovements"`
	Scoring          Scoring          `json:"scoring"`
}

// Complete reports whether the three top-level sections all came back from
// the generator. Anything less falls back to deterministic output.
func (s *StructuredRecommendations) Complete() bool {
	return s != nil &&
		len(s.GameImprovements.Plan.LongGame)+len(s.GameImprovements.Plan.ShortGame)+len(s.GameImprovements.Plan.Putting) > 0 &&
		s.Scoring.HandicapCalculation.Method != ""
}

// ============================================================================
// Interfaces
// ============================================================================

// StructuredGenerator is the external collaborator producing structured
// recommendations. Implementations must always return a structurally valid
// result, substituting a deterministic fallback when the remote service is
// unavailable or returns garbage.
type StructuredGenerator interface {
	Generate(ctx context.Context, payload *WizardPayload) *StructuredRecommendations
}

type RecommendationUsecase interface {
	// GenerateRecommendations applies the deterministic tip rules to the
	// user's profile. A missing profile behaves as an empty one.
	GenerateRecommendations(ctx context.Context, userID string) ([]Recommendation, error)

	// GenerateStructured passes the wizard payload through to the external
	// generator and returns its result verbatim.
	GenerateStructured(ctx context.Context, payload *WizardPayload) *StructuredRecommendations
}
