// Package report defines the palm analysis document produced by the upstream
// model, the parser that extracts it from free-form model output, schema
// validation, and the verdict scale derived from the compatibility score.
//
// The JSON shape is a strict contract with the rendering side: exactly six
// named palm lines and five extended analysis blocks. The parser never
// repairs or coerces malformed output; anything that does not unmarshal (or
// fails validation) is rejected with the raw text preserved for diagnostics.
package report

import "encoding/json"

// LineReading is one observed palm line and its career interpretation.
type LineReading struct {
	Observation    string `json:"observation"`
	Interpretation string `json:"interpretation"`
}

// PalmLines holds the six fixed palm lines. The renderer indexes these by
// literal key, so all six must be present and populated.
type PalmLines struct {
	HeartLine   LineReading `json:"heartLine"`
	HeadLine    LineReading `json:"headLine"`
	LifeLine    LineReading `json:"lifeLine"`
	FateLine    LineReading `json:"fateLine"`
	SunLine     LineReading `json:"sunLine"`
	MercuryLine LineReading `json:"mercuryLine"`
}

// AlternativeRole is a suggested role with its own compatibility estimate.
type AlternativeRole struct {
	Role          string `json:"role"`
	Compatibility int    `json:"compatibility"`
	Reason        string `json:"reason"`
}

// BehavioralAnalysis describes day-to-day behavior at work.
type BehavioralAnalysis struct {
	OverallBehavior       string `json:"overallBehavior"`
	EmotionalIntelligence string `json:"emotionalIntelligence"`
	StressResponse        string `json:"stressResponse"`
	Adaptability          string `json:"adaptability"`
	DecisionMakingStyle   string `json:"decisionMakingStyle"`
}

// WorkplaceDynamics describes interpersonal behavior in a team.
type WorkplaceDynamics struct {
	RelationshipWithColleagues string `json:"relationshipWithColleagues"`
	TeamworkCapability         string `json:"teamworkCapability"`
	LeadershipPotential        string `json:"leadershipPotential"`
	CommunicationStyle         string `json:"communicationStyle"`
	ConflictResolution         string `json:"conflictResolution"`
}

// CareerGrowth projects trajectory, hurdles, and success factors.
type CareerGrowth struct {
	GrowthPotential    string   `json:"growthPotential"`
	CareerTrajectory   string   `json:"careerTrajectory"`
	Hurdles            []string `json:"hurdles"`
	SuccessFactors     []string `json:"successFactors"`
	TimelineProjection string   `json:"timelineProjection"`
}

// WorkCapabilities describes task fit and productive conditions.
type WorkCapabilities struct {
	BestTaskTypes        []string `json:"bestTaskTypes"`
	IdealWorkEnvironment string   `json:"idealWorkEnvironment"`
	ProductivityPeaks    string   `json:"productivityPeaks"`
	SkillsToLeverage     []string `json:"skillsToLeverage"`
	AreasOfExcellence    []string `json:"areasOfExcellence"`
}

// JobChangeAnalysis estimates attrition risk and retention factors.
type JobChangeAnalysis struct {
	LikelihoodToChange string   `json:"likelihoodToChange"`
	ReasonsForChange   []string `json:"reasonsForChange"`
	IdealNextRole      string   `json:"idealNextRole"`
	RetentionFactors   []string `json:"retentionFactors"`
	LoyaltyIndicators  string   `json:"loyaltyIndicators"`
}

// AnalysisReport is the complete palm reading for one role. It is produced by
// the upstream model, validated once after parsing, and from then on treated
// as immutable: persisted verbatim and rendered without further checks.
type AnalysisReport struct {
	CompatibilityScore    int                `json:"compatibilityScore"`
	Verdict               string             `json:"verdict"`
	PalmLineAnalysis      PalmLines          `json:"palmLineAnalysis"`
	PersonalityTraits     []string           `json:"personalityTraits"`
	Strengths             []string           `json:"strengths"`
	Weaknesses            []string           `json:"weaknesses"`
	AlternativeRoles      []AlternativeRole  `json:"alternativeRoles"`
	AstrologicalReasoning string             `json:"astrologicalReasoning"`
	BehavioralAnalysis    BehavioralAnalysis `json:"behavioralAnalysis"`
	WorkplaceDynamics     WorkplaceDynamics  `json:"workplaceDynamics"`
	CareerGrowth          CareerGrowth       `json:"careerGrowth"`
	WorkCapabilities      WorkCapabilities   `json:"workCapabilities"`
	JobChangeAnalysis     JobChangeAnalysis  `json:"jobChangeAnalysis"`
}

// MarshalJSONString serializes the report to its canonical JSON form.
func (r *AnalysisReport) MarshalJSONString() (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
