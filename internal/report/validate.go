package report

import (
	"fmt"
	"strings"
)

// SchemaError reports that a parsed report violates the required shape.
// Like ParseError it preserves the raw model text for diagnostics, so the
// analysis endpoint can return both failure kinds under one contract.
type SchemaError struct {
	Raw    string
	Issues []string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return "analysis report failed schema validation: " + strings.Join(e.Issues, "; ")
}

// Validate checks that a parsed report satisfies the contract the renderer
// and the store rely on: score in range, a known verdict, all six palm lines
// populated, and the five extended blocks present. It closes the gap between
// "is valid JSON" and "is a valid report"; the upstream model's shape is
// never trusted unchecked.
//
// raw is the original model text, carried into the SchemaError.
func Validate(r *AnalysisReport, raw string) error {
	var issues []string

	if r.CompatibilityScore < 0 || r.CompatibilityScore > 100 {
		issues = append(issues, fmt.Sprintf("compatibilityScore %d out of range [0,100]", r.CompatibilityScore))
	}
	if !IsValidVerdict(r.Verdict) {
		issues = append(issues, fmt.Sprintf("unknown verdict %q", r.Verdict))
	}

	lines := []struct {
		key string
		lr  LineReading
	}{
		{"heartLine", r.PalmLineAnalysis.HeartLine},
		{"headLine", r.PalmLineAnalysis.HeadLine},
		{"lifeLine", r.PalmLineAnalysis.LifeLine},
		{"fateLine", r.PalmLineAnalysis.FateLine},
		{"sunLine", r.PalmLineAnalysis.SunLine},
		{"mercuryLine", r.PalmLineAnalysis.MercuryLine},
	}
	for _, l := range lines {
		if strings.TrimSpace(l.lr.Observation) == "" || strings.TrimSpace(l.lr.Interpretation) == "" {
			issues = append(issues, "palm line "+l.key+" is missing or incomplete")
		}
	}

	if len(r.PersonalityTraits) == 0 {
		issues = append(issues, "personalityTraits is empty")
	}
	if len(r.Strengths) == 0 {
		issues = append(issues, "strengths is empty")
	}
	for i, alt := range r.AlternativeRoles {
		if alt.Compatibility < 0 || alt.Compatibility > 100 {
			issues = append(issues, fmt.Sprintf("alternativeRoles[%d].compatibility %d out of range [0,100]", i, alt.Compatibility))
		}
	}

	blocks := []struct {
		key   string
		empty bool
	}{
		{"behavioralAnalysis", r.BehavioralAnalysis == BehavioralAnalysis{}},
		{"workplaceDynamics", r.WorkplaceDynamics == WorkplaceDynamics{}},
		{"careerGrowth", emptyCareerGrowth(r.CareerGrowth)},
		{"workCapabilities", emptyWorkCapabilities(r.WorkCapabilities)},
		{"jobChangeAnalysis", emptyJobChange(r.JobChangeAnalysis)},
	}
	for _, b := range blocks {
		if b.empty {
			issues = append(issues, "extended block "+b.key+" is missing")
		}
	}

	if len(issues) > 0 {
		return &SchemaError{Raw: raw, Issues: issues}
	}
	return nil
}

// Structs with slice fields cannot be compared with ==; a block counts as
// missing only when every field is zero.

func emptyCareerGrowth(c CareerGrowth) bool {
	return c.GrowthPotential == "" && c.CareerTrajectory == "" &&
		len(c.Hurdles) == 0 && len(c.SuccessFactors) == 0 && c.TimelineProjection == ""
}

func emptyWorkCapabilities(w WorkCapabilities) bool {
	return len(w.BestTaskTypes) == 0 && w.IdealWorkEnvironment == "" &&
		w.ProductivityPeaks == "" && len(w.SkillsToLeverage) == 0 && len(w.AreasOfExcellence) == 0
}

func emptyJobChange(j JobChangeAnalysis) bool {
	return j.LikelihoodToChange == "" && len(j.ReasonsForChange) == 0 &&
		j.IdealNextRole == "" && len(j.RetentionFactors) == 0 && j.LoyaltyIndicators == ""
}
