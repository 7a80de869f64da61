package report

// The five suitability verdicts, ordered from best to worst. These are the
// exact labels the model is instructed to emit and the renderer displays.
const (
	VerdictHighlySuitable     = "Highly Suitable"
	VerdictSuitable           = "Suitable"
	VerdictModeratelySuitable = "Moderately Suitable"
	VerdictLessSuitable       = "Less Suitable"
	VerdictNotRecommended     = "Not Recommended"
)

// Verdicts lists all valid verdict labels, best first.
var Verdicts = []string{
	VerdictHighlySuitable,
	VerdictSuitable,
	VerdictModeratelySuitable,
	VerdictLessSuitable,
	VerdictNotRecommended,
}

// IsValidVerdict reports whether s is one of the five verdict labels.
func IsValidVerdict(s string) bool {
	for _, v := range Verdicts {
		if s == v {
			return true
		}
	}
	return false
}

// VerdictForScore maps a compatibility score to its verdict bucket. The
// buckets are exhaustive and non-overlapping for every integer in [0,100]:
//
//	[ 0, 20) Not Recommended
//	[20, 40) Less Suitable
//	[40, 55) Moderately Suitable
//	[55, 75) Suitable
//	[75,100] Highly Suitable
//
// Scores outside [0,100] are clamped so the function is total.
func VerdictForScore(score int) string {
	switch {
	case score < 20:
		return VerdictNotRecommended
	case score < 40:
		return VerdictLessSuitable
	case score < 55:
		return VerdictModeratelySuitable
	case score < 75:
		return VerdictSuitable
	default:
		return VerdictHighlySuitable
	}
}
