package fit

import "github.com/simplejobbot/jobbot/internal/models"

// Fit labels, ordered strongest first.
const (
	LabelStrong   = "Strong fit"
	LabelGood     = "Good fit"
	LabelModerate = "Moderate fit"
	LabelLow      = "Low fit"
)

// Label maps a 0-100 fit score onto its bucket. Total over all floats: out of
// range values land in the outer buckets.
func Label(score float64) string {
	switch {
	case score >= 85:
		return LabelStrong
	case score >= 70:
		return LabelGood
	case score >= 55:
		return LabelModerate
	default:
		return LabelLow
	}
}

// longDescriptionLen is the job description length past which the estimate
// assumes a detailed posting and nudges the score up.
const longDescriptionLen = 1500

// Estimate computes a fit score locally, without a model call. Used by the
// quick-estimate endpoint; the generation pipeline takes the score from the
// model instead.
func Estimate(job models.JobInput) float64 {
	score := 70.0
	switch job.Seniority.Level {
	case models.SenioritySenior, models.SeniorityLead, models.SeniorityDirector, models.SeniorityExecutive:
		score += 5.0
	}
	if len(job.JobDescription) > longDescriptionLen {
		score += 5.0
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
