package fit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/simplejobbot/jobbot/internal/models"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, LabelStrong},
		{90, LabelStrong},
		{85, LabelStrong},
		{84.9, LabelGood},
		{75, LabelGood},
		{70, LabelGood},
		{69, LabelModerate},
		{60, LabelModerate},
		{55, LabelModerate},
		{54, LabelLow},
		{0, LabelLow},
		{-10, LabelLow},
		{150, LabelStrong},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Label(tt.score), "score %v", tt.score)
	}
}

func TestEstimate(t *testing.T) {
	shortJD := "build things"
	longJD := strings.Repeat("requirements ", 200)

	tests := []struct {
		name string
		job  models.JobInput
		want float64
	}{
		{
			name: "base score",
			job:  models.JobInput{JobDescription: shortJD},
			want: 70,
		},
		{
			name: "senior hint adds five",
			job: models.JobInput{
				JobDescription: shortJD,
				Seniority:      models.Seniority{Level: models.SenioritySenior},
			},
			want: 75,
		},
		{
			name: "junior hint adds nothing",
			job: models.JobInput{
				JobDescription: shortJD,
				Seniority:      models.Seniority{Level: models.SeniorityJunior},
			},
			want: 70,
		},
		{
			name: "free text hint adds nothing",
			job: models.JobInput{
				JobDescription: shortJD,
				Seniority:      models.Seniority{Hint: "very senior person"},
			},
			want: 70,
		},
		{
			name: "long description adds five",
			job:  models.JobInput{JobDescription: longJD},
			want: 75,
		},
		{
			name: "executive hint and long description stack",
			job: models.JobInput{
				JobDescription: longJD,
				Seniority:      models.Seniority{Level: models.SeniorityExecutive},
			},
			want: 80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Estimate(tt.job))
		})
	}
}
