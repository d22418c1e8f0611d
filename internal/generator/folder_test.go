package generator

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitizePart(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback string
		want     string
	}{
		{"simple name", "Acme", "company", "acme"},
		{"punctuation dropped", "Acme, Inc.", "company", "acme_inc"},
		{"whitespace runs collapse", "Staff   Software\tEngineer", "title", "staff_software_engineer"},
		{"all punctuation falls back", "!!!???", "company", "company"},
		{"empty falls back", "", "title", "title"},
		{"whitespace only falls back", "   ", "company", "company"},
		{"digits survive", "B2B Sales 101", "title", "b2b_sales_101"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizePart(tt.input, tt.fallback))
		})
	}
}

var folderNameRe = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestFolderName(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	name := folderName("Acme Corp", "Staff Engineer", now)

	assert.Regexp(t, folderNameRe, name)
	assert.Contains(t, name, "acme_corp_staff_engineer_20260314_150926_")
}

func TestFolderNameUniqueWithinSameSecond(t *testing.T) {
	now := time.Now()
	a := folderName("Acme", "Engineer", now)
	b := folderName("Acme", "Engineer", now)
	assert.NotEqual(t, a, b)
}
