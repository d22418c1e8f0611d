package generator

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplejobbot/jobbot/internal/models"
	"github.com/simplejobbot/jobbot/internal/modelout"
)

type stubClient struct {
	response string
	err      error

	systemPrompt string
	userPrompt   string
	calls        int
}

func (s *stubClient) Chat(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	s.calls++
	s.systemPrompt = systemPrompt
	s.userPrompt = userPrompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

const taggedResponse = `FIT_SCORE: 88
REASONING:
Strong overlap between the resume and the posting.

COVER_LETTER:
Dear Acme Corp,

I am applying for the Staff Engineer role.
END_COVER_LETTER

RESUME:
Jane Doe
Staff Engineer experience at scale.
END_RESUME

SHORT_ANSWERS:
1) Acme builds infrastructure I already work on.
2) The role matches my distributed systems background.
3) Flexible on compensation within market range.
END_SHORT_ANSWERS
`

func testJob() models.JobInput {
	return models.JobInput{
		ResumeText:     "Jane Doe\n10 years of engineering.",
		Company:        "Acme Corp",
		Title:          "Staff Engineer",
		Location:       "Remote",
		JobDescription: "Build distributed systems.",
		Seniority:      models.Seniority{Level: models.SenioritySenior},
	}
}

func TestGenerateEndToEnd(t *testing.T) {
	root := t.TempDir()
	client := &stubClient{response: taggedResponse}
	g := New(client, root, "./job-packages")

	pkg, err := g.Generate(context.Background(), testJob())
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, 88.0, pkg.FitScore)
	assert.Equal(t, "Strong fit", pkg.FitLabel)
	assert.Contains(t, pkg.Resume, "Jane Doe")
	assert.Contains(t, pkg.CoverLetter, "Dear Acme Corp,")
	assert.NotEmpty(t, pkg.ShortAnswers[0])
	assert.NotEmpty(t, pkg.ShortAnswers[2])

	// Exactly one folder matching the naming convention.
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	folder := entries[0].Name()
	assert.Equal(t, pkg.FolderName, folder)
	assert.Regexp(t, regexp.MustCompile(`^acme_corp_staff_engineer_\d{8}_\d{6}_[a-f0-9]{8}$`), folder)
	assert.Equal(t, "./job-packages/"+folder, pkg.HostFolder)

	// Exactly the four artifact files.
	files, err := os.ReadDir(filepath.Join(root, folder))
	require.NoError(t, err)
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name())
	}
	assert.ElementsMatch(t, []string{ResumeFile, CoverLetterFile, ShortAnswersFile, MetaFile}, names)

	answers, err := os.ReadFile(filepath.Join(root, folder, ShortAnswersFile))
	require.NoError(t, err)
	assert.Contains(t, string(answers), "Answer 1:\n")
	assert.Contains(t, string(answers), "Answer 3:\n")

	var meta models.Meta
	data, err := os.ReadFile(filepath.Join(root, folder, MetaFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &meta))
	assert.Equal(t, "Acme Corp", meta.Company)
	assert.Equal(t, "Staff Engineer", meta.Title)
	assert.Equal(t, "senior", meta.SeniorityHint)
	assert.Equal(t, 88.0, meta.FitScore)
	assert.Equal(t, "Strong fit", meta.FitLabel)
	assert.Equal(t, folder, meta.FolderName)
	assert.NotEmpty(t, meta.CreatedAt)
}

func TestGeneratePromptsCarryJobFields(t *testing.T) {
	client := &stubClient{response: taggedResponse}
	g := New(client, t.TempDir(), "")

	_, err := g.Generate(context.Background(), testJob())
	require.NoError(t, err)

	assert.Contains(t, client.systemPrompt, "FIT_SCORE:")
	assert.Contains(t, client.systemPrompt, "Do not invent employers")
	assert.Contains(t, client.userPrompt, "Jane Doe")
	assert.Contains(t, client.userPrompt, "Company: Acme Corp")
	assert.Contains(t, client.userPrompt, "Job title: Staff Engineer")
	assert.Contains(t, client.userPrompt, "Seniority hint: senior")
}

func TestGenerateClientErrorPropagates(t *testing.T) {
	root := t.TempDir()
	client := &stubClient{err: errors.New("connection refused")}
	g := New(client, root, "")

	_, err := g.Generate(context.Background(), testJob())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")

	// Nothing written on upstream failure.
	entries, readErr := os.ReadDir(root)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestGenerateParseErrorPropagates(t *testing.T) {
	root := t.TempDir()
	client := &stubClient{response: "no tags in here at all"}
	g := New(client, root, "")

	_, err := g.Generate(context.Background(), testJob())
	require.Error(t, err)

	var parseErr *modelout.ParseError
	assert.ErrorAs(t, err, &parseErr)

	entries, readErr := os.ReadDir(root)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestFormatShortAnswers(t *testing.T) {
	got := FormatShortAnswers([3]string{"a", "b", ""})
	assert.Equal(t, "Answer 1:\na\n\nAnswer 2:\nb\n\nAnswer 3:\n\n\n", got)
}
