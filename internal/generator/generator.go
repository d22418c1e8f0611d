package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/simplejobbot/jobbot/internal/fit"
	"github.com/simplejobbot/jobbot/internal/llm"
	"github.com/simplejobbot/jobbot/internal/models"
	"github.com/simplejobbot/jobbot/internal/modelout"
)

var log = logrus.New()

// Artifact file names inside each package folder.
const (
	ResumeFile       = "resume_full.txt"
	CoverLetterFile  = "cover_letter.txt"
	ShortAnswersFile = "short_answers.txt"
	MetaFile         = "meta.json"
)

// Generator assembles one job package end to end: prompt, model call, parse,
// label, folder, artifact writes.
type Generator struct {
	client         llm.Client
	outputRoot     string
	hostOutputRoot string
	now            func() time.Time
}

func New(client llm.Client, outputRoot, hostOutputRoot string) *Generator {
	return &Generator{
		client:         client,
		outputRoot:     outputRoot,
		hostOutputRoot: hostOutputRoot,
		now:            time.Now,
	}
}

// Generate processes one submission. The steps are strictly sequential; the
// model call is the only slow one. A failure after the folder exists may
// leave it partially populated; no cleanup is attempted and the error still
// reaches the caller.
func (g *Generator) Generate(ctx context.Context, job models.JobInput) (*models.GeneratedPackage, error) {
	log.WithFields(logrus.Fields{
		"company": job.Company,
		"title":   job.Title,
	}).Info("generating job package")

	raw, err := g.client.Chat(ctx, systemPrompt, buildUserPrompt(job))
	if err != nil {
		return nil, fmt.Errorf("error talking to model server: %w", err)
	}

	parsed, err := modelout.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model output: %w", err)
	}

	createdAt := g.now()
	name := folderName(job.Company, job.Title, createdAt)
	dir := filepath.Join(g.outputRoot, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create package folder: %w", err)
	}

	pkg := &models.GeneratedPackage{
		FitScore:     parsed.FitScore,
		FitLabel:     fit.Label(parsed.FitScore),
		Reasoning:    parsed.Reasoning,
		CoverLetter:  parsed.CoverLetter,
		Resume:       parsed.Resume,
		ShortAnswers: parsed.ShortAnswers,
		FolderName:   name,
		FolderPath:   dir,
		HostFolder:   hostFolder(g.hostOutputRoot, name),
	}

	if err := g.writeArtifacts(dir, job, pkg, createdAt); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"folder":    name,
		"fit_score": pkg.FitScore,
		"fit_label": pkg.FitLabel,
	}).Info("job package written")

	return pkg, nil
}

func (g *Generator) writeArtifacts(dir string, job models.JobInput, pkg *models.GeneratedPackage, createdAt time.Time) error {
	files := []struct {
		name    string
		content string
	}{
		{ResumeFile, pkg.Resume},
		{CoverLetterFile, pkg.CoverLetter},
		{ShortAnswersFile, FormatShortAnswers(pkg.ShortAnswers)},
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.name), []byte(f.content), 0644); err != nil {
			return fmt.Errorf("write %s: %w", f.name, err)
		}
	}

	meta := models.Meta{
		Company:       job.Company,
		Title:         job.Title,
		Location:      job.Location,
		SeniorityHint: job.Seniority.String(),
		FitScore:      pkg.FitScore,
		FitLabel:      pkg.FitLabel,
		Reasoning:     pkg.Reasoning,
		FolderName:    pkg.FolderName,
		HostFolder:    pkg.HostFolder,
		CreatedAt:     createdAt.Format(time.RFC3339),
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal meta: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, MetaFile), data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", MetaFile, err)
	}
	return nil
}

// FormatShortAnswers renders the short-answers artifact as
// "Answer N:\n<text>\n\n" blocks.
func FormatShortAnswers(answers [3]string) string {
	var out string
	for i, ans := range answers {
		out += fmt.Sprintf("Answer %d:\n%s\n\n", i+1, ans)
	}
	return out
}

// hostFolder is the operator-visible path shown in the UI, useful when the
// output root inside the container differs from the mounted host path.
func hostFolder(hostRoot, name string) string {
	if hostRoot == "" {
		return ""
	}
	return strings.TrimRight(hostRoot, "/") + "/" + name
}
