package handlers

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simplejobbot/jobbot/internal/diagnostics"
	"github.com/simplejobbot/jobbot/internal/extract"
	"github.com/simplejobbot/jobbot/internal/fit"
	"github.com/simplejobbot/jobbot/internal/models"
)

const recentLimit = 20

// maxResumeFileBytes caps uploaded resume files.
const maxResumeFileBytes = 10 << 20

// submitForm binds the dashboard form. resume_text is optional at the binding
// level because a resume file upload may replace it.
type submitForm struct {
	ResumeText     string `form:"resume_text"`
	Company        string `form:"company" binding:"required"`
	Title          string `form:"title" binding:"required"`
	Location       string `form:"location"`
	JobDescription string `form:"job_description" binding:"required"`
	SeniorityHint  string `form:"seniority_hint"`
}

// packageRequest binds the structured /generate_package body.
type packageRequest struct {
	ResumeText     string `json:"resume_text" binding:"required"`
	Company        string `json:"company" binding:"required"`
	Title          string `json:"title" binding:"required"`
	Location       string `json:"location"`
	JobDescription string `json:"job_description" binding:"required"`
	SeniorityHint  string `json:"seniority_hint"`
}

// estimateRequest binds the /estimate_fit body. Only the description and
// seniority hint feed the heuristic.
type estimateRequest struct {
	JobDescription string `json:"job_description" binding:"required"`
	SeniorityHint  string `json:"seniority_hint"`
}

// Index renders the dashboard: recent packages, recent errors, output stats,
// and the submission form.
func Index(c *gin.Context, deps *Deps) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Recent": diagnostics.ListRecent(deps.Cfg.OutputRoot, recentLimit),
		"Errors": deps.Diag.RecentErrors(),
		"Stats":  diagnostics.Stats(deps.Cfg.OutputRoot),
	})
}

// Submit handles the dashboard form: bind, optionally extract an uploaded
// resume file, generate the package, render the result or an error page.
func Submit(c *gin.Context, deps *Deps) {
	var form submitForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, deps, http.StatusBadRequest, fmt.Errorf("invalid form input: %w", err))
		return
	}

	resumeText := form.ResumeText
	if file, err := c.FormFile("resume_file"); err == nil && file != nil {
		text, err := readResumeFile(file)
		if err != nil {
			renderError(c, deps, http.StatusBadRequest, err)
			return
		}
		resumeText = text
	}
	if resumeText == "" {
		renderError(c, deps, http.StatusBadRequest, fmt.Errorf("resume text is required: paste it or upload a file"))
		return
	}

	job := models.JobInput{
		ResumeText:     resumeText,
		Company:        form.Company,
		Title:          form.Title,
		Location:       form.Location,
		JobDescription: form.JobDescription,
		Seniority:      models.ParseSeniority(form.SeniorityHint),
	}

	// context.Background: a model call in flight is never aborted, even if
	// the browser gives up.
	pkg, err := deps.Gen.Generate(context.Background(), job)
	if err != nil {
		renderError(c, deps, http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, "result.html", gin.H{
		"Company": job.Company,
		"Title":   job.Title,
		"Package": pkg,
	})
}

// GeneratePackage is the structured twin of Submit: JSON in, JSON out.
func GeneratePackage(c *gin.Context, deps *Deps) {
	var req packageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	job := models.JobInput{
		ResumeText:     req.ResumeText,
		Company:        req.Company,
		Title:          req.Title,
		Location:       req.Location,
		JobDescription: req.JobDescription,
		Seniority:      models.ParseSeniority(req.SeniorityHint),
	}

	pkg, err := deps.Gen.Generate(context.Background(), job)
	if err != nil {
		log.WithError(err).Error("package generation failed")
		deps.Diag.RecordError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// EstimateFit returns the local heuristic score and label without touching
// the model server.
func EstimateFit(c *gin.Context, deps *Deps) {
	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	job := models.JobInput{
		JobDescription: req.JobDescription,
		Seniority:      models.ParseSeniority(req.SeniorityHint),
	}
	score := fit.Estimate(job)

	c.JSON(http.StatusOK, gin.H{
		"fit_score": score,
		"fit_label": fit.Label(score),
	})
}

func renderError(c *gin.Context, deps *Deps, status int, err error) {
	log.WithError(err).Error("submission failed")
	deps.Diag.RecordError(err)
	c.HTML(status, "error.html", gin.H{
		"Status":  status,
		"Message": err.Error(),
	})
}

func readResumeFile(file *multipart.FileHeader) (string, error) {
	if file.Size > maxResumeFileBytes {
		return "", fmt.Errorf("resume file too large (max %d MB)", maxResumeFileBytes>>20)
	}
	f, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded resume: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read uploaded resume: %w", err)
	}
	return extract.ResumeText(file.Filename, data)
}
