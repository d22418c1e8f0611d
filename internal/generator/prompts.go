package generator

import (
	"fmt"
	"strings"

	"github.com/simplejobbot/jobbot/internal/models"
)

// systemPrompt pins down the authorship rules and the exact tagged output
// format the parser expects. Local models drift, hence the blunt wording.
const systemPrompt = `You are writing for one specific candidate, based on the resume text that is provided to you.
You receive the candidates resume text and a job description.

Your tasks:
1. Judge how well this candidate fits the job and choose a numeric fit score between 0 and 100.
2. Provide a short, plain language explanation of the match.
3. Write a full tailored resume text for this one job.
4. Write a full tailored cover letter for this one job.
5. Write three short answers for likely online application questions.

Hard constraints:
1. Use simple direct language. Avoid generic corporate buzzwords such as "seasoned", "results driven", "dynamic", "passionate", "leveraging synergies".
2. Do not say that you are an AI or language model.
3. Do not use markdown formatting. No bracket links, no code fences, no markdown emphasis. Use plain text with line breaks.
4. Do not output literal sequences like "\n" in the resume or cover letter. Use real line breaks.
5. It is forbidden to use any placeholder such as "...", "etc.", "list goes here", "truncated", "continued", or any variation. Never output three consecutive dots. Always write actual content based on the resume.
6. Respect the candidates real experience. Do not invent employers, titles, certifications, or responsibilities that are not supported by the resume.
7. Keep sentences grounded in real work and outcomes.
8. The experience section must include every role from the resume, in reverse chronological order. For older roles you may use fewer lines but they must still appear.

Resume structure:
1. Header with name, location, phone, email, and LinkedIn if available.
2. A short summary of three or four plain sentences.
3. A "Core strengths" section with five to eight short bullet style lines aligned to the job.
4. An "Experience" section in reverse chronological order. For each role in the resume include:
   - title
   - company
   - location if available
   - dates
   - for recent roles: four to six lines describing responsibilities and achievements
   - for older roles: at least two lines each summarizing responsibilities or impact
5. Short "Education" and "Certifications" sections at the end.

Cover letter:
1. One page or less.
2. Address the company and role, explain why the profile is a match, and connect one or two concrete examples to the role.
3. Use short paragraphs in plain language.

Output format (this is critical):
Return plain text only, with these exact sections and tags, in this order:

FIT_SCORE: <number from 0 to 100>
REASONING:
<one short paragraph>

COVER_LETTER:
<full cover letter text>
END_COVER_LETTER

RESUME:
<full resume text>
END_RESUME

SHORT_ANSWERS:
1) <one or two sentence answer about why this company>
2) <one or two sentence answer about why this role>
3) <one or two sentence answer about compensation expectations or range>
END_SHORT_ANSWERS

Do not add any extra commentary before or after these tags.`

// buildUserPrompt assembles the per-submission half of the prompt pair.
func buildUserPrompt(job models.JobInput) string {
	var sb strings.Builder
	sb.WriteString("Candidate resume text:\n")
	sb.WriteString(job.ResumeText)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Job title: %s\n", job.Title)
	fmt.Fprintf(&sb, "Company: %s\n", job.Company)
	fmt.Fprintf(&sb, "Location: %s\n", orUnspecified(job.Location))
	fmt.Fprintf(&sb, "Seniority hint: %s\n", orUnspecified(job.Seniority.String()))
	sb.WriteString("\nJob description:\n")
	sb.WriteString(job.JobDescription)
	sb.WriteString("\n\nFollow the required output format exactly.")
	return sb.String()
}

func orUnspecified(s string) string {
	if s == "" {
		return "unspecified"
	}
	return s
}
