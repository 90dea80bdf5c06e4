// Package background renders a user's career records into the flat text
// context block that is embedded in the generation prompt.
package background

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor-api/internal/types"
)

// NoBackgroundSentinel is returned when every input collection is empty, so
// the prompt template never embeds a blank section.
const NoBackgroundSentinel = "No background information provided."

// Build flattens the given records into a newline-delimited text document
// with up to four labeled sections, emitted in fixed order: PROFILE, WORK
// EXPERIENCE, EDUCATION, SKILLS. A section is present only if its source
// collection is non-empty. Build is a pure function of its inputs.
func Build(profile *types.Profile, work []types.WorkExperience, educations []types.Education, skills []types.Skill) string {
	var sb strings.Builder

	if profile != nil {
		writeProfileSection(&sb, profile)
	}
	if len(work) > 0 {
		writeWorkSection(&sb, work)
	}
	if len(educations) > 0 {
		writeEducationSection(&sb, educations)
	}
	if len(skills) > 0 {
		writeSkillsSection(&sb, skills)
	}

	if sb.Len() == 0 {
		return NoBackgroundSentinel
	}
	return sb.String()
}

func writeProfileSection(sb *strings.Builder, p *types.Profile) {
	sb.WriteString("**PROFILE:**\n")
	if p.FullName != "" {
		fmt.Fprintf(sb, "Name: %s\n", p.FullName)
	}
	if p.Email != "" {
		fmt.Fprintf(sb, "Email: %s\n", p.Email)
	}
	if p.Phone != "" {
		fmt.Fprintf(sb, "Phone: %s\n", p.Phone)
	}
	if p.LinkedInURL != "" {
		fmt.Fprintf(sb, "LinkedIn: %s\n", p.LinkedInURL)
	}
	if p.PortfolioURL != "" {
		fmt.Fprintf(sb, "Portfolio: %s\n", p.PortfolioURL)
	}
	if p.SummaryBio != "" {
		fmt.Fprintf(sb, "\nSummary: %s\n", p.SummaryBio)
	}

	if len(p.Languages) > 0 {
		rendered := make([]string, 0, len(p.Languages))
		for _, l := range p.Languages {
			rendered = append(rendered, fmt.Sprintf("%s (%s)", l.Language, l.Level))
		}
		fmt.Fprintf(sb, "\nLanguages: %s\n", strings.Join(rendered, ", "))
	}

	if len(p.Certifications) > 0 {
		sb.WriteString("\nCertifications:\n")
		for _, cert := range p.Certifications {
			fmt.Fprintf(sb, "- %s by %s (%s)\n", cert.Name, cert.Issuer, cert.Year)
		}
	}
	sb.WriteString("\n")
}

func writeWorkSection(sb *strings.Builder, work []types.WorkExperience) {
	sb.WriteString("**WORK EXPERIENCE:**\n")
	for _, exp := range work {
		title := exp.JobTitle
		if title == "" {
			title = "Position"
		}
		company := exp.Company
		if company == "" {
			company = "Company"
		}
		fmt.Fprintf(sb, "\n%s at %s\n", title, company)
		if exp.Location != "" {
			fmt.Fprintf(sb, "Location: %s\n", exp.Location)
		}
		fmt.Fprintf(sb, "Duration: %s to %s\n", exp.StartDate, endOrPresent(exp.EndDate))
		if exp.Duties != "" {
			fmt.Fprintf(sb, "Duties: %s\n", exp.Duties)
		}
		if exp.Achievements != "" {
			fmt.Fprintf(sb, "**ACHIEVEMENTS: %s**\n", exp.Achievements)
		}
	}
	sb.WriteString("\n")
}

func writeEducationSection(sb *strings.Builder, educations []types.Education) {
	sb.WriteString("**EDUCATION:**\n")
	for _, edu := range educations {
		degree := edu.Degree
		if degree == "" {
			degree = "Degree"
		}
		institution := edu.Institution
		if institution == "" {
			institution = "Institution"
		}
		if edu.FieldOfStudy != "" {
			fmt.Fprintf(sb, "\n%s in %s\n", degree, edu.FieldOfStudy)
		} else {
			fmt.Fprintf(sb, "\n%s\n", degree)
		}
		fmt.Fprintf(sb, "%s\n", institution)
		fmt.Fprintf(sb, "%s to %s\n", edu.StartDate, endOrPresent(edu.EndDate))
	}
	sb.WriteString("\n")
}

func writeSkillsSection(sb *strings.Builder, skills []types.Skill) {
	sb.WriteString("**SKILLS:**\n")

	var technical, tools, soft []string
	for _, s := range skills {
		switch s.Category {
		case types.SkillCategoryHard, types.SkillCategoryTechnical:
			technical = append(technical, s.Name)
		case types.SkillCategoryTool:
			tools = append(tools, s.Name)
		case types.SkillCategorySoft:
			soft = append(soft, s.Name)
		}
	}

	if len(technical) > 0 {
		fmt.Fprintf(sb, "Technical Skills: %s\n", strings.Join(technical, ", "))
	}
	if len(tools) > 0 {
		fmt.Fprintf(sb, "Tools: %s\n", strings.Join(tools, ", "))
	}
	if len(soft) > 0 {
		fmt.Fprintf(sb, "Soft Skills: %s\n", strings.Join(soft, ", "))
	}
}

func endOrPresent(end string) string {
	if end == "" {
		return "Present"
	}
	return end
}

// JoinDocumentTexts concatenates extracted document texts into a single
// context block, separated so individual documents stay distinguishable.
// Documents without extracted text are skipped. Returns "" if nothing is left.
func JoinDocumentTexts(texts []string) string {
	nonEmpty := make([]string, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t) != "" {
			nonEmpty = append(nonEmpty, t)
		}
	}
	return strings.Join(nonEmpty, "\n\n---\n\n")
}
