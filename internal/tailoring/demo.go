package tailoring

import "github.com/jonathan/resume-tailor-api/internal/types"

// DemoResume returns the canned resume served when no model API key is
// configured. It is a deployment convenience so the API stays explorable
// without credentials.
func DemoResume() *types.TailoredResume {
	return &types.TailoredResume{
		Summary: "Experienced professional with a proven track record of delivering results. " +
			"Skilled in problem-solving, communication, and team collaboration. " +
			"Seeking to leverage expertise in a challenging new role.",
		WorkExperiences: []types.TailoredWorkExperience{
			{
				Company:   "Your Company",
				JobTitle:  "Your Role",
				Location:  "City, State",
				StartDate: "2020-01",
				EndDate:   "Present",
				Highlights: []string{
					"Led initiatives that improved team productivity by 25%",
					"Collaborated with cross-functional teams to deliver projects on time",
					"Implemented best practices that reduced errors by 40%",
				},
			},
		},
		Skills: types.SkillGroups{
			Technical: []string{"JavaScript", "TypeScript", "React", "Node.js"},
			Tools:     []string{"Git", "VS Code", "Jira", "Figma"},
			Soft:      []string{"Leadership", "Communication", "Problem Solving"},
		},
		Education: []types.TailoredEducation{
			{
				Institution:    "University",
				Degree:         "Bachelor's Degree",
				Field:          "Computer Science",
				GraduationDate: "2019-05",
			},
		},
		MatchScore:   75,
		KeyStrengths: []string{"Technical Skills", "Problem Solving", "Team Player"},
		Recommendations: []string{
			"Add more quantifiable achievements to strengthen your resume",
			"Include specific technologies mentioned in the job description",
			"Configure the database and Gemini API key for personalized AI tailoring",
		},
	}
}
