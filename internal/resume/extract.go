// Package resume provides skill extraction from resume text.
//
// The extractor is a fixed keyword list matched by case-insensitive
// substring search. It is deliberately basic: a placeholder behind the
// ExtractSkills interface until a real parser replaces it.
package resume

import "strings"

// knownSkills is the keyword list matched against resume text.
var knownSkills = []string{
	"Python", "JavaScript", "TypeScript", "Java", "Go", "C++", "C#",
	"SQL", "HTML", "CSS", "React", "Angular", "Vue", "Node.js",
	"Express", "Django", "Flask", "Spring",
	"PostgreSQL", "MySQL", "MongoDB", "Redis",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform",
	"Git", "Linux", "CI/CD",
	"Machine Learning", "Deep Learning", "Data Analysis", "Pandas",
	"NumPy", "TensorFlow", "PyTorch", "NLP",
	"Excel", "Tableau", "Power BI",
	"Figma", "UI/UX",
}

// ExtractSkills returns the known skills mentioned anywhere in the
// text, in canonical order, without duplicates. Empty input yields an
// empty list.
func ExtractSkills(text string) []string {
	found := []string{}
	if text == "" {
		return found
	}

	lower := strings.ToLower(text)
	for _, skill := range knownSkills {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	return found
}
