package resume

// roleCategory groups vocabulary skills under a role label. Categories
// are evaluated in declaration order; ties keep the earlier label so
// role inference is deterministic.
type roleCategory struct {
	Label  string
	Skills []string
}

var roleCategories = []roleCategory{
	{
		Label: "Frontend Developer",
		Skills: []string{
			"React", "Vue", "Angular", "Next.js", "TypeScript",
			"JavaScript", "HTML", "CSS", "Tailwind", "Figma",
		},
	},
	{
		Label: "Backend Developer",
		Skills: []string{
			"Go", "Java", "Node.js", "Express", "Django", "Flask", "Spring",
			"SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis", "Kafka",
			"GraphQL", "REST", "gRPC",
		},
	},
	{
		Label: "Data Scientist",
		Skills: []string{
			"Machine Learning", "Data Science", "TensorFlow", "PyTorch",
			"Pandas", "NumPy", "Python",
		},
	},
	{
		Label: "DevOps Engineer",
		Skills: []string{
			"Docker", "Kubernetes", "Terraform", "AWS", "Azure", "GCP",
			"Linux", "CI/CD",
		},
	},
	{
		Label: "Mobile Developer",
		Skills: []string{
			"Swift", "Kotlin", "Flutter", "React Native",
		},
	},
}

// SuggestRole infers a role label from a set of canonical skills. Strong
// presence in both frontend and backend categories maps to full stack;
// no category hits fall back to a generic label.
func SuggestRole(skills []string) string {
	have := make(map[string]bool, len(skills))
	for _, s := range skills {
		have[s] = true
	}

	hits := make([]int, len(roleCategories))
	for i, cat := range roleCategories {
		for _, s := range cat.Skills {
			if have[s] {
				hits[i]++
			}
		}
	}

	// roleCategories[0] is frontend, [1] is backend
	if hits[0] >= 2 && hits[1] >= 2 {
		return "Full Stack Developer"
	}

	best, bestHits := -1, 0
	for i, n := range hits {
		if n > bestHits {
			best, bestHits = i, n
		}
	}
	if best < 0 {
		return "Software Engineer"
	}
	return roleCategories[best].Label
}
