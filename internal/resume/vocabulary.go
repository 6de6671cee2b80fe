package resume

import (
	"strings"
	"unicode"
)

// skillTerm is one entry of the skills vocabulary. Detection matches the
// canonical name or any alias on word boundaries, so "Java" does not
// fire inside "JavaScript" and "Go" does not fire inside "Django".
type skillTerm struct {
	Canonical string
	Aliases   []string
}

var vocabulary = []skillTerm{
	{Canonical: "Go", Aliases: []string{"Golang"}},
	{Canonical: "Python"},
	{Canonical: "Java"},
	{Canonical: "JavaScript"},
	{Canonical: "TypeScript"},
	{Canonical: "C++"},
	{Canonical: "C#"},
	{Canonical: "Swift"},
	{Canonical: "Kotlin"},
	{Canonical: "React", Aliases: []string{"ReactJS", "React.js"}},
	{Canonical: "React Native"},
	{Canonical: "Vue", Aliases: []string{"VueJS", "Vue.js"}},
	{Canonical: "Angular"},
	{Canonical: "Next.js", Aliases: []string{"NextJS"}},
	{Canonical: "Node.js", Aliases: []string{"NodeJS"}},
	{Canonical: "Express"},
	{Canonical: "Django"},
	{Canonical: "Flask"},
	{Canonical: "Spring"},
	{Canonical: "HTML"},
	{Canonical: "CSS"},
	{Canonical: "Tailwind"},
	{Canonical: "SQL"},
	{Canonical: "PostgreSQL", Aliases: []string{"Postgres"}},
	{Canonical: "MySQL"},
	{Canonical: "MongoDB"},
	{Canonical: "Redis"},
	{Canonical: "Kafka"},
	{Canonical: "GraphQL"},
	{Canonical: "REST"},
	{Canonical: "gRPC"},
	{Canonical: "Docker"},
	{Canonical: "Kubernetes", Aliases: []string{"k8s"}},
	{Canonical: "Terraform"},
	{Canonical: "AWS"},
	{Canonical: "Azure"},
	{Canonical: "GCP"},
	{Canonical: "Linux"},
	{Canonical: "Git"},
	{Canonical: "CI/CD"},
	{Canonical: "Machine Learning", Aliases: []string{"ML"}},
	{Canonical: "Data Science"},
	{Canonical: "TensorFlow"},
	{Canonical: "PyTorch"},
	{Canonical: "Pandas"},
	{Canonical: "NumPy"},
	{Canonical: "Flutter"},
	{Canonical: "Figma"},
}

// DetectSkills returns the canonical vocabulary skills present in the
// text, in fixed vocabulary order. The order is stable so downstream
// scoring stays deterministic.
func DetectSkills(text string) []string {
	textLower := strings.ToLower(text)
	var found []string
	for _, term := range vocabulary {
		if matchesTerm(textLower, term) {
			found = append(found, term.Canonical)
		}
	}
	return found
}

func matchesTerm(textLower string, term skillTerm) bool {
	if containsWord(textLower, strings.ToLower(term.Canonical)) {
		return true
	}
	for _, alias := range term.Aliases {
		if containsWord(textLower, strings.ToLower(alias)) {
			return true
		}
	}
	return false
}

// containsWord reports whether needle occurs in haystack with no letter
// or digit touching either end of the occurrence.
func containsWord(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	for start := 0; ; {
		idx := strings.Index(haystack[start:], needle)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(needle)
		if !touchesWordRune(haystack, idx-1) && !touchesWordRune(haystack, end) {
			return true
		}
		start = idx + 1
	}
}

func touchesWordRune(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return false
	}
	r := rune(s[i])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
