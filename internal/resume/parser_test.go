package resume

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = `John Student
student@example.com | Istanbul

Frontend developer with 3 years of experience building web applications.

Skills: React, TypeScript, JavaScript, HTML, CSS, Git
`

func TestExtractFields(t *testing.T) {
	p := NewParser()

	parsed, err := p.ExtractFields(sampleText)
	require.NoError(t, err)

	assert.Equal(t, "John Student", parsed.Name)
	assert.Equal(t, "student@example.com", parsed.Email)
	assert.Equal(t, "Frontend Developer", parsed.Role)
	assert.Contains(t, parsed.Skills, "React")
	assert.Contains(t, parsed.Skills, "TypeScript")
	assert.Contains(t, parsed.Experience, "3 years")
}

func TestExtractFieldsRequiresEmail(t *testing.T) {
	p := NewParser()

	_, err := p.ExtractFields("John Student\nReact developer")
	assert.ErrorIs(t, err, ErrParse)
}

func TestExtractFieldsEmptyText(t *testing.T) {
	p := NewParser()

	_, err := p.ExtractFields("   \n  ")
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseRejectsNonPDFMime(t *testing.T) {
	p := NewParser()

	_, err := p.Parse([]byte("%PDF-1.4 fake"), "text/plain")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseRejectsMissingMagic(t *testing.T) {
	p := NewParser()

	_, err := p.Parse([]byte("not a pdf at all"), MimeTypePDF)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseRejectsOversizedDocument(t *testing.T) {
	p := NewParser()

	data := make([]byte, MaxUploadBytes+1)
	copy(data, "%PDF")
	_, err := p.Parse(data, MimeTypePDF)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestDetectSkillsWordBoundaries(t *testing.T) {
	skills := DetectSkills("Senior JavaScript engineer, worked with Django and Golang")

	assert.Contains(t, skills, "JavaScript")
	assert.Contains(t, skills, "Django")
	assert.Contains(t, skills, "Go")      // via Golang alias
	assert.NotContains(t, skills, "Java") // must not fire inside JavaScript
}

func TestDetectSkillsDeterministicOrder(t *testing.T) {
	text := "Python and Go and React and Docker"

	first := DetectSkills(text)
	second := DetectSkills(text)
	assert.Equal(t, first, second)
}

func TestSuggestRole(t *testing.T) {
	tests := []struct {
		name   string
		skills []string
		want   string
	}{
		{"frontend", []string{"React", "TypeScript", "CSS"}, "Frontend Developer"},
		{"backend", []string{"Go", "PostgreSQL", "Redis"}, "Backend Developer"},
		{"full stack", []string{"React", "TypeScript", "Node.js", "PostgreSQL"}, "Full Stack Developer"},
		{"data", []string{"Pandas", "NumPy", "Machine Learning"}, "Data Scientist"},
		{"devops", []string{"Docker", "Kubernetes", "Terraform"}, "DevOps Engineer"},
		{"mobile", []string{"Swift", "Kotlin"}, "Mobile Developer"},
		{"no hits", nil, "Software Engineer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SuggestRole(tt.skills))
		})
	}
}

func TestExtractNameSkipsHeadings(t *testing.T) {
	text := strings.Join([]string{
		"RESUME",
		"Jane Doe",
		"jane@example.com",
	}, "\n")

	p := NewParser()
	parsed, err := p.ExtractFields(text)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", parsed.Name)
}
