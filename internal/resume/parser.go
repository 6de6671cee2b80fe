package resume

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"code.sajari.com/docconv"
)

// MaxUploadBytes bounds accepted documents. The HTTP layer enforces the
// same limit; the parser re-validates so it cannot be bypassed.
const MaxUploadBytes = 5 << 20

// MimeTypePDF is the only accepted document type.
const MimeTypePDF = "application/pdf"

var (
	// ErrUnsupportedFormat is returned for non-PDF input.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrTooLarge is returned when the document exceeds MaxUploadBytes.
	ErrTooLarge = errors.New("document too large")
	// ErrParse is returned when no usable resume fields can be extracted.
	ErrParse = errors.New("could not parse resume")
)

var pdfMagic = []byte("%PDF")

// Parsed holds the structured fields extracted from one resume document.
type Parsed struct {
	Name       string
	Email      string
	Role       string
	Skills     []string
	Experience string
	Text       string
}

// Parser extracts structured resume fields from uploaded documents. It
// is pure over the input bytes; persistence happens elsewhere.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts text from a PDF document and derives the resume fields.
// A parse that cannot locate the required fields (name, email) fails
// rather than producing a half-empty record.
func (p *Parser) Parse(data []byte, mimeType string) (*Parsed, error) {
	if len(data) > MaxUploadBytes {
		return nil, ErrTooLarge
	}
	if mimeType != MimeTypePDF {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, mimeType)
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		return nil, fmt.Errorf("%w: missing PDF header", ErrUnsupportedFormat)
	}

	res, err := docconv.Convert(bytes.NewReader(data), mimeType, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return p.ExtractFields(res.Body)
}

// ExtractFields derives the structured resume fields from extracted
// document text.
func (p *Parser) ExtractFields(text string) (*Parsed, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: document contains no extractable text", ErrParse)
	}

	email := extractEmail(text)
	if email == "" {
		return nil, fmt.Errorf("%w: no email address found", ErrParse)
	}

	name := extractName(text)
	if name == "" {
		return nil, fmt.Errorf("%w: no candidate name found", ErrParse)
	}

	skills := DetectSkills(text)

	return &Parsed{
		Name:       name,
		Email:      email,
		Role:       SuggestRole(skills),
		Skills:     skills,
		Experience: extractExperience(text),
		Text:       text,
	}, nil
}

var emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

func extractEmail(text string) string {
	return strings.ToLower(emailRe.FindString(text))
}

var headingSkipWords = map[string]bool{
	"resume":           true,
	"curriculum vitae": true,
	"cv":               true,
}

// extractName scans the leading lines for a plausible person name: a
// short line without email, URL or digits. Resumes conventionally put
// the candidate name at the top.
func extractName(text string) string {
	lines := strings.Split(text, "\n")
	seen := 0
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		seen++
		if seen > 10 {
			break
		}
		if headingSkipWords[strings.ToLower(line)] {
			continue
		}
		if strings.ContainsAny(line, "@/:0123456789") {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 1 || len(words) > 5 || len(line) > 60 {
			continue
		}
		return line
	}
	return ""
}

var yearsRe = regexp.MustCompile(`(?i)[^.\n]*\b\d+\+?\s*(?:years?|yrs)\b[^.\n]*`)

// extractExperience pulls a one-line experience summary: a sentence
// mentioning years of experience, a line under an experience heading, or
// the leading text as a last resort.
func extractExperience(text string) string {
	if m := yearsRe.FindString(text); m != "" {
		return collapse(m)
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(strings.ToLower(line), "experience") {
			if line = collapse(line); line != "" {
				return line
			}
		}
	}
	summary := collapse(text)
	runes := []rune(summary)
	if len(runes) > 200 {
		summary = string(runes[:200]) + "..."
	}
	return summary
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
