package match

import (
	"fmt"
	"math"
	"strings"

	"resume-matcher/internal/resume"
)

// ScoringWeights controls how the keyword scorer blends its components.
// Exact skill matches dominate; fuzzy text overlap and role alignment
// refine the ranking.
type ScoringWeights struct {
	SkillWeight float64
	TextWeight  float64
	RoleWeight  float64
}

func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		SkillWeight: 0.6,
		TextWeight:  0.25,
		RoleWeight:  0.15,
	}
}

// KeywordScorer scores candidates by lexical overlap with the job
// description: vocabulary skill hits weighted above free-text token
// overlap, plus a role-alignment component. It is fully deterministic.
type KeywordScorer struct {
	Weights ScoringWeights
}

func NewKeywordScorer() *KeywordScorer {
	return &KeywordScorer{Weights: DefaultScoringWeights()}
}

// NewJob preprocesses a job description once per match run.
func NewJob(description string) Job {
	return Job{
		Description: description,
		Skills:      resume.DetectSkills(description),
		Tokens:      Tokenize(description),
	}
}

func (s *KeywordScorer) Score(job Job, c Candidate) Evaluation {
	matched, missing := splitSkills(job.Skills, c.Skills)

	skillScore := 0.0
	if len(job.Skills) > 0 {
		skillScore = float64(len(matched)) / float64(len(job.Skills))
	}

	candTokens := candidateTokenSet(c)
	overlap := 0
	for _, tok := range job.Tokens {
		if candTokens[tok] {
			overlap++
		}
	}
	textScore := 0.0
	if len(job.Tokens) > 0 {
		textScore = float64(overlap) / float64(len(job.Tokens))
	}

	roleScore := roleAlignment(job, c.SuggestedRole)

	w := s.Weights
	if len(job.Skills) == 0 {
		// No vocabulary skills in the description: fold the skill
		// weight into text overlap instead of zeroing it.
		w.TextWeight += w.SkillWeight
		w.SkillWeight = 0
	}

	score := 100 * (w.SkillWeight*skillScore + w.TextWeight*textScore + w.RoleWeight*roleScore)
	score = math.Round(math.Min(100, math.Max(0, score))*10) / 10

	return Evaluation{
		Score:      score,
		Highlights: buildHighlights(c, matched, missing, roleScore, overlap, len(job.Tokens), score),
	}
}

// splitSkills partitions the job's skills into those the candidate has
// and those missing, both in job-skill order.
func splitSkills(jobSkills, candidateSkills []string) (matched, missing []string) {
	for _, js := range jobSkills {
		found := false
		for _, cs := range candidateSkills {
			if strings.EqualFold(js, cs) {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, js)
		} else {
			missing = append(missing, js)
		}
	}
	return matched, missing
}

func candidateTokenSet(c Candidate) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range Tokenize(strings.Join(c.Skills, " ")) {
		set[tok] = true
	}
	for _, tok := range Tokenize(c.Experience) {
		set[tok] = true
	}
	for _, tok := range Tokenize(c.SuggestedRole) {
		set[tok] = true
	}
	return set
}

// roleAlignment measures how much of the candidate's suggested role
// appears verbatim in the job description.
func roleAlignment(job Job, role string) float64 {
	roleTokens := Tokenize(role)
	if len(roleTokens) == 0 {
		return 0
	}
	jobSet := make(map[string]bool, len(job.Tokens))
	for _, tok := range job.Tokens {
		jobSet[tok] = true
	}
	hit := 0
	for _, tok := range roleTokens {
		if jobSet[tok] {
			hit++
		}
	}
	return float64(hit) / float64(len(roleTokens))
}

// buildHighlights produces 2-4 justification strings, strongest match
// evidence first.
func buildHighlights(c Candidate, matched, missing []string, roleScore float64, overlap, jobTokens int, score float64) []string {
	var hl []string
	if len(matched) > 0 {
		hl = append(hl, "Matched skills: "+strings.Join(matched, ", "))
	}
	if roleScore >= 0.5 && c.SuggestedRole != "" {
		hl = append(hl, fmt.Sprintf("Suggested role %s fits the described position", c.SuggestedRole))
	}
	if overlap > 0 && jobTokens > 0 {
		hl = append(hl, fmt.Sprintf("Experience covers %d of %d key terms in the description", overlap, jobTokens))
	}
	if len(missing) > 0 {
		hl = append(hl, "Not evident in resume: "+strings.Join(missing, ", "))
	}
	if len(hl) == 0 {
		hl = append(hl, "No direct skill matches for this description")
	}
	if len(hl) == 1 {
		hl = append(hl, fmt.Sprintf("Overall relevance %.0f%%", score))
	}
	if len(hl) > 4 {
		hl = hl[:4]
	}
	return hl
}

var stopwords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "are": true,
	"our": true, "you": true, "your": true, "who": true, "will": true,
	"has": true, "have": true, "this": true, "that": true, "from": true,
	"into": true, "should": true, "must": true, "looking": true,
	"ideal": true, "candidate": true, "candidates": true, "seeking": true,
	"able": true, "etc": true,
}

// Tokenize lowercases and splits on non-word runes ('+' and '#' stay so
// C++ and C# survive), dropping stopwords and very short tokens the way
// the full-text query preparation does. The result keeps first-seen
// order with duplicates removed.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		if r == '+' || r == '#' {
			return false
		}
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})

	seen := make(map[string]bool, len(fields))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) <= 2 && !strings.ContainsAny(f, "+#") {
			continue
		}
		if stopwords[f] || seen[f] {
			continue
		}
		seen[f] = true
		tokens = append(tokens, f)
	}
	return tokens
}
