// Package matching implements the two keyword-overlap heuristics used by the
// job board. Score ranks open jobs for the candidate-facing match listing;
// HasSkillOverlap is the cheaper trigger that gates creation-time fan-out.
// They are deliberately separate functions with different token rules and
// must not be unified.
package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/hirewire/hirewire/internal/models"
)

// minKeywordLen drops short filler tokens from the scoring keyword universe.
const minKeywordLen = 4

// Score computes the relevance of a job for a candidate's skill list.
// The job's keyword universe is the lower-cased whitespace tokenization of
// title, description, requirements, and tags with tokens shorter than four
// characters discarded. The score is 100 * |skills ∩ keywords| / |keywords|
// rounded to one decimal place, with the matched tokens returned sorted.
func Score(candidateSkills []string, job models.Job) (float64, []string) {
	skills := lowerSet(candidateSkills)
	keywords := keywordUniverse(job)

	if len(keywords) == 0 {
		return 0, nil
	}

	matched := make([]string, 0, len(skills))
	for skill := range skills {
		if _, ok := keywords[skill]; ok {
			matched = append(matched, skill)
		}
	}
	sort.Strings(matched)

	score := float64(len(matched)) / float64(len(keywords)) * 100
	return math.Round(score*10) / 10, matched
}

// HasSkillOverlap reports whether any candidate skill appears in the job's
// tags or in the whitespace split of its concatenated requirements. Unlike
// Score it applies no token length filter; it only answers "is there any
// overlap at all" for the new-job notification fan-out.
func HasSkillOverlap(candidateSkills []string, job models.Job) bool {
	skills := lowerSet(candidateSkills)
	if len(skills) == 0 {
		return false
	}

	jobSkills := make(map[string]struct{})
	for _, tag := range job.Tags {
		jobSkills[strings.ToLower(tag)] = struct{}{}
	}
	for _, token := range strings.Fields(strings.ToLower(strings.Join(job.Requirements, " "))) {
		jobSkills[token] = struct{}{}
	}

	for skill := range skills {
		if _, ok := jobSkills[skill]; ok {
			return true
		}
	}
	return false
}

func keywordUniverse(job models.Job) map[string]struct{} {
	text := strings.Join([]string{
		job.Title,
		job.Description,
		strings.Join(job.Requirements, " "),
		strings.Join(job.Tags, " "),
	}, " ")

	tokens := lo.Filter(strings.Fields(strings.ToLower(text)), func(token string, _ int) bool {
		return len(token) >= minKeywordLen
	})

	universe := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		universe[token] = struct{}{}
	}
	return universe
}

func lowerSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[strings.ToLower(value)] = struct{}{}
	}
	return set
}
