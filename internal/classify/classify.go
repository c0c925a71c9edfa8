package classify

import (
	"strings"
	"unicode"
)

// Category is one of the school's content categories.
type Category string

const (
	Academics  Category = "Academics"
	Sports     Category = "Sports"
	Arts       Category = "Arts"
	Admissions Category = "Admissions"
	Career     Category = "Career"
	Community  Category = "Community"
)

// AllCategories returns all categories in tie-break order.
func AllCategories() []Category {
	return []Category{Academics, Sports, Arts, Admissions, Career, Community}
}

var categoryKeywords = map[Category][]string{
	Academics: {
		"exam", "exams", "curriculum", "classroom", "science", "math", "maths",
		"library", "homework", "lesson", "teacher", "study", "olympiad",
		"robotics", "stem", "reading", "grade", "report card", "honor roll",
	},
	Sports: {
		"soccer", "football", "basketball", "volleyball", "tennis", "swim",
		"athletics", "varsity", "tournament", "league", "match", "coach",
		"cross country", "track and field", "championship", "team",
	},
	Arts: {
		"art", "music", "concert", "choir", "orchestra", "band", "theatre",
		"theater", "drama", "musical", "gallery", "exhibition", "dance",
		"painting", "sculpture", "film",
	},
	Admissions: {
		"admission", "admissions", "enrol", "enroll", "enrolment", "enrollment",
		"application", "applications", "open day", "open house", "tour",
		"prospective", "intake", "scholarship",
	},
	Career: {
		"career", "careers", "internship", "apprenticeship", "employer",
		"university", "college fair", "job", "resume", "work experience",
		"mentor", "alumni",
	},
	Community: {
		"community", "volunteer", "volunteering", "charity", "fundraiser",
		"donation", "food drive", "parent", "parents", "family", "families",
		"clean-up", "festival", "assembly",
	},
}

// Classify picks the category whose keywords best match the title and
// description. Title hits count double. Returns Community when nothing matches.
func Classify(title, description string) Category {
	titleTokens := tokenize(title)
	descTokens := tokenize(description)
	titleLower := strings.ToLower(title)
	descLower := strings.ToLower(description)

	var bestCat Category
	bestScore := 0

	for _, cat := range AllCategories() {
		score := 0
		for _, kw := range categoryKeywords[cat] {
			if !strings.Contains(kw, " ") {
				for _, t := range titleTokens {
					if t == kw {
						score += 2
					}
				}
				for _, t := range descTokens {
					if t == kw {
						score++
					}
				}
			} else {
				if strings.Contains(titleLower, kw) {
					score += 2
				}
				if strings.Contains(descLower, kw) {
					score++
				}
			}
		}
		// Strictly greater keeps the earlier category on ties.
		if score > bestScore {
			bestScore = score
			bestCat = cat
		}
	}

	if bestScore == 0 {
		return Community
	}
	return bestCat
}

func tokenize(s string) []string {
	var tokens []string
	for _, word := range strings.Fields(strings.ToLower(s)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if word != "" {
			tokens = append(tokens, word)
		}
	}
	return tokens
}
