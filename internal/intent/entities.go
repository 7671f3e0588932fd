package intent

import "regexp"

// Entities holds the structured values extracted alongside the intent.
// At most one service entity is ever set; the zero value means none.
type Entities struct {
	Service string
}

// HasService reports whether a service entity was extracted.
func (e Entities) HasService() bool {
	return e.Service != ""
}

// serviceTags is ordered; the first matching tag wins so an utterance
// mentioning several service terms yields exactly one entity.
var serviceTags = []struct {
	tag     string
	pattern *regexp.Regexp
}{
	{"web", regexp.MustCompile(`\b(web|website|site)\b`)},
	{"mobile", regexp.MustCompile(`\b(mobile|app|application|android|ios)\b`)},
	{"cloud", regexp.MustCompile(`\b(cloud|aws|azure|server)\b`)},
	{"ai", regexp.MustCompile(`\b(ai|artificial intelligence|machine learning|ml)\b`)},
	{"marketing", regexp.MustCompile(`\b(marketing|seo|digital|social media)\b`)},
	{"design", regexp.MustCompile(`\b(design|ui|ux|user interface)\b`)},
}

// Extract tags a normalized utterance with at most one service entity.
// It runs independently of Classify and is idempotent; an empty result is
// not an error.
func Extract(utterance string) Entities {
	for _, s := range serviceTags {
		if s.pattern.MatchString(utterance) {
			return Entities{Service: s.tag}
		}
	}
	return Entities{}
}
