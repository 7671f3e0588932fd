// Package intent classifies normalized utterances into a closed set of
// conversational intents and independently extracts a service entity. Both
// tables are ordered and first-match-wins: order is the tie-break policy for
// utterances that satisfy more than one pattern.
package intent

import (
	"regexp"
	"strings"
)

// Intent is the discrete conversational purpose inferred from an utterance.
type Intent string

const (
	Greeting     Intent = "greeting"
	AboutCompany Intent = "about_company"
	Services     Intent = "services"
	Pricing      Intent = "pricing"
	Contact      Intent = "contact"
	Team         Intent = "team"
	Process      Intent = "process"
	Technology   Intent = "technology"
	Timeline     Intent = "timeline"
	Portfolio    Intent = "portfolio"
	Website      Intent = "website"
	Goodbye      Intent = "goodbye"
	Unknown      Intent = "unknown"
)

// Normalize prepares an utterance for classification. Classify and Extract
// assume already-normalized input.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// classifiers is evaluated strictly in sequence. The order is authoritative:
// "hello and bye" must classify as greeting, not goodbye. Patterns match
// whole words only.
var classifiers = []struct {
	intent  Intent
	pattern *regexp.Regexp
}{
	{Greeting, regexp.MustCompile(`\b(hello|hi|hey|namaste|good morning|good afternoon|good evening|hlo)\b`)},
	{AboutCompany, regexp.MustCompile(`\b(about|company|introduction|tell me about|what do you do|who are you)\b`)},
	{Services, regexp.MustCompile(`\b(services|offer|provide|work|what can you do|capabilities)\b`)},
	{Pricing, regexp.MustCompile(`\b(price|cost|charge|how much|pricing|expensive|cheap|budget)\b`)},
	{Contact, regexp.MustCompile(`\b(contact|reach|phone|email|address|location|get in touch)\b`)},
	{Team, regexp.MustCompile(`\b(team|people|employees|staff|developers|how many)\b`)},
	{Process, regexp.MustCompile(`\b(process|how do you work|methodology|approach|steps)\b`)},
	{Technology, regexp.MustCompile(`\b(technology|tech stack|tools|programming|languages)\b`)},
	{Timeline, regexp.MustCompile(`\b(timeline|how long|duration|time|when|deadline)\b`)},
	{Portfolio, regexp.MustCompile(`\b(portfolio|projects|work done|examples|case studies)\b`)},
	{Website, regexp.MustCompile(`\b(website|site|webpage|open site|show website)\b`)},
	{Goodbye, regexp.MustCompile(`\b(bye|exit|stop|quit|thank you|thanks|goodbye|see you)\b`)},
}

// Classify maps a normalized utterance to an Intent. Unmatched input yields
// Unknown, which is a valid terminal classification, not an error.
func Classify(utterance string) Intent {
	for _, c := range classifiers {
		if c.pattern.MatchString(utterance) {
			return c.intent
		}
	}
	return Unknown
}
