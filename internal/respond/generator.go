// Package respond synthesizes natural-language replies from the knowledge
// base for a classified intent. Every branch degrades to the nearest generic
// response on a lookup miss; generation never fails.
package respond

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/inonetecx/concierge/internal/intent"
	"github.com/inonetecx/concierge/internal/knowledge"
	"github.com/inonetecx/concierge/internal/session"
)

// Opener launches a URL in the user's browser. Failures are swallowed into
// a plain-text fallback, never surfaced to the caller.
type Opener interface {
	Open(url string) error
}

// Generator builds responses for one knowledge base. The clock is
// injectable so time-of-day and session-duration wording is testable.
type Generator struct {
	kb      *knowledge.Base
	browser Opener
	now     func() time.Time
	logger  *slog.Logger
}

// New creates a Generator. browser may be nil, in which case the website
// intent always takes the plain-text path.
func New(kb *knowledge.Base, browser Opener) *Generator {
	return &Generator{
		kb:      kb,
		browser: browser,
		now:     time.Now,
		logger:  slog.Default(),
	}
}

// WithClock overrides the generator's clock. Intended for tests.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// serviceKeys resolves an extracted service entity to its canonical
// knowledge-base key.
var serviceKeys = map[string]string{
	"web":       "web_development",
	"mobile":    "mobile_development",
	"cloud":     "cloud_solutions",
	"ai":        "ai_ml",
	"marketing": "digital_marketing",
	"design":    "ui_ux",
}

// timelineKey resolves a service entity for timeline questions. Only web,
// mobile, and cloud resolve; the rest miss and fall back to the generic
// timeline summary.
func timelineKey(tag string) string {
	switch tag {
	case "web", "mobile":
		return tag + "_development"
	default:
		return tag + "_solutions"
	}
}

// Generate produces the reply for one turn and records the intent as the
// session's last topic.
func (g *Generator) Generate(in intent.Intent, ents intent.Entities, utterance string, sess *session.Session) string {
	sess.LastTopic = in

	switch in {
	case intent.Greeting:
		return g.greeting()
	case intent.AboutCompany:
		return g.about()
	case intent.Services:
		return g.services(ents)
	case intent.Pricing:
		return g.pricing(ents)
	case intent.Contact:
		return g.contact()
	case intent.Team:
		return g.team()
	case intent.Process:
		return g.process()
	case intent.Timeline:
		return g.timeline(ents)
	case intent.Website:
		return g.website()
	case intent.Goodbye:
		return g.goodbye(sess)
	default:
		// technology, portfolio, and unknown all land on the generic
		// suggestion list.
		return g.fallback()
	}
}

func (g *Generator) greeting() string {
	var salutation string
	switch hour := g.now().Hour(); {
	case hour < 12:
		salutation = "Good morning!"
	case hour < 17:
		salutation = "Good afternoon!"
	default:
		salutation = "Good evening!"
	}
	return fmt.Sprintf("%s Welcome to %s. I'm your AI assistant. How can I help you transform your business with technology today?",
		salutation, g.kb.Company.Name)
}

func (g *Generator) about() string {
	c := g.kb.Company
	return fmt.Sprintf("%s %s. We're founded in %s with a mission: %s. Would you like to know about our specific services?",
		c.About, c.Tagline, c.Foundation, c.Mission)
}

func (g *Generator) services(ents intent.Entities) string {
	if ents.HasService() {
		if svc, ok := g.kb.Service(serviceKeys[ents.Service]); ok {
			return fmt.Sprintf("%s. We use technologies like %s. Typical timeline is %s. Would you like to know about pricing?",
				svc.Description, strings.Join(svc.Technologies, ", "), svc.Timeline)
		}
	}
	return fmt.Sprintf("We offer comprehensive technology solutions: %s. Which service interests you most? I can provide detailed information about any of them.",
		strings.Join(g.kb.ServiceNames(), ", "))
}

func (g *Generator) pricing(ents intent.Entities) string {
	// Only web and mobile have dedicated pricing copy; every other service
	// falls through to the headline summary.
	if ents.HasService() {
		switch ents.Service {
		case "web":
			if p, ok := g.kb.PricingFor("web_development"); ok {
				return fmt.Sprintf("Our web development %s %s%s. This includes responsive design, basic SEO, and 3 months free support. Shall I connect you with our team for a detailed quote?",
					p.Description, p.Currency, formatAmount(p.Start))
			}
		case "mobile":
			if p, ok := g.kb.PricingFor("mobile_development"); ok {
				return fmt.Sprintf("Our mobile app development %s %s%s. This covers both Android and iOS with basic features. Complex apps may cost more. Would you like a free consultation?",
					p.Description, p.Currency, formatAmount(p.Start))
			}
		}
	}

	var headlines []string
	for _, h := range []struct{ key, label string }{
		{"web_development", "Web Development"},
		{"mobile_development", "Mobile Apps"},
		{"cloud_solutions", "Cloud Solutions"},
	} {
		if p, ok := g.kb.PricingFor(h.key); ok {
			headlines = append(headlines, fmt.Sprintf("%s from %s%s", h.label, p.Currency, formatAmount(p.Start)))
		}
	}
	if len(headlines) == 0 {
		return fmt.Sprintf("Pricing depends on project scope. %s — contact us for a tailored quote.", g.kb.EnterpriseNote)
	}
	return fmt.Sprintf("Here's our starting pricing: %s. All projects include free consultation and post-launch support. Which service interests you?",
		strings.Join(headlines, ", "))
}

func (g *Generator) contact() string {
	c := g.kb.Contact
	return fmt.Sprintf("You can reach us at: Email: %s, Phone: %s, Address: %s. Our business hours are %s. Would you like me to open our website for more information?",
		c.Email, c.Phone, c.Address, c.BusinessHours)
}

func (g *Generator) team() string {
	t := g.kb.Team
	return fmt.Sprintf("We have %s with expertise in %s. Our team has %s and holds certifications like %s. We follow agile methodologies and maintain high code quality standards.",
		t.Size, strings.Join(t.Expertise, ", "), t.Experience, strings.Join(t.Certifications, ", "))
}

func (g *Generator) process() string {
	steps := make([]string, len(g.kb.Process))
	for i, step := range g.kb.Process {
		steps[i] = fmt.Sprintf("%d. %s", i+1, capitalize(step.Name))
	}
	return fmt.Sprintf("Our development process follows these steps: %s. We ensure transparency and regular communication throughout. Would you like details about any specific phase?",
		strings.Join(steps, " -> "))
}

func (g *Generator) timeline(ents intent.Entities) string {
	if ents.HasService() {
		if svc, ok := g.kb.Service(timelineKey(ents.Service)); ok {
			return fmt.Sprintf("For %s projects, typical timeline is %s. However, exact timeline depends on your specific requirements. Shall I schedule a free consultation to give you a precise estimate?",
				ents.Service, svc.Timeline)
		}
	}
	return "Project timelines vary by complexity: Web Development (2-8 weeks), Mobile Apps (6-16 weeks), Cloud Solutions (4-12 weeks), AI/ML Projects (8-20 weeks). We always provide detailed timelines after understanding your requirements."
}

func (g *Generator) website() string {
	url := g.kb.Contact.Website
	if g.browser == nil {
		return websiteFallback(url)
	}
	if err := g.browser.Open(url); err != nil {
		g.logger.Warn("failed to open browser", "url", url, "error", err)
		return websiteFallback(url)
	}
	return fmt.Sprintf("Opening our website %s in your browser. You can explore our portfolio, read client testimonials, and get in touch directly through the contact form.", url)
}

func websiteFallback(url string) string {
	return fmt.Sprintf("Please visit our website: %s to see our portfolio and get detailed information about our services.", url)
}

func (g *Generator) goodbye(sess *session.Session) string {
	minutes := sess.Minutes(g.now())
	return fmt.Sprintf("Thank you for spending %d minutes with me! It was great helping you learn about %s. Feel free to contact us anytime for your technology needs. Have a wonderful day!",
		minutes, g.kb.Company.Name)
}

func (g *Generator) fallback() string {
	suggestions := []string{
		"our services and pricing",
		"our development process",
		"our team and expertise",
		"contact information",
		"project timelines",
	}
	return fmt.Sprintf("I'd love to help you with that! I specialize in information about %s. You can also ask me to 'open our website' or say 'goodbye' when you're done. What would you like to know more about?",
		strings.Join(suggestions, ", "))
}

// formatAmount renders an integer amount with thousands separators,
// e.g. 15000 -> "15,000".
func formatAmount(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
