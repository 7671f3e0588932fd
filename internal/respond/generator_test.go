package respond

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/inonetecx/concierge/internal/intent"
	"github.com/inonetecx/concierge/internal/knowledge"
	"github.com/inonetecx/concierge/internal/session"
)

// fakeOpener records browser open calls.
type fakeOpener struct {
	opened []string
	err    error
}

func (f *fakeOpener) Open(url string) error {
	f.opened = append(f.opened, url)
	return f.err
}

func fixedClock(hour int) func() time.Time {
	return func() time.Time {
		return time.Date(2025, 6, 1, hour, 30, 0, 0, time.UTC)
	}
}

func newGenerator(t *testing.T, browser Opener) *Generator {
	t.Helper()
	return New(knowledge.Default(), browser).WithClock(fixedClock(10))
}

func TestGenerate_Greeting_TimeOfDay(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{8, "Good morning!"},
		{11, "Good morning!"},
		{12, "Good afternoon!"},
		{16, "Good afternoon!"},
		{17, "Good evening!"},
		{23, "Good evening!"},
	}

	for _, tt := range tests {
		g := New(knowledge.Default(), nil).WithClock(fixedClock(tt.hour))
		got := g.Generate(intent.Greeting, intent.Entities{}, "hello", session.New())
		if !strings.HasPrefix(got, tt.want) {
			t.Errorf("hour %d: reply %q, want prefix %q", tt.hour, got, tt.want)
		}
		if !strings.Contains(got, "Inonetecx") {
			t.Errorf("hour %d: reply missing company name", tt.hour)
		}
	}
}

func TestGenerate_SetsLastTopic(t *testing.T) {
	g := newGenerator(t, nil)
	sess := session.New()
	g.Generate(intent.Pricing, intent.Entities{}, "how much", sess)
	if sess.LastTopic != intent.Pricing {
		t.Errorf("LastTopic = %q, want pricing", sess.LastTopic)
	}
}

func TestGenerate_About(t *testing.T) {
	g := newGenerator(t, nil)
	got := g.Generate(intent.AboutCompany, intent.Entities{}, "about", session.New())
	for _, want := range []string{"2023", "Innovating Tomorrow's Technology Today", "democratize technology"} {
		if !strings.Contains(got, want) {
			t.Errorf("about reply missing %q: %s", want, got)
		}
	}
}

func TestGenerate_Services_WithEntity(t *testing.T) {
	g := newGenerator(t, nil)
	got := g.Generate(intent.Services, intent.Entities{Service: "web"}, "web services", session.New())
	for _, want := range []string{"e-commerce platforms", "React", "2-8 weeks"} {
		if !strings.Contains(got, want) {
			t.Errorf("services reply missing %q: %s", want, got)
		}
	}
}

func TestGenerate_Services_FallbackListsAll(t *testing.T) {
	g := newGenerator(t, nil)
	got := g.Generate(intent.Services, intent.Entities{}, "what do you offer", session.New())
	for _, name := range knowledge.Default().ServiceNames() {
		if !strings.Contains(got, name) {
			t.Errorf("services listing missing %q: %s", name, got)
		}
	}
}

func TestGenerate_Pricing_Web(t *testing.T) {
	g := newGenerator(t, nil)
	got := g.Generate(intent.Pricing, intent.Entities{Service: "web"}, "website cost", session.New())
	if !strings.Contains(got, "₹15,000") {
		t.Errorf("web pricing reply missing ₹15,000: %s", got)
	}
	if !strings.Contains(got, "responsive design") {
		t.Errorf("web pricing reply missing add-ons: %s", got)
	}
}

func TestGenerate_Pricing_MobileScenario(t *testing.T) {
	// Spec scenario: "what does mobile app development cost".
	utterance := intent.Normalize("What does mobile app development cost")
	in := intent.Classify(utterance)
	ents := intent.Extract(utterance)

	if in != intent.Pricing {
		t.Fatalf("intent = %q, want pricing", in)
	}
	if ents.Service != "mobile" {
		t.Fatalf("entity = %q, want mobile", ents.Service)
	}

	g := newGenerator(t, nil)
	got := g.Generate(in, ents, utterance, session.New())
	if !strings.Contains(got, "₹50,000") {
		t.Errorf("mobile pricing reply missing ₹50,000: %s", got)
	}
	if !strings.Contains(got, "consultation") {
		t.Errorf("mobile pricing reply missing consultation offer: %s", got)
	}
}

func TestGenerate_Pricing_OtherServicesFallThrough(t *testing.T) {
	g := newGenerator(t, nil)
	got := g.Generate(intent.Pricing, intent.Entities{Service: "cloud"}, "cloud cost", session.New())
	// cloud has no dedicated copy; the headline summary must appear.
	for _, want := range []string{"₹15,000", "₹50,000", "₹40,000"} {
		if !strings.Contains(got, want) {
			t.Errorf("pricing summary missing %q: %s", want, got)
		}
	}
}

func TestGenerate_Contact(t *testing.T) {
	g := newGenerator(t, nil)
	got := g.Generate(intent.Contact, intent.Entities{}, "contact", session.New())
	for _, want := range []string{"contact@inonetecx.com", "+1 647-493-5614", "Waterloo"} {
		if !strings.Contains(got, want) {
			t.Errorf("contact reply missing %q: %s", want, got)
		}
	}
}

func TestGenerate_Team(t *testing.T) {
	g := newGenerator(t, nil)
	got := g.Generate(intent.Team, intent.Entities{}, "team", session.New())
	for _, want := range []string{"25+ skilled professionals", "AWS Certified"} {
		if !strings.Contains(got, want) {
			t.Errorf("team reply missing %q: %s", want, got)
		}
	}
}

func TestGenerate_Process_OrderAndDeterminism(t *testing.T) {
	g := newGenerator(t, nil)
	first := g.Generate(intent.Process, intent.Entities{}, "process", session.New())
	second := g.Generate(intent.Process, intent.Entities{}, "process", session.New())

	if first != second {
		t.Error("process rendering is not deterministic")
	}

	// Steps must appear numbered in declaration order.
	order := []string{"1. Consultation", "2. Planning", "3. Development", "4. Testing", "5. Deployment", "6. Maintenance"}
	last := -1
	for _, step := range order {
		idx := strings.Index(first, step)
		if idx < 0 {
			t.Fatalf("process reply missing %q: %s", step, first)
		}
		if idx < last {
			t.Errorf("step %q out of order", step)
		}
		last = idx
	}
}

func TestGenerate_Timeline_WithEntity(t *testing.T) {
	g := newGenerator(t, nil)
	got := g.Generate(intent.Timeline, intent.Entities{Service: "mobile"}, "how long", session.New())
	if !strings.Contains(got, "6-16 weeks") {
		t.Errorf("timeline reply missing mobile timeline: %s", got)
	}
}

func TestGenerate_Timeline_UnresolvedEntityFallsBack(t *testing.T) {
	g := newGenerator(t, nil)
	// "design" resolves to design_solutions, which does not exist; the
	// generic summary is the intended fallback.
	got := g.Generate(intent.Timeline, intent.Entities{Service: "design"}, "how long", session.New())
	if !strings.Contains(got, "timelines vary by complexity") {
		t.Errorf("timeline reply is not the generic summary: %s", got)
	}
}

func TestGenerate_Website_OpensBrowser(t *testing.T) {
	opener := &fakeOpener{}
	g := newGenerator(t, opener)
	got := g.Generate(intent.Website, intent.Entities{}, "open website", session.New())

	if len(opener.opened) != 1 || opener.opened[0] != "https://inonetecx.com" {
		t.Errorf("opened = %v, want the company URL", opener.opened)
	}
	if !strings.Contains(got, "https://inonetecx.com") {
		t.Errorf("website reply missing URL: %s", got)
	}
}

func TestGenerate_Website_BrowserFailureFallsBack(t *testing.T) {
	opener := &fakeOpener{err: errors.New("no display")}
	g := newGenerator(t, opener)
	got := g.Generate(intent.Website, intent.Entities{}, "open website", session.New())

	if !strings.Contains(got, "Please visit our website") {
		t.Errorf("expected plain-text fallback, got: %s", got)
	}
	if !strings.Contains(got, "https://inonetecx.com") {
		t.Errorf("fallback reply missing URL: %s", got)
	}
}

func TestGenerate_Goodbye_ElapsedMinutes(t *testing.T) {
	g := New(knowledge.Default(), nil)
	now := time.Date(2025, 6, 1, 10, 17, 45, 0, time.UTC)
	g.WithClock(func() time.Time { return now })

	sess := session.New()
	sess.Start = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	got := g.Generate(intent.Goodbye, intent.Entities{}, "bye", sess)
	if !strings.Contains(got, "17 minutes") {
		t.Errorf("goodbye reply missing floored minutes: %s", got)
	}
}

func TestGenerate_UnknownNeverFails(t *testing.T) {
	g := newGenerator(t, nil)
	for _, in := range []intent.Intent{intent.Unknown, intent.Technology, intent.Portfolio} {
		got := g.Generate(in, intent.Entities{}, "???", session.New())
		if !strings.Contains(got, "I'd love to help you with that!") {
			t.Errorf("%s: reply is not the generic fallback: %s", in, got)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{15000, "15,000"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := formatAmount(tt.n); got != tt.want {
			t.Errorf("formatAmount(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
