package service

import (
	"strings"
	"testing"

	"counselling-site/internal/config"
)

func testSite() config.Site {
	var s config.Site
	s.Name = "Harbour Counselling"
	s.Location.Area = "Gosport"
	s.Location.City = "Fareham"
	s.Location.County = "Hampshire"
	s.Therapist.Name = "Alex"
	s.Therapist.Title = "Alex Example"
	s.Therapist.Qualifications = "MBACP"
	s.Therapist.Experience = "5+ years"
	s.Specialisms = []config.Specialism{
		{Name: "Stress Support", Slug: "stress", Description: "Help with workplace stress."},
	}
	s.Fees.Initial = 40
	s.Fees.Standard = 48
	s.Fees.Concession = 35
	s.Fees.Currency = "GBP"
	s.Fees.SessionLength = "50 minutes"
	s.Contact.Email = "hello@harbour.example"
	s.Contact.Phone = "01234 567890"
	return s
}

func TestBuildChatSystemPrompt_EmbedsBusinessFacts(t *testing.T) {
	prompt := BuildChatSystemPrompt(testSite())

	for _, want := range []string{
		"Alex Example (MBACP)",
		"5+ years",
		"Gosport, Fareham, Hampshire",
		"Stress Support: Help with workplace stress.",
		"Initial Consultation: £40 (50 minutes)",
		"Standard Session: £48 (50 minutes)",
		"Concession Rate: £35",
		"hello@harbour.example",
		"01234 567890",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("chat prompt missing %q", want)
		}
	}
}

func TestBuildChatSystemPrompt_CrisisReferralLines(t *testing.T) {
	prompt := BuildChatSystemPrompt(testSite())

	for _, want := range []string{
		"Samaritans: 116 123",
		"Text SHOUT to 85258",
		"NHS 111 (Option 2 for mental health)",
		"call 999",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("chat prompt missing crisis line %q", want)
		}
	}
}

func TestBuildChatSystemPrompt_BehaviouralGuidelines(t *testing.T) {
	prompt := BuildChatSystemPrompt(testSite())

	for _, want := range []string{
		"British English",
		"2-4 sentences",
		"contact Alex via email or phone",
		"NEVER provide clinical advice",
		"NEVER diagnose",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("chat prompt missing guideline %q", want)
		}
	}
}

func TestBuildBlogSystemPrompt_Contracts(t *testing.T) {
	prompt := BuildBlogSystemPrompt(testSite())

	for _, want := range []string{
		"Harbour Counselling",
		"Gosport, Fareham, Hampshire",
		"- Specialisms: Stress Support",
		"Adults seeking mental health support in the Fareham/Hampshire area",
		"Write 800-1000 words",
		"## for H2 headings",
		"EXACTLY 150-160 characters",
		"3-4 key takeaways",
		`"keyTakeaways"`,
		"Return ONLY valid JSON, no markdown code blocks",
		`e.g., "adhd-support-fareham"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("blog prompt missing %q", want)
		}
	}
}

func TestCurrencySymbol(t *testing.T) {
	if got := currencySymbol("GBP"); got != "£" {
		t.Fatalf("GBP symbol: %q", got)
	}
	if got := currencySymbol("SEK"); got != "SEK " {
		t.Fatalf("fallback symbol: %q", got)
	}
}
