package assistant

import (
	"fmt"

	"github.com/awf1337/instantly/internal/model"
)

// Placeholders substituted for omitted optional request fields. The rendered
// prompt always carries every field position so its structure never depends
// on which optional fields were supplied.
const (
	defaultBusiness = "General business"
	defaultName     = "there"
	defaultContext  = "General follow-up"
)

// Prompt is a rendered system instruction plus user content pair.
type Prompt struct {
	System string
	User   string
}

// Spec is the per-category configuration of the one parameterized generator:
// prompt template plus deterministic fallback subject.
type Spec struct {
	Category        model.Category
	FallbackSubject string
	buildSystem     func(req model.GenerationRequest) string
}

// BuildPrompt renders the category prompt for req. Pure, no side effects.
func (s Spec) BuildPrompt(req model.GenerationRequest) Prompt {
	return Prompt{
		System: s.buildSystem(req),
		User:   req.Prompt,
	}
}

var specs = map[model.Category]Spec{
	model.CategorySales: {
		Category:        model.CategorySales,
		FallbackSubject: "Sales Proposal",
		buildSystem:     salesSystem,
	},
	model.CategoryFollowup: {
		Category:        model.CategoryFollowup,
		FallbackSubject: "Following Up",
		buildSystem:     followupSystem,
	},
}

// SpecFor returns the spec for a known category.
func SpecFor(category model.Category) (Spec, bool) {
	s, ok := specs[category]
	return s, ok
}

// Categories lists every category with a registered spec.
func Categories() []model.Category {
	out := make([]model.Category, 0, len(specs))
	for c := range specs {
		out = append(out, c)
	}
	return out
}

func salesSystem(req model.GenerationRequest) string {
	return fmt.Sprintf(`You are a Sales Assistant. Generate a professional sales email based on the user's request.

Requirements:
- Keep the email under 40 words total (readable in under 10 seconds)
- Use 7-10 words per sentence maximum
- Make it engaging and professional
- Include both subject line and email body
- Tailor to the recipient's business context

User request: %q
Recipient business: %s
Recipient name: %s

Generate the email in this exact JSON format:
{
  "subject": "Subject line here",
  "body": "Email body here"
}`,
		req.Prompt,
		orDefault(req.RecipientBusiness, defaultBusiness),
		orDefault(req.RecipientName, defaultName),
	)
}

func followupSystem(req model.GenerationRequest) string {
	return fmt.Sprintf(`You are a Follow-up Assistant. Generate a polite and professional follow-up email based on the user's request.

Requirements:
- Keep the email under 40 words total (readable in under 10 seconds)
- Use 7-10 words per sentence maximum
- Make it polite and non-pushy
- Include both subject line and email body
- Reference previous context if provided

User request: %q
Recipient name: %s
Previous context: %s

Generate the email in this exact JSON format:
{
  "subject": "Subject line here",
  "body": "Email body here"
}`,
		req.Prompt,
		orDefault(req.RecipientName, defaultName),
		orDefault(req.PreviousContext, defaultContext),
	)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
