package model

import "strings"

// Category names a generation assistant persona.
type Category string

const (
	CategorySales    Category = "sales"
	CategoryFollowup Category = "followup"
	// CategoryUnknown marks classifier output outside the known set.
	CategoryUnknown Category = "unknown"
)

// ParseCategory normalizes s into the closed category set.
func ParseCategory(s string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategorySales:
		return CategorySales
	case CategoryFollowup:
		return CategoryFollowup
	default:
		return CategoryUnknown
	}
}

// GenerationRequest carries the user's free-text intent plus per-category
// context fields. It is never persisted.
type GenerationRequest struct {
	Category          Category
	Prompt            string
	RecipientBusiness string
	RecipientName     string
	PreviousContext   string
}

// GeneratedContent is the outcome of one generation. WellFormed is false when
// the model output did not parse as the required shape and fallback content
// was substituted.
type GeneratedContent struct {
	Subject    string
	Body       string
	WellFormed bool
}
