package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"counselling-site/internal/config"
	"counselling-site/internal/domain"
	"counselling-site/internal/llm"
)

const (
	blogMaxTokens   = 2500
	blogTemperature = 0.7

	slugMaxLen     = 50
	metaSeedMaxLen = 60
)

// BlogService generates structured blog posts from an admin-supplied seed
// idea, either through the provider or through a deterministic demo template.
type BlogService struct {
	provider llm.Provider
	site     config.Site
	logger   *zap.Logger
}

// NewBlogService builds a BlogService. A nil provider enables demo mode.
func NewBlogService(provider llm.Provider, site config.Site, logger *zap.Logger) *BlogService {
	return &BlogService{
		provider: provider,
		site:     site,
		logger:   logger,
	}
}

// Generate produces a blog post for the seed idea. Provider and parse
// failures are surfaced as typed errors, never demoted to demo content.
func (s *BlogService) Generate(ctx context.Context, seedIdea string) (domain.GeneratedBlogContent, error) {
	if strings.TrimSpace(seedIdea) == "" {
		return domain.GeneratedBlogContent{}, ErrEmptySeedIdea
	}

	if s.provider == nil {
		return s.demoContent(seedIdea), nil
	}

	raw, err := s.provider.GenerateReply(ctx, llm.Request{
		System: BuildBlogSystemPrompt(s.site),
		Messages: []llm.Message{
			{Role: domain.RoleUser, Content: "Generate a blog post about: " + seedIdea},
		},
		MaxTokens:   blogMaxTokens,
		Temperature: blogTemperature,
	})
	if err != nil {
		s.logger.Error("blog provider failed", zap.Error(err))
		return domain.GeneratedBlogContent{}, ErrGenerationFailed
	}

	post, err := parseGeneratedPost(raw)
	if err != nil {
		s.logger.Error("blog parse failed", zap.Error(err), zap.String("raw", raw))
		return domain.GeneratedBlogContent{}, ErrUnparsableContent
	}

	return post, nil
}

// parseGeneratedPost applies the two-stage sanitize -> strict parse step to
// the provider output and recomputes the word count.
func parseGeneratedPost(raw string) (domain.GeneratedBlogContent, error) {
	cleaned := CleanJSONResponse(raw)

	candidate := extractFirstJSONObject(cleaned)
	if candidate == "" {
		candidate = cleaned
	}

	var payload struct {
		Title           string   `json:"title"`
		Slug            string   `json:"slug"`
		MetaDescription string   `json:"metaDescription"`
		Content         string   `json:"content"`
		KeyTakeaways    []string `json:"keyTakeaways"`
	}
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		return domain.GeneratedBlogContent{}, fmt.Errorf("unmarshal generated post: %w", err)
	}
	if strings.TrimSpace(payload.Title) == "" || strings.TrimSpace(payload.Content) == "" {
		return domain.GeneratedBlogContent{}, fmt.Errorf("generated post missing title or content")
	}

	return domain.GeneratedBlogContent{
		Title:           payload.Title,
		Slug:            payload.Slug,
		MetaDescription: payload.MetaDescription,
		Content:         payload.Content,
		KeyTakeaways:    payload.KeyTakeaways,
		WordCount:       countWords(payload.Content),
	}, nil
}

// demoContent synthesises a post from the seed idea when no credential is
// configured.
func (s *BlogService) demoContent(seedIdea string) domain.GeneratedBlogContent {
	lowerSeed := strings.ToLower(seedIdea)
	area := s.site.Location.Area
	city := s.site.Location.City
	county := s.site.Location.County

	content := fmt.Sprintf(`## Introduction

At our %s-based practice, we regularly support clients who are navigating the challenges of %s. This is a topic close to our hearts, and one that affects many people across %s and the wider %s area.

Understanding your experiences is the first step towards positive change. In this article, we'll explore some key aspects of %s and how professional counselling support can make a difference.

## Understanding the Impact

Many of our clients in %s initially come to us feeling uncertain about what they're experiencing. This is completely normal. %s can affect various aspects of daily life, from relationships to work performance.

What's important to remember is that seeking support is a sign of strength, not weakness. By taking the time to understand your experiences, you're already taking a positive step forward.

## How Counselling Can Help

Professional counselling provides a safe, confidential space to explore your thoughts and feelings. Here in %s, we take a person-centred approach, meaning your therapy is tailored to your unique needs and circumstances.

Whether you're dealing with %s for the first time or have been managing it for years, there's always scope for new understanding and growth.

## Taking the Next Step

If you recognise yourself in any of what we've discussed, please know that support is available. Our %s practice offers a warm, welcoming environment where you can explore these issues at your own pace.

We offer an initial consultation so you can see if we're the right fit for you, with no obligation to continue. You deserve support that works for you.`,
		area, lowerSeed, city, county,
		lowerSeed,
		city, seedIdea,
		county,
		lowerSeed,
		area,
	)

	return domain.GeneratedBlogContent{
		Title:           fmt.Sprintf("Understanding %s: A Guide from Our %s Practice", seedIdea, area),
		Slug:            s.demoSlug(seedIdea),
		MetaDescription: fmt.Sprintf("Learn about %s with expert guidance from %s in %s, %s. Professional support available.", truncate(seedIdea, metaSeedMaxLen), s.site.Name, area, city),
		Content:         content,
		KeyTakeaways: []string{
			fmt.Sprintf("%s affects many people and seeking help is a positive step", seedIdea),
			"Professional counselling provides a safe space to explore your experiences",
			"Person-centred therapy is tailored to your unique needs",
			fmt.Sprintf("Support is available at our %s practice", area),
		},
		WordCount: countWords(content),
	}
}

// demoSlug derives a URL slug from the seed idea: lowercase, alphanumerics
// and hyphens only, capped length, location suffix, never a leading or
// trailing hyphen.
func (s *BlogService) demoSlug(seedIdea string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(seedIdea) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	base := strings.Join(strings.Fields(b.String()), "-")
	if len(base) > slugMaxLen {
		base = base[:slugMaxLen]
	}
	base = strings.Trim(base, "-")

	citySlug := strings.ToLower(s.site.Location.City)
	if base == "" {
		return citySlug
	}
	return base + "-" + citySlug
}

// countWords counts non-empty whitespace-delimited tokens.
func countWords(content string) int {
	return len(strings.Fields(content))
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
