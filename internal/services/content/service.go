package content

import (
	"context"
	"log/slog"
	"time"

	"property_hub/internal/domain"
	"property_hub/internal/lib/feed"
	"property_hub/internal/lib/logger/sl"
	"property_hub/internal/lib/metrics"

	"github.com/samber/lo"
)

// Service serves the editorial pages: FAQ, the buying guide and the blog.
// FAQ and guide content ship with the binary; blog posts come from the
// external feed with a static fallback.
type Service struct {
	log     *slog.Logger
	feed    feed.Client
	metrics *metrics.SiteMetrics

	faq   []domain.FAQEntry
	guide []domain.GuideSection
}

func New(log *slog.Logger, feedClient feed.Client, m *metrics.SiteMetrics) *Service {
	return &Service{
		log:     log,
		feed:    feedClient,
		metrics: m,
		faq:     domain.SeedFAQ(),
		guide:   domain.SeedGuide(),
	}
}

// FAQ returns the FAQ entries, optionally narrowed to one category.
func (s *Service) FAQ(category string) []domain.FAQEntry {
	if category == "" {
		return s.faq
	}
	return lo.Filter(s.faq, func(e domain.FAQEntry, _ int) bool {
		return e.Category == category
	})
}

// FAQCategories returns the distinct categories in display order.
func (s *Service) FAQCategories() []string {
	return lo.Uniq(lo.Map(s.faq, func(e domain.FAQEntry, _ int) string {
		return e.Category
	}))
}

// Guide returns the buying/legal guide sections.
func (s *Service) Guide() []domain.GuideSection {
	return s.guide
}

// GuideSection looks a section up by slug.
func (s *Service) GuideSection(slug string) (domain.GuideSection, bool) {
	return lo.Find(s.guide, func(g domain.GuideSection) bool {
		return g.Slug == slug
	})
}

// BlogPosts returns the latest posts. Feed failures fall back to the static
// articles; the blog must never take a content page down.
func (s *Service) BlogPosts(ctx context.Context, limit int) []domain.BlogPost {
	const op = "content.Service.BlogPosts"

	if limit <= 0 {
		limit = 10
	}

	if !s.feed.IsEnabled() {
		return lo.Subset(domain.SeedBlogPosts(), 0, uint(limit))
	}

	start := time.Now()
	posts, err := s.feed.LatestPosts(ctx, limit)
	s.metrics.RecordFeedCall(time.Since(start), err)
	if err != nil {
		s.log.Warn("blog feed unavailable, serving fallback",
			slog.String("op", op), sl.Err(err))
		return lo.Subset(domain.SeedBlogPosts(), 0, uint(limit))
	}
	if len(posts) == 0 {
		return lo.Subset(domain.SeedBlogPosts(), 0, uint(limit))
	}

	return lo.Subset(posts, 0, uint(limit))
}
