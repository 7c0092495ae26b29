package content

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"property_hub/internal/domain"
	"property_hub/internal/lib/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeed struct {
	enabled bool
	posts   []domain.BlogPost
	err     error
}

func (f stubFeed) LatestPosts(_ context.Context, _ int) ([]domain.BlogPost, error) {
	return f.posts, f.err
}

func (f stubFeed) IsEnabled() bool { return f.enabled }

func newService(t *testing.T, f stubFeed) *Service {
	t.Helper()
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	m := metrics.GetSiteMetrics(log)
	m.Reset()
	return New(log, f, m)
}

func TestFAQ_AllAndByCategory(t *testing.T) {
	svc := newService(t, stubFeed{})

	all := svc.FAQ("")
	assert.NotEmpty(t, all)

	fees := svc.FAQ("fees")
	require.NotEmpty(t, fees)
	for _, e := range fees {
		assert.Equal(t, "fees", e.Category)
	}

	assert.Empty(t, svc.FAQ("no-such-category"))
}

func TestFAQCategories_Distinct(t *testing.T) {
	svc := newService(t, stubFeed{})

	cats := svc.FAQCategories()
	seen := map[string]bool{}
	for _, c := range cats {
		assert.False(t, seen[c], "category %q repeated", c)
		seen[c] = true
	}
	assert.Contains(t, cats, "buying")
	assert.Contains(t, cats, "visa")
}

func TestGuideSection_BySlug(t *testing.T) {
	svc := newService(t, stubFeed{})

	sec, ok := svc.GuideSection("golden-visa")
	require.True(t, ok)
	assert.Equal(t, "Golden Visa by investment", sec.Title)

	_, ok = svc.GuideSection("missing")
	assert.False(t, ok)
}

func TestBlogPosts_DisabledFeedServesFallback(t *testing.T) {
	svc := newService(t, stubFeed{enabled: false})

	posts := svc.BlogPosts(context.Background(), 2)
	require.Len(t, posts, 2)
	assert.Equal(t, "dubai-market-outlook-2026", posts[0].ID)
}

func TestBlogPosts_FeedFailureServesFallback(t *testing.T) {
	svc := newService(t, stubFeed{enabled: true, err: errors.New("timeout")})

	posts := svc.BlogPosts(context.Background(), 10)
	assert.Len(t, posts, len(domain.SeedBlogPosts()))
}

func TestBlogPosts_FeedPostsWin(t *testing.T) {
	fromFeed := []domain.BlogPost{{ID: "fresh", Title: "Fresh from the feed"}}
	svc := newService(t, stubFeed{enabled: true, posts: fromFeed})

	posts := svc.BlogPosts(context.Background(), 10)
	require.Len(t, posts, 1)
	assert.Equal(t, "fresh", posts[0].ID)
}

func TestBlogPosts_EmptyFeedServesFallback(t *testing.T) {
	svc := newService(t, stubFeed{enabled: true})

	posts := svc.BlogPosts(context.Background(), 1)
	require.Len(t, posts, 1)
}
