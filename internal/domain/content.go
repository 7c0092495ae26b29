package domain

import "time"

// FAQEntry is a question/answer pair on the FAQ page, grouped by category.
type FAQEntry struct {
	Category string
	Question string
	Answer   string
}

// GuideSection is one section of the buying/legal guide.
type GuideSection struct {
	Slug  string
	Title string
	Body  string
	// Steps is set for step-by-step sections (e.g. the purchase process).
	Steps []string
}

// BlogPost is an article shown in the blog feed. Posts come from an external
// feed when it is enabled, with a static fallback otherwise.
type BlogPost struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"image_url"`
	PublishedAt time.Time `json:"published_at"`
}

// SeedBlogPosts is the static fallback shown when the external feed is
// disabled or unreachable.
func SeedBlogPosts() []BlogPost {
	return []BlogPost{
		{
			ID:          "dubai-market-outlook-2026",
			Title:       "Dubai property market outlook for 2026",
			Excerpt:     "Transaction volumes keep climbing while prime communities see single-digit price growth. What it means for buyers entering now.",
			URL:         "/blog/dubai-market-outlook-2026",
			PublishedAt: time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "off-plan-vs-ready",
			Title:       "Off-plan vs ready: which is right for you?",
			Excerpt:     "Payment plans and launch pricing against immediate rental income. A framework for picking the right side of the trade.",
			URL:         "/blog/off-plan-vs-ready",
			PublishedAt: time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "golden-visa-guide",
			Title:       "The complete Golden Visa property guide",
			Excerpt:     "Thresholds, eligible property types and the application process for the 10-year residency visa.",
			URL:         "/blog/golden-visa-guide",
			PublishedAt: time.Date(2025, time.September, 21, 0, 0, 0, 0, time.UTC),
		},
	}
}

// SeedFAQ is the built-in FAQ content.
func SeedFAQ() []FAQEntry {
	return []FAQEntry{
		{
			Category: "buying",
			Question: "Can foreigners buy property in Dubai?",
			Answer:   "Yes. Non-residents can buy freehold property in designated freehold areas such as Palm Jumeirah, Downtown Dubai and Dubai Marina, with full ownership rights.",
		},
		{
			Category: "buying",
			Question: "What is an off-plan property?",
			Answer:   "An off-plan property is bought before or during construction, usually on a payment plan, typically at a lower price than a comparable ready unit.",
		},
		{
			Category: "fees",
			Question: "What fees apply when buying?",
			Answer:   "Budget for the 4% DLD transfer fee, a trustee office fee, and agency commission (usually 2%). Off-plan purchases pay the DLD fee on the purchase price.",
		},
		{
			Category: "visa",
			Question: "How do I qualify for a Golden Visa through property?",
			Answer:   "A property investment of AED 2,000,000 or more qualifies the owner to apply for a 10-year renewable residency visa.",
		},
		{
			Category: "rental",
			Question: "What rental yields can I expect?",
			Answer:   "Gross yields vary by community; apartments in mid-market areas commonly achieve 6-8%, prime waterfront communities 4-6%.",
		},
		{
			Category: "fees",
			Question: "What are service charges?",
			Answer:   "Annual fees paid to the owners association for maintenance of common areas, charged per square foot and varying by community.",
		},
	}
}

// SeedGuide is the built-in legal/buying guide content.
func SeedGuide() []GuideSection {
	return []GuideSection{
		{
			Slug:  "purchase-process",
			Title: "The purchase process",
			Body:  "Buying in Dubai is straightforward and regulated by the Dubai Land Department.",
			Steps: []string{
				"Agree terms and sign the Form F (MOU) with a 10% deposit",
				"Apply for the developer's No Objection Certificate",
				"Transfer ownership at a DLD trustee office",
				"Receive the title deed in your name",
			},
		},
		{
			Slug:  "off-plan-protections",
			Title: "Off-plan buyer protections",
			Body:  "Off-plan payments go into RERA-regulated escrow accounts tied to construction milestones. Developers cannot draw funds ahead of certified progress.",
		},
		{
			Slug:  "ownership-types",
			Title: "Freehold vs leasehold",
			Body:  "Freehold grants full ownership of the unit and a share of the land in perpetuity. Leasehold grants use for up to 99 years. All communities on this site are freehold.",
		},
		{
			Slug:  "golden-visa",
			Title: "Golden Visa by investment",
			Body:  "Property worth AED 2M or more (single title or aggregated) qualifies for the 10-year Golden Visa, covering spouse and children. Mortgaged property qualifies when the paid-up amount meets the threshold.",
		},
	}
}
