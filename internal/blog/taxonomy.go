package blog

import (
	"fmt"
	"strings"

	"github.com/ivco-ai/blogsync/internal/payload"
)

// fallbackCategory is used for posts whose category slug is unknown.
const fallbackCategory = "framework"

// tagNames maps tag slugs to display names where title-casing gets them wrong.
var tagNames = map[string]string{
	"buffett":                "Buffett",
	"owner-earnings":         "Owner Earnings",
	"allen-framework":        "Allen Framework",
	"valuation":              "Valuation",
	"dcf":                    "DCF",
	"tsmc":                   "TSMC",
	"confidence-coefficient": "Confidence Coefficient",
	"reality-coefficient":    "Reality Coefficient",
	"intrinsic-value":        "Intrinsic Value",
	"munger":                 "Munger",
	"fisher":                 "Fisher",
	"graham":                 "Graham",
	"ai-native":              "AI Native",
	"research-engine":        "Research Engine",
	"python":                 "Python",
	"open-source":            "Open Source",
	"philosophy":             "Philosophy",
	"cagr":                   "CAGR",
	"case-study":             "Case Study",
	"value-investing":        "Value Investing",
}

// Categories is the fixed category table, in display order.
var Categories = []payload.Category{
	{Slug: "framework", Name: "Framework", Description: "Core methodology and investment philosophy", Color: "#2563eb"},
	{Slug: "case-study", Name: "Case Study", Description: "Real-world company analyses using the Allen Framework", Color: "#059669"},
	{Slug: "brand-story", Name: "Brand Story", Description: "The story behind IVCO and its mission", Color: "#7c3aed"},
	{Slug: "opinion", Name: "Opinion", Description: "Market commentary and investment perspectives", Color: "#d97706"},
	{Slug: "education", Name: "Education", Description: "Foundational value investing concepts explained", Color: "#0891b2"},
	{Slug: "research-report", Name: "Research Report", Description: "Deep-dive company research and analysis", Color: "#dc2626"},
	{Slug: "tool-guide", Name: "Tool Guide", Description: "Guides for IVCO CLI tools and automation", Color: "#4f46e5"},
	{Slug: "market-brief", Name: "Market Brief", Description: "Quick market observations and signals", Color: "#ea580c"},
}

// TagName returns the display name of a tag slug.
func TagName(slug string) string {
	if name, ok := tagNames[slug]; ok {
		return name
	}
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// DefaultFAQ returns the records used when an article has fewer than
// minFAQ questions of its own.
func DefaultFAQ(title, description string) []payload.FAQ {
	return []payload.FAQ{
		{Question: fmt.Sprintf("What is the main argument of \"%s\"?", title), Answer: description},
		{Question: "How does this relate to the Allen Framework?", Answer: "This article explores a core component of the Allen Framework for intelligent valuation."},
		{Question: "Where can I try the tools mentioned?", Answer: "The Python CLI tools are open source at github.com/ConversionCrafter/allen-ivco."},
	}
}
