package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"growth-agent/internal/core/domain"
)

func TestBuildSubstitutesDefaults(t *testing.T) {
	b := NewBuilder(nil)

	got := b.Build(domain.BusinessContext{}, domain.GenerationRequest{ContentType: domain.ContentSocialPost})

	assert.Contains(t, got, "- Business Name: Local Business\n")
	assert.Contains(t, got, "- Business Type: General\n")
	assert.Contains(t, got, "- Description: Serving local community\n")
	assert.Contains(t, got, "- Target Audience: Local customers\n")
	assert.Contains(t, got, "- Location: Local area\n")
	assert.Contains(t, got, "TASK: Create a SOCIAL_POST for GENERAL")
	assert.Contains(t, got, "- Engaging and professional tone\n")
	assert.Contains(t, got, "No explanations or notes.")
}

func TestBuildKeepsProvidedContext(t *testing.T) {
	b := NewBuilder(nil)
	biz := domain.BusinessContext{
		BusinessName: "Mama Put Kitchen",
		BusinessType: "food",
		Location:     "Lagos",
	}

	got := b.Build(biz, domain.GenerationRequest{
		ContentType: domain.ContentSocialPost,
		Platform:    "Instagram",
		Theme:       "sale",
		Tone:        "playful",
	})

	assert.Contains(t, got, "- Business Name: Mama Put Kitchen\n")
	assert.Contains(t, got, "- Location: Lagos\n")
	assert.Contains(t, got, "- Description: Serving local community\n")
	assert.Contains(t, got, "TASK: Create a SOCIAL_POST for INSTAGRAM")
	assert.Contains(t, got, "Make it visual and story-oriented. Theme: sale")
	assert.Contains(t, got, "- Engaging and playful tone\n")
}

func TestEnhancementUnknownPlatformFallsBack(t *testing.T) {
	b := NewBuilder(nil)

	assert.NotPanics(t, func() {
		got := b.Enhancement(domain.GenerationRequest{ContentType: domain.ContentSocialPost, Platform: "unknown_xyz"})
		assert.Equal(t, "Create an engaging social media post.", got)
	})
}

func TestEnhancementPerContentType(t *testing.T) {
	b := NewBuilder(nil)

	tests := []struct {
		name     string
		req      domain.GenerationRequest
		expected string
	}{
		{
			name:     "ad copy with promotion",
			req:      domain.GenerationRequest{ContentType: domain.ContentAdCopy, AdType: "SALES", Promotion: "20% off all week"},
			expected: "Create compelling sales ad copy with strong call-to-action and urgency. Promotion details: 20% off all week",
		},
		{
			name:     "ad copy unknown type",
			req:      domain.GenerationRequest{ContentType: domain.ContentAdCopy, AdType: "billboard"},
			expected: "Create compelling advertising copy.",
		},
		{
			name:     "video script default duration",
			req:      domain.GenerationRequest{ContentType: domain.ContentVideoScript, VideoType: "tutorial"},
			expected: "Create a step-by-step tutorial video script that educates viewers. Duration: short",
		},
		{
			name:     "video script explicit duration",
			req:      domain.GenerationRequest{ContentType: domain.ContentVideoScript, VideoType: "vlog", Duration: "60 seconds"},
			expected: "Create an engaging video script. Duration: 60 seconds",
		},
		{
			name:     "whatsapp campaign",
			req:      domain.GenerationRequest{ContentType: domain.ContentWhatsApp, CampaignType: "followup"},
			expected: "Create a follow-up message for recent customers.",
		},
		{
			name:     "email type",
			req:      domain.GenerationRequest{ContentType: domain.ContentEmail, EmailType: "abandoned_cart"},
			expected: "Create an abandoned cart recovery email.",
		},
		{
			name: "product details",
			req: domain.GenerationRequest{ContentType: domain.ContentProductDesc, Product: &domain.ProductDetails{
				Name:     "Shea Butter",
				Features: []string{"organic", "unrefined"},
			}},
			expected: "Create compelling content that drives engagement and sales. Product: Shea Butter. Features: organic, unrefined.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, b.Enhancement(tt.req))
		})
	}
}

func TestChannel(t *testing.T) {
	b := NewBuilder(nil)

	assert.Equal(t, "tiktok", b.Channel(domain.GenerationRequest{ContentType: domain.ContentSocialPost, Platform: "tiktok"}))
	assert.Equal(t, "general", b.Channel(domain.GenerationRequest{ContentType: domain.ContentSocialPost}))
	assert.Equal(t, "ads", b.Channel(domain.GenerationRequest{ContentType: domain.ContentAdCopy, Platform: "instagram"}))
	assert.Equal(t, "video", b.Channel(domain.GenerationRequest{ContentType: domain.ContentVideoScript}))
	assert.Equal(t, "email", b.Channel(domain.GenerationRequest{ContentType: domain.ContentEmail}))
}

func TestBuildPlanSubstitutesDefaults(t *testing.T) {
	b := NewBuilder(nil)

	got := b.BuildPlan(domain.BusinessContext{BusinessName: "Kofi Cuts"})

	assert.Contains(t, got, "- Name: Kofi Cuts\n")
	assert.Contains(t, got, "- Type: General\n")
	assert.Contains(t, got, "- Description: Serving local community\n")
	assert.Contains(t, got, "- Target Audience: Local customers\n")
	assert.Contains(t, got, "- Location: Local area\n")
	assert.Contains(t, got, "Create a 7-day marketing plan")
	assert.Contains(t, got, "Format the response as structured JSON")
}
