package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growth-agent/internal/core/domain"
)

func TestDefaultCatalogLoads(t *testing.T) {
	c := Default()
	require.NotNil(t, c)

	for _, ct := range domain.ContentTypes {
		assert.NotEmpty(t, c.Enhancements[ct].Fallback, "fallback enhancement for %s", ct)
	}
	assert.Equal(t, 10, c.Hashtags.Limit)
	assert.Len(t, c.FallbackHashtags(), 4)
	assert.Equal(t, "Local Business", c.BusinessDefaults.BusinessName)
	assert.Equal(t, "Small Business", c.AnonymousBusiness.BusinessName)
}

func TestEmbeddedTablesParse(t *testing.T) {
	c, err := Parse(embedded)
	require.NoError(t, err)

	tests := []struct {
		name     string
		got      any
		expected any
	}{
		{name: "persona", got: strings.HasPrefix(c.Persona, "You are Penyeza AI Growth Agent"), expected: true},
		{name: "channel", got: c.Channel(domain.ContentAdCopy), expected: "ads"},
		{name: "enhancement", got: c.Enhancement(domain.ContentEmail, "welcome"), expected: "Create a welcome email for new customers."},
		{name: "posting tips", got: c.PostingTipsFor("whatsapp")[3], expected: "Don't spam - respect customer privacy"},
		{name: "engagement", got: c.EngagementFor("whatsapp")["reads"], expected: 80},
		{name: "optimal times", got: c.OptimalTimesFor("twitter"), expected: []string{"8:00 AM", "12:00 PM", "6:00 PM"}},
		{name: "call to action", got: c.CallToAction("missing"), expected: "Learn more!"},
		{name: "ad targeting", got: c.AdTargetingFor("promotional"), expected: []string{"Price-sensitive", "Bargain hunters", "Local deals"}},
		{name: "video tips", got: c.VideoTipsFor("testimonial")[2], expected: "Before/after"},
		{name: "hashtags", got: c.FallbackHashtags()[0], expected: "#smallbusiness"},
		{name: "whatsapp replies", got: c.WhatsAppReplies("promotional"), expected: []string{"Awesome deal!", "I want this!", "How do I get it?"}},
		{name: "whatsapp fallback replies", got: c.WhatsAppReplies("other"), expected: []string{"Thanks!", "Got it", "Interesting"}},
		{name: "whatsapp timing", got: c.WhatsAppTiming()[0], expected: "Weekdays 10 AM - 12 PM"},
		{name: "whatsapp personalization", got: c.WhatsAppPersonalization()[2], expected: "Keep it conversational"},
		{name: "abandoned cart subject", got: c.EmailSubjectFor("abandoned_cart").Fixed, expected: "Did you forget something?"},
		{name: "welcome subject", got: c.EmailSubjectFor("welcome").Fixed, expected: "Welcome to Our Business!"},
		{name: "personalization fields", got: c.PersonalizationFields(), expected: []string{"{name}", "{business}", "{location}"}},
		{name: "target platforms", got: c.TargetPlatforms(), expected: []string{"facebook", "instagram", "whatsapp"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestTableLookup(t *testing.T) {
	c := Default()

	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{name: "exact key", key: "instagram", expected: "Create an Instagram post"},
		{name: "mixed case", key: "InstaGram", expected: "Create an Instagram post"},
		{name: "padded", key: "  facebook ", expected: "Create a Facebook post"},
		{name: "unknown key", key: "unknown_xyz", expected: "Create an engaging social media post."},
		{name: "empty key", key: "", expected: "Create an engaging social media post."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Enhancement(domain.ContentSocialPost, tt.key)
			assert.True(t, strings.HasPrefix(got, tt.expected), "got %q", got)
		})
	}
}

func TestFindReportsFallback(t *testing.T) {
	c := Default()

	_, ok := c.PostingTips.Find("tiktok")
	assert.True(t, ok)

	tips, ok := c.PostingTips.Find("myspace")
	assert.False(t, ok)
	assert.Equal(t, []string{"Post consistently", "Engage with your audience"}, tips)
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := Default()

	tags := c.FallbackHashtags()
	tags[0] = "#mutated"
	assert.Equal(t, "#smallbusiness", c.FallbackHashtags()[0])

	eng := c.EngagementFor("facebook")
	eng["likes"] = -1
	assert.Equal(t, 50, c.EngagementFor("facebook")["likes"])

	plan := c.FallbackPlan()
	plan["weekly_themes"].([]string)[0] = "Mutated"
	assert.Equal(t, "Engagement", c.FallbackPlan()["weekly_themes"].([]string)[0])
}

func TestEmailSubjects(t *testing.T) {
	c := Default()

	assert.Equal(t, EmailSubject{Prefix: "Update: ", Limit: 50}, c.EmailSubjectFor("newsletter"))
	assert.Equal(t, "We miss you!", c.EmailSubjectFor("RE_ENGAGEMENT").Fixed)
	assert.Equal(t, EmailSubject{Limit: 60}, c.EmailSubjectFor("digest"))
}

func TestParseRejectsIncompleteCatalog(t *testing.T) {
	_, err := Parse([]byte("persona: hi\nhashtags:\n  limit: 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no enhancement table for social_post")
	assert.Contains(t, err.Error(), "hashtags.limit must be positive")
}

func TestLoadFileEmptyPathUsesDefault(t *testing.T) {
	c, err := LoadFile("")
	require.NoError(t, err)
	assert.Same(t, Default(), c)
}
