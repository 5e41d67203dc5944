package structure

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growth-agent/internal/core/domain"
)

func TestHashtagsFallbackWhenNoneFound(t *testing.T) {
	p := NewProcessor(nil)

	got := p.Hashtags("Fresh bread every morning. Come visit us!")

	assert.Equal(t, []string{"#smallbusiness", "#localbusiness", "#supportlocal", "#entrepreneur"}, got)
}

func TestHashtagsCappedAtTen(t *testing.T) {
	p := NewProcessor(nil)

	var sb strings.Builder
	for i := 0; i < 15; i++ {
		fmt.Fprintf(&sb, "word #tag%d ", i)
	}

	got := p.Hashtags(sb.String())

	require.Len(t, got, 10)
	assert.Equal(t, "#tag0", got[0])
	assert.Equal(t, "#tag9", got[9])
}

func TestHashtagsMatchUnicodeWords(t *testing.T) {
	p := NewProcessor(nil)

	assert.Equal(t, []string{"#Café", "#naija_food"}, p.Hashtags("Try our #Café special #naija_food!"))
}

func TestHashtagsKeepCombiningMarks(t *testing.T) {
	p := NewProcessor(nil)

	got := p.Hashtags("Visit #cafe\u0301 and say #नमस्ते!")
	assert.Equal(t, []string{"#cafe\u0301", "#नमस्ते"}, got)
}

func TestHashtagsIgnoreBareHash(t *testing.T) {
	p := NewProcessor(nil)

	assert.Len(t, p.Hashtags("We are # 1 in town"), 4)
}

func TestStructureSocialPost(t *testing.T) {
	p := NewProcessor(nil)
	raw := "Big sale this weekend! #sale #lagos"

	art := p.Structure(raw, domain.GenerationRequest{
		ContentType: domain.ContentSocialPost,
		Platform:    "Instagram",
		Theme:       "sale",
	})

	post, ok := art.(domain.SocialPost)
	require.True(t, ok)
	assert.Equal(t, raw, post.Content)
	assert.Equal(t, []string{"#sale", "#lagos"}, post.Hashtags)
	assert.Equal(t, len([]rune(raw)), post.CharacterCount)
	assert.Equal(t, "Instagram", post.Platform)
	assert.Equal(t, "sale", post.Theme)
	assert.Equal(t, []string{"11:00 AM", "2:00 PM", "8:00 PM"}, post.OptimalPostTimes)
	assert.Equal(t, 100, post.EstimatedEngagement["likes"])
	assert.Len(t, post.PostingTips, 4)
}

func TestStructureSocialPostUnknownPlatform(t *testing.T) {
	p := NewProcessor(nil)

	post := p.Structure("hello", domain.GenerationRequest{ContentType: domain.ContentSocialPost, Platform: "myspace"}).(domain.SocialPost)

	assert.Equal(t, []string{"Post consistently", "Engage with your audience"}, post.PostingTips)
	assert.Equal(t, map[string]any{"likes": 50, "engagement": "medium"}, post.EstimatedEngagement)
	assert.Equal(t, []string{"Morning", "Afternoon", "Evening"}, post.OptimalPostTimes)
}

func TestStructureProductDescription(t *testing.T) {
	p := NewProcessor(nil)
	raw := "Handmade shea butter from northern Ghana. Rich in vitamins. Great for dry skin and hair. " +
		"Packed in recyclable jars. Delivered nationwide within days. Trusted by thousands of customers. Order today"

	desc := p.Structure(raw, domain.GenerationRequest{
		ContentType: domain.ContentProductDesc,
		Product:     &domain.ProductDetails{TargetCustomer: "women 25-45"},
	}).(domain.ProductDescription)

	assert.Len(t, desc.KeyFeatures, 5)
	assert.Equal(t, "Handmade shea butter from northern Ghana", desc.KeyFeatures[0])
	assert.Equal(t, "Rich in vitamins", desc.KeyFeatures[1])
	assert.Equal(t, "women 25-45", desc.TargetAudience)
	assert.Equal(t, "Shop now!", desc.CallToAction)
	assert.LessOrEqual(t, len(desc.SEOKeywords), 10)
	assert.Contains(t, desc.SEOKeywords, "handmade")
}

func TestKeyPointsDropShortSentences(t *testing.T) {
	assert.Equal(t, []string{"This sentence is long enough"}, KeyPoints("Short. This sentence is long enough. Tiny"))
}

func TestKeywordsDeduplicateAndCap(t *testing.T) {
	text := "Amazing amazing AMAZING quality products delivered quickly across Nairobi county " +
		"with friendly service guaranteed always everywhere forever tomorrow"

	got := Keywords(text)

	assert.Len(t, got, 10)
	assert.Equal(t, "amazing", got[0])
	assert.Equal(t, "quality", got[1])
	assert.NotContains(t, got, "with")
	count := 0
	for _, w := range got {
		if w == "amazing" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestStructureAdCopy(t *testing.T) {
	p := NewProcessor(nil)
	raw := strings.Repeat("H", 120) + "\nBody text here"

	ad := p.Structure(raw, domain.GenerationRequest{
		ContentType: domain.ContentAdCopy,
		AdType:      "sales",
		Promotion:   "2 for 1",
	}).(domain.AdCopy)

	assert.Equal(t, strings.Repeat("H", 100), ad.Headline)
	assert.Equal(t, raw, ad.Body)
	assert.Equal(t, "Limited time offer!", ad.CallToAction)
	assert.Equal(t, "2 for 1", ad.PromotionDetails)
	assert.Equal(t, []string{"Local customers", "Past buyers", "Similar interests"}, ad.TargetingSuggestions)
}

func TestStructureAdCopyUnknownType(t *testing.T) {
	p := NewProcessor(nil)

	ad := p.Structure("Headline", domain.GenerationRequest{ContentType: domain.ContentAdCopy, AdType: "radio"}).(domain.AdCopy)

	assert.Equal(t, "Headline", ad.Headline)
	assert.Equal(t, "Learn more!", ad.CallToAction)
	assert.Equal(t, []string{"Local audience", "Interest-based"}, ad.TargetingSuggestions)
}

func TestStructureVideoScriptCapsScenes(t *testing.T) {
	p := NewProcessor(nil)
	var scenes []string
	for i := 1; i <= 8; i++ {
		scenes = append(scenes, fmt.Sprintf("Scene %d: something happens", i))
	}
	raw := strings.Join(scenes, "\n\n\n\n")

	script := p.Structure(raw, domain.GenerationRequest{
		ContentType: domain.ContentVideoScript,
		VideoType:   "testimonial",
		Duration:    "30 seconds",
	}).(domain.VideoScript)

	assert.Len(t, script.KeyScenes, 5)
	assert.Equal(t, "Scene 1: something happens", script.KeyScenes[0])
	assert.Equal(t, "30 seconds", script.EstimatedDuration)
	assert.Equal(t, "Watch now!", script.CallToAction)
	assert.Equal(t, []string{"Show real customers", "Authentic stories", "Before/after"}, script.PlatformOptimization)
}

func TestStructureWhatsApp(t *testing.T) {
	p := NewProcessor(nil)
	raw := "Habari! Our new stock has arrived."

	msg := p.Structure(raw, domain.GenerationRequest{ContentType: domain.ContentWhatsApp, CampaignType: "Promotional"}).(domain.WhatsAppMessage)

	assert.Equal(t, raw, msg.Message)
	assert.Equal(t, len([]rune(raw)), msg.CharacterCount)
	assert.Equal(t, []string{"Awesome deal!", "I want this!", "How do I get it?"}, msg.SuggestedReplies)
	assert.Len(t, msg.TimingSuggestions, 3)
	assert.Len(t, msg.PersonalizationTips, 3)
}

func TestStructureEmailCapsSections(t *testing.T) {
	p := NewProcessor(nil)
	paragraphs := []string{
		"Hi there",
		"We have exciting news about our store this month.",
		"Our bakery now opens at six every single morning.",
		"Try the new sourdough loaf, baked fresh daily for you.",
		"Members get ten percent off every order this week.",
		"Reply to this email to reserve your order today.",
	}

	em := p.Structure(strings.Join(paragraphs, "\n\n"), domain.GenerationRequest{
		ContentType: domain.ContentEmail,
		EmailType:   "newsletter",
	}).(domain.EmailCampaign)

	assert.Len(t, em.KeySections, 4)
	assert.Equal(t, paragraphs[1], em.KeySections[0])
	assert.Equal(t, "Click here to learn more!", em.CallToAction)
	assert.Equal(t, []string{"{name}", "{business}", "{location}"}, em.PersonalizationFields)
}

func TestSubject(t *testing.T) {
	p := NewProcessor(nil)
	long := strings.Repeat("a", 80) + ". More text"

	tests := []struct {
		name      string
		emailType string
		expected  string
	}{
		{name: "newsletter", emailType: "newsletter", expected: "Update: " + strings.Repeat("a", 50)},
		{name: "promotional", emailType: "promotional", expected: "Special Offer: " + strings.Repeat("a", 40)},
		{name: "welcome", emailType: "welcome", expected: "Welcome to Our Business!"},
		{name: "abandoned cart", emailType: "abandoned_cart", expected: "Did you forget something?"},
		{name: "re-engagement", emailType: "re_engagement", expected: "We miss you!"},
		{name: "unknown", emailType: "digest", expected: strings.Repeat("a", 60)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, p.Subject(long, tt.emailType))
		})
	}
}

func TestExtractionNeverExceedsCaps(t *testing.T) {
	text := strings.Repeat("This is a fairly long sentence for testing. ", 50) +
		strings.Repeat("\n\nA paragraph that is definitely long enough", 50)

	assert.LessOrEqual(t, len(KeyPoints(text)), 5)
	assert.LessOrEqual(t, len(Sections(text)), 4)
	assert.LessOrEqual(t, len(Scenes(text)), 5)
	assert.LessOrEqual(t, len(Keywords(text)), 10)
}

func TestStructureEmptyTextDegrades(t *testing.T) {
	p := NewProcessor(nil)

	for _, ct := range domain.ContentTypes {
		t.Run(string(ct), func(t *testing.T) {
			var art domain.Artifact
			assert.NotPanics(t, func() {
				art = p.Structure("", domain.GenerationRequest{ContentType: ct})
			})
			assert.Equal(t, ct, art.Kind())
		})
	}
}
