// Package structure derives structured artifacts from raw generated text.
// Every function here is best effort: text without the expected shape
// degrades to fallbacks and never produces an error.
package structure

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"growth-agent/internal/core/catalog"
	"growth-agent/internal/core/domain"
)

const (
	maxKeyFeatures = 5
	maxKeywords    = 10
	maxScenes      = 5
	maxSections    = 4
	headlineRunes  = 100

	minFeatureRunes = 10
	minKeywordRunes = 5
	minSectionRunes = 20
)

var hashtagPattern = regexp.MustCompile(`#[\p{L}\p{M}\p{N}_]+`)

// Processor structures raw text using catalog tables.
type Processor struct {
	cat *catalog.Catalog
}

// NewProcessor returns a Processor backed by cat, or by the embedded catalog
// when cat is nil.
func NewProcessor(cat *catalog.Catalog) *Processor {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Processor{cat: cat}
}

// Structure builds the artifact for req.ContentType from raw.
func (p *Processor) Structure(raw string, req domain.GenerationRequest) domain.Artifact {
	switch req.ContentType {
	case domain.ContentProductDesc:
		return p.productDescription(raw, req.Product)
	case domain.ContentAdCopy:
		return p.adCopy(raw, req.AdType, req.Promotion)
	case domain.ContentVideoScript:
		return p.videoScript(raw, req.VideoType, req.Duration)
	case domain.ContentWhatsApp:
		return p.whatsApp(raw, req.CampaignType)
	case domain.ContentEmail:
		return p.email(raw, req.EmailType)
	default:
		return p.socialPost(raw, req.Platform, req.Theme)
	}
}

func (p *Processor) socialPost(raw, platform, theme string) domain.SocialPost {
	return domain.SocialPost{
		Content:             raw,
		Hashtags:            p.Hashtags(raw),
		CharacterCount:      utf8.RuneCountInString(raw),
		Platform:            platform,
		PostingTips:         p.cat.PostingTipsFor(platform),
		EstimatedEngagement: p.cat.EngagementFor(platform),
		Theme:               theme,
		OptimalPostTimes:    p.cat.OptimalTimesFor(platform),
	}
}

func (p *Processor) productDescription(raw string, product *domain.ProductDetails) domain.ProductDescription {
	var audience string
	if product != nil {
		audience = product.TargetCustomer
	}
	return domain.ProductDescription{
		Description:    raw,
		KeyFeatures:    KeyPoints(raw),
		TargetAudience: audience,
		SEOKeywords:    Keywords(raw),
		CallToAction:   p.cat.CallToAction("product"),
	}
}

func (p *Processor) adCopy(raw, adType, promotion string) domain.AdCopy {
	return domain.AdCopy{
		Headline:             Headline(raw),
		Body:                 raw,
		CallToAction:         p.cat.CallToAction(adType),
		AdType:               adType,
		PromotionDetails:     promotion,
		TargetingSuggestions: p.cat.AdTargetingFor(adType),
	}
}

func (p *Processor) videoScript(raw, videoType, duration string) domain.VideoScript {
	return domain.VideoScript{
		Script:               raw,
		VideoType:            videoType,
		EstimatedDuration:    duration,
		KeyScenes:            Scenes(raw),
		CallToAction:         p.cat.CallToAction("video"),
		PlatformOptimization: p.cat.VideoTipsFor(videoType),
	}
}

func (p *Processor) whatsApp(raw, campaignType string) domain.WhatsAppMessage {
	return domain.WhatsAppMessage{
		Message:             raw,
		CampaignType:        campaignType,
		CharacterCount:      utf8.RuneCountInString(raw),
		SuggestedReplies:    p.cat.WhatsAppReplies(campaignType),
		TimingSuggestions:   p.cat.WhatsAppTiming(),
		PersonalizationTips: p.cat.WhatsAppPersonalization(),
	}
}

func (p *Processor) email(raw, emailType string) domain.EmailCampaign {
	return domain.EmailCampaign{
		SubjectLine:           p.Subject(raw, emailType),
		Body:                  raw,
		EmailType:             emailType,
		KeySections:           Sections(raw),
		CallToAction:          p.cat.CallToAction("email"),
		PersonalizationFields: p.cat.PersonalizationFields(),
	}
}

// Hashtags returns the #tags found in text in order of appearance, capped at
// the catalog limit. Text without tags gets the catalog fallback tags.
func (p *Processor) Hashtags(text string) []string {
	limit := p.cat.Hashtags.Limit
	tags := hashtagPattern.FindAllString(text, limit)
	if len(tags) == 0 {
		tags = p.cat.FallbackHashtags()
	}
	if len(tags) > limit {
		tags = tags[:limit]
	}
	return tags
}

// Subject derives an email subject line from the first sentence of text.
func (p *Processor) Subject(text, emailType string) string {
	tmpl := p.cat.EmailSubjectFor(emailType)
	if tmpl.Fixed != "" {
		return tmpl.Fixed
	}
	first, _, _ := strings.Cut(text, ".")
	return tmpl.Prefix + truncate(first, tmpl.Limit)
}

// KeyPoints returns up to five sentences longer than ten characters.
func KeyPoints(text string) []string {
	return pick(strings.Split(text, ". "), maxKeyFeatures, func(s string) bool {
		return utf8.RuneCountInString(s) > minFeatureRunes
	})
}

// Keywords returns up to ten distinct lower-cased words longer than five
// characters, in order of first appearance.
func Keywords(text string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, maxKeywords)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if utf8.RuneCountInString(w) <= minKeywordRunes {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
		if len(out) == maxKeywords {
			break
		}
	}
	return out
}

// Headline returns the first line of text cut to 100 characters.
func Headline(text string) string {
	first, _, _ := strings.Cut(text, "\n")
	return truncate(first, headlineRunes)
}

// Scenes returns up to five non-empty blank-line separated paragraphs.
func Scenes(text string) []string {
	return pick(strings.Split(text, "\n\n"), maxScenes, func(s string) bool {
		return s != ""
	})
}

// Sections returns up to four blank-line separated paragraphs longer than
// twenty characters.
func Sections(text string) []string {
	return pick(strings.Split(text, "\n\n"), maxSections, func(s string) bool {
		return utf8.RuneCountInString(s) > minSectionRunes
	})
}

// pick trims each part and keeps the first limit parts that satisfy keep.
func pick(parts []string, limit int, keep func(string) bool) []string {
	out := make([]string, 0, limit)
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if !keep(part) {
			continue
		}
		out = append(out, part)
		if len(out) == limit {
			break
		}
	}
	return out
}

// truncate cuts s to at most n runes. A non-positive n leaves s unchanged.
func truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
