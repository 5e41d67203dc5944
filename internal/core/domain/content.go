package domain

import (
	"fmt"
	"strings"
	"time"
)

// ContentType enumerates the kinds of marketing copy the agent can produce.
type ContentType string

const (
	ContentSocialPost  ContentType = "social_post"
	ContentProductDesc ContentType = "product_desc"
	ContentAdCopy      ContentType = "ad_copy"
	ContentVideoScript ContentType = "video_script"
	ContentEmail       ContentType = "email"
	ContentWhatsApp    ContentType = "whatsapp"
)

// ContentTypes lists every supported content type in display order.
var ContentTypes = []ContentType{
	ContentSocialPost,
	ContentProductDesc,
	ContentAdCopy,
	ContentVideoScript,
	ContentEmail,
	ContentWhatsApp,
}

// Valid reports whether c is one of the supported content types.
func (c ContentType) Valid() bool {
	for _, t := range ContentTypes {
		if c == t {
			return true
		}
	}
	return false
}

const (
	DefaultPlatform = "general"
	DefaultTone     = "professional"
	DefaultDuration = "short"
)

// GenerationRequest is a validated request for one piece of content. The
// variant fields (AdType, VideoType, CampaignType, EmailType) select the
// content-type specific instruction; Platform plays that role for social
// posts.
type GenerationRequest struct {
	ContentType  ContentType     `json:"content_type"`
	Platform     string          `json:"platform,omitempty"`
	Theme        string          `json:"theme,omitempty"`
	Tone         string          `json:"tone,omitempty"`
	AdType       string          `json:"ad_type,omitempty"`
	Promotion    string          `json:"promotion,omitempty"`
	Product      *ProductDetails `json:"product,omitempty"`
	VideoType    string          `json:"video_type,omitempty"`
	Duration     string          `json:"duration,omitempty"`
	CampaignType string          `json:"campaign_type,omitempty"`
	EmailType    string          `json:"email_type,omitempty"`
}

// Normalize fills in request defaults and trims free-form fields.
func (r *GenerationRequest) Normalize() {
	r.ContentType = ContentType(strings.ToLower(strings.TrimSpace(string(r.ContentType))))
	r.Platform = strings.TrimSpace(r.Platform)
	if r.Platform == "" {
		r.Platform = DefaultPlatform
	}
	r.Tone = strings.TrimSpace(r.Tone)
	if r.Tone == "" {
		r.Tone = DefaultTone
	}
	r.Duration = strings.TrimSpace(r.Duration)
	if r.Duration == "" {
		r.Duration = DefaultDuration
	}
	r.Theme = strings.TrimSpace(r.Theme)
	r.Promotion = strings.TrimSpace(r.Promotion)
}

// Validate rejects requests that cannot reach the generator.
func (r GenerationRequest) Validate() error {
	if !r.ContentType.Valid() {
		return fmt.Errorf("unsupported content_type %q", r.ContentType)
	}
	return nil
}

// Variant returns the sub-selector for the request's content type: the
// platform for social posts, the ad, video, campaign or email type
// otherwise. Product descriptions have no variant.
func (r GenerationRequest) Variant() string {
	switch r.ContentType {
	case ContentSocialPost:
		return r.Platform
	case ContentAdCopy:
		return r.AdType
	case ContentVideoScript:
		return r.VideoType
	case ContentWhatsApp:
		return r.CampaignType
	case ContentEmail:
		return r.EmailType
	default:
		return ""
	}
}

// GenerationResult is the outcome of a single generation call. On failure
// only Error is meaningful.
type GenerationResult struct {
	Success     bool        `json:"success"`
	Content     string      `json:"content,omitempty"`
	ContentType ContentType `json:"type,omitempty"`
	Platform    string      `json:"platform,omitempty"`
	Structured  Artifact    `json:"structured,omitempty"`
	ContentID   string      `json:"content_id,omitempty"`
	Error       string      `json:"error,omitempty"`
}

// MarketingContent is a generated or hand-written piece of copy stored for
// a business, together with its approval state.
type MarketingContent struct {
	ID            string         `json:"id"`
	BusinessID    string         `json:"business"`
	ContentType   ContentType    `json:"content_type"`
	Platform      string         `json:"platform"`
	Text          string         `json:"content_text"`
	Metadata      map[string]any `json:"metadata"`
	IsApproved    bool           `json:"is_approved"`
	IsPosted      bool           `json:"is_posted"`
	ScheduledTime *time.Time     `json:"scheduled_time"`
	CreatedAt     time.Time      `json:"created_at"`
}
