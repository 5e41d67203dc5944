package domain

// Artifact is the structured form of generated text. Each content type has
// its own concrete artifact.
type Artifact interface {
	Kind() ContentType
}

type SocialPost struct {
	Content             string         `json:"content"`
	Hashtags            []string       `json:"hashtags"`
	CharacterCount      int            `json:"character_count"`
	Platform            string         `json:"platform"`
	PostingTips         []string       `json:"posting_tips"`
	EstimatedEngagement map[string]any `json:"estimated_engagement"`
	Theme               string         `json:"theme"`
	OptimalPostTimes    []string       `json:"optimal_post_times"`
}

type ProductDescription struct {
	Description    string   `json:"description"`
	KeyFeatures    []string `json:"key_features"`
	TargetAudience string   `json:"target_audience"`
	SEOKeywords    []string `json:"seo_keywords"`
	CallToAction   string   `json:"call_to_action"`
}

type AdCopy struct {
	Headline             string   `json:"headline"`
	Body                 string   `json:"body"`
	CallToAction         string   `json:"call_to_action"`
	AdType               string   `json:"ad_type"`
	PromotionDetails     string   `json:"promotion_details"`
	TargetingSuggestions []string `json:"targeting_suggestions"`
}

type VideoScript struct {
	Script               string   `json:"script"`
	VideoType            string   `json:"video_type"`
	EstimatedDuration    string   `json:"estimated_duration"`
	KeyScenes            []string `json:"key_scenes"`
	CallToAction         string   `json:"call_to_action"`
	PlatformOptimization []string `json:"platform_optimization"`
}

type WhatsAppMessage struct {
	Message             string   `json:"message"`
	CampaignType        string   `json:"campaign_type"`
	CharacterCount      int      `json:"character_count"`
	SuggestedReplies    []string `json:"suggested_replies"`
	TimingSuggestions   []string `json:"timing_suggestions"`
	PersonalizationTips []string `json:"personalization_tips"`
}

type EmailCampaign struct {
	SubjectLine           string   `json:"subject_line"`
	Body                  string   `json:"body"`
	EmailType             string   `json:"email_type"`
	KeySections           []string `json:"key_sections"`
	CallToAction          string   `json:"call_to_action"`
	PersonalizationFields []string `json:"personalization_fields"`
}

func (SocialPost) Kind() ContentType         { return ContentSocialPost }
func (ProductDescription) Kind() ContentType { return ContentProductDesc }
func (AdCopy) Kind() ContentType             { return ContentAdCopy }
func (VideoScript) Kind() ContentType        { return ContentVideoScript }
func (WhatsAppMessage) Kind() ContentType    { return ContentWhatsApp }
func (EmailCampaign) Kind() ContentType      { return ContentEmail }
