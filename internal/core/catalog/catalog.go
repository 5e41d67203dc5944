// Package catalog holds the static lookup tables that drive prompt building
// and content post-processing. The tables ship embedded as YAML and may be
// replaced at startup with a file of the same shape.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"growth-agent/internal/core/domain"
)

//go:embed catalog.yaml
var embedded []byte

// Table maps a lower-cased key to a value and falls back when the key is
// unknown.
type Table[T any] struct {
	Fallback T            `yaml:"fallback"`
	Variants map[string]T `yaml:"variants"`
}

// Lookup returns the entry for key, matched case-insensitively, or the
// fallback entry.
func (t Table[T]) Lookup(key string) T {
	v, _ := t.Find(key)
	return v
}

// Find is like Lookup but also reports whether key had its own entry.
func (t Table[T]) Find(key string) (T, bool) {
	if v, ok := t.Variants[strings.ToLower(strings.TrimSpace(key))]; ok {
		return v, true
	}
	return t.Fallback, false
}

// EmailSubject describes how the subject line of an email type is derived.
// Fixed wins over Prefix; otherwise the subject is Prefix followed by the
// first sentence cut to Limit runes.
type EmailSubject struct {
	Prefix string `yaml:"prefix"`
	Limit  int    `yaml:"limit"`
	Fixed  string `yaml:"fixed"`
}

// Catalog is the full set of tables. Treat a loaded Catalog as read-only;
// accessors return copies.
type Catalog struct {
	Persona           string                               `yaml:"persona"`
	BusinessDefaults  domain.BusinessContext               `yaml:"business_defaults"`
	AnonymousBusiness domain.BusinessContext               `yaml:"anonymous_business"`
	Requirements      []string                             `yaml:"requirements"`
	Channels          map[domain.ContentType]string        `yaml:"channels"`
	Enhancements      map[domain.ContentType]Table[string] `yaml:"enhancements"`
	PostingTips       Table[[]string]                      `yaml:"posting_tips"`
	Engagement        Table[map[string]any]                `yaml:"engagement"`
	OptimalTimes      Table[[]string]                      `yaml:"optimal_times"`
	CallsToAction     Table[string]                        `yaml:"calls_to_action"`
	AdTargeting       Table[[]string]                      `yaml:"ad_targeting"`
	VideoTips         Table[[]string]                      `yaml:"video_tips"`
	Hashtags          Hashtags                             `yaml:"hashtags"`
	WhatsApp          WhatsApp                             `yaml:"whatsapp"`
	Email             Email                                `yaml:"email"`
	GrowthPlan        GrowthPlan                           `yaml:"growth_plan"`
}

type Hashtags struct {
	Limit    int      `yaml:"limit"`
	Fallback []string `yaml:"fallback"`
}

type WhatsApp struct {
	Replies         Table[[]string] `yaml:"replies"`
	Timing          []string        `yaml:"timing"`
	Personalization []string        `yaml:"personalization"`
}

type Email struct {
	Subjects              Table[EmailSubject] `yaml:"subjects"`
	PersonalizationFields []string            `yaml:"personalization_fields"`
}

type GrowthPlan struct {
	MessagingTone   string       `yaml:"messaging_tone"`
	TargetPlatforms []string     `yaml:"target_platforms"`
	Fallback        PlanFallback `yaml:"fallback"`
}

type PlanFallback struct {
	WeeklyThemes []string `yaml:"weekly_themes"`
	Platforms    []string `yaml:"platforms"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded catalog. It panics if the embedded YAML is
// invalid, which is a build defect.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(embedded)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded tables: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// LoadFile reads a catalog from path. An empty path yields Default.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes and validates a catalog from r.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a catalog from YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	var errs []error
	if c.Persona == "" {
		errs = append(errs, errors.New("persona is empty"))
	}
	for _, ct := range domain.ContentTypes {
		if _, ok := c.Enhancements[ct]; !ok {
			errs = append(errs, fmt.Errorf("no enhancement table for %s", ct))
		}
		if _, ok := c.Channels[ct]; !ok {
			errs = append(errs, fmt.Errorf("no channel for %s", ct))
		}
	}
	if c.Hashtags.Limit <= 0 {
		errs = append(errs, errors.New("hashtags.limit must be positive"))
	}
	if len(c.GrowthPlan.Fallback.WeeklyThemes) == 0 {
		errs = append(errs, errors.New("growth_plan.fallback.weekly_themes is empty"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	return nil
}

// Enhancement returns the instruction for a content type and variant key.
func (c *Catalog) Enhancement(ct domain.ContentType, variant string) string {
	return c.Enhancements[ct].Lookup(variant)
}

// Channel returns the fixed channel name for a content type. An empty
// channel means the request platform is used.
func (c *Catalog) Channel(ct domain.ContentType) string {
	return c.Channels[ct]
}

func (c *Catalog) PostingTipsFor(platform string) []string {
	return slices.Clone(c.PostingTips.Lookup(platform))
}

func (c *Catalog) EngagementFor(platform string) map[string]any {
	return maps.Clone(c.Engagement.Lookup(platform))
}

func (c *Catalog) OptimalTimesFor(platform string) []string {
	return slices.Clone(c.OptimalTimes.Lookup(platform))
}

func (c *Catalog) CallToAction(key string) string {
	return c.CallsToAction.Lookup(key)
}

func (c *Catalog) AdTargetingFor(adType string) []string {
	return slices.Clone(c.AdTargeting.Lookup(adType))
}

func (c *Catalog) VideoTipsFor(videoType string) []string {
	return slices.Clone(c.VideoTips.Lookup(videoType))
}

func (c *Catalog) FallbackHashtags() []string {
	return slices.Clone(c.Hashtags.Fallback)
}

func (c *Catalog) WhatsAppReplies(campaignType string) []string {
	return slices.Clone(c.WhatsApp.Replies.Lookup(campaignType))
}

func (c *Catalog) WhatsAppTiming() []string {
	return slices.Clone(c.WhatsApp.Timing)
}

func (c *Catalog) WhatsAppPersonalization() []string {
	return slices.Clone(c.WhatsApp.Personalization)
}

func (c *Catalog) EmailSubjectFor(emailType string) EmailSubject {
	return c.Email.Subjects.Lookup(emailType)
}

func (c *Catalog) PersonalizationFields() []string {
	return slices.Clone(c.Email.PersonalizationFields)
}

// FallbackPlan returns a fresh copy of the weekly plan used when the model
// output cannot be parsed.
func (c *Catalog) FallbackPlan() map[string]any {
	return map[string]any{
		"weekly_themes": slices.Clone(c.GrowthPlan.Fallback.WeeklyThemes),
		"daily_actions": []any{},
		"platforms":     slices.Clone(c.GrowthPlan.Fallback.Platforms),
	}
}

// TargetPlatforms returns the platforms recorded on a newly composed plan.
func (c *Catalog) TargetPlatforms() []string {
	return slices.Clone(c.GrowthPlan.TargetPlatforms)
}
