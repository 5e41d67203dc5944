package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"growth-agent/internal/core/catalog"
	"growth-agent/internal/core/domain"
	"growth-agent/internal/core/port"
	"growth-agent/internal/core/prompt"
	"growth-agent/internal/core/structure"
)

// ContentUseCase runs the generation pipeline: free-tier gate, business
// context, prompt, one model call, post-processing and persistence. It
// also serves the content listing and approval workflow.
type ContentUseCase struct {
	gate       *RateGate
	generator  port.Generator
	businesses port.BusinessRepository
	contents   port.ContentRepository
	catalog    *catalog.Catalog
	prompts    *prompt.Builder
	processor  *structure.Processor
	telemetry  port.Telemetry
	now        func() time.Time
}

// NewContentUseCase wires the pipeline. A nil catalog selects the embedded
// default.
func NewContentUseCase(
	gate *RateGate,
	generator port.Generator,
	businesses port.BusinessRepository,
	contents port.ContentRepository,
	cat *catalog.Catalog,
	telemetry port.Telemetry,
) *ContentUseCase {
	if cat == nil {
		cat = catalog.Default()
	}
	if telemetry == nil {
		telemetry = port.NopTelemetry{}
	}
	return &ContentUseCase{
		gate:       gate,
		generator:  generator,
		businesses: businesses,
		contents:   contents,
		catalog:    cat,
		prompts:    prompt.NewBuilder(cat),
		processor:  structure.NewProcessor(cat),
		telemetry:  telemetry,
		now:        time.Now,
	}
}

var _ port.ContentUseCase = (*ContentUseCase)(nil)

// Generate produces one piece of content for caller. Validation happens
// before the gate so malformed requests never consume a free attempt.
func (u *ContentUseCase) Generate(ctx context.Context, caller domain.Caller, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrInvalidRequest, err)
	}

	admitted, err := u.gate.Admit(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("free tier admission: %w", err)
	}
	if !admitted {
		return nil, port.ErrRateLimitExceeded
	}

	biz, profile, err := u.businessContext(ctx, caller)
	if err != nil {
		return nil, err
	}

	started := u.now()
	text, err := u.generator.Generate(ctx, u.prompts.Build(biz, req))
	elapsed := u.now().Sub(started)
	if err != nil {
		u.telemetry.ObserveGeneration(req.ContentType, port.GenerationFailure, elapsed)
		return &domain.GenerationResult{Success: false, Error: err.Error()}, nil
	}
	u.telemetry.ObserveGeneration(req.ContentType, port.GenerationSuccess, elapsed)

	artifact := u.processor.Structure(text, req)
	result := &domain.GenerationResult{
		Success:     true,
		Content:     text,
		ContentType: req.ContentType,
		Platform:    req.Platform,
		Structured:  artifact,
	}
	if profile == nil {
		return result, nil
	}

	content := &domain.MarketingContent{
		BusinessID:  profile.ID,
		ContentType: req.ContentType,
		Platform:    req.Platform,
		Text:        text,
		Metadata: map[string]any{
			"tone":         req.Tone,
			"theme":        req.Theme,
			"generated_at": u.now().UTC().Format(time.RFC3339),
			"structured":   artifact,
		},
	}
	if err = u.contents.Create(ctx, content); err != nil {
		return nil, fmt.Errorf("store generated content: %w", err)
	}
	result.ContentID = content.ID
	return result, nil
}

// businessContext returns the stored profile of an authenticated caller, or
// the anonymous defaults when the caller is anonymous or has no profile.
func (u *ContentUseCase) businessContext(ctx context.Context, caller domain.Caller) (domain.BusinessContext, *domain.BusinessProfile, error) {
	if !caller.Authenticated() {
		return u.catalog.AnonymousBusiness, nil, nil
	}
	profile, err := u.businesses.GetByUser(ctx, caller.UserID)
	if err != nil {
		return domain.BusinessContext{}, nil, fmt.Errorf("load business profile: %w", err)
	}
	if profile == nil {
		return u.catalog.AnonymousBusiness, nil, nil
	}
	return profile.BusinessContext, profile, nil
}

// List returns the user's content, newest first. A user without a profile
// has no content.
func (u *ContentUseCase) List(ctx context.Context, userID string) ([]domain.MarketingContent, error) {
	profile, err := u.businesses.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return []domain.MarketingContent{}, nil
	}
	return u.contents.ListByBusiness(ctx, profile.ID)
}

// Create stores hand-written content under the user's business, creating
// an empty profile when the user has none.
func (u *ContentUseCase) Create(ctx context.Context, userID string, content domain.MarketingContent) (*domain.MarketingContent, error) {
	content.ContentType = domain.ContentType(strings.ToLower(strings.TrimSpace(string(content.ContentType))))
	if !content.ContentType.Valid() {
		return nil, fmt.Errorf("%w: unsupported content_type %q", port.ErrInvalidRequest, content.ContentType)
	}
	if strings.TrimSpace(content.Text) == "" {
		return nil, fmt.Errorf("%w: content_text is required", port.ErrInvalidRequest)
	}
	if content.Platform == "" {
		content.Platform = domain.DefaultPlatform
	}

	profile, err := u.businesses.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	content.ID = ""
	content.BusinessID = profile.ID
	content.CreatedAt = time.Time{}
	if content.Metadata == nil {
		content.Metadata = map[string]any{}
	}
	if err = u.contents.Create(ctx, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

// Approve marks the content as approved. Content outside the user's
// business is reported as port.ErrNotFound.
func (u *ContentUseCase) Approve(ctx context.Context, userID, contentID string) error {
	if contentID == "" {
		return port.ErrNotFound
	}
	profile, err := u.businesses.GetByUser(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return port.ErrNotFound
	}
	return u.contents.Approve(ctx, profile.ID, contentID)
}
