// Package prompt turns a business context and a generation request into the
// instruction text sent to the language model.
package prompt

import (
	"fmt"
	"strings"

	"growth-agent/internal/core/catalog"
	"growth-agent/internal/core/domain"
)

// Builder renders prompts from catalog tables. It holds no mutable state
// and is safe for concurrent use.
type Builder struct {
	cat *catalog.Catalog
}

// NewBuilder returns a Builder backed by cat, or by the embedded catalog
// when cat is nil.
func NewBuilder(cat *catalog.Catalog) *Builder {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Builder{cat: cat}
}

// Build renders the content prompt for req. Unknown platforms or variant
// types select the generic instruction for the content type; Build never
// fails.
func (b *Builder) Build(biz domain.BusinessContext, req domain.GenerationRequest) string {
	biz = biz.WithDefaults(b.cat.BusinessDefaults)
	tone := req.Tone
	if tone == "" {
		tone = domain.DefaultTone
	}

	var sb strings.Builder
	sb.WriteString(b.cat.Persona)
	sb.WriteString("\n\n")
	writeBusiness(&sb, "BUSINESS CONTEXT:", contentLabels, biz)
	fmt.Fprintf(&sb, "\nTASK: Create a %s for %s\n\n",
		strings.ToUpper(string(req.ContentType)), strings.ToUpper(b.Channel(req)))
	sb.WriteString("REQUIREMENTS:\n")
	for _, r := range b.cat.Requirements {
		fmt.Fprintf(&sb, "- %s\n", strings.ReplaceAll(r, "{tone}", tone))
	}
	sb.WriteString("\nADDITIONAL CONTEXT:\n")
	sb.WriteString(b.Enhancement(req))
	sb.WriteString("\n\nFORMAT: Provide only the final content, ready to use. No explanations or notes.\n")
	return sb.String()
}

// Channel is the platform named in the task line: the request platform for
// social posts, a fixed channel for every other content type.
func (b *Builder) Channel(req domain.GenerationRequest) string {
	if ch := b.cat.Channel(req.ContentType); ch != "" {
		return ch
	}
	if req.Platform == "" {
		return domain.DefaultPlatform
	}
	return req.Platform
}

// Enhancement returns the variant-specific instruction with any free-text
// details of the request appended verbatim.
func (b *Builder) Enhancement(req domain.GenerationRequest) string {
	parts := []string{b.cat.Enhancement(req.ContentType, req.Variant())}

	switch req.ContentType {
	case domain.ContentProductDesc:
		parts = append(parts, productDetails(req.Product)...)
	case domain.ContentAdCopy:
		if req.Promotion != "" {
			parts = append(parts, "Promotion details: "+req.Promotion)
		}
	case domain.ContentVideoScript:
		duration := req.Duration
		if duration == "" {
			duration = domain.DefaultDuration
		}
		parts = append(parts, "Duration: "+duration)
	}
	if req.Theme != "" {
		parts = append(parts, "Theme: "+req.Theme)
	}
	return strings.Join(parts, " ")
}

func productDetails(p *domain.ProductDetails) []string {
	if p == nil {
		return nil
	}
	var out []string
	if p.Name != "" {
		out = append(out, "Product: "+p.Name+".")
	}
	if len(p.Features) > 0 {
		out = append(out, "Features: "+strings.Join(p.Features, ", ")+".")
	}
	if len(p.Benefits) > 0 {
		out = append(out, "Benefits: "+strings.Join(p.Benefits, ", ")+".")
	}
	if p.TargetCustomer != "" {
		out = append(out, "Target customer: "+p.TargetCustomer+".")
	}
	return out
}

type labels struct{ name, kind string }

var (
	contentLabels = labels{name: "Business Name", kind: "Business Type"}
	planLabels    = labels{name: "Name", kind: "Type"}
)

func writeBusiness(sb *strings.Builder, heading string, l labels, biz domain.BusinessContext) {
	sb.WriteString(heading)
	sb.WriteString("\n")
	fmt.Fprintf(sb, "- %s: %s\n", l.name, biz.BusinessName)
	fmt.Fprintf(sb, "- %s: %s\n", l.kind, biz.BusinessType)
	fmt.Fprintf(sb, "- Description: %s\n", biz.Description)
	fmt.Fprintf(sb, "- Target Audience: %s\n", biz.TargetAudience)
	fmt.Fprintf(sb, "- Location: %s\n", biz.Location)
}
