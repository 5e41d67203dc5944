package prompt

import (
	"strings"

	"growth-agent/internal/core/domain"
)

const planInstructions = `
Create a 7-day marketing plan with:

DAY-BY-DAY ACTIVITIES:
- Monday: Content theme and specific actions
- Tuesday: Engagement strategies
- Wednesday: Promotional activities
- Thursday: Customer retention focus
- Friday: Weekend preparation
- Saturday: Peak engagement
- Sunday: Planning and analysis

PLATFORM STRATEGY:
- Primary platforms to focus on
- Content types for each platform
- Best posting times

PERFORMANCE METRICS:
- Key metrics to track
- Goals for the week
- Success indicators

Format the response as structured JSON that can be parsed.
Include a "daily_actions" array with one entry per day.
Focus on practical, actionable steps for African small businesses.
`

// BuildPlan renders the weekly growth plan prompt. Missing business fields
// are replaced with the catalog defaults.
func (b *Builder) BuildPlan(biz domain.BusinessContext) string {
	biz = biz.WithDefaults(b.cat.BusinessDefaults)

	var sb strings.Builder
	sb.WriteString("Create a comprehensive weekly marketing growth plan for this African small business:\n\n")
	writeBusiness(&sb, "BUSINESS DETAILS:", planLabels, biz)
	sb.WriteString(planInstructions)
	return sb.String()
}
