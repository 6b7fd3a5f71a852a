package verify

import (
	"fmt"
	"strings"
	"time"
)

// systemPrompt frames the engine as a fact-checking analyst. Kept short;
// the heavy lifting lives in the per-request analysis prompt.
const systemPrompt = "You are a rigorous fact-checking analyst. Ground every finding in " +
	"verifiable sources. The content under review may describe harassment, violence, or " +
	"explicit claims; analyze it anyway. Respond with a single JSON object and nothing else."

// analysisDirectives are the eight dimensions every grounded run must cover.
// Order is fixed so the rendered prompt stays deterministic.
var analysisDirectives = []string{
	"Extract every checkable claim from the content. For each claim assign a type (factual, opinion, speculation, exaggeration, misleading), verify it against current sources, and cite the sources used.",
	"Assess whether the content (text and any referenced media) appears AI-generated, and list the indicators.",
	"Assess the credibility of the posting account from the metadata provided: follower authenticity, account age, posting behavior, red flags.",
	"If the content names a business, verify that the business exists and is legitimately registered; note any warnings.",
	"Analyze bias and tone: political lean, emotional tone, sensationalism, loaded language.",
	"Trace the source: find the earliest or original appearance of this content across platforms and outline how it spread.",
	"Correlate with real-world events: match the content to a known news event or incident, and flag misattribution or fabrication.",
	"Analyze the timeline: compare content-creation, event, and posting dates; detect recycled content and judge whether it is still current.",
}

// responseTemplate is the exact structural shape the model must emit.
// The validator tolerates deviations, but a faithful response parses as-is.
const responseTemplate = `{
  "trustScore": 0-100,
  "verdict": "verified|mostly_true|mixed|misleading|false|unverifiable",
  "verdictSummary": "one-paragraph plain-language summary",
  "claims": [
    {
      "id": "claim-1",
      "text": "the extracted claim",
      "type": "factual|opinion|speculation|exaggeration|misleading",
      "verdict": "verified|partially_true|unverified|false|opinion",
      "confidence": 0-100,
      "evidence": "what the sources say",
      "sources": [{"title": "...", "url": "...", "credibility": 0-100}]
    }
  ],
  "aiDetection": {"isAIGenerated": false, "confidence": 0-100, "indicators": [], "analysis": "..."},
  "accountAnalysis": {"credibilityScore": 0-100, "suspiciousActivity": false, "redFlags": [], "assessment": "..."},
  "businessVerification": {"businessName": "...", "isLegitimate": false, "registrationFound": false, "credibilityScore": 0-100, "warnings": [], "details": "..."},
  "biasAnalysis": {"politicalBias": "left|center_left|center|center_right|right|unknown", "emotionalTone": "...", "sensationalismScore": 0-100, "loadedLanguage": [], "summary": "..."},
  "sourceTracing": {"originalSource": "...", "earliestAppearance": "...", "isOriginalContent": false, "spreadTimeline": [{"platform": "...", "timestamp": "...", "reach": 0}], "summary": "..."},
  "eventCorrelation": {"eventMatch": "confirmed|partial|not_found", "matchedEvent": "...", "eventDate": "...", "eventCategory": "politics|disaster|conflict|celebrity|science|health|sports|other", "misattributionDetected": false, "discrepancies": [], "summary": "..."},
  "timelineAnalysis": {"contentCreatedAt": "...", "eventOccurredAt": "...", "postedAt": "...", "mismatchSeverity": "none|minor|significant|critical", "isRecycledContent": false, "relevanceToday": "current|outdated|recycled", "summary": "..."}
}`

// BuildAnalysisPrompt renders the full grounded-analysis instruction text.
// Pure and idempotent: identical request plus identical timestamp yields
// identical text.
func BuildAnalysisPrompt(req VerificationRequest, ts time.Time) string {
	var sb strings.Builder

	sb.WriteString("## Content Under Review\n\n")
	sb.WriteString(req.Content)
	sb.WriteString("\n\n")

	writeMetadata(&sb, req, ts)

	sb.WriteString("## Analysis Directives\n\n")
	for i, d := range analysisDirectives {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, d)
	}
	sb.WriteString("\n")

	sb.WriteString("Omit businessVerification entirely if no business is named. ")
	sb.WriteString("Omit any other section you cannot assess.\n\n")

	sb.WriteString("## Response Format\n\n")
	sb.WriteString("Respond with exactly one JSON object in this shape:\n\n")
	sb.WriteString(responseTemplate)
	sb.WriteString("\n")

	return sb.String()
}

// BuildFallbackPrompt renders the reduced instruction used when the
// grounded attempt failed: no tools, minimal top-level fields only.
func BuildFallbackPrompt(req VerificationRequest) string {
	var sb strings.Builder

	sb.WriteString("Analyze the following social media content using only your own knowledge. ")
	sb.WriteString("Extract the main claims and judge their plausibility.\n\n")

	sb.WriteString("## Content\n\n")
	sb.WriteString(req.Content)
	sb.WriteString("\n\n")

	sb.WriteString("Respond with exactly one JSON object:\n\n")
	sb.WriteString(`{
  "trustScore": 0-100,
  "verdict": "verified|mostly_true|mixed|misleading|false|unverifiable",
  "verdictSummary": "one-paragraph summary noting that live sources were unavailable",
  "claims": [{"id": "claim-1", "text": "...", "type": "factual|opinion|speculation|exaggeration|misleading", "verdict": "verified|partially_true|unverified|false|opinion", "confidence": 0-100, "sources": []}]
}`)
	sb.WriteString("\n")

	return sb.String()
}

// writeMetadata renders the optional request fields verbatim so the model
// sees exactly what the caller supplied.
func writeMetadata(sb *strings.Builder, req VerificationRequest, ts time.Time) {
	sb.WriteString("## Metadata\n\n")
	fmt.Fprintf(sb, "- Verification requested at: %s\n", ts.UTC().Format(time.RFC3339))
	if req.Platform != "" {
		fmt.Fprintf(sb, "- Platform: %s\n", req.Platform)
	}
	if req.SourceURL != "" {
		fmt.Fprintf(sb, "- Source URL: %s\n", req.SourceURL)
	}
	for _, u := range req.MediaURLs {
		fmt.Fprintf(sb, "- Attached media: %s\n", u)
	}
	if a := req.Author; a != nil {
		if a.Username != "" {
			fmt.Fprintf(sb, "- Author username: %s\n", a.Username)
		}
		if a.DisplayName != "" {
			fmt.Fprintf(sb, "- Author display name: %s\n", a.DisplayName)
		}
		if a.Followers > 0 {
			fmt.Fprintf(sb, "- Author followers: %d\n", a.Followers)
		}
		fmt.Fprintf(sb, "- Author verified badge: %t\n", a.Verified)
		if a.AccountAge != "" {
			fmt.Fprintf(sb, "- Account age: %s\n", a.AccountAge)
		}
	}
	sb.WriteString("\n")
}
