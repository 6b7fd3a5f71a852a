// Package verify implements the content trust-verification pipeline: it
// normalizes caller input, renders the analysis prompt, drives the two-tier
// reasoning-engine invocation, and reconstructs a schema-conformant
// VerificationResult from whatever text the engine returned.
//
// This file is the single source of truth for what a valid result looks
// like. Reconstruction is field by field: every number is clamped, every
// enum is checked against its closed vocabulary, every sequence defaults to
// empty, and optional sections are copied only sub-field by sub-field. The
// parser never returns an error; malformed input degrades to documented
// defaults at whatever level the malformation occurred.
package verify

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"trustlens/internal/logging"
)

// Documented numeric defaults: confidence-like fields center at 50,
// count-like fields (reach, sensationalism, flags) start at 0.
const (
	defaultConfidence = 50
	defaultCount      = 0
)

var (
	verdictValues       = []string{"verified", "mostly_true", "mixed", "misleading", "false", "unverifiable"}
	claimTypeValues     = []string{"factual", "opinion", "speculation", "exaggeration", "misleading"}
	claimVerdictValues  = []string{"verified", "partially_true", "unverified", "false", "opinion"}
	politicalBiasValues = []string{"left", "center_left", "center", "center_right", "right", "unknown"}
	eventMatchValues    = []string{"confirmed", "partial", "not_found"}
	eventCategoryValues = []string{"politics", "disaster", "conflict", "celebrity", "science", "health", "sports", "other"}
	mismatchValues      = []string{"none", "minor", "significant", "critical"}
	relevanceValues     = []string{"current", "outdated", "recycled"}
)

// ParseVerificationResponse reconstructs a VerificationResult from raw
// engine output. An empty raw string means "no response obtained"; any
// text without a parseable JSON object degrades the same way. The returned
// result always satisfies every schema invariant.
func ParseVerificationResponse(raw string, groundingUsed bool) VerificationResult {
	if strings.TrimSpace(raw) == "" {
		return DefaultResult(groundingUsed)
	}

	jsonStr := extractJSON(raw)
	if jsonStr == "" {
		logging.ParserDebug("no JSON object found in response (len=%d), using default result", len(raw))
		return DefaultResult(groundingUsed)
	}

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(jsonStr), &obj); err != nil {
		logging.ParserDebug("response JSON failed to parse: %v", err)
		return DefaultResult(groundingUsed)
	}

	res := VerificationResult{
		TrustScore:     clampNumber(obj["trustScore"], 0, 100, defaultConfidence),
		Verdict:        Verdict(validateEnum(obj["verdict"], verdictValues, string(VerdictUnverifiable))),
		VerdictSummary: stringField(obj, "verdictSummary", defaultSummary),
		Claims:         rebuildClaims(obj["claims"]),
		GroundingUsed:  groundingUsed,
	}

	if section, ok := objectField(obj, "aiDetection"); ok {
		res.AIDetection = rebuildAIDetection(section)
	}
	if section, ok := objectField(obj, "accountAnalysis"); ok {
		res.AccountAnalysis = rebuildAccountAnalysis(section)
	}
	if section, ok := objectField(obj, "businessVerification"); ok {
		res.BusinessVerification = rebuildBusinessVerification(section)
	}
	if section, ok := objectField(obj, "biasAnalysis"); ok {
		res.BiasAnalysis = rebuildBiasAnalysis(section)
	}
	if section, ok := objectField(obj, "sourceTracing"); ok {
		res.SourceTracing = rebuildSourceTracing(section)
	}
	if section, ok := objectField(obj, "eventCorrelation"); ok {
		res.EventCorrelation = rebuildEventCorrelation(section)
	}
	if section, ok := objectField(obj, "timelineAnalysis"); ok {
		res.TimelineAnalysis = rebuildTimelineAnalysis(section)
	}

	return res
}

// extractJSON locates the outer JSON object in free-form model text by
// taking the substring from the first '{' to the last '}'. The model may
// wrap the object in prose or markdown fences; both are sliced away.
func extractJSON(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return raw[start : end+1]
}

// =============================================================================
// FIELD VALIDATORS - small pure functions reused across every field
// =============================================================================

// clampNumber coerces raw into an int bounded by [min, max]. Non-numeric or
// absent values take the documented default (also clamped).
func clampNumber(raw interface{}, min, max, def int) int {
	v := def
	switch n := raw.(type) {
	case float64:
		v = int(n)
	case int:
		v = n
	case int64:
		v = int(n)
	case json.Number:
		if f, err := n.Float64(); err == nil {
			v = int(f)
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			v = int(f)
		}
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// validateEnum checks raw against a closed vocabulary. Matching is exact:
// case or whitespace variants are outside the set and take the fallback,
// never a normalized guess.
func validateEnum(raw interface{}, allowed []string, def string) string {
	s, ok := raw.(string)
	if !ok {
		return def
	}
	for _, a := range allowed {
		if s == a {
			return a
		}
	}
	return def
}

// stringField returns a trimmed string value or the default.
func stringField(obj map[string]interface{}, key, def string) string {
	if s, ok := obj[key].(string); ok {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return def
}

// boolField returns a bool value or false.
func boolField(obj map[string]interface{}, key string) bool {
	b, _ := obj[key].(bool)
	return b
}

// objectField reports whether obj carries an object-shaped value at key.
// Optional sections are all-or-nothing: anything non-object means "absent".
func objectField(obj map[string]interface{}, key string) (map[string]interface{}, bool) {
	m, ok := obj[key].(map[string]interface{})
	return m, ok
}

// stringList rebuilds a string sequence, dropping non-string and blank
// elements. Absent or malformed sequences become empty, never nil.
func stringList(raw interface{}) []string {
	out := []string{}
	items, ok := raw.([]interface{})
	if !ok {
		return out
	}
	for _, item := range items {
		if s, ok := item.(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// objectList yields the object-shaped elements of a raw sequence.
func objectList(raw interface{}) []map[string]interface{} {
	items, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}

// =============================================================================
// SECTION REBUILDERS
// =============================================================================

// rebuildClaims validates each claim element recursively. Claims are
// corrected, never dropped: a missing id is generated, an invalid type or
// verdict falls back to its documented default.
func rebuildClaims(raw interface{}) []Claim {
	claims := []Claim{}
	for _, m := range objectList(raw) {
		claim := Claim{
			ID:         stringField(m, "id", ""),
			Text:       stringField(m, "text", ""),
			Type:       ClaimType(validateEnum(m["type"], claimTypeValues, string(ClaimFactual))),
			Verdict:    ClaimVerdict(validateEnum(m["verdict"], claimVerdictValues, string(ClaimVerdictUnverified))),
			Confidence: clampNumber(m["confidence"], 0, 100, defaultConfidence),
			Evidence:   stringField(m, "evidence", ""),
			Sources:    rebuildSources(m["sources"]),
		}
		if claim.ID == "" {
			claim.ID = uuid.NewString()
		}
		claims = append(claims, claim)
	}
	return claims
}

func rebuildSources(raw interface{}) []Source {
	sources := []Source{}
	for _, m := range objectList(raw) {
		sources = append(sources, Source{
			Title:       stringField(m, "title", ""),
			URL:         stringField(m, "url", ""),
			Credibility: clampNumber(m["credibility"], 0, 100, defaultConfidence),
		})
	}
	return sources
}

func rebuildAIDetection(m map[string]interface{}) *AIDetection {
	return &AIDetection{
		IsAIGenerated: boolField(m, "isAIGenerated"),
		Confidence:    clampNumber(m["confidence"], 0, 100, defaultConfidence),
		Indicators:    stringList(m["indicators"]),
		Analysis:      stringField(m, "analysis", ""),
	}
}

func rebuildAccountAnalysis(m map[string]interface{}) *AccountAnalysis {
	return &AccountAnalysis{
		CredibilityScore:   clampNumber(m["credibilityScore"], 0, 100, defaultConfidence),
		SuspiciousActivity: boolField(m, "suspiciousActivity"),
		RedFlags:           stringList(m["redFlags"]),
		Assessment:         stringField(m, "assessment", ""),
	}
}

// rebuildBusinessVerification additionally gates on an identified business
// name; an object without one is treated as absent.
func rebuildBusinessVerification(m map[string]interface{}) *BusinessVerification {
	name := stringField(m, "businessName", "")
	if name == "" {
		return nil
	}
	return &BusinessVerification{
		BusinessName:      name,
		IsLegitimate:      boolField(m, "isLegitimate"),
		RegistrationFound: boolField(m, "registrationFound"),
		CredibilityScore:  clampNumber(m["credibilityScore"], 0, 100, defaultConfidence),
		Warnings:          stringList(m["warnings"]),
		Details:           stringField(m, "details", ""),
	}
}

func rebuildBiasAnalysis(m map[string]interface{}) *BiasAnalysis {
	return &BiasAnalysis{
		PoliticalBias:       PoliticalBias(validateEnum(m["politicalBias"], politicalBiasValues, string(BiasUnknown))),
		EmotionalTone:       stringField(m, "emotionalTone", ""),
		SensationalismScore: clampNumber(m["sensationalismScore"], 0, 100, defaultCount),
		LoadedLanguage:      stringList(m["loadedLanguage"]),
		Summary:             stringField(m, "summary", ""),
	}
}

func rebuildSourceTracing(m map[string]interface{}) *SourceTracing {
	timeline := []SpreadEntry{}
	for _, entry := range objectList(m["spreadTimeline"]) {
		timeline = append(timeline, SpreadEntry{
			Platform:  stringField(entry, "platform", ""),
			Timestamp: stringField(entry, "timestamp", ""),
			Reach:     clampNumber(entry["reach"], 0, 1<<31-1, defaultCount),
		})
	}
	return &SourceTracing{
		OriginalSource:     stringField(m, "originalSource", ""),
		EarliestAppearance: stringField(m, "earliestAppearance", ""),
		IsOriginalContent:  boolField(m, "isOriginalContent"),
		SpreadTimeline:     timeline,
		Summary:            stringField(m, "summary", ""),
	}
}

func rebuildEventCorrelation(m map[string]interface{}) *EventCorrelation {
	return &EventCorrelation{
		EventMatch:             EventMatch(validateEnum(m["eventMatch"], eventMatchValues, string(EventNotFound))),
		MatchedEvent:           stringField(m, "matchedEvent", ""),
		EventDate:              stringField(m, "eventDate", ""),
		EventCategory:          EventCategory(validateEnum(m["eventCategory"], eventCategoryValues, string(EventOther))),
		MisattributionDetected: boolField(m, "misattributionDetected"),
		Discrepancies:          stringList(m["discrepancies"]),
		Summary:                stringField(m, "summary", ""),
	}
}

func rebuildTimelineAnalysis(m map[string]interface{}) *TimelineAnalysis {
	return &TimelineAnalysis{
		ContentCreatedAt:  stringField(m, "contentCreatedAt", ""),
		EventOccurredAt:   stringField(m, "eventOccurredAt", ""),
		PostedAt:          stringField(m, "postedAt", ""),
		MismatchSeverity:  MismatchSeverity(validateEnum(m["mismatchSeverity"], mismatchValues, string(MismatchNone))),
		IsRecycledContent: boolField(m, "isRecycledContent"),
		RelevanceToday:    RelevanceToday(validateEnum(m["relevanceToday"], relevanceValues, string(RelevanceCurrent))),
		Summary:           stringField(m, "summary", ""),
	}
}
