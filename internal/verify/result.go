package verify

// Verdict is the overall trust verdict for a piece of content.
type Verdict string

const (
	VerdictVerified     Verdict = "verified"
	VerdictMostlyTrue   Verdict = "mostly_true"
	VerdictMixed        Verdict = "mixed"
	VerdictMisleading   Verdict = "misleading"
	VerdictFalse        Verdict = "false"
	VerdictUnverifiable Verdict = "unverifiable"
)

// ClaimType categorizes the nature of an extracted claim.
type ClaimType string

const (
	ClaimFactual      ClaimType = "factual"
	ClaimOpinion      ClaimType = "opinion"
	ClaimSpeculation  ClaimType = "speculation"
	ClaimExaggeration ClaimType = "exaggeration"
	ClaimMisleading   ClaimType = "misleading"
)

// ClaimVerdict is the per-claim verification outcome.
type ClaimVerdict string

const (
	ClaimVerdictVerified      ClaimVerdict = "verified"
	ClaimVerdictPartiallyTrue ClaimVerdict = "partially_true"
	ClaimVerdictUnverified    ClaimVerdict = "unverified"
	ClaimVerdictFalse         ClaimVerdict = "false"
	ClaimVerdictOpinion       ClaimVerdict = "opinion"
)

// PoliticalBias classifies the political lean detected in the content.
type PoliticalBias string

const (
	BiasLeft        PoliticalBias = "left"
	BiasCenterLeft  PoliticalBias = "center_left"
	BiasCenter      PoliticalBias = "center"
	BiasCenterRight PoliticalBias = "center_right"
	BiasRight       PoliticalBias = "right"
	BiasUnknown     PoliticalBias = "unknown"
)

// EventMatch states whether the content was matched to a real-world event.
type EventMatch string

const (
	EventConfirmed EventMatch = "confirmed"
	EventPartial   EventMatch = "partial"
	EventNotFound  EventMatch = "not_found"
)

// EventCategory classifies a matched real-world event.
type EventCategory string

const (
	EventPolitics  EventCategory = "politics"
	EventDisaster  EventCategory = "disaster"
	EventConflict  EventCategory = "conflict"
	EventCelebrity EventCategory = "celebrity"
	EventScience   EventCategory = "science"
	EventHealth    EventCategory = "health"
	EventSports    EventCategory = "sports"
	EventOther     EventCategory = "other"
)

// MismatchSeverity grades how badly the content timeline diverges from the
// event timeline.
type MismatchSeverity string

const (
	MismatchNone        MismatchSeverity = "none"
	MismatchMinor       MismatchSeverity = "minor"
	MismatchSignificant MismatchSeverity = "significant"
	MismatchCritical    MismatchSeverity = "critical"
)

// RelevanceToday states whether the content is still current.
type RelevanceToday string

const (
	RelevanceCurrent  RelevanceToday = "current"
	RelevanceOutdated RelevanceToday = "outdated"
	RelevanceRecycled RelevanceToday = "recycled"
)

// Source is a citation supporting a claim verdict.
type Source struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Credibility int    `json:"credibility"`
}

// Claim is an atomic statement extracted from the content, independently
// typed and verdicted.
type Claim struct {
	ID         string       `json:"id"`
	Text       string       `json:"text"`
	Type       ClaimType    `json:"type"`
	Verdict    ClaimVerdict `json:"verdict"`
	Confidence int          `json:"confidence"`
	Evidence   string       `json:"evidence,omitempty"`
	Sources    []Source     `json:"sources"`
}

// AIDetection reports whether the content appears machine-generated.
type AIDetection struct {
	IsAIGenerated bool     `json:"isAIGenerated"`
	Confidence    int      `json:"confidence"`
	Indicators    []string `json:"indicators"`
	Analysis      string   `json:"analysis,omitempty"`
}

// AccountAnalysis reports on the credibility of the posting account.
type AccountAnalysis struct {
	CredibilityScore   int      `json:"credibilityScore"`
	SuspiciousActivity bool     `json:"suspiciousActivity"`
	RedFlags           []string `json:"redFlags"`
	Assessment         string   `json:"assessment,omitempty"`
}

// BusinessVerification reports on any business entity named in the content.
// Only emitted when a business name was actually identified.
type BusinessVerification struct {
	BusinessName      string   `json:"businessName"`
	IsLegitimate      bool     `json:"isLegitimate"`
	RegistrationFound bool     `json:"registrationFound"`
	CredibilityScore  int      `json:"credibilityScore"`
	Warnings          []string `json:"warnings"`
	Details           string   `json:"details,omitempty"`
}

// BiasAnalysis reports on political lean, tone and loaded language.
type BiasAnalysis struct {
	PoliticalBias       PoliticalBias `json:"politicalBias"`
	EmotionalTone       string        `json:"emotionalTone,omitempty"`
	SensationalismScore int           `json:"sensationalismScore"`
	LoadedLanguage      []string      `json:"loadedLanguage"`
	Summary             string        `json:"summary,omitempty"`
}

// SpreadEntry is one hop in the content's propagation across platforms.
type SpreadEntry struct {
	Platform  string `json:"platform"`
	Timestamp string `json:"timestamp"`
	Reach     int    `json:"reach"`
}

// SourceTracing reports the earliest known appearance of the content and
// its subsequent spread.
type SourceTracing struct {
	OriginalSource     string        `json:"originalSource,omitempty"`
	EarliestAppearance string        `json:"earliestAppearance,omitempty"`
	IsOriginalContent  bool          `json:"isOriginalContent"`
	SpreadTimeline     []SpreadEntry `json:"spreadTimeline"`
	Summary            string        `json:"summary,omitempty"`
}

// EventCorrelation reports whether the content matches a real-world
// news event and flags misattribution.
type EventCorrelation struct {
	EventMatch             EventMatch    `json:"eventMatch"`
	MatchedEvent           string        `json:"matchedEvent,omitempty"`
	EventDate              string        `json:"eventDate,omitempty"`
	EventCategory          EventCategory `json:"eventCategory"`
	MisattributionDetected bool          `json:"misattributionDetected"`
	Discrepancies          []string      `json:"discrepancies"`
	Summary                string        `json:"summary,omitempty"`
}

// TimelineAnalysis compares content-creation, event, and posting dates.
type TimelineAnalysis struct {
	ContentCreatedAt  string           `json:"contentCreatedAt,omitempty"`
	EventOccurredAt   string           `json:"eventOccurredAt,omitempty"`
	PostedAt          string           `json:"postedAt,omitempty"`
	MismatchSeverity  MismatchSeverity `json:"mismatchSeverity"`
	IsRecycledContent bool             `json:"isRecycledContent"`
	RelevanceToday    RelevanceToday   `json:"relevanceToday"`
	Summary           string           `json:"summary,omitempty"`
}

// VerificationResult is the validated output of a verification run.
// It is constructed exactly once per run and never mutated afterward:
// every numeric field is clamped, every enum is drawn from its closed
// vocabulary, and Claims is never nil.
type VerificationResult struct {
	TrustScore     int     `json:"trustScore"`
	Verdict        Verdict `json:"verdict"`
	VerdictSummary string  `json:"verdictSummary"`
	Claims         []Claim `json:"claims"`

	AIDetection          *AIDetection          `json:"aiDetection,omitempty"`
	AccountAnalysis      *AccountAnalysis      `json:"accountAnalysis,omitempty"`
	BusinessVerification *BusinessVerification `json:"businessVerification,omitempty"`
	BiasAnalysis         *BiasAnalysis         `json:"biasAnalysis,omitempty"`
	SourceTracing        *SourceTracing        `json:"sourceTracing,omitempty"`
	EventCorrelation     *EventCorrelation     `json:"eventCorrelation,omitempty"`
	TimelineAnalysis     *TimelineAnalysis     `json:"timelineAnalysis,omitempty"`

	ProcessingTimeMs int64  `json:"processingTimeMs"`
	ModelIdentifier  string `json:"modelIdentifier"`
	GroundingUsed    bool   `json:"groundingUsed"`
}

// defaultSummary is the verdict summary used whenever no usable response
// was obtained from the reasoning engine.
const defaultSummary = "Unable to verify the content. Please review manually."

// DefaultResult returns the canonical fallback result used when the engine
// returned nothing usable: neutral score, unverifiable verdict, no claims,
// no optional sections.
func DefaultResult(groundingUsed bool) VerificationResult {
	return VerificationResult{
		TrustScore:     50,
		Verdict:        VerdictUnverifiable,
		VerdictSummary: defaultSummary,
		Claims:         []Claim{},
		GroundingUsed:  groundingUsed,
	}
}
