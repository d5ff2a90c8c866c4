package entity

// OutcomeStatus is the variant tag of an Outcome.
type OutcomeStatus string

const (
	// OutcomeGranted means the capability was acquired, possibly degraded.
	OutcomeGranted OutcomeStatus = "granted"

	// OutcomeDenied means acquisition was attempted and failed.
	OutcomeDenied OutcomeStatus = "denied"

	// OutcomeSkipped means the capability was not requested.
	OutcomeSkipped OutcomeStatus = "skipped"

	// OutcomeCancelled means the negotiation was cancelled before this
	// capability settled.
	OutcomeCancelled OutcomeStatus = "cancelled"
)

// InputMode is the emotion input channel that was granted.
type InputMode string

const (
	InputModeVoice InputMode = "voice"
	InputModeText  InputMode = "text"
)

// Grant is the payload of a granted outcome.
type Grant struct {
	// Token is an opaque credential (OAuth access token). Never persisted or logged.
	Token string
	// Service names the provider service, e.g. "google-calendar".
	Service string
	// Mode is set for emotion input.
	Mode InputMode
	// Status is the raw platform permission status, when one exists.
	Status string
	// Note is a non-fatal caveat, e.g. degraded mode.
	Note string
	// Degradation is ErrorKindHostAPIUnavailable when the grant was
	// synthesized because the platform lacks the primitive.
	Degradation ErrorKind
}

// IsDegraded reports whether the grant is a fallback grant.
func (g Grant) IsDegraded() bool {
	return g.Degradation != ""
}

// RedactedToken returns a short, non-sensitive form of the token for display.
func (g Grant) RedactedToken() string {
	const visible = 4
	if g.Token == "" {
		return ""
	}
	if len(g.Token) <= visible*2 {
		return "****"
	}
	return g.Token[:visible] + "…" + g.Token[len(g.Token)-visible:]
}

// Outcome is the per-capability result of a negotiation. Exactly one
// status holds; the payload matching the status is the only one set.
type Outcome struct {
	status OutcomeStatus
	grant  Grant
	err    *AcquisitionError
}

// GrantedOutcome creates a granted outcome.
func GrantedOutcome(grant Grant) Outcome {
	return Outcome{status: OutcomeGranted, grant: grant}
}

// DeniedOutcome creates a denied outcome. A nil error is replaced with an
// unclassified one so a denied outcome always carries detail.
func DeniedOutcome(err *AcquisitionError) Outcome {
	if err == nil {
		err = NewAcquisitionError(ErrorKindHostPermissionError, "acquisition failed", nil)
	}
	return Outcome{status: OutcomeDenied, err: err}
}

// SkippedOutcome creates a skipped outcome.
func SkippedOutcome() Outcome {
	return Outcome{status: OutcomeSkipped}
}

// CancelledOutcome creates a cancelled outcome.
func CancelledOutcome() Outcome {
	return Outcome{status: OutcomeCancelled}
}

// Status returns the variant tag.
func (o Outcome) Status() OutcomeStatus {
	return o.status
}

// IsGranted reports whether the capability was acquired.
func (o Outcome) IsGranted() bool {
	return o.status == OutcomeGranted
}

// IsSkipped reports whether the capability was not requested.
func (o Outcome) IsSkipped() bool {
	return o.status == OutcomeSkipped
}

// IsDenied reports whether acquisition failed.
func (o Outcome) IsDenied() bool {
	return o.status == OutcomeDenied
}

// IsCancelled reports whether the negotiation was cancelled before this capability settled.
func (o Outcome) IsCancelled() bool {
	return o.status == OutcomeCancelled
}

// Grant returns the grant payload; ok is false unless the outcome is granted.
func (o Outcome) Grant() (grant Grant, ok bool) {
	if o.status != OutcomeGranted {
		return Grant{}, false
	}
	return o.grant, true
}

// Err returns the failure detail; nil unless the outcome is denied.
func (o Outcome) Err() *AcquisitionError {
	if o.status != OutcomeDenied {
		return nil
	}
	return o.err
}
