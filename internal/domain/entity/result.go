package entity

import (
	"encoding/json"
	"time"
)

// NegotiationResult is the immutable aggregate of one negotiation.
// A new negotiation produces a new result; results are never patched.
type NegotiationResult struct {
	id        string
	startedAt time.Time
	duration  time.Duration
	catalog   Catalog
	outcomes  map[CapabilityID]Outcome
}

// NewNegotiationResult assembles a result. Catalog capabilities missing from
// outcomes are recorded as skipped.
func NewNegotiationResult(
	id string,
	catalog Catalog,
	outcomes map[CapabilityID]Outcome,
	startedAt time.Time,
	duration time.Duration,
) *NegotiationResult {
	copied := make(map[CapabilityID]Outcome, catalog.Len())
	for _, c := range catalog.All() {
		if o, ok := outcomes[c.ID]; ok && o.status != "" {
			copied[c.ID] = o
		} else {
			copied[c.ID] = SkippedOutcome()
		}
	}
	return &NegotiationResult{
		id:        id,
		startedAt: startedAt,
		duration:  duration,
		catalog:   catalog,
		outcomes:  copied,
	}
}

// ID returns the negotiation id.
func (r *NegotiationResult) ID() string {
	return r.id
}

// StartedAt returns when the negotiation started.
func (r *NegotiationResult) StartedAt() time.Time {
	return r.startedAt
}

// Duration returns how long the negotiation took.
func (r *NegotiationResult) Duration() time.Duration {
	return r.duration
}

// Catalog returns the catalog the negotiation ran over.
func (r *NegotiationResult) Catalog() Catalog {
	return r.catalog
}

// Outcome returns the outcome for a capability.
func (r *NegotiationResult) Outcome(id CapabilityID) (Outcome, bool) {
	o, ok := r.outcomes[id]
	return o, ok
}

// Results returns a copy of every outcome keyed by capability.
func (r *NegotiationResult) Results() map[CapabilityID]Outcome {
	out := make(map[CapabilityID]Outcome, len(r.outcomes))
	for id, o := range r.outcomes {
		out[id] = o
	}
	return out
}

// Errors returns the failure detail of every denied capability.
// Skipped and cancelled capabilities never appear here.
func (r *NegotiationResult) Errors() map[CapabilityID]*AcquisitionError {
	out := make(map[CapabilityID]*AcquisitionError)
	for id, o := range r.outcomes {
		if o.IsDenied() {
			out[id] = o.Err()
		}
	}
	return out
}

// AllSatisfied is true iff every capability is granted or skipped.
func (r *NegotiationResult) AllSatisfied() bool {
	for _, o := range r.outcomes {
		if !o.IsGranted() && !o.IsSkipped() {
			return false
		}
	}
	return true
}

// HasErrors is true iff at least one capability was denied.
func (r *NegotiationResult) HasErrors() bool {
	for _, o := range r.outcomes {
		if o.IsDenied() {
			return true
		}
	}
	return false
}

// Cancelled is true if the negotiation was cancelled before every
// requested capability settled.
func (r *NegotiationResult) Cancelled() bool {
	for _, o := range r.outcomes {
		if o.IsCancelled() {
			return true
		}
	}
	return false
}

// Unsatisfied returns the denied and cancelled capabilities in negotiation order.
func (r *NegotiationResult) Unsatisfied() []CapabilityID {
	var ids []CapabilityID
	for _, c := range r.catalog.All() {
		o := r.outcomes[c.ID]
		if o.IsDenied() || o.IsCancelled() {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// BlockingFailures returns required capabilities that were not granted.
func (r *NegotiationResult) BlockingFailures() []CapabilityID {
	var ids []CapabilityID
	for _, c := range r.catalog.All() {
		if c.Required && !r.outcomes[c.ID].IsGranted() {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

type outcomeJSON struct {
	Granted     bool   `json:"granted"`
	Skipped     bool   `json:"skipped,omitempty"`
	Cancelled   bool   `json:"cancelled,omitempty"`
	Service     string `json:"service,omitempty"`
	Type        string `json:"type,omitempty"`
	Status      string `json:"status,omitempty"`
	Token       string `json:"token,omitempty"`
	Note        string `json:"note,omitempty"`
	Degradation string `json:"degradation,omitempty"`
	ErrorKind   string `json:"errorKind,omitempty"`
	Error       string `json:"error,omitempty"`
}

// MarshalJSON renders the outcome with the token redacted.
func (o Outcome) MarshalJSON() ([]byte, error) {
	out := outcomeJSON{
		Granted:   o.IsGranted(),
		Skipped:   o.IsSkipped(),
		Cancelled: o.IsCancelled(),
	}
	if g, ok := o.Grant(); ok {
		out.Service = g.Service
		out.Type = string(g.Mode)
		out.Status = g.Status
		out.Token = g.RedactedToken()
		out.Note = g.Note
		out.Degradation = string(g.Degradation)
	}
	if err := o.Err(); err != nil {
		out.ErrorKind = string(err.Kind)
		out.Error = err.Message
	}
	return json.Marshal(out)
}

// MarshalJSON renders the aggregate result.
func (r *NegotiationResult) MarshalJSON() ([]byte, error) {
	errs := make(map[CapabilityID]string)
	for id, err := range r.Errors() {
		errs[id] = err.Error()
	}
	return json.Marshal(struct {
		ID         string                   `json:"id"`
		Results    map[CapabilityID]Outcome `json:"results"`
		Errors     map[CapabilityID]string  `json:"errors"`
		AllGranted bool                     `json:"allGranted"`
		HasErrors  bool                     `json:"hasErrors"`
		Cancelled  bool                     `json:"cancelled,omitempty"`
		DurationMS int64                    `json:"durationMs"`
	}{
		ID:         r.id,
		Results:    r.outcomes,
		Errors:     errs,
		AllGranted: r.AllSatisfied(),
		HasErrors:  r.HasErrors(),
		Cancelled:  r.Cancelled(),
		DurationMS: r.duration.Milliseconds(),
	})
}
