package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/oneuniverse/onboard/internal/domain/entity"
	"github.com/oneuniverse/onboard/internal/logging"
)

// SelectAtLeastOneMessage is shown when the user continues with nothing selected.
const SelectAtLeastOneMessage = "Select at least one permission to continue"

// Negotiator runs one negotiation for a selection.
type Negotiator interface {
	Execute(ctx context.Context, input NegotiateInput) (*entity.NegotiationResult, error)
}

// FlowDecision tells the onboarding flow what to do after a grant attempt.
type FlowDecision string

const (
	// DecisionProceed means every requested capability was granted.
	DecisionProceed FlowDecision = "proceed"

	// DecisionRetryOrContinue means optional capabilities failed or were
	// cancelled; the user may retry them or continue anyway.
	DecisionRetryOrContinue FlowDecision = "retry_or_continue"

	// DecisionBlocked means the flow cannot continue: nothing was selected
	// or a required capability was not granted.
	DecisionBlocked FlowDecision = "blocked"
)

// FailureNotice describes one unsatisfied capability for display.
type FailureNotice struct {
	Capability entity.Capability
	Kind       entity.ErrorKind // empty for cancelled capabilities
	Message    string
	Required   bool
}

// FlowOutcome is the decision plus what the screen needs to render it.
type FlowOutcome struct {
	Decision FlowDecision
	Result   *entity.NegotiationResult // nil when blocked before negotiating
	Message  string
	Failures []FailureNotice
}

// PermissionFlow is the state behind the permission screen for one visit:
// it owns the selection, runs negotiations, and remembers the last result
// so failed capabilities can be retried.
type PermissionFlow struct {
	negotiator Negotiator
	selection  *entity.Selection
	last       *entity.NegotiationResult
	mu         sync.Mutex
}

// NewPermissionFlow creates a flow over the catalog with nothing selected
// except required capabilities.
func NewPermissionFlow(negotiator Negotiator, catalog entity.Catalog) *PermissionFlow {
	return &PermissionFlow{
		negotiator: negotiator,
		selection:  entity.NewSelection(catalog),
	}
}

// Toggle flips a capability in the selection.
func (f *PermissionFlow) Toggle(id entity.CapabilityID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selection.Toggle(id)
}

// Set enables or disables a capability in the selection.
func (f *PermissionFlow) Set(id entity.CapabilityID, on bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selection.Set(id, on)
}

// Selection returns a copy of the current selection.
func (f *PermissionFlow) Selection() *entity.Selection {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selection.Clone()
}

// LastResult returns the result of the most recent negotiation, if any.
func (f *PermissionFlow) LastResult() *entity.NegotiationResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

// Grant negotiates the current selection.
func (f *PermissionFlow) Grant(ctx context.Context) (FlowOutcome, error) {
	return f.negotiate(ctx, NegotiateInput{Selection: f.Selection()})
}

// RetryFailed renegotiates only the capabilities the last negotiation
// denied or cancelled. Required capabilities already granted keep their
// grant. The retry produces a fresh result.
func (f *PermissionFlow) RetryFailed(ctx context.Context) (FlowOutcome, error) {
	f.mu.Lock()
	last := f.last
	catalog := f.selection.Catalog()
	f.mu.Unlock()

	if last == nil {
		return FlowOutcome{}, errors.New("nothing to retry: no negotiation has run")
	}

	unsatisfied := last.Unsatisfied()
	if len(unsatisfied) == 0 {
		return DecideNextStep(last), nil
	}

	retry := entity.NewSelection(catalog)
	for _, id := range unsatisfied {
		if err := retry.Set(id, true); err != nil {
			return FlowOutcome{}, err
		}
	}
	return f.negotiate(ctx, NegotiateInput{Selection: retry, Carried: last.Results()})
}

func (f *PermissionFlow) negotiate(ctx context.Context, input NegotiateInput) (FlowOutcome, error) {
	log := logging.FromContext(ctx)

	result, err := f.negotiator.Execute(ctx, input)
	if errors.Is(err, entity.ErrNoCapabilitiesSelected) {
		log.Debug().Msg("grant requested with nothing selected")
		return FlowOutcome{Decision: DecisionBlocked, Message: SelectAtLeastOneMessage}, nil
	}
	if err != nil {
		return FlowOutcome{}, fmt.Errorf("negotiate permissions: %w", err)
	}

	f.mu.Lock()
	f.last = result
	f.mu.Unlock()

	return DecideNextStep(result), nil
}

// DecideNextStep maps a result to the flow decision and failure notices.
func DecideNextStep(result *entity.NegotiationResult) FlowOutcome {
	out := FlowOutcome{Result: result, Failures: failureNotices(result)}

	switch {
	case len(result.BlockingFailures()) > 0:
		out.Decision = DecisionBlocked
		out.Message = "A required permission was not granted"
	case result.AllSatisfied():
		out.Decision = DecisionProceed
	case result.Cancelled() && !result.HasErrors():
		out.Decision = DecisionRetryOrContinue
		out.Message = "Permission setup was cancelled"
	default:
		out.Decision = DecisionRetryOrContinue
		out.Message = fmt.Sprintf("%d permission(s) could not be granted", len(out.Failures))
	}
	return out
}

func failureNotices(result *entity.NegotiationResult) []FailureNotice {
	catalog := result.Catalog()
	var notices []FailureNotice
	for _, id := range result.Unsatisfied() {
		capability, _ := catalog.Get(id)
		outcome, _ := result.Outcome(id)

		notice := FailureNotice{
			Capability: capability,
			Required:   capability.Required,
			Message:    "Cancelled before completion",
		}
		if acqErr := outcome.Err(); acqErr != nil {
			notice.Kind = acqErr.Kind
			notice.Message = acqErr.Message
			if notice.Message == "" {
				notice.Message = string(acqErr.Kind)
			}
		}
		notices = append(notices, notice)
	}
	return notices
}
