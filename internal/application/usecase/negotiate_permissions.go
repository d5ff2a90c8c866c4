package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/semaphore"

	"github.com/oneuniverse/onboard/internal/application/port"
	"github.com/oneuniverse/onboard/internal/domain/entity"
	"github.com/oneuniverse/onboard/internal/domain/repository"
	"github.com/oneuniverse/onboard/internal/logging"
)

// ErrNegotiationInProgress is returned when a negotiation is started while
// another one is still running on the same use case.
var ErrNegotiationInProgress = errors.New("negotiation already in progress")

const unknownCapabilityMessage = "Unknown permission"

// NegotiateInput is the input of a negotiation.
type NegotiateInput struct {
	Selection *entity.Selection
	// Carried holds outcomes settled by an earlier negotiation. A selected
	// capability with a carried grant keeps it and is not acquired again.
	Carried map[entity.CapabilityID]entity.Outcome
}

// NegotiatePermissionsUseCase acquires every selected capability, one at a
// time in negotiation order, and aggregates the outcomes.
//
// A failing capability never aborts the others. Execute returns an error
// only when nothing is selected or another negotiation is running;
// everything else is reported in the result.
type NegotiatePermissionsUseCase struct {
	strategies StrategyTable
	auditRepo  repository.ConsentAuditRepository
	metrics    port.NegotiationMetrics

	// inflight admits one negotiation at a time: prompts and popups
	// share a single user-attention surface.
	inflight *semaphore.Weighted

	now   func() time.Time
	newID func() string
}

// NewNegotiatePermissionsUseCase creates the negotiator. auditRepo and
// metrics may be nil.
func NewNegotiatePermissionsUseCase(
	strategies StrategyTable,
	auditRepo repository.ConsentAuditRepository,
	metrics port.NegotiationMetrics,
) *NegotiatePermissionsUseCase {
	return &NegotiatePermissionsUseCase{
		strategies: strategies,
		auditRepo:  auditRepo,
		metrics:    metrics,
		inflight:   semaphore.NewWeighted(1),
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// SetClock overrides the clock used for timestamps and durations.
func (uc *NegotiatePermissionsUseCase) SetClock(now func() time.Time) {
	uc.now = now
}

// SetIDGenerator overrides the negotiation id generator.
func (uc *NegotiatePermissionsUseCase) SetIDGenerator(newID func() string) {
	uc.newID = newID
}

// Execute runs one negotiation.
//
// Cancelling ctx stops the wait on the current capability; that capability
// and every requested capability after it are reported as cancelled.
func (uc *NegotiatePermissionsUseCase) Execute(ctx context.Context, input NegotiateInput) (*entity.NegotiationResult, error) {
	if input.Selection == nil || !input.Selection.AnyEnabled() {
		return nil, entity.ErrNoCapabilitiesSelected
	}

	if !uc.inflight.TryAcquire(1) {
		return nil, ErrNegotiationInProgress
	}
	defer uc.inflight.Release(1)

	selection := input.Selection.Clone()
	catalog := selection.Catalog()
	negotiationID := uc.newID()

	ctx = logging.WithComponent(ctx, "negotiator")
	ctx = logging.WithNegotiationID(ctx, negotiationID)
	log := logging.FromContext(ctx)

	ctx, span := otel.Tracer("negotiator").Start(ctx, "NegotiatePermissions")
	defer span.End()
	span.SetAttributes(
		attribute.String("negotiation.id", negotiationID),
		attribute.StringSlice("negotiation.selected", entity.CapabilityIDsToStrings(selection.Enabled())),
	)

	log.Info().
		Strs("selected", entity.CapabilityIDsToStrings(selection.Enabled())).
		Msg("starting permission negotiation")

	startedAt := uc.now()
	outcomes := make(map[entity.CapabilityID]entity.Outcome, catalog.Len())

	for _, capability := range catalog.All() {
		id := capability.ID
		switch {
		case !selection.IsEnabled(id):
			outcomes[id] = entity.SkippedOutcome()
		case input.Carried[id].IsGranted():
			log.Debug().Str("capability", string(id)).Msg("keeping earlier grant")
			outcomes[id] = input.Carried[id]
		case ctx.Err() != nil:
			outcomes[id] = entity.CancelledOutcome()
		default:
			outcomes[id] = uc.acquire(ctx, id)
		}
	}

	result := entity.NewNegotiationResult(negotiationID, catalog, outcomes, startedAt, uc.now().Sub(startedAt))

	span.SetAttributes(
		attribute.Bool("negotiation.all_satisfied", result.AllSatisfied()),
		attribute.Bool("negotiation.cancelled", result.Cancelled()),
	)
	if result.HasErrors() {
		span.SetStatus(codes.Error, "capability acquisition failed")
	}

	if uc.metrics != nil {
		uc.metrics.ObserveNegotiation(result)
	}
	uc.audit(ctx, result)

	log.Info().
		Bool("all_satisfied", result.AllSatisfied()).
		Bool("has_errors", result.HasErrors()).
		Bool("cancelled", result.Cancelled()).
		Dur("duration", result.Duration()).
		Msg("permission negotiation finished")

	return result, nil
}

// acquire runs one strategy and converts whatever it returns into an outcome.
func (uc *NegotiatePermissionsUseCase) acquire(ctx context.Context, id entity.CapabilityID) entity.Outcome {
	ctx = logging.WithCapability(ctx, string(id))
	log := logging.FromContext(ctx)

	ctx, span := otel.Tracer("negotiator").Start(ctx, "AcquireCapability")
	defer span.End()
	span.SetAttributes(attribute.String("capability", string(id)))

	strategy, ok := uc.strategies[id]
	if !ok || strategy == nil {
		log.Warn().Msg("no acquisition strategy registered")
		return entity.DeniedOutcome(entity.NewAcquisitionError(entity.ErrorKindUnsupportedCapability, unknownCapabilityMessage, nil))
	}

	started := uc.now()
	grant, err := strategy.Acquire(ctx)
	outcome := outcomeOf(ctx, grant, err)
	elapsed := uc.now().Sub(started)

	span.SetAttributes(attribute.String("outcome", string(outcome.Status())))
	switch {
	case outcome.IsDenied():
		span.SetStatus(codes.Error, outcome.Err().Error())
		log.Warn().
			Str("error_kind", string(outcome.Err().Kind)).
			Str("error", outcome.Err().Message).
			Msg("capability denied")
	case outcome.IsCancelled():
		log.Info().Msg("capability acquisition cancelled")
	default:
		g, _ := outcome.Grant()
		log.Info().
			Bool("degraded", g.IsDegraded()).
			Str("note", g.Note).
			Msg("capability granted")
	}

	if uc.metrics != nil {
		uc.metrics.ObserveOutcome(id, outcome, elapsed)
	}
	return outcome
}

// outcomeOf classifies a strategy's return values. Context errors after
// cancellation become cancelled outcomes; unclassified errors become
// host permission errors.
func outcomeOf(ctx context.Context, grant entity.Grant, err error) entity.Outcome {
	if err == nil {
		return entity.GrantedOutcome(grant)
	}
	if ctx.Err() != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		return entity.CancelledOutcome()
	}
	var acqErr *entity.AcquisitionError
	if errors.As(err, &acqErr) {
		return entity.DeniedOutcome(acqErr)
	}
	return entity.DeniedOutcome(entity.NewAcquisitionError(entity.ErrorKindHostPermissionError, err.Error(), err))
}

// audit stores the decisions. It runs even after cancellation and never
// fails the negotiation.
func (uc *NegotiatePermissionsUseCase) audit(ctx context.Context, result *entity.NegotiationResult) {
	if uc.auditRepo == nil {
		return
	}
	log := logging.FromContext(ctx)

	records := entity.ConsentRecordsFromResult(result, uc.now().Unix())
	if err := uc.auditRepo.Record(context.WithoutCancel(ctx), records); err != nil {
		log.Warn().Err(err).Msg("failed to record consent audit")
	}
}
