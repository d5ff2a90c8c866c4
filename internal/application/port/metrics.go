package port

import (
	"time"

	"github.com/oneuniverse/onboard/internal/domain/entity"
)

// NegotiationMetrics records negotiation telemetry.
type NegotiationMetrics interface {
	// ObserveOutcome records the settled outcome of one capability.
	ObserveOutcome(capability entity.CapabilityID, outcome entity.Outcome, elapsed time.Duration)

	// ObserveNegotiation records a finished negotiation.
	ObserveNegotiation(result *entity.NegotiationResult)
}
