package entity

// ConsentRecord is an audit entry for one capability of one negotiation.
// It records the decision only; credentials are never part of it.
type ConsentRecord struct {
	NegotiationID string
	Capability    CapabilityID
	Status        OutcomeStatus
	ErrorKind     ErrorKind // set for denied outcomes and degraded grants
	Note          string
	RecordedAt    int64 // Unix timestamp in seconds
}

// ConsentRecordsFromResult flattens a result into audit records, one per
// catalog capability, in negotiation order.
func ConsentRecordsFromResult(result *NegotiationResult, recordedAt int64) []*ConsentRecord {
	records := make([]*ConsentRecord, 0, result.catalog.Len())
	for _, c := range result.catalog.All() {
		o := result.outcomes[c.ID]
		record := &ConsentRecord{
			NegotiationID: result.id,
			Capability:    c.ID,
			Status:        o.Status(),
			RecordedAt:    recordedAt,
		}
		if g, ok := o.Grant(); ok {
			record.Note = g.Note
			record.ErrorKind = g.Degradation
		}
		if err := o.Err(); err != nil {
			record.ErrorKind = err.Kind
			record.Note = err.Message
		}
		records = append(records, record)
	}
	return records
}
