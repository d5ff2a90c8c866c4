package entity

// CapabilityID identifies a grantable capability.
type CapabilityID string

const (
	// CapabilityCalendar is read access to the user's calendar (OAuth scope).
	CapabilityCalendar CapabilityID = "calendar-access"

	// CapabilityVideoHistory is read access to the user's video watch history (OAuth scope).
	CapabilityVideoHistory CapabilityID = "video-history-access"

	// CapabilityDeviceActivity is local active/idle time sensing.
	CapabilityDeviceActivity CapabilityID = "device-activity-access"

	// CapabilityEmotionInput is voice or text mood input.
	CapabilityEmotionInput CapabilityID = "emotion-input-access"
)

// NegotiationOrder is the fixed order in which capabilities are acquired.
// Prompts and popups compete for one user-attention surface, so acquisition
// is strictly sequential in this order.
var NegotiationOrder = []CapabilityID{
	CapabilityCalendar,
	CapabilityVideoHistory,
	CapabilityDeviceActivity,
	CapabilityEmotionInput,
}

// IsKnown reports whether id is part of the closed capability set.
func (id CapabilityID) IsKnown() bool {
	for _, known := range NegotiationOrder {
		if id == known {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (id CapabilityID) String() string {
	return string(id)
}

// Capability describes a capability the user can enable.
type Capability struct {
	ID          CapabilityID
	Title       string
	Description string
	// Required capabilities start enabled and cannot be toggled off.
	Required bool
}

// Catalog is the set of capabilities offered on the permission screen,
// kept in NegotiationOrder.
type Catalog struct {
	capabilities []Capability
}

// NewCatalog builds a catalog from the given capabilities.
// Entries are reordered to follow NegotiationOrder; unknown ids and
// duplicates are dropped.
func NewCatalog(capabilities ...Capability) Catalog {
	byID := make(map[CapabilityID]Capability, len(capabilities))
	for _, c := range capabilities {
		if !c.ID.IsKnown() {
			continue
		}
		if _, dup := byID[c.ID]; dup {
			continue
		}
		byID[c.ID] = c
	}

	ordered := make([]Capability, 0, len(byID))
	for _, id := range NegotiationOrder {
		if c, ok := byID[id]; ok {
			ordered = append(ordered, c)
		}
	}
	return Catalog{capabilities: ordered}
}

// DefaultCatalog returns the onboarding capabilities. None is required.
func DefaultCatalog() Catalog {
	return NewCatalog(
		Capability{
			ID:          CapabilityCalendar,
			Title:       "Google Calendar",
			Description: "Analyze my schedule to suggest focus blocks.",
		},
		Capability{
			ID:          CapabilityVideoHistory,
			Title:       "YouTube Learning History",
			Description: "Read topics from my watched videos (no private data).",
		},
		Capability{
			ID:          CapabilityDeviceActivity,
			Title:       "Device Focus Data",
			Description: "Measure active vs. idle time (local only).",
		},
		Capability{
			ID:          CapabilityEmotionInput,
			Title:       "Emotion Input",
			Description: "Allow text/voice mood detection.",
		},
	)
}

// All returns the catalog entries in negotiation order.
func (c Catalog) All() []Capability {
	out := make([]Capability, len(c.capabilities))
	copy(out, c.capabilities)
	return out
}

// Get returns the capability with the given id.
func (c Catalog) Get(id CapabilityID) (Capability, bool) {
	for _, capability := range c.capabilities {
		if capability.ID == id {
			return capability, true
		}
	}
	return Capability{}, false
}

// IsRequired reports whether the capability is marked required.
func (c Catalog) IsRequired(id CapabilityID) bool {
	capability, ok := c.Get(id)
	return ok && capability.Required
}

// Len returns the number of capabilities in the catalog.
func (c Catalog) Len() int {
	return len(c.capabilities)
}

// CapabilityIDsToStrings converts capability ids to strings for logging.
func CapabilityIDsToStrings(ids []CapabilityID) []string {
	result := make([]string, len(ids))
	for i, id := range ids {
		result[i] = string(id)
	}
	return result
}
