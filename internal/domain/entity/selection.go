package entity

import "fmt"

// Selection is the user's chosen set of capabilities prior to negotiation.
// It holds exactly one entry per catalog capability and is only changed by
// direct user action; negotiation works on a clone.
type Selection struct {
	catalog Catalog
	enabled map[CapabilityID]bool
}

// NewSelection creates a selection for the catalog with every optional
// capability disabled and every required capability enabled.
func NewSelection(catalog Catalog) *Selection {
	s := &Selection{
		catalog: catalog,
		enabled: make(map[CapabilityID]bool, catalog.Len()),
	}
	for _, c := range catalog.All() {
		s.enabled[c.ID] = c.Required
	}
	return s
}

// SelectionFromMap builds a selection from a plain capability map, the shape
// callers outside the flow use. Missing entries default to disabled.
func SelectionFromMap(catalog Catalog, values map[CapabilityID]bool) (*Selection, error) {
	s := NewSelection(catalog)
	for id, on := range values {
		if err := s.Set(id, on); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Catalog returns the catalog this selection was built from.
func (s *Selection) Catalog() Catalog {
	return s.catalog
}

// Toggle flips the capability. Required capabilities cannot be toggled.
func (s *Selection) Toggle(id CapabilityID) error {
	current, err := s.lookup(id)
	if err != nil {
		return err
	}
	return s.Set(id, !current)
}

// Set enables or disables the capability. Disabling a required capability
// returns ErrCapabilityRequired.
func (s *Selection) Set(id CapabilityID, on bool) error {
	if _, err := s.lookup(id); err != nil {
		return err
	}
	if !on && s.catalog.IsRequired(id) {
		return fmt.Errorf("%w: %s", ErrCapabilityRequired, id)
	}
	s.enabled[id] = on
	return nil
}

// IsEnabled reports whether the capability is selected.
func (s *Selection) IsEnabled(id CapabilityID) bool {
	return s.enabled[id]
}

// AnyEnabled reports whether at least one capability is selected.
func (s *Selection) AnyEnabled() bool {
	for _, on := range s.enabled {
		if on {
			return true
		}
	}
	return false
}

// Enabled returns the selected capabilities in negotiation order.
func (s *Selection) Enabled() []CapabilityID {
	var ids []CapabilityID
	for _, c := range s.catalog.All() {
		if s.enabled[c.ID] {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// ToMap returns a copy of the selection as a plain map.
func (s *Selection) ToMap() map[CapabilityID]bool {
	out := make(map[CapabilityID]bool, len(s.enabled))
	for id, on := range s.enabled {
		out[id] = on
	}
	return out
}

// Clone returns an independent copy.
func (s *Selection) Clone() *Selection {
	return &Selection{catalog: s.catalog, enabled: s.ToMap()}
}

func (s *Selection) lookup(id CapabilityID) (bool, error) {
	on, ok := s.enabled[id]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownCapability, id)
	}
	return on, nil
}
