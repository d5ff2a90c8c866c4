package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneuniverse/onboard/internal/domain/entity"
)

func TestCapabilityID_Constants(t *testing.T) {
	tests := []struct {
		id       entity.CapabilityID
		expected string
	}{
		{entity.CapabilityCalendar, "calendar-access"},
		{entity.CapabilityVideoHistory, "video-history-access"},
		{entity.CapabilityDeviceActivity, "device-activity-access"},
		{entity.CapabilityEmotionInput, "emotion-input-access"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.id))
			assert.True(t, tt.id.IsKnown())
		})
	}
	assert.False(t, entity.CapabilityID("camera").IsKnown())
}

func TestNewCatalog_FollowsNegotiationOrder(t *testing.T) {
	catalog := entity.NewCatalog(
		entity.Capability{ID: entity.CapabilityEmotionInput},
		entity.Capability{ID: "bogus"},
		entity.Capability{ID: entity.CapabilityCalendar},
		entity.Capability{ID: entity.CapabilityCalendar, Title: "duplicate"},
	)

	all := catalog.All()
	require.Len(t, all, 2)
	assert.Equal(t, entity.CapabilityCalendar, all[0].ID)
	assert.Empty(t, all[0].Title)
	assert.Equal(t, entity.CapabilityEmotionInput, all[1].ID)
}

func TestDefaultCatalog_NothingRequired(t *testing.T) {
	catalog := entity.DefaultCatalog()
	require.Equal(t, len(entity.NegotiationOrder), catalog.Len())
	for _, c := range catalog.All() {
		assert.False(t, c.Required, c.ID)
		assert.NotEmpty(t, c.Title)
	}
}

func TestNewSelection_DefaultsOffExceptRequired(t *testing.T) {
	catalog := entity.NewCatalog(
		entity.Capability{ID: entity.CapabilityCalendar},
		entity.Capability{ID: entity.CapabilityDeviceActivity, Required: true},
	)
	sel := entity.NewSelection(catalog)

	assert.False(t, sel.IsEnabled(entity.CapabilityCalendar))
	assert.True(t, sel.IsEnabled(entity.CapabilityDeviceActivity))
	assert.True(t, sel.AnyEnabled())
}

func TestSelection_Toggle(t *testing.T) {
	sel := entity.NewSelection(entity.DefaultCatalog())
	assert.False(t, sel.AnyEnabled())

	require.NoError(t, sel.Toggle(entity.CapabilityVideoHistory))
	assert.True(t, sel.IsEnabled(entity.CapabilityVideoHistory))
	assert.Equal(t, []entity.CapabilityID{entity.CapabilityVideoHistory}, sel.Enabled())

	require.NoError(t, sel.Toggle(entity.CapabilityVideoHistory))
	assert.False(t, sel.IsEnabled(entity.CapabilityVideoHistory))
}

func TestSelection_RequiredCannotBeDisabled(t *testing.T) {
	catalog := entity.NewCatalog(
		entity.Capability{ID: entity.CapabilityCalendar, Required: true},
	)
	sel := entity.NewSelection(catalog)

	err := sel.Toggle(entity.CapabilityCalendar)
	require.ErrorIs(t, err, entity.ErrCapabilityRequired)
	assert.True(t, sel.IsEnabled(entity.CapabilityCalendar))

	err = sel.Set(entity.CapabilityCalendar, false)
	require.ErrorIs(t, err, entity.ErrCapabilityRequired)
}

func TestSelection_UnknownCapability(t *testing.T) {
	sel := entity.NewSelection(entity.DefaultCatalog())
	require.ErrorIs(t, sel.Toggle("camera"), entity.ErrUnknownCapability)
	require.ErrorIs(t, sel.Set("camera", true), entity.ErrUnknownCapability)
}

func TestSelectionFromMap(t *testing.T) {
	sel, err := entity.SelectionFromMap(entity.DefaultCatalog(), map[entity.CapabilityID]bool{
		entity.CapabilityEmotionInput: true,
		entity.CapabilityCalendar:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, []entity.CapabilityID{
		entity.CapabilityCalendar,
		entity.CapabilityEmotionInput,
	}, sel.Enabled())

	_, err = entity.SelectionFromMap(entity.DefaultCatalog(), map[entity.CapabilityID]bool{"nope": true})
	require.ErrorIs(t, err, entity.ErrUnknownCapability)
}

func TestSelection_CloneIsIndependent(t *testing.T) {
	sel := entity.NewSelection(entity.DefaultCatalog())
	clone := sel.Clone()

	require.NoError(t, clone.Toggle(entity.CapabilityCalendar))
	assert.False(t, sel.IsEnabled(entity.CapabilityCalendar))
	assert.True(t, clone.IsEnabled(entity.CapabilityCalendar))
}
