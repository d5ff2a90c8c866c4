package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oneuniverse/onboard/internal/domain/entity"
)

func setNegotiateFlags(t *testing.T, calendar, video, device, emotion, all bool) {
	t.Helper()
	prev := []bool{negotiateCalendar, negotiateVideoHistory, negotiateDeviceActivity, negotiateEmotionInput, negotiateAll}
	t.Cleanup(func() {
		negotiateCalendar, negotiateVideoHistory, negotiateDeviceActivity, negotiateEmotionInput, negotiateAll =
			prev[0], prev[1], prev[2], prev[3], prev[4]
	})
	negotiateCalendar, negotiateVideoHistory, negotiateDeviceActivity, negotiateEmotionInput, negotiateAll =
		calendar, video, device, emotion, all
}

func TestRequestedCapabilities(t *testing.T) {
	tests := []struct {
		name     string
		calendar bool
		video    bool
		device   bool
		emotion  bool
		all      bool
		want     []entity.CapabilityID
	}{
		{name: "none"},
		{
			name:     "some in negotiation order",
			calendar: true,
			emotion:  true,
			want:     []entity.CapabilityID{entity.CapabilityCalendar, entity.CapabilityEmotionInput},
		},
		{
			name: "all",
			all:  true,
			want: entity.NegotiationOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setNegotiateFlags(t, tt.calendar, tt.video, tt.device, tt.emotion, tt.all)
			assert.Equal(t, tt.want, requestedCapabilities())
		})
	}
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"negotiate", "screen", "audit", "config", "version"} {
		cmd, _, err := rootCmd.Find([]string{name})
		assert.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}
