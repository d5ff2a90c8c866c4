package usecase

import (
	"context"
	"errors"

	"github.com/oneuniverse/onboard/internal/application/port"
	"github.com/oneuniverse/onboard/internal/domain/entity"
	"github.com/oneuniverse/onboard/internal/logging"
)

const (
	noteIdleUnsupported   = "Idle detection not supported, activity sensing degraded"
	noteVoiceUnsupported  = "Voice input not supported, text input enabled"
	noteVoiceUnavailable  = "Voice input unavailable, text input enabled"
	idleDeniedMessage     = "Permission denied"
	microphoneDeniedError = "Microphone permission denied"
)

// DeviceActivityStrategy acquires local idle/activity sensing. Missing
// platform support degrades to a granted outcome with a note.
type DeviceActivityStrategy struct {
	provider port.PlatformCapabilityProvider
}

// NewDeviceActivityStrategy creates the device activity strategy.
func NewDeviceActivityStrategy(provider port.PlatformCapabilityProvider) *DeviceActivityStrategy {
	return &DeviceActivityStrategy{provider: provider}
}

// Acquire implements AcquisitionStrategy.
func (s *DeviceActivityStrategy) Acquire(ctx context.Context) (entity.Grant, error) {
	log := logging.FromContext(ctx)

	if !s.provider.IdleDetectionSupported() {
		log.Warn().Msg("idle detection not supported, granting degraded")
		return degradedIdleGrant(), nil
	}

	state, err := s.provider.RequestIdlePermission(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return entity.Grant{}, ctxErr
		}
		if errors.Is(err, port.ErrHostAPIUnavailable) {
			log.Warn().Err(err).Msg("idle detection vanished, granting degraded")
			return degradedIdleGrant(), nil
		}
		return entity.Grant{}, entity.NewAcquisitionError(entity.ErrorKindHostPermissionError, err.Error(), err)
	}

	if state != port.IdlePermissionGranted {
		return entity.Grant{}, entity.NewAcquisitionError(entity.ErrorKindActivityPermissionDenied, idleDeniedMessage, nil)
	}
	return entity.Grant{Status: string(state)}, nil
}

func degradedIdleGrant() entity.Grant {
	return entity.Grant{
		Status:      string(port.IdlePermissionGranted),
		Note:        noteIdleUnsupported,
		Degradation: entity.ErrorKindHostAPIUnavailable,
	}
}

// EmotionInputStrategy acquires microphone access for voice mood input.
// Text input is always available, so anything short of an explicit denial
// degrades to a text grant.
type EmotionInputStrategy struct {
	provider port.PlatformCapabilityProvider
}

// NewEmotionInputStrategy creates the emotion input strategy.
func NewEmotionInputStrategy(provider port.PlatformCapabilityProvider) *EmotionInputStrategy {
	return &EmotionInputStrategy{provider: provider}
}

// Acquire implements AcquisitionStrategy.
func (s *EmotionInputStrategy) Acquire(ctx context.Context) (entity.Grant, error) {
	log := logging.FromContext(ctx)

	if !s.provider.MediaCaptureSupported() {
		log.Warn().Msg("media capture not supported, granting text input")
		return textGrant(noteVoiceUnsupported, entity.ErrorKindHostAPIUnavailable), nil
	}

	stream, err := s.provider.RequestMediaPermission(ctx, port.MediaConstraints{Audio: true})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return entity.Grant{}, ctxErr
		}
		if errors.Is(err, port.ErrMediaNotAllowed) {
			return entity.Grant{}, entity.NewAcquisitionError(entity.ErrorKindMicrophoneDenied, microphoneDeniedError, err)
		}
		kind := entity.ErrorKindHostPermissionError
		if errors.Is(err, port.ErrHostAPIUnavailable) {
			kind = entity.ErrorKindHostAPIUnavailable
		}
		log.Warn().Err(err).Str("degradation", string(kind)).Msg("microphone unavailable, granting text input")
		return textGrant(noteVoiceUnavailable, kind), nil
	}

	// Only the grant is needed, never the audio.
	stopped := releaseStream(stream)
	log.Debug().Int("tracks_stopped", stopped).Msg("microphone granted")

	return entity.Grant{Mode: entity.InputModeVoice, Status: "granted"}, nil
}

// textGrant is the voice fallback; degradation records what stopped voice.
func textGrant(note string, degradation entity.ErrorKind) entity.Grant {
	return entity.Grant{
		Mode:        entity.InputModeText,
		Status:      "granted",
		Note:        note,
		Degradation: degradation,
	}
}

func releaseStream(stream port.MediaStream) int {
	if stream == nil {
		return 0
	}
	tracks := stream.Tracks()
	for _, track := range tracks {
		track.Stop()
	}
	return len(tracks)
}
