package styles

import "github.com/oneuniverse/onboard/internal/domain/entity"

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCalendar = "\uf073" // calendar
	IconVideo    = "\uf03d" // video camera
	IconDesktop  = "\uf108" // desktop
	IconMic      = "\uf130" // microphone
	IconShield   = "\uf132" // shield

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconMinus   = "\uf068" // minus (skipped)
	IconStop    = "\uf04d" // stop (cancelled)
	IconLock    = "\uf023" // lock (required)

	IconCheckboxEmpty   = "\uf096" // unchecked
	IconCheckboxChecked = "\uf046" // checked

	IconCursor   = "\uf054" // chevron-right
	IconDatabase = "\uf1c0" // database
)

// CapabilityIcon returns the icon shown next to a capability.
func CapabilityIcon(id entity.CapabilityID) string {
	switch id {
	case entity.CapabilityCalendar:
		return IconCalendar
	case entity.CapabilityVideoHistory:
		return IconVideo
	case entity.CapabilityDeviceActivity:
		return IconDesktop
	case entity.CapabilityEmotionInput:
		return IconMic
	default:
		return IconShield
	}
}
