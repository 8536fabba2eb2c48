package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/infobar/internal/animation"
	"github.com/ytget/infobar/internal/model"
	"github.com/ytget/infobar/internal/scroll"
)

// Settings keys for Fyne preferences
const (
	KeyDirection         = "banner_direction"
	KeyAnimationType     = "banner_animation_type"
	KeyNetworkMonitoring = "network_monitoring"
	KeySwipeToDismiss    = "swipe_to_dismiss"
	KeyScrollThreshold   = "scroll_threshold"
	KeyDefaultDuration   = "default_duration"
	KeyBannerStyle       = "banner_style"
)

// Default values
const (
	DefaultDirection         = model.DirectionTop
	DefaultAnimationType     = animation.SlideVertically
	DefaultNetworkMonitoring = false
	DefaultSwipeToDismiss    = false
	DefaultScrollThreshold   = scroll.DefaultThreshold
	DefaultDuration          = model.DurationShort
	DefaultBannerStyle       = model.StyleDefault
)

// Scroll threshold bounds
const (
	MinScrollThreshold = 10
	MaxScrollThreshold = 500
)

// Settings manages the demo's host configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDirection returns the configured banner edge
func (s *Settings) GetDirection() model.Direction {
	value := s.app.Preferences().String(KeyDirection)
	if value == "" {
		s.SetDirection(DefaultDirection)
		return DefaultDirection
	}
	return model.ParseDirection(value)
}

// SetDirection sets the banner edge
func (s *Settings) SetDirection(d model.Direction) {
	s.app.Preferences().SetString(KeyDirection, string(model.ParseDirection(string(d))))
}

// GetAnimationType returns the configured transition
func (s *Settings) GetAnimationType() animation.Type {
	value := s.app.Preferences().String(KeyAnimationType)
	t, err := animation.ParseType(value)
	if err != nil {
		s.SetAnimationType(DefaultAnimationType)
		return DefaultAnimationType
	}
	return t
}

// SetAnimationType sets the transition; unknown types fall back to the default
func (s *Settings) SetAnimationType(t animation.Type) {
	if _, err := animation.ParseType(string(t)); err != nil {
		t = DefaultAnimationType
	}
	s.app.Preferences().SetString(KeyAnimationType, string(t))
}

// GetNetworkMonitoring returns whether the offline banner is enabled
func (s *Settings) GetNetworkMonitoring() bool {
	return s.app.Preferences().BoolWithFallback(KeyNetworkMonitoring, DefaultNetworkMonitoring)
}

// SetNetworkMonitoring enables or disables the offline banner
func (s *Settings) SetNetworkMonitoring(enabled bool) {
	s.app.Preferences().SetBool(KeyNetworkMonitoring, enabled)
}

// GetSwipeToDismiss returns whether banners can be swiped away
func (s *Settings) GetSwipeToDismiss() bool {
	return s.app.Preferences().BoolWithFallback(KeySwipeToDismiss, DefaultSwipeToDismiss)
}

// SetSwipeToDismiss enables or disables swipe to dismiss
func (s *Settings) SetSwipeToDismiss(enabled bool) {
	s.app.Preferences().SetBool(KeySwipeToDismiss, enabled)
}

// GetScrollThreshold returns the scroll commit threshold in pixels
func (s *Settings) GetScrollThreshold() int {
	value := s.app.Preferences().Int(KeyScrollThreshold)
	if value <= 0 {
		s.SetScrollThreshold(DefaultScrollThreshold)
		return DefaultScrollThreshold
	}
	return value
}

// SetScrollThreshold sets the scroll commit threshold
func (s *Settings) SetScrollThreshold(threshold int) {
	if threshold < MinScrollThreshold {
		threshold = MinScrollThreshold
	}
	if threshold > MaxScrollThreshold {
		threshold = MaxScrollThreshold
	}
	s.app.Preferences().SetInt(KeyScrollThreshold, threshold)
}

// GetDefaultDuration returns the duration used by the demo's show buttons
func (s *Settings) GetDefaultDuration() model.Duration {
	d, err := model.ParseDuration(s.app.Preferences().String(KeyDefaultDuration))
	if err != nil {
		s.SetDefaultDuration(DefaultDuration)
		return DefaultDuration
	}
	return d
}

// SetDefaultDuration sets the demo duration; unknown values fall back to the default
func (s *Settings) SetDefaultDuration(d model.Duration) {
	if _, err := model.ParseDuration(string(d)); err != nil {
		d = DefaultDuration
	}
	s.app.Preferences().SetString(KeyDefaultDuration, string(d))
}

// GetBannerStyle returns the style of the demo's primary banner
func (s *Settings) GetBannerStyle() model.BannerStyle {
	value := model.BannerStyle(s.app.Preferences().String(KeyBannerStyle))
	for _, style := range model.BannerStyles() {
		if style == value {
			return value
		}
	}
	s.SetBannerStyle(DefaultBannerStyle)
	return DefaultBannerStyle
}

// SetBannerStyle sets the style of the demo's primary banner
func (s *Settings) SetBannerStyle(style model.BannerStyle) {
	s.app.Preferences().SetString(KeyBannerStyle, string(style))
}

// GetAnimationTypeOptions returns available transitions
func (s *Settings) GetAnimationTypeOptions() []animation.Type {
	return animation.Types()
}

// GetDurationOptions returns available durations
func (s *Settings) GetDurationOptions() []model.Duration {
	return model.Durations()
}
