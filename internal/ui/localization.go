package ui

// Localization holds the UI text of banners and the demo. Only English ships.
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys
const (
	KeyAppTitle           = "app_title"
	KeyOfflineTitle       = "offline_title"
	KeyOfflineDescription = "offline_description"
	KeyAction             = "action"
	KeyDismiss            = "dismiss"
	KeySettings           = "settings"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyDirection          = "direction"
	KeyAnimationType      = "animation_type"
	KeyNetworkMonitoring  = "network_monitoring"
	KeySwipeToDismiss     = "swipe_to_dismiss"
	KeyScrollThreshold    = "scroll_threshold"
	KeyDefaultDuration    = "default_duration"
	KeyBannerStyle        = "banner_style"
	KeyShowBanner         = "show_banner"
	KeyDismissCount       = "dismiss_count"
	KeySettingsSaved      = "settings_saved"
	KeyListItem           = "list_item"
	KeyBannerDropped      = "banner_dropped"
	KeySlideComplete      = "slide_complete"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language if it is known
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns the text for key, falling back to English and then the key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "InfoBar Demo",
		KeyOfflineTitle:       "You're offline",
		KeyOfflineDescription: "Check your internet connection",
		KeyAction:             "Action",
		KeyDismiss:            "Dismiss",
		KeySettings:           "Settings",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyDirection:          "Direction",
		KeyAnimationType:      "Animation",
		KeyNetworkMonitoring:  "Network monitoring",
		KeySwipeToDismiss:     "Swipe to dismiss",
		KeyScrollThreshold:    "Scroll threshold",
		KeyDefaultDuration:    "Duration",
		KeyBannerStyle:        "Style",
		KeyShowBanner:         "Show",
		KeyDismissCount:       "Dismissed: %d",
		KeySettingsSaved:      "Settings saved",
		KeyListItem:           "Item %d",
		KeyBannerDropped:      "Banner dropped, an indefinite banner is active",
		KeySlideComplete:      "Action completed",
	}
}
