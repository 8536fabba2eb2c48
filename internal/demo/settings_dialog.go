package demo

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/infobar/internal/animation"
	"github.com/ytget/infobar/internal/config"
	"github.com/ytget/infobar/internal/model"
	"github.com/ytget/infobar/internal/ui"
)

// SettingsDialog edits the host configuration
type SettingsDialog struct {
	settings     *config.Settings
	localization *ui.Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	directionRadio  *widget.RadioGroup
	animationSelect *widget.Select
	durationSelect  *widget.Select
	styleSelect     *widget.Select
	networkCheck    *widget.Check
	swipeCheck      *widget.Check
	thresholdEntry  *widget.Entry
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings are stored.
func NewSettingsDialog(settings *config.Settings, l *ui.Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: l,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	sd.directionRadio = widget.NewRadioGroup([]string{
		string(model.DirectionTop),
		string(model.DirectionBottom),
	}, nil)
	sd.directionRadio.Horizontal = true
	sd.directionRadio.Required = true

	animationOptions := []string{}
	for _, t := range sd.settings.GetAnimationTypeOptions() {
		animationOptions = append(animationOptions, string(t))
	}
	sd.animationSelect = widget.NewSelect(animationOptions, nil)

	durationOptions := []string{}
	for _, d := range sd.settings.GetDurationOptions() {
		durationOptions = append(durationOptions, string(d))
	}
	sd.durationSelect = widget.NewSelect(durationOptions, nil)

	styleOptions := []string{}
	for _, s := range model.BannerStyles() {
		styleOptions = append(styleOptions, string(s))
	}
	sd.styleSelect = widget.NewSelect(styleOptions, nil)

	sd.networkCheck = widget.NewCheck(sd.localization.GetText(ui.KeyNetworkMonitoring), nil)
	sd.swipeCheck = widget.NewCheck(sd.localization.GetText(ui.KeySwipeToDismiss), nil)

	sd.thresholdEntry = widget.NewEntry()
	sd.thresholdEntry.SetPlaceHolder(strconv.Itoa(config.MinScrollThreshold) + "-" + strconv.Itoa(config.MaxScrollThreshold))

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(ui.KeyDirection)+":"),
		sd.directionRadio,

		widget.NewLabel(sd.localization.GetText(ui.KeyAnimationType)+":"),
		sd.animationSelect,

		widget.NewLabel(sd.localization.GetText(ui.KeyDefaultDuration)+":"),
		sd.durationSelect,

		widget.NewLabel(sd.localization.GetText(ui.KeyBannerStyle)+":"),
		sd.styleSelect,

		widget.NewSeparator(),
		sd.networkCheck,
		sd.swipeCheck,

		widget.NewLabel(sd.localization.GetText(ui.KeyScrollThreshold)+":"),
		sd.thresholdEntry,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(ui.KeySettings),
		sd.localization.GetText(ui.KeySave),
		sd.localization.GetText(ui.KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(420, 520))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.directionRadio.SetSelected(string(sd.settings.GetDirection()))
	sd.animationSelect.SetSelected(string(sd.settings.GetAnimationType()))
	sd.durationSelect.SetSelected(string(sd.settings.GetDefaultDuration()))
	sd.styleSelect.SetSelected(string(sd.settings.GetBannerStyle()))
	sd.networkCheck.SetChecked(sd.settings.GetNetworkMonitoring())
	sd.swipeCheck.SetChecked(sd.settings.GetSwipeToDismiss())
	sd.thresholdEntry.SetText(strconv.Itoa(sd.settings.GetScrollThreshold()))
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.directionRadio.Selected != "" {
		sd.settings.SetDirection(model.ParseDirection(sd.directionRadio.Selected))
	}

	if sd.animationSelect.Selected != "" {
		sd.settings.SetAnimationType(animation.Type(sd.animationSelect.Selected))
	}

	if sd.durationSelect.Selected != "" {
		sd.settings.SetDefaultDuration(model.Duration(sd.durationSelect.Selected))
	}

	if sd.styleSelect.Selected != "" {
		sd.settings.SetBannerStyle(model.BannerStyle(sd.styleSelect.Selected))
	}

	sd.settings.SetNetworkMonitoring(sd.networkCheck.Checked)
	sd.settings.SetSwipeToDismiss(sd.swipeCheck.Checked)

	if thresholdStr := sd.thresholdEntry.Text; thresholdStr != "" {
		if threshold, err := strconv.Atoi(thresholdStr); err == nil {
			sd.settings.SetScrollThreshold(threshold)
		}
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(
		sd.localization.GetText(ui.KeySettings),
		sd.localization.GetText(ui.KeySettingsSaved),
		sd.window,
	)
}
