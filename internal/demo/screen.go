package demo

import (
	"fmt"
	"sync"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/infobar/internal/config"
	"github.com/ytget/infobar/internal/connectivity"
	"github.com/ytget/infobar/internal/infobar"
	"github.com/ytget/infobar/internal/logger"
	"github.com/ytget/infobar/internal/model"
	"github.com/ytget/infobar/internal/ui"
)

// FillerRows is the number of list rows below the buttons, so the list can scroll
const FillerRows = 40

// Option configures a Screen
type Option func(*Screen)

// WithMonitor provides the connectivity source used when network monitoring is enabled
func WithMonitor(m *connectivity.Monitor) Option {
	return func(s *Screen) { s.monitor = m }
}

// WithStateOptions sets the options of every host state the screen creates
func WithStateOptions(opts ...infobar.Option) Option {
	return func(s *Screen) { s.stateOpts = opts }
}

// WithLogger sets the screen logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Screen) {
		if l != nil {
			s.log = l
		}
	}
}

// Screen is the demo window content: a scrolling list of banner buttons
// under an InfoHost that is rebuilt whenever the settings change.
type Screen struct {
	window       fyne.Window
	settings     *config.Settings
	localization *ui.Localization
	layout       *Layout
	monitor      *connectivity.Monitor
	log          *zap.Logger

	mu        sync.Mutex
	stateOpts []infobar.Option
	host      *ui.InfoHost

	dismissLabel *widget.Label
	statusLabel  *widget.Label
	dismissed    atomic.Int64
	settingsDlg  *SettingsDialog
}

// NewScreen creates the demo screen and sets it as the window content
func NewScreen(window fyne.Window, app fyne.App, opts ...Option) *Screen {
	s := &Screen{
		window:       window,
		settings:     config.NewSettings(app),
		localization: ui.NewLocalization(),
		layout:       NewLayout(app.Driver().Device()),
		log:          logger.Named("demo"),
	}
	for _, opt := range opts {
		opt(s)
	}

	window.SetTitle(s.localization.GetText(ui.KeyAppTitle))

	s.dismissLabel = widget.NewLabel(fmt.Sprintf(s.localization.GetText(ui.KeyDismissCount), 0))
	s.statusLabel = widget.NewLabel("")
	s.statusLabel.Wrapping = fyne.TextWrapWord
	s.settingsDlg = NewSettingsDialog(s.settings, s.localization, window, s.Rebuild)

	s.createMenu()
	s.Rebuild()
	return s
}

// Host returns the current banner host
func (s *Screen) Host() *ui.InfoHost {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.host
}

// Settings returns the persisted demo settings
func (s *Screen) Settings() *config.Settings {
	return s.settings
}

// DismissCount returns how many times the dismiss callback ran
func (s *Screen) DismissCount() int {
	return int(s.dismissed.Load())
}

// ShowSample shows the sample of kind k for the configured duration
func (s *Screen) ShowSample(k Kind) (bool, error) {
	sample, ok := SampleOf(k)
	if !ok {
		return false, fmt.Errorf("unknown sample %q", k)
	}
	return s.show(sample.Data)
}

// ShowConfigured shows the default sample in the configured banner style
func (s *Screen) ShowConfigured() (bool, error) {
	sample, _ := SampleOf(KindDefault)
	return s.show(sample.Data.WithStyle(s.settings.GetBannerStyle()))
}

// Dismiss hides the current banner
func (s *Screen) Dismiss() {
	s.Host().Dismiss()
}

// ShowSettings opens the settings dialog
func (s *Screen) ShowSettings() {
	s.settingsDlg.Show()
}

// ApplyConfig rebuilds the host with timings from cfg. Safe to call from any goroutine.
func (s *Screen) ApplyConfig(cfg *config.AppConfig) {
	s.mu.Lock()
	s.stateOpts = cfg.HostStateOptions()
	s.mu.Unlock()

	s.log.Info("Configuration reloaded",
		zap.Duration("short", cfg.Timing.ShortDuration),
		zap.Duration("long", cfg.Timing.LongDuration))
	fyne.Do(s.Rebuild)
}

// Rebuild replaces the host with one configured from the current settings
func (s *Screen) Rebuild() {
	direction := s.settings.GetDirection()

	s.mu.Lock()
	old := s.host
	stateOpts := append([]infobar.Option{
		infobar.WithLogger(logger.Named("infobar")),
	}, s.stateOpts...)
	s.mu.Unlock()

	if old != nil {
		old.Close()
	}

	list := s.createList()
	scroller := container.NewVScroll(list)

	opts := []ui.HostOption{
		ui.WithDirection(direction),
		ui.WithAnimationType(s.settings.GetAnimationType()),
		ui.WithSwipeToDismiss(s.settings.GetSwipeToDismiss()),
		ui.WithScrollSource(scroller, RowHeight),
		ui.WithScrollThreshold(s.settings.GetScrollThreshold()),
		ui.WithRenderer(s.render),
		ui.WithLocalization(s.localization),
		ui.WithState(infobar.NewHostState(stateOpts...)),
	}
	if s.settings.GetNetworkMonitoring() && s.monitor != nil {
		opts = append(opts, ui.WithNetworkMonitoring(s.monitor))
	}

	host := ui.NewInfoHost(scroller, opts...)
	host.SetOnDismiss(s.onDismiss)

	s.mu.Lock()
	s.host = host
	s.mu.Unlock()

	s.log.Debug("Host rebuilt",
		zap.String("direction", direction.String()),
		zap.String("animation", s.settings.GetAnimationType().String()),
		zap.Bool("network_monitoring", s.settings.GetNetworkMonitoring()))

	s.window.SetContent(host)
}

// Close releases the current host
func (s *Screen) Close() {
	if host := s.Host(); host != nil {
		host.Close()
	}
}

func (s *Screen) show(data model.BannerData) (bool, error) {
	duration := s.settings.GetDefaultDuration()
	accepted, err := s.Host().Show(data, duration)
	if err != nil {
		s.log.Error("Failed to show banner", zap.Error(err))
		dialog.ShowError(err, s.window)
		return false, err
	}

	if !accepted {
		s.setStatus(s.localization.GetText(ui.KeyBannerDropped))
		return false, nil
	}
	s.setStatus("")
	s.log.Debug("Banner requested",
		zap.String("title", data.GetDisplayTitle()),
		zap.String("duration", duration.String()))
	return true, nil
}

func (s *Screen) onDismiss() {
	n := s.dismissed.Add(1)
	fyne.Do(func() {
		s.dismissLabel.SetText(fmt.Sprintf(s.localization.GetText(ui.KeyDismissCount), n))
	})
}

func (s *Screen) setStatus(text string) {
	fyne.Do(func() {
		s.statusLabel.SetText(text)
	})
}

// render decorates the default banner with the sample's gradient or action,
// or swaps it for a slide bar
func (s *Screen) render(req ui.BannerRequest) fyne.CanvasObject {
	sample, ok := Lookup(req.Data)
	if ok && sample.Slide {
		return ui.NewSlideInfoBar(req.Data, model.PlainText(s.localization.GetText(ui.KeySlideComplete)), req.Direction, func() {
			s.log.Info("Banner slide completed", zap.String("title", req.Data.GetDisplayTitle()))
			if req.OnClose != nil {
				req.OnClose()
			}
		})
	}

	bar := ui.NewInfoBar(req.Data, req.Direction, req.Infinite, req.OnClose)
	if !ok {
		return bar
	}
	if sample.Gradient {
		bar.Gradient = &ui.Gradient{Start: gradientStart, End: gradientEnd, Angle: 90}
	}
	if sample.Action {
		bar.Action = &ui.Action{
			Text: s.localization.GetText(ui.KeyAction),
			OnTapped: func() {
				s.log.Info("Banner action tapped", zap.String("title", req.Data.GetDisplayTitle()))
				if req.OnClose != nil {
					req.OnClose()
				}
			},
		}
	}
	return bar
}

func (s *Screen) createList() *fyne.Container {
	settingsBtn := widget.NewButtonWithIcon(s.localization.GetText(ui.KeySettings), theme.SettingsIcon(), s.ShowSettings)
	settingsBtn.Importance = widget.LowImportance

	buttons := []fyne.CanvasObject{}
	for _, sample := range Samples() {
		kind := sample.Kind
		buttons = append(buttons, s.layout.Button(sample.Label, func() {
			_, _ = s.ShowSample(kind)
		}))
	}

	showBtn := s.layout.Button(s.localization.GetText(ui.KeyShowBanner), func() {
		_, _ = s.ShowConfigured()
	})
	dismissBtn := s.layout.Button(s.localization.GetText(ui.KeyDismiss), s.Dismiss)

	rows := []fyne.CanvasObject{
		container.NewBorder(nil, nil, nil, settingsBtn, s.dismissLabel),
		s.layout.ButtonGrid(buttons...),
		s.layout.ButtonGrid(showBtn, dismissBtn),
		s.statusLabel,
		widget.NewSeparator(),
	}
	for i := 1; i <= FillerRows; i++ {
		rows = append(rows, s.layout.Row(widget.NewLabel(fmt.Sprintf(s.localization.GetText(ui.KeyListItem), i))))
	}

	sp := s.layout.Spacing()
	return container.New(layout.NewCustomPaddedLayout(sp, sp, sp, sp), container.NewVBox(rows...))
}

func (s *Screen) createMenu() {
	settingsItem := fyne.NewMenuItem(s.localization.GetText(ui.KeySettings), s.ShowSettings)
	dismissItem := fyne.NewMenuItem(s.localization.GetText(ui.KeyDismiss), s.Dismiss)

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(s.localization.GetText(ui.KeyAppTitle), settingsItem, dismissItem),
	)
	s.window.SetMainMenu(mainMenu)
}
