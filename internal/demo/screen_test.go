package demo

import (
	"fmt"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/infobar/internal/config"
	"github.com/ytget/infobar/internal/infobar"
	"github.com/ytget/infobar/internal/model"
	"github.com/ytget/infobar/internal/ui"
)

const (
	waitFor = time.Second
	tick    = 5 * time.Millisecond
)

func newTestScreen(t *testing.T) *Screen {
	t.Helper()
	a := test.NewApp()
	w := a.NewWindow("demo")
	s := NewScreen(w, a)
	t.Cleanup(s.Close)
	return s
}

func TestScreen_ShowIndefiniteAndDismiss(t *testing.T) {
	s := newTestScreen(t)
	s.Settings().SetDefaultDuration(model.DurationIndefinite)

	accepted, err := s.ShowSample(KindWarning)
	require.NoError(t, err)
	assert.True(t, accepted)
	assert.True(t, s.Host().State().IsInfinite())

	accepted, err = s.ShowSample(KindError)
	require.NoError(t, err)
	assert.False(t, accepted)
	require.Eventually(t, func() bool {
		return s.statusLabel.Text == s.localization.GetText(ui.KeyBannerDropped)
	}, waitFor, tick)

	s.Dismiss()
	assert.Equal(t, 1, s.DismissCount())
	assert.False(t, s.Host().State().IsVisible())
	require.Eventually(t, func() bool {
		return s.dismissLabel.Text == fmt.Sprintf(s.localization.GetText(ui.KeyDismissCount), 1)
	}, waitFor, tick)
}

func TestScreen_ShowConfiguredUsesStyle(t *testing.T) {
	s := newTestScreen(t)
	s.Settings().SetDefaultDuration(model.DurationIndefinite)
	s.Settings().SetBannerStyle(model.StyleError)

	accepted, err := s.ShowConfigured()
	require.NoError(t, err)
	require.True(t, accepted)

	current, ok := s.Host().State().Current()
	require.True(t, ok)
	assert.Equal(t, model.StyleError, current.Style)
}

func TestScreen_ShowUnknownSample(t *testing.T) {
	s := newTestScreen(t)

	accepted, err := s.ShowSample(Kind("missing"))
	assert.Error(t, err)
	assert.False(t, accepted)
}

func TestScreen_RebuildAppliesSettings(t *testing.T) {
	s := newTestScreen(t)
	old := s.Host()
	assert.Equal(t, model.DirectionTop, old.Direction())

	s.Settings().SetDirection(model.DirectionBottom)
	s.Rebuild()

	host := s.Host()
	assert.NotSame(t, old, host)
	assert.Equal(t, model.DirectionBottom, host.Direction())

	_, err := old.Show(model.NewBannerData("late", ""), model.DurationShort)
	assert.ErrorIs(t, err, infobar.ErrClosed)
}

func TestScreen_ApplyConfig(t *testing.T) {
	s := newTestScreen(t)
	old := s.Host()

	s.ApplyConfig(&config.AppConfig{Timing: config.TimingConfig{
		ShortDuration: time.Second,
		LongDuration:  2 * time.Second,
		ExitBuffer:    0,
		ProbeInterval: time.Second,
	}})

	require.Eventually(t, func() bool { return s.Host() != old }, waitFor, tick)
	assert.Len(t, s.stateOpts, 2)
}

func TestScreen_RenderDecoratesSamples(t *testing.T) {
	s := newTestScreen(t)

	gradient, _ := SampleOf(KindGradient)
	bar, ok := s.render(ui.BannerRequest{Data: gradient.Data, Direction: model.DirectionTop}).(*ui.InfoBar)
	require.True(t, ok)
	assert.NotNil(t, bar.Gradient)
	assert.Nil(t, bar.Action)

	closed := 0
	action, _ := SampleOf(KindAction)
	bar, ok = s.render(ui.BannerRequest{
		Data:      action.Data,
		Direction: model.DirectionTop,
		OnClose:   func() { closed++ },
	}).(*ui.InfoBar)
	require.True(t, ok)
	require.NotNil(t, bar.Action)
	assert.Nil(t, bar.Gradient)

	bar.Action.OnTapped()
	assert.Equal(t, 1, closed)

	plain, ok := s.render(ui.BannerRequest{Data: model.NewBannerData("custom", "")}).(*ui.InfoBar)
	require.True(t, ok)
	assert.Nil(t, plain.Gradient)
	assert.Nil(t, plain.Action)
}

func TestScreen_RenderSlideSample(t *testing.T) {
	s := newTestScreen(t)

	closed := 0
	sample, _ := SampleOf(KindSlide)
	slide, ok := s.render(ui.BannerRequest{
		Data:      sample.Data,
		Direction: model.DirectionTop,
		Infinite:  true,
		OnClose:   func() { closed++ },
	}).(*ui.SlideInfoBar)
	require.True(t, ok)
	assert.Equal(t, "Action completed", slide.DoneText.String())

	slide.CompleteDelay = 0
	slide.Resize(fyne.NewSize(400, ui.BannerHeight))
	slide.Knob().Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(400, 0)})
	slide.Knob().DragEnd()

	assert.True(t, slide.Done())
	assert.Equal(t, 1, closed)
}
