package ui

import (
	"context"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/infobar/internal/animation"
	"github.com/ytget/infobar/internal/connectivity"
	"github.com/ytget/infobar/internal/infobar"
	"github.com/ytget/infobar/internal/logger"
	"github.com/ytget/infobar/internal/model"
	"github.com/ytget/infobar/internal/scroll"
)

type hostConfig struct {
	direction       model.Direction
	animationType   animation.Type
	monitor         *connectivity.Monitor
	swipeToDismiss  bool
	scroll          *container.Scroll
	rowHeight       float32
	scrollThreshold int
	renderer        Renderer
	localization    *Localization
	state           *infobar.HostState
}

// HostOption configures an InfoHost
type HostOption func(*hostConfig)

// WithDirection sets the edge banners enter from
func WithDirection(d model.Direction) HostOption {
	return func(c *hostConfig) { c.direction = d }
}

// WithAnimationType sets the enter/exit transition
func WithAnimationType(t animation.Type) HostOption {
	return func(c *hostConfig) { c.animationType = t }
}

// WithNetworkMonitoring shows the offline banner while monitor reports offline
func WithNetworkMonitoring(monitor *connectivity.Monitor) HostOption {
	return func(c *hostConfig) { c.monitor = monitor }
}

// WithSwipeToDismiss lets the user swipe an indefinite banner away
func WithSwipeToDismiss(enabled bool) HostOption {
	return func(c *hostConfig) { c.swipeToDismiss = enabled }
}

// WithScrollSource hides the banner while s scrolls down. rowHeight is the
// height of one list row in s.
func WithScrollSource(s *container.Scroll, rowHeight float32) HostOption {
	return func(c *hostConfig) {
		c.scroll = s
		c.rowHeight = rowHeight
	}
}

// WithScrollThreshold sets the distance that commits a scroll direction
func WithScrollThreshold(threshold int) HostOption {
	return func(c *hostConfig) { c.scrollThreshold = threshold }
}

// WithRenderer replaces the default InfoBar renderer
func WithRenderer(r Renderer) HostOption {
	return func(c *hostConfig) {
		if r != nil {
			c.renderer = r
		}
	}
}

// WithLocalization sets the text catalog used for the default offline banner
func WithLocalization(l *Localization) HostOption {
	return func(c *hostConfig) {
		if l != nil {
			c.localization = l
		}
	}
}

// WithState uses an existing state instead of creating one
func WithState(s *infobar.HostState) HostOption {
	return func(c *hostConfig) { c.state = s }
}

// ShouldBeVisible combines banner visibility with the scroll direction.
// Scrolling only hides a banner that is logically visible.
func ShouldBeVisible(visible bool, dir model.ScrollDirection) bool {
	if !visible {
		return true
	}
	return dir.AllowsBanner()
}

// InfoHost lays banners over content. The primary banner follows the host
// state; the offline banner follows connectivity and is independent of it.
type InfoHost struct {
	widget.BaseWidget

	cfg        hostConfig
	state      *infobar.HostState
	transition animation.Transition
	log        *zap.Logger

	content    fyne.CanvasObject
	layer      *bannerLayout
	swipe      *Swipeable
	bannerBox  *fyne.Container
	offline    *bannerLayout
	offlineBar *InfoBar
	offlineBox *fyne.Container
	root       *fyne.Container

	// Fields below are only touched on the Fyne goroutine
	shownID     uuid.UUID
	banner      fyne.CanvasObject
	visible     bool
	bannerAnim  *fyne.Animation
	offlineAnim *fyne.Animation
	offset      *animation.OffsetAnimator
	tracker     *scroll.Tracker
	watcher     *scroll.Watcher

	mu        sync.Mutex
	online    bool
	scrollDir model.ScrollDirection
	cancel    context.CancelFunc
	closed    bool
}

// NewInfoHost creates a host over content
func NewInfoHost(content fyne.CanvasObject, opts ...HostOption) *InfoHost {
	cfg := hostConfig{
		direction:     model.DirectionTop,
		animationType: animation.SlideVertically,
		renderer:      DefaultRenderer,
		localization:  NewLocalization(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	h := &InfoHost{
		cfg:        cfg,
		transition: animation.NewTransition(cfg.animationType, cfg.direction),
		log:        logger.Named("ui.host"),
		content:    content,
		scrollDir:  model.ScrollSettledAtTop,
		online:     true,
	}

	h.state = cfg.state
	if h.state == nil {
		h.state = infobar.NewHostState(infobar.WithDirection(cfg.direction))
	}
	h.state.SetDirection(cfg.direction)
	h.state.SetStrategy(h.transition)

	h.layer = &bannerLayout{direction: cfg.direction, transform: animation.Identity}
	h.swipe = NewSwipeable(nil, h.handleGesture)
	h.swipe.OnDrag = h.handleDrag
	h.swipe.OnRelease = h.handleRelease
	h.bannerBox = container.New(h.layer, h.swipe)
	h.bannerBox.Hide()

	h.offline = &bannerLayout{direction: cfg.direction, transform: animation.Identity}
	h.offlineBar = NewOfflineInfoBar(DefaultOfflineBanner(cfg.localization), cfg.direction)
	h.offlineBox = container.New(h.offline, h.offlineBar)
	h.offlineBox.Hide()

	h.root = container.NewStack(content, h.bannerBox, h.offlineBox)

	h.offset = animation.NewOffsetAnimator(func(v float32) {
		h.layer.offsetY = v
		h.bannerBox.Refresh()
	})

	if cfg.scroll != nil {
		h.tracker = scroll.NewTracker(cfg.scrollThreshold, scroll.Position{})
		h.state.AttachTracker(h.tracker)
		if cfg.scrollThreshold > 0 {
			h.state.SetScrollThreshold(cfg.scrollThreshold)
		}
		h.watcher = scroll.NewWatcher(h.tracker, cfg.rowHeight, func(dir model.ScrollDirection) {
			fyne.Do(func() { h.setScrollDirection(dir) })
		})
		h.watcher.Attach(cfg.scroll)
	}

	h.state.SetOnChange(func(infobar.Snapshot) {
		fyne.Do(h.sync)
	})

	if cfg.monitor != nil {
		h.startMonitoring()
	}

	h.ExtendBaseWidget(h)
	h.sync()
	return h
}

// CreateRenderer implements fyne.Widget
func (h *InfoHost) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(h.root)
}

// State returns the state machine driving the primary banner
func (h *InfoHost) State() *infobar.HostState {
	return h.state
}

// Show forwards to the state machine
func (h *InfoHost) Show(data model.BannerData, duration model.Duration) (bool, error) {
	return h.state.Show(data, duration)
}

// Dismiss hides the current banner
func (h *InfoHost) Dismiss() {
	h.state.Dismiss()
}

// SetOnDismiss registers the dismiss callback
func (h *InfoHost) SetOnDismiss(cb func()) {
	h.state.SetOnDismiss(cb)
}

// SetOfflineBanner replaces the offline banner content
func (h *InfoHost) SetOfflineBanner(data model.BannerData) error {
	return h.state.SetOfflineBanner(data)
}

// SetScrollThreshold changes the scroll distance that commits a direction
func (h *InfoHost) SetScrollThreshold(threshold int) {
	h.state.SetScrollThreshold(threshold)
}

// Direction returns the edge banners enter from
func (h *InfoHost) Direction() model.Direction {
	return h.state.Direction()
}

// Online returns the last connectivity state received
func (h *InfoHost) Online() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.online
}

// ScrollDirection returns the last committed scroll direction
func (h *InfoHost) ScrollDirection() model.ScrollDirection {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.scrollDir
}

// BannerShown returns true while the banner layer is on screen
func (h *InfoHost) BannerShown() bool {
	return h.bannerBox.Visible()
}

// OfflineShown returns true while the offline banner is on screen
func (h *InfoHost) OfflineShown() bool {
	return h.offlineBox.Visible()
}

// Close stops the state machine, the connectivity subscription and scroll tracking
func (h *InfoHost) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	cancel := h.cancel
	h.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if h.watcher != nil {
		h.watcher.Stop()
	}
	h.offset.Stop()
	h.state.Close()
	h.log.Debug("Info host closed")
}

// sync brings the banner layer in line with the state machine
func (h *InfoHost) sync() {
	snap := h.state.Snapshot()

	if snap.Visibility.IsVisible() && snap.Current != nil {
		if !h.visible || snap.SessionID != h.shownID {
			h.shownID = snap.SessionID
			h.showBanner(*snap.Current, snap.Infinite)
		}
		h.visible = true
	} else if h.visible {
		h.visible = false
		h.hideBanner()
	}

	h.swipe.SetEnabled(h.cfg.swipeToDismiss && snap.Infinite && h.visible)

	if !h.Online() {
		h.refreshOffline()
	}
	h.updateOffset()
}

func (h *InfoHost) showBanner(data model.BannerData, infinite bool) {
	if h.bannerAnim != nil {
		h.bannerAnim.Stop()
	}

	h.banner = h.cfg.renderer(BannerRequest{
		Data:      data,
		Direction: h.cfg.direction,
		Infinite:  infinite,
		OnClose:   h.state.Dismiss,
	})
	h.swipe.SetContent(h.banner)
	h.layer.offsetX = 0
	h.layer.transform = animation.Frame(h.transition.Type, h.cfg.direction, animation.Enter, 0, h.layer.bannerSize(h.bannerBox.Size()))
	h.bannerBox.Show()
	h.bannerBox.Refresh()

	h.log.Debug("Banner shown",
		zap.String("banner_id", h.shownID.String()),
		zap.Bool("infinite", infinite))

	h.bannerAnim = h.transition.Run(&layerTarget{layout: h.layer, box: h.bannerBox}, animation.Enter, nil)
}

func (h *InfoHost) hideBanner() {
	if h.bannerAnim != nil {
		h.bannerAnim.Stop()
	}

	id := h.shownID
	h.bannerAnim = h.transition.Run(&layerTarget{layout: h.layer, box: h.bannerBox}, animation.Exit, func() {
		if !h.visible && h.shownID == id {
			h.bannerBox.Hide()
		}
	})
	h.log.Debug("Banner hidden", zap.String("banner_id", id.String()))
}

func (h *InfoHost) setScrollDirection(dir model.ScrollDirection) {
	h.mu.Lock()
	h.scrollDir = dir
	h.mu.Unlock()
	h.updateOffset()
}

func (h *InfoHost) updateOffset() {
	if h.watcher == nil {
		return
	}
	should := ShouldBeVisible(h.visible, h.ScrollDirection())
	h.offset.AnimateTo(animation.TargetOffset(should, h.cfg.direction, BannerHeight))
}

func (h *InfoHost) handleGesture(g GestureType) {
	if g == GestureSwipeLeft || g == GestureSwipeRight {
		h.state.Dismiss()
	}
}

func (h *InfoHost) handleDrag(dx float32) {
	h.layer.offsetX = dx
	h.bannerBox.Refresh()
}

func (h *InfoHost) handleRelease(dx float32) {
	if SwipeDismisses(dx, h.bannerBox.Size().Width) {
		h.log.Debug("Banner swiped away", zap.Float32("dx", dx))
		h.state.Dismiss()
		return
	}

	from := h.layer.offsetX
	anim := fyne.NewAnimation(SwipeResetDuration, func(p float32) {
		h.layer.offsetX = from * (1 - p)
		h.bannerBox.Refresh()
	})
	anim.Curve = fyne.AnimationEaseOut
	anim.Start()
}

func (h *InfoHost) startMonitoring() {
	ctx, cancel := context.WithCancel(context.Background())
	h.mu.Lock()
	h.cancel = cancel
	h.mu.Unlock()

	ch := h.cfg.monitor.Subscribe(ctx)
	go func() {
		for online := range ch {
			fyne.Do(func() { h.setOnline(online) })
		}
		h.log.Debug("Connectivity stream ended")
	}()
}

func (h *InfoHost) setOnline(online bool) {
	h.mu.Lock()
	if h.online == online || h.closed {
		h.mu.Unlock()
		return
	}
	h.online = online
	h.mu.Unlock()

	h.log.Debug("Connectivity changed", zap.Bool("online", online))

	if h.offlineAnim != nil {
		h.offlineAnim.Stop()
	}
	target := &layerTarget{layout: h.offline, box: h.offlineBox}

	if !online {
		h.refreshOffline()
		h.offline.transform = animation.Frame(h.transition.Type, h.cfg.direction, animation.Enter, 0, h.offline.bannerSize(h.offlineBox.Size()))
		h.offlineBox.Show()
		h.offlineAnim = h.transition.Run(target, animation.Enter, nil)
		return
	}
	h.offlineAnim = h.transition.Run(target, animation.Exit, func() {
		if h.Online() {
			h.offlineBox.Hide()
		}
	})
}

func (h *InfoHost) refreshOffline() {
	data, ok := h.state.OfflineBanner()
	if !ok {
		data = DefaultOfflineBanner(h.cfg.localization)
	}
	if data.GetDisplayTitle() == h.offlineBar.Data.GetDisplayTitle() && data.Description == h.offlineBar.Data.Description {
		return
	}
	h.offlineBar.Data = data.WithStyle(model.StyleOffline)
	h.offlineBar.Refresh()
}

// bannerLayout places one banner at its edge and applies the transition,
// the scroll-to-hide offset and the swipe offset.
type bannerLayout struct {
	direction model.Direction
	transform animation.Transform
	offsetX   float32
	offsetY   float32
}

func (l *bannerLayout) bannerSize(size fyne.Size) fyne.Size {
	return fyne.NewSize(size.Width, BannerHeight)
}

func (l *bannerLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		height := BannerHeight
		if minHeight := o.MinSize().Height; minHeight > height {
			height = minHeight
		}
		rest := fyne.NewPos(l.offsetX, l.offsetY)
		if l.direction == model.DirectionBottom {
			rest.Y += size.Height - height
		}
		l.transform.Apply(o, rest, fyne.NewSize(size.Width, height))
		if a, ok := o.(alphaSetter); ok {
			a.SetAlpha(l.transform.Alpha)
		}
	}
}

func (l *bannerLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(0, 0)
}

type alphaSetter interface {
	SetAlpha(float32)
}

// layerTarget adapts a banner layer to animation.Animatable
type layerTarget struct {
	layout *bannerLayout
	box    *fyne.Container
}

func (t *layerTarget) SetTransform(tr animation.Transform) {
	t.layout.transform = tr
	t.box.Refresh()
}

func (t *layerTarget) Size() fyne.Size {
	return t.layout.bannerSize(t.box.Size())
}
