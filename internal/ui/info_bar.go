package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/infobar/internal/model"
)

// Action is the optional button shown on a banner
type Action struct {
	Text     string
	OnTapped func()
}

// Gradient is a linear background fill. Angle is in degrees, 0 runs top to bottom.
type Gradient struct {
	Start color.Color
	End   color.Color
	Angle float64
}

// InfoBar is a single banner: icon, title, optional description, optional
// action button, and a close button while the banner is indefinite.
type InfoBar struct {
	widget.BaseWidget

	Data      model.BannerData
	Direction model.Direction
	Infinite  bool
	Action    *Action

	// Background overrides the style color when set
	Background color.Color
	// Gradient takes precedence over Background. It is drawn without rounded corners.
	Gradient *Gradient
	// Square drops the rounded corners
	Square  bool
	OnClose func()

	alpha float32
}

// NewInfoBar creates a banner for data
func NewInfoBar(data model.BannerData, dir model.Direction, infinite bool, onClose func()) *InfoBar {
	b := &InfoBar{
		Data:      data,
		Direction: dir,
		Infinite:  infinite,
		OnClose:   onClose,
		alpha:     1,
	}
	b.ExtendBaseWidget(b)
	return b
}

// SetAlpha fades the banner; used by the fade transition
func (b *InfoBar) SetAlpha(alpha float32) {
	if alpha == b.alpha {
		return
	}
	b.alpha = alpha
	b.Refresh()
}

// Alpha returns the current opacity
func (b *InfoBar) Alpha() float32 {
	return b.alpha
}

// SetInfinite shows or hides the close button
func (b *InfoBar) SetInfinite(infinite bool) {
	if infinite == b.Infinite {
		return
	}
	b.Infinite = infinite
	b.Refresh()
}

// CreateRenderer implements fyne.Widget
func (b *InfoBar) CreateRenderer() fyne.WidgetRenderer {
	r := &infoBarRenderer{
		bar:        b,
		background: canvas.NewRectangle(color.Transparent),
		edge:       canvas.NewRectangle(color.Transparent),
		gradient:   canvas.NewLinearGradient(color.Transparent, color.Transparent, 0),
		icon:       widget.NewIcon(nil),
		title:      widget.NewRichText(),
		desc:       widget.NewRichText(),
		action:     widget.NewButton("", nil),
		close:      widget.NewButtonWithIcon("", theme.CancelIcon(), nil),
	}
	r.background.CornerRadius = BannerCornerRadius
	r.title.Wrapping = fyne.TextWrapWord
	r.desc.Wrapping = fyne.TextWrapWord
	r.close.Importance = widget.LowImportance
	r.close.OnTapped = func() {
		if b.OnClose != nil {
			b.OnClose()
		}
	}

	texts := container.NewVBox(r.title, r.desc)
	r.trailing = container.NewHBox(r.action, r.close)
	r.content = container.New(
		&bannerPadding{},
		container.NewBorder(nil, nil, container.NewCenter(container.NewGridWrap(fyne.NewSquareSize(BannerIconSize), r.icon)), r.trailing, container.NewCenter(texts)),
	)

	r.Refresh()
	return r
}

type infoBarRenderer struct {
	bar *InfoBar

	background *canvas.Rectangle
	edge       *canvas.Rectangle
	gradient   *canvas.LinearGradient
	icon       *widget.Icon
	title      *widget.RichText
	desc       *widget.RichText
	action     *widget.Button
	close      *widget.Button
	trailing   *fyne.Container
	content    *fyne.Container
}

func (r *infoBarRenderer) Layout(size fyne.Size) {
	r.background.Move(fyne.NewPos(0, 0))
	r.background.Resize(size)

	edgeHeight := BannerCornerRadius
	if edgeHeight > size.Height {
		edgeHeight = size.Height
	}
	if r.bar.Direction == model.DirectionBottom {
		r.edge.Move(fyne.NewPos(0, size.Height-edgeHeight))
	} else {
		r.edge.Move(fyne.NewPos(0, 0))
	}
	r.edge.Resize(fyne.NewSize(size.Width, edgeHeight))

	r.gradient.Move(fyne.NewPos(0, 0))
	r.gradient.Resize(size)

	r.content.Move(fyne.NewPos(0, 0))
	r.content.Resize(size)
}

func (r *infoBarRenderer) MinSize() fyne.Size {
	minSize := r.content.MinSize()
	if minSize.Height < BannerHeight {
		minSize.Height = BannerHeight
	}
	return minSize
}

func (r *infoBarRenderer) Refresh() {
	b := r.bar
	palette := PaletteFor(b.Data.Style)

	if b.Square {
		r.background.CornerRadius = 0
	} else {
		r.background.CornerRadius = BannerCornerRadius
	}

	fill := b.Background
	if fill == nil {
		fill = theme.ColorForWidget(palette.Background, b)
	}
	fill = withAlpha(fill, b.alpha)
	r.background.FillColor = fill
	r.edge.FillColor = fill

	if g := b.Gradient; g != nil {
		r.gradient.StartColor = withAlpha(g.Start, b.alpha)
		r.gradient.EndColor = withAlpha(g.End, b.alpha)
		r.gradient.Angle = g.Angle
		r.gradient.Show()
		r.background.Hide()
		r.edge.Hide()
	} else {
		r.gradient.Hide()
		r.background.Show()
		r.edge.Show()
	}

	icon := b.Data.Icon
	if icon == nil {
		icon = palette.Icon
	}
	r.icon.SetResource(theme.NewColoredResource(icon, palette.Foreground))

	setRichText(r.title, b.Data.Title, palette.Foreground, theme.SizeNameSubHeadingText, true, TitleMaxLines)
	if b.Data.HasDescription() {
		setRichText(r.desc, b.Data.Description, palette.Foreground, theme.SizeNameText, false, DescriptionMaxLines)
		r.desc.Show()
	} else {
		r.desc.Hide()
	}

	if b.Action != nil {
		r.action.SetText(b.Action.Text)
		r.action.OnTapped = b.Action.OnTapped
		r.action.Show()
	} else {
		r.action.Hide()
	}

	if b.Infinite {
		r.close.Show()
	} else {
		r.close.Hide()
	}

	if b.alpha < ContentHiddenAlpha {
		r.content.Hide()
	} else {
		r.content.Show()
	}

	r.background.Refresh()
	r.edge.Refresh()
	r.gradient.Refresh()
	r.trailing.Refresh()
	r.content.Refresh()
	r.Layout(b.Size())
}

func (r *infoBarRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.edge, r.gradient, r.content}
}

func (r *infoBarRenderer) Destroy() {}

// bannerPadding insets the content by the banner paddings
type bannerPadding struct{}

func (p *bannerPadding) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	inner := fyne.NewSize(size.Width-2*BannerPaddingH, size.Height-2*BannerPaddingV)
	for _, o := range objects {
		o.Move(fyne.NewPos(BannerPaddingH, BannerPaddingV))
		o.Resize(inner)
	}
}

func (p *bannerPadding) MinSize(objects []fyne.CanvasObject) fyne.Size {
	minSize := fyne.NewSize(0, 0)
	for _, o := range objects {
		minSize = minSize.Max(o.MinSize())
	}
	return minSize.Add(fyne.NewSize(2*BannerPaddingH, 2*BannerPaddingV))
}

func setRichText(rt *widget.RichText, text model.TextType, fg fyne.ThemeColorName, size fyne.ThemeSizeName, bold bool, maxLines int) {
	if text == nil {
		rt.Segments = nil
		rt.Refresh()
		return
	}
	value := LimitLines(text.String(), maxLines)

	if text.IsMarkdown() {
		parsed := widget.NewRichTextFromMarkdown(value)
		for _, seg := range parsed.Segments {
			if ts, ok := seg.(*widget.TextSegment); ok {
				ts.Style.ColorName = fg
				ts.Style.SizeName = size
				ts.Style.Inline = true
				if bold {
					ts.Style.TextStyle.Bold = true
				}
			}
		}
		rt.Segments = parsed.Segments
	} else {
		rt.Segments = []widget.RichTextSegment{&widget.TextSegment{
			Text: value,
			Style: widget.RichTextStyle{
				ColorName: fg,
				SizeName:  size,
				TextStyle: fyne.TextStyle{Bold: bold},
			},
		}}
	}
	rt.Refresh()
}

// LimitLines keeps at most n lines of s, marking the cut with an ellipsis
func LimitLines(s string, n int) string {
	if n <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n") + Ellipsis
}

func withAlpha(c color.Color, alpha float32) color.Color {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float32(n.A) * alpha)
	return n
}
