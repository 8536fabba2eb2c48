package demo

import (
	"image/color"

	"github.com/ytget/infobar/internal/model"
)

// Kind identifies a demo button
type Kind string

const (
	KindDefault  Kind = "Default"
	KindSuccess  Kind = "Success"
	KindWarning  Kind = "Warning"
	KindError    Kind = "Error"
	KindGradient Kind = "Gradient"
	KindMarkdown Kind = "Markdown"
	KindAction   Kind = "Action"
	KindSlide    Kind = "Slide"
)

// Sample is one banner the demo can show
type Sample struct {
	Kind     Kind
	Label    string
	Data     model.BannerData
	Gradient bool
	Action   bool
	// Slide renders the banner as a slide to perform action bar
	Slide    bool
}

var (
	gradientStart = color.NRGBA{R: 0x43, G: 0xA0, B: 0x47, A: 0xFF}
	gradientEnd   = color.NRGBA{R: 0x1E, G: 0x88, B: 0xE5, A: 0xFF}
)

// Samples returns the demo catalog in button order
func Samples() []Sample {
	return []Sample{
		{
			Kind:  KindDefault,
			Label: "Default InfoBar",
			Data:  model.NewBannerData("Hey user, good morning!", "We hope you are doing well in your life."),
		},
		{
			Kind:  KindSuccess,
			Label: "Success InfoBar",
			Data:  model.NewBannerData("Success", "Successfully fetched network data.").WithStyle(model.StyleSuccess),
		},
		{
			Kind:  KindWarning,
			Label: "Warning InfoBar",
			Data:  model.NewBannerData("Warning", "Trying to access sensitive information.").WithStyle(model.StyleWarning),
		},
		{
			Kind:  KindError,
			Label: "Error InfoBar",
			Data:  model.NewBannerData("Error", "Failed to fetch data from the server.").WithStyle(model.StyleError),
		},
		{
			Kind:     KindGradient,
			Label:    "Gradient InfoBar",
			Data:     model.NewBannerData("Gradient", "Successfully fetched network data.").WithStyle(model.StyleSuccess),
			Gradient: true,
		},
		{
			Kind:  KindMarkdown,
			Label: "Styled text InfoBar",
			Data: model.BannerData{
				Title:       model.MarkdownText("Hey **user**, *good morning!*"),
				Description: model.MarkdownText("We hope you are doing `well` in your life."),
				Style:       model.StyleDefault,
			},
		},
		{
			Kind:   KindAction,
			Label:  "InfoBar with action",
			Data:   model.NewBannerData("InfoBar with action", "Tap the action to respond."),
			Action: true,
		},
		{
			Kind:  KindSlide,
			Label: "Slide to perform action",
			Data:  model.NewBannerData("Slide to perform action", ""),
			Slide: true,
		},
	}
}

// Lookup finds the sample whose title matches data
func Lookup(data model.BannerData) (Sample, bool) {
	title := data.GetDisplayTitle()
	for _, s := range Samples() {
		if s.Data.GetDisplayTitle() == title {
			return s, true
		}
	}
	return Sample{}, false
}

// SampleOf returns the sample of kind k
func SampleOf(k Kind) (Sample, bool) {
	for _, s := range Samples() {
		if s.Kind == k {
			return s, true
		}
	}
	return Sample{}, false
}
