package model

import (
	"errors"
	"strings"

	"fyne.io/fyne/v2"
)

var ErrMissingTitle = errors.New("banner title is required")

// TextType is text shown in a banner, either plain or markdown-styled
type TextType interface {
	String() string
	IsMarkdown() bool
}

// PlainText renders verbatim
type PlainText string

func (t PlainText) String() string   { return string(t) }
func (t PlainText) IsMarkdown() bool { return false }

// MarkdownText renders through the rich text markdown parser (bold, italic, code spans)
type MarkdownText string

func (t MarkdownText) String() string   { return string(t) }
func (t MarkdownText) IsMarkdown() bool { return true }

// BannerStyle selects one of the themed banner variants
type BannerStyle string

const (
	StyleDefault BannerStyle = "Default"
	StyleSuccess BannerStyle = "Success"
	StyleWarning BannerStyle = "Warning"
	StyleError   BannerStyle = "Error"
	StyleOffline BannerStyle = "Offline"
)

// String returns the string representation of BannerStyle
func (s BannerStyle) String() string {
	return string(s)
}

// BannerStyles lists the styles a caller can pick for the primary banner
func BannerStyles() []BannerStyle {
	return []BannerStyle{StyleDefault, StyleSuccess, StyleWarning, StyleError}
}

// BannerData is the payload of a single banner
type BannerData struct {
	Title       TextType
	Description TextType      // nil hides the description line
	Icon        fyne.Resource // nil uses the style's default icon
	Style       BannerStyle
}

// NewBannerData creates plain text banner data
func NewBannerData(title, description string) BannerData {
	data := BannerData{Title: PlainText(title), Style: StyleDefault}
	if description != "" {
		data.Description = PlainText(description)
	}
	return data
}

// WithStyle returns a copy of the data using the given style
func (b BannerData) WithStyle(style BannerStyle) BannerData {
	b.Style = style
	return b
}

// WithIcon returns a copy of the data using the given icon
func (b BannerData) WithIcon(icon fyne.Resource) BannerData {
	b.Icon = icon
	return b
}

// HasDescription returns true if a non-blank description is set
func (b BannerData) HasDescription() bool {
	return b.Description != nil && strings.TrimSpace(b.Description.String()) != ""
}

// Validate reports misuse such as a missing title
func (b BannerData) Validate() error {
	if b.Title == nil || strings.TrimSpace(b.Title.String()) == "" {
		return ErrMissingTitle
	}
	return nil
}

// GetDisplayTitle returns the title flattened to a single line
func (b BannerData) GetDisplayTitle() string {
	if b.Title == nil {
		return ""
	}
	title := strings.ReplaceAll(b.Title.String(), "\n", " ")
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\t", " ")
	return strings.TrimSpace(title)
}
