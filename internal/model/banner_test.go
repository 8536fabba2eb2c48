package model

import (
	"errors"
	"testing"
)

func TestNewBannerData(t *testing.T) {
	data := NewBannerData("Saved", "All changes stored")

	if data.Title.String() != "Saved" {
		t.Errorf("Expected title 'Saved', got '%s'", data.Title)
	}
	if data.Title.IsMarkdown() {
		t.Error("Expected plain title")
	}
	if !data.HasDescription() {
		t.Error("Expected description to be set")
	}
	if data.Style != StyleDefault {
		t.Errorf("Expected default style, got %s", data.Style)
	}

	noDescription := NewBannerData("Saved", "")
	if noDescription.HasDescription() {
		t.Error("Empty description should not be reported")
	}
}

func TestBannerData_Validate(t *testing.T) {
	tests := []struct {
		name    string
		data    BannerData
		wantErr bool
	}{
		{"plain title", NewBannerData("A", ""), false},
		{"markdown title", BannerData{Title: MarkdownText("**A**")}, false},
		{"nil title", BannerData{}, true},
		{"blank title", BannerData{Title: PlainText("   ")}, true},
	}

	for _, test := range tests {
		err := test.data.Validate()
		if test.wantErr && !errors.Is(err, ErrMissingTitle) {
			t.Errorf("%s: expected ErrMissingTitle, got %v", test.name, err)
		}
		if !test.wantErr && err != nil {
			t.Errorf("%s: expected no error, got %v", test.name, err)
		}
	}
}

func TestBannerData_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		title    TextType
		expected string
	}{
		{PlainText("Hello"), "Hello"},
		{PlainText(" multi\nline\ttitle "), "multi line title"},
		{nil, ""},
	}

	for _, test := range tests {
		data := BannerData{Title: test.title}
		result := data.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() = '%s', expected '%s'", result, test.expected)
		}
	}
}

func TestBannerData_WithStyle(t *testing.T) {
	base := NewBannerData("A", "")
	styled := base.WithStyle(StyleError)

	if styled.Style != StyleError {
		t.Errorf("Expected StyleError, got %s", styled.Style)
	}
	if base.Style != StyleDefault {
		t.Error("WithStyle should not modify the receiver")
	}
}
