package scrollkit

import (
	"strings"
	"testing"
)

var mono = MonospaceFont{Advance: 10, Line: 16}

func TestMonospaceFont(t *testing.T) {
	w, h := mono.MeasureString("hello")
	if w != 50 || h != 16 {
		t.Errorf("MeasureString = (%v, %v), want (50, 16)", w, h)
	}
	// e + combining acute is a single cluster.
	if w, _ := mono.MeasureString("he\u0301llo"); w != 50 {
		t.Errorf("combining mark width = %v, want 50", w)
	}
	if w, h := mono.MeasureString(""); w != 0 || h != 0 {
		t.Errorf("empty = (%v, %v), want (0, 0)", w, h)
	}
	if mono.LineHeight() != 16 {
		t.Errorf("LineHeight = %v", mono.LineHeight())
	}
}

func TestTextBlock_Measure(t *testing.T) {
	tb := &TextBlock{Content: "abc", Font: mono, layoutDirty: true}
	w, h := tb.Measure()
	if w != 30 || h != 16 {
		t.Errorf("Measure = (%v, %v), want (30, 16)", w, h)
	}

	tb.SetContent("abcdef")
	if w, _ := tb.Measure(); w != 60 {
		t.Errorf("after SetContent width = %v, want 60", w)
	}
}

func TestTextBlock_NoFont(t *testing.T) {
	tb := &TextBlock{Content: "abc", layoutDirty: true}
	if w, h := tb.Measure(); w != 0 || h != 0 {
		t.Errorf("no font = (%v, %v), want zeros", w, h)
	}
	if tb.DisplayText() != "abc" {
		t.Errorf("DisplayText = %q", tb.DisplayText())
	}
}

func TestTextBlock_TruncatesMiddle(t *testing.T) {
	tb := &TextBlock{Content: "abcdefghij", Font: mono, layoutDirty: true}
	tb.SetMaxWidth(55)
	if got := tb.DisplayText(); got != "ab…ij" {
		t.Errorf("DisplayText = %q, want %q", got, "ab…ij")
	}
	if w, _ := tb.Measure(); w != 50 {
		t.Errorf("truncated width = %v, want 50", w)
	}

	tb.SetMaxWidth(200)
	if got := tb.DisplayText(); got != "abcdefghij" {
		t.Errorf("wide enough = %q", got)
	}
}

func TestTruncateMiddle_Edges(t *testing.T) {
	if got := truncateMiddle("abcdef", mono, 0); got != "abcdef" {
		t.Errorf("unlimited = %q", got)
	}
	if got := truncateMiddle("abcdef", mono, 10); got != Ellipsis {
		t.Errorf("ellipsis only = %q", got)
	}
	if got := truncateMiddle("abcdef", mono, 5); got != "" {
		t.Errorf("nothing fits = %q", got)
	}
	// Odd budgets keep the extra cluster at the front.
	if got := truncateMiddle("abcdefghij", mono, 40); got != "ab…j" {
		t.Errorf("odd keep = %q", got)
	}
}

func TestTruncateMiddle_KeepsClustersWhole(t *testing.T) {
	s := strings.Repeat("é", 10)
	got := truncateMiddle(s, mono, 45)
	if w, _ := mono.MeasureString(got); w > 45 {
		t.Errorf("truncated width %v exceeds limit", w)
	}
	if !strings.HasPrefix(got, "é") || !strings.HasSuffix(got, "é") {
		t.Errorf("clusters split: %q", got)
	}
}

func TestLoadTTFFont_Invalid(t *testing.T) {
	_, err := LoadTTFFont([]byte("not a font"), 12)
	if err == nil {
		t.Fatal("expected error for invalid font data")
	}
	if !strings.HasPrefix(err.Error(), "scrollkit: ") {
		t.Errorf("error = %q, want scrollkit prefix", err)
	}
}
