package layout

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/pdiddy/docdigest/pkg/types"
)

func TestBlocksFromRunsMergesLines(t *testing.T) {
	runs := []Run{
		{Text: "Packing", Font: "Helvetica-Bold", FontSize: 18, X: 72, Y: 700, W: 60},
		{Text: "Tips", Font: "Helvetica-Bold", FontSize: 18, X: 140, Y: 700, W: 30},
		{Text: "Bring layers for the evening.", Font: "Helvetica", FontSize: 10, X: 72, Y: 680, W: 120},
	}

	blocks := BlocksFromRuns("doc.pdf", 3, runs, types.LayoutConfig{})

	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[0].Text != "Packing Tips" {
		t.Errorf("merged text = %q, want %q", blocks[0].Text, "Packing Tips")
	}
	if !blocks[0].IsBold {
		t.Error("bold font not detected")
	}
	if blocks[0].PageNumber != 3 {
		t.Errorf("page = %d, want 3", blocks[0].PageNumber)
	}
	if blocks[1].IsBold {
		t.Error("regular font flagged bold")
	}
}

func TestBlocksFromRunsReadingOrder(t *testing.T) {
	// Runs arrive out of order; blocks must come back top-down, left-right.
	runs := []Run{
		{Text: "bottom", Font: "F", FontSize: 10, X: 72, Y: 100, W: 40},
		{Text: "top", Font: "F", FontSize: 10, X: 72, Y: 700, W: 40},
		{Text: "middle", Font: "F", FontSize: 10, X: 72, Y: 400, W: 40},
	}

	blocks := BlocksFromRuns("doc.pdf", 1, runs, types.LayoutConfig{})

	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}
	want := []string{"top", "middle", "bottom"}
	for i, w := range want {
		if blocks[i].Text != w {
			t.Errorf("blocks[%d] = %q, want %q", i, blocks[i].Text, w)
		}
	}
}

func TestBlocksFromRunsSkipsEmptyRuns(t *testing.T) {
	runs := []Run{
		{Text: "", Font: "F", FontSize: 10, X: 72, Y: 700},
		{Text: "   ", Font: "F", FontSize: 10, X: 80, Y: 700},
		{Text: "kept", Font: "F", FontSize: 10, X: 90, Y: 700, W: 30},
	}

	blocks := BlocksFromRuns("doc.pdf", 1, runs, types.LayoutConfig{})

	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Text != "kept" {
		t.Errorf("text = %q", blocks[0].Text)
	}
}

func TestBlocksFromRunsEmptyPage(t *testing.T) {
	if blocks := BlocksFromRuns("doc.pdf", 1, nil, types.LayoutConfig{}); blocks != nil {
		t.Errorf("empty page produced %d blocks", len(blocks))
	}
}

func TestBlocksFromRunsSeparatesFontSizes(t *testing.T) {
	// Same line position but different sizes: a heading and an inline note
	// must not merge into one block.
	runs := []Run{
		{Text: "Heading", Font: "F", FontSize: 18, X: 72, Y: 700, W: 70},
		{Text: "small print", Font: "F", FontSize: 8, X: 150, Y: 700, W: 60},
	}

	blocks := BlocksFromRuns("doc.pdf", 1, runs, types.LayoutConfig{})

	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
}

func TestExtractDocumentOpenFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	if err := os.WriteFile(path, []byte("not a pdf at all"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ExtractDocument(path, "garbage.pdf", types.LayoutConfig{}, io.Discard)
	if err == nil {
		t.Fatal("expected an error for a non-PDF file")
	}
}

func TestExtractDocumentMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.pdf")

	_, err := ExtractDocument(path, "absent.pdf", types.LayoutConfig{}, io.Discard)
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestSafeRunsContainsPanic(t *testing.T) {
	runs, err := safeRuns(func() []Run {
		panic("malformed content stream")
	})

	if err == nil {
		t.Fatal("panic was not converted to an error")
	}
	if runs != nil {
		t.Errorf("got %d runs from a panicking decode", len(runs))
	}
}

func TestSafeRunsPassesThrough(t *testing.T) {
	want := []Run{{Text: "hello", FontSize: 10}}
	runs, err := safeRuns(func() []Run { return want })

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 1 || runs[0].Text != "hello" {
		t.Errorf("runs = %v", runs)
	}
}

func TestRunsFromText(t *testing.T) {
	text := []pdflib.Text{
		{S: "Menu", Font: "Helvetica-Bold", FontSize: 18, X: 72, Y: 700, W: 40},
		{S: " ", Font: "Helvetica", FontSize: 10, X: 120, Y: 700, W: 4},
	}

	runs := runsFromText(text)

	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].Text != "Menu" || runs[0].Font != "Helvetica-Bold" || runs[0].FontSize != 18 {
		t.Errorf("runs[0] = %+v", runs[0])
	}
	if runs[0].X != 72 || runs[0].Y != 700 || runs[0].W != 40 {
		t.Errorf("runs[0] position = %+v", runs[0])
	}
}

func TestIsBoldFont(t *testing.T) {
	tests := []struct {
		font string
		want bool
	}{
		{"Helvetica-Bold", true},
		{"TimesNewRomanPS-BoldMT", true},
		{"Arial-Black", true},
		{"Helvetica", false},
		{"Times-Italic", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isBoldFont(tt.font); got != tt.want {
			t.Errorf("isBoldFont(%q) = %v, want %v", tt.font, got, tt.want)
		}
	}
}
