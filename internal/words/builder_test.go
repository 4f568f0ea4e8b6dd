package words

import (
	"errors"
	"testing"

	"github.com/ironsheep/ocr-scan/internal/ocr"
)

func TestBuildDerivesGeometry(t *testing.T) {
	table := &ocr.TokenTable{}
	table.Add("Hello", 10, 10, 50, 20, 95.0)

	records := Build(table, 0)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	w := records[0]
	if w.Text != "Hello" {
		t.Errorf("Text = %q, want %q", w.Text, "Hello")
	}
	if w.Position.Left != 10 || w.Position.Top != 10 {
		t.Errorf("origin = (%d,%d), want (10,10)", w.Position.Left, w.Position.Top)
	}
	if w.Position.Right != 60 {
		t.Errorf("Right = %d, want 60", w.Position.Right)
	}
	if w.Position.Bottom != 30 {
		t.Errorf("Bottom = %d, want 30", w.Position.Bottom)
	}
	if w.Position.CenterX != 35 {
		t.Errorf("CenterX = %v, want 35", w.Position.CenterX)
	}
	if w.Position.CenterY != 20 {
		t.Errorf("CenterY = %v, want 20", w.Position.CenterY)
	}
	if w.FontSize != 20 {
		t.Errorf("FontSize = %d, want 20", w.FontSize)
	}
	if w.Confidence != 95.0 {
		t.Errorf("Confidence = %v, want 95.0", w.Confidence)
	}
}

func TestBuildOddWidthCenterIsMidpoint(t *testing.T) {
	table := &ocr.TokenTable{}
	table.Add("x", 0, 0, 5, 3, 50)

	w := Build(table, 0)[0]
	if w.Position.CenterX != 2.5 {
		t.Errorf("CenterX = %v, want 2.5", w.Position.CenterX)
	}
	if w.Position.CenterY != 1.5 {
		t.Errorf("CenterY = %v, want 1.5", w.Position.CenterY)
	}
}

func TestBuildDropsBlankTokens(t *testing.T) {
	table := &ocr.TokenTable{}
	table.Add("", 0, 0, 640, 480, -1)
	table.Add("   ", 5, 5, 1, 1, 0)
	table.Add("kept", 1, 2, 3, 4, 10)
	table.Add("\t\n", 9, 9, 9, 9, 9)

	records := Build(table, 0)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Text != "kept" {
		t.Errorf("Text = %q, want %q", records[0].Text, "kept")
	}
}

func TestBuildTrimsTokenText(t *testing.T) {
	table := &ocr.TokenTable{}
	table.Add("  padded  ", 0, 0, 10, 10, 80)

	records := Build(table, 0)
	if records[0].Text != "padded" {
		t.Errorf("Text = %q, want %q", records[0].Text, "padded")
	}
}

func TestBuildEmptyTableIsEmptyNonNil(t *testing.T) {
	records := Build(&ocr.TokenTable{}, 90)
	if records == nil {
		t.Fatal("records should be an empty slice, not nil")
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestBuildCopiesRotationToEveryRecord(t *testing.T) {
	table := &ocr.TokenTable{}
	table.Add("a", 0, 0, 1, 1, 1)
	table.Add("b", 2, 2, 1, 1, 1)

	for _, w := range Build(table, 270) {
		if w.Rotation != 270 {
			t.Errorf("Rotation = %d, want 270", w.Rotation)
		}
	}
}

func TestBuildPreservesEngineOrder(t *testing.T) {
	table := &ocr.TokenTable{}
	// Deliberately not in spatial order.
	table.Add("second", 100, 0, 10, 10, 1)
	table.Add("first", 0, 0, 10, 10, 1)

	records := Build(table, 0)
	if records[0].Text != "second" || records[1].Text != "first" {
		t.Errorf("order changed: %q, %q", records[0].Text, records[1].Text)
	}
}

func TestBuildPassesNegativeConfidenceThrough(t *testing.T) {
	table := &ocr.TokenTable{}
	table.Add("ghost", 0, 0, 1, 1, -1)

	records := Build(table, 0)
	if records[0].Confidence != -1 {
		t.Errorf("Confidence = %v, want -1", records[0].Confidence)
	}
}

type stubEngine struct {
	table *ocr.TokenTable
	err   error
}

func (s *stubEngine) Name() string     { return "stub" }
func (s *stubEngine) Available() error { return nil }
func (s *stubEngine) DetectOrientation(string) (int, error) {
	return 0, nil
}
func (s *stubEngine) ExtractTokens(string) (*ocr.TokenTable, error) {
	return s.table, s.err
}

func TestExtractPropagatesEngineFailure(t *testing.T) {
	boom := errors.New("engine crashed")
	_, err := Extract(&stubEngine{err: boom}, "a.png", 0)
	if !errors.Is(err, boom) {
		t.Errorf("error %v should wrap the engine failure", err)
	}
}

func TestExtractBuildsRecords(t *testing.T) {
	table := &ocr.TokenTable{}
	table.Add("word", 1, 2, 3, 4, 5)

	records, err := Extract(&stubEngine{table: table}, "a.png", 180)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(records) != 1 || records[0].Rotation != 180 {
		t.Errorf("records = %+v", records)
	}
}
