package table

import (
	"reflect"
	"testing"
)

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"●", "News", "12"},
		{"", "Documentation", "3"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft, AlignRight})
	want := []string{
		"●  News           12",
		"   Documentation   3",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatWidthTruncates(t *testing.T) {
	rows := [][]string{{"A very long tab title", "example.com"}}
	got := FormatWidth(rows, nil, []int{8})
	if want := []string{"A very …  example.com"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("expected untouched text, got %q", got)
	}
	if got := Truncate("abcdef", 4); got != "abc…" {
		t.Fatalf("expected abc…, got %q", got)
	}
	if got := Truncate("abcdef", 1); got != "a" {
		t.Fatalf("expected a, got %q", got)
	}
}

func TestFormatEmpty(t *testing.T) {
	if Format(nil, nil) != nil {
		t.Fatal("expected nil for no rows")
	}
}
