package main

import (
	"reflect"
	"strings"
	"testing"

	"github.com/refex/refex/internal/citation"
)

func TestParseIDList(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{name: "single id", input: "7", want: []int{7}},
		{name: "multiple ids", input: "2,4,7", want: []int{2, 4, 7}},
		{name: "spaces tolerated", input: "2, 4, 7", want: []int{2, 4, 7}},
		{name: "trailing comma tolerated", input: "2,4,", want: []int{2, 4}},
		{name: "non-numeric", input: "2,foo", wantErr: true},
		{name: "zero id", input: "0", wantErr: true},
		{name: "negative id", input: "-3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIDList(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseIDList(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseIDList(%q) error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseIDList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderEntries(t *testing.T) {
	entries := []citation.Entry{
		{ID: 2, Text: "Alice Author. First Title. Journal A, 2020.", Found: true},
		{ID: 4, Found: false},
	}

	got := renderEntries(entries)

	if !strings.Contains(got, "[2] Alice Author. First Title. Journal A, 2020.") {
		t.Errorf("rendered output missing entry 2:\n%s", got)
	}
	if !strings.Contains(got, "[4] NOT FOUND") {
		t.Errorf("rendered output missing NOT FOUND line:\n%s", got)
	}
}

func TestNewResolveResponseCounts(t *testing.T) {
	entries := []citation.Entry{
		{ID: 1, Text: "a", Found: true},
		{ID: 2, Found: false},
		{ID: 3, Text: "c", Found: true},
	}

	resp := newResolveResponse("paper.txt", entries)

	if resp.Resolved != 2 || resp.Missing != 1 {
		t.Errorf("counts = %d resolved, %d missing; want 2, 1", resp.Resolved, resp.Missing)
	}
	if !reflect.DeepEqual(resp.IDs, []int{1, 2, 3}) {
		t.Errorf("IDs = %v, want [1 2 3]", resp.IDs)
	}
}
