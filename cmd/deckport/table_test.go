package main

import (
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
)

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable(
		[]tableColumn{{header: "ID"}, {header: "Format"}},
		[][]string{{"manabox", "ManaBox"}, {"generic"}},
	)
	if !strings.Contains(out, "manabox") || !strings.Contains(out, "generic") {
		t.Fatalf("table = %q", out)
	}
	if renderTable(nil, nil) != "" {
		t.Fatal("empty column set must render nothing")
	}
}

func TestSummaryTint(t *testing.T) {
	tests := []struct {
		name  string
		cells []string
		want  text.Colors
	}{
		{"failures red", []string{"Failed", "2"}, text.Colors{text.FgRed}},
		{"zero failures plain", []string{"Failed", "0"}, nil},
		{"warnings yellow", []string{"Resolved with warnings", "1"}, text.Colors{text.FgYellow}},
		{"confidence tier green", []string{"  very-high", "3"}, text.Colors{text.FgGreen}},
		{"low tier yellow", []string{"  low", "1"}, text.Colors{text.FgYellow}},
		{"totals plain", []string{"Cards", "9"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summaryTint(tt.cells)
			if len(got) != len(tt.want) {
				t.Fatalf("tint = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("tint = %v, want %v", got, tt.want)
				}
			}
		})
	}
}
