package main

import "testing"

func TestFormatsListsDialects(t *testing.T) {
	out, _, err := runCLI(t, []string{"formats"}, "")
	if err != nil {
		t.Fatalf("formats: %v", err)
	}
	requireContains(t, out, "manabox")
	requireContains(t, out, "ManaBox")
	requireContains(t, out, "deckbox")
	requireContains(t, out, "generic")
}
