package main

import (
	"encoding/csv"
	"strings"
	"testing"

	"deckport/internal/scryfall"
	"deckport/internal/testsupport"
)

func testFixtures() ([]scryfall.Card, []scryfall.Set) {
	cards := []scryfall.Card{
		{
			ID:              "f3d62dbd-63db-4ac9-950f-9852627f23f2",
			Name:            "Lightning Bolt",
			Lang:            "en",
			Set:             "lea",
			SetName:         "Limited Edition Alpha",
			CollectorNumber: "161",
			Finishes:        []string{"nonfoil"},
		},
	}
	sets := []scryfall.Set{
		{Code: "lea", Name: "Limited Edition Alpha", SetType: "core", CardCount: 295},
		{Code: "leb", Name: "Limited Edition Beta", SetType: "core", CardCount: 302},
	}
	return cards, sets
}

func TestConvertResolvesManaBoxExport(t *testing.T) {
	fixtureCards, fixtureSets := testFixtures()
	server := testsupport.NewScryfallServer(t, fixtureCards, fixtureSets)
	cfgPath := writeConfigFile(t, testsupport.NewConfig(t,
		testsupport.WithScryfallBaseURL(server.URL()),
	))

	input := testsupport.WriteCSV(t, "collection.csv", strings.Join([]string{
		"Name,Set code,Set name,Collector number,Foil,Rarity,Quantity,ManaBox ID,Scryfall ID,Purchase price,Misprint,Altered,Condition,Language,Purchase price currency",
		"Lightning Bolt,lea,Limited Edition Alpha,161,normal,common,2,12345,f3d62dbd-63db-4ac9-950f-9852627f23f2,10.00,false,false,near_mint,en,USD",
		"Zquiggle,,,,normal,common,1,,,,false,false,near_mint,en,USD",
	}, "\n"))

	stdout, stderr, err := runCLI(t, []string{"--config", cfgPath, "convert", input}, "")
	if err != nil {
		t.Fatalf("convert: %v\nstderr:\n%s", err, stderr)
	}

	rows, err := csv.NewReader(strings.NewReader(stdout)).ReadAll()
	if err != nil {
		t.Fatalf("reread output: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2:\n%s", len(rows), stdout)
	}

	failed := rows[1]
	if failed[2] != "Zquiggle" || !strings.HasPrefix(failed[14], "failed:") {
		t.Fatalf("failed row should sort first, got %v", failed)
	}

	resolved := rows[2]
	if resolved[1] != "2" || resolved[2] != "Lightning Bolt" || resolved[3] != "LEA" || resolved[5] != "161" {
		t.Fatalf("resolved row = %v", resolved)
	}
	if resolved[8] != "NM" || resolved[11] != "very-high" || resolved[12] != "direct-id" || resolved[14] != "ok" {
		t.Fatalf("resolved row = %v", resolved)
	}

	requireContains(t, stderr, "Failed")
}

func TestConvertReadsStdinWithForcedDialect(t *testing.T) {
	fixtureCards, fixtureSets := testFixtures()
	server := testsupport.NewScryfallServer(t, fixtureCards, fixtureSets)
	cfgPath := writeConfigFile(t, testsupport.NewConfig(t,
		testsupport.WithScryfallBaseURL(server.URL()),
	))

	stdin := "Count,Name,Set Code,Collector Number\n2,Lightning Bolt,lea,161\n"
	stdout, stderr, err := runCLI(t,
		[]string{"--config", cfgPath, "convert", "-", "--dialect", "generic"}, stdin)
	if err != nil {
		t.Fatalf("convert: %v\nstderr:\n%s", err, stderr)
	}

	rows, err := csv.NewReader(strings.NewReader(stdout)).ReadAll()
	if err != nil {
		t.Fatalf("reread output: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows:\n%s", len(rows), stdout)
	}
	if rows[1][2] != "Lightning Bolt" || rows[1][12] != "set+collector" || rows[1][11] != "high" {
		t.Fatalf("row = %v", rows[1])
	}
}

func TestConvertWritesOutputFile(t *testing.T) {
	fixtureCards, fixtureSets := testFixtures()
	server := testsupport.NewScryfallServer(t, fixtureCards, fixtureSets)
	cfgPath := writeConfigFile(t, testsupport.NewConfig(t,
		testsupport.WithScryfallBaseURL(server.URL()),
	))

	input := testsupport.WriteCSV(t, "one.csv",
		"Count,Name,Set Code,Collector Number\n1,Lightning Bolt,lea,161\n")
	target := testsupport.WriteCSV(t, "out.csv", "")

	stdout, stderr, err := runCLI(t,
		[]string{"--config", cfgPath, "convert", input, "--output", target}, "")
	if err != nil {
		t.Fatalf("convert: %v\nstderr:\n%s", err, stderr)
	}
	if strings.Contains(stdout, "Lightning Bolt") {
		t.Fatal("CSV should go to the output file, not stdout")
	}

	data := readFile(t, target)
	requireContains(t, data, "Lightning Bolt")
	requireContains(t, data, "Scryfall ID")
}
