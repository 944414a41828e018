package services

import (
	"testing"
)

func TestParseItineraryDayWithDetails(t *testing.T) {
	text := "### Day 1: Arrival\n#### Morning\n- **8:00 AM**: Visit temple\n  - **Cost**: Free\n  - **Duration**: 1 hour\n"

	tree := ParseItinerary(text)

	if tree.RawText != text {
		t.Errorf("rawText not retained verbatim")
	}
	if len(tree.Days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(tree.Days))
	}

	day := tree.Days[0]
	if day.Label != "Day 1: Arrival" {
		t.Errorf("label = %q, want %q", day.Label, "Day 1: Arrival")
	}

	morning := day.Sections["morning"]
	if len(morning) != 1 {
		t.Fatalf("expected 1 morning activity, got %d", len(morning))
	}

	act := morning[0]
	if act.Time != "8:00 AM" {
		t.Errorf("time = %q, want %q", act.Time, "8:00 AM")
	}
	if act.Description != "Visit temple" {
		t.Errorf("description = %q, want %q", act.Description, "Visit temple")
	}
	if len(act.Details) != 2 {
		t.Fatalf("expected 2 details, got %d", len(act.Details))
	}
	if act.Details[0].Name != "Cost" || act.Details[0].Value != "Free" {
		t.Errorf("detail 0 = %+v, want Cost/Free", act.Details[0])
	}
	if act.Details[1].Name != "Duration" || act.Details[1].Value != "1 hour" {
		t.Errorf("detail 1 = %+v, want Duration/1 hour", act.Details[1])
	}
}

func TestParseItineraryMultipleDaysAndSections(t *testing.T) {
	text := "### Day 1: Arrival\n" +
		"#### Morning\n" +
		"- **9:00 AM**: Check in\n" +
		"#### Evening\n" +
		"- **7:00 PM**: Dinner at night market\n" +
		"### Day 2: Exploring\n" +
		"#### Afternoon\n" +
		"- **2:00 PM**: Museum tour\n"

	tree := ParseItinerary(text)

	if len(tree.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(tree.Days))
	}
	if len(tree.Days[0].Sections["morning"]) != 1 || len(tree.Days[0].Sections["evening"]) != 1 {
		t.Errorf("day 1 sections misfiled: %+v", tree.Days[0].Sections)
	}
	if len(tree.Days[1].Sections["afternoon"]) != 1 {
		t.Errorf("day 2 afternoon missing: %+v", tree.Days[1].Sections)
	}
	// section context must not leak across days
	if len(tree.Days[1].Sections["evening"]) != 0 {
		t.Errorf("day 2 inherited day 1 section: %+v", tree.Days[1].Sections)
	}
}

func TestParseItineraryOrphanDetailDropped(t *testing.T) {
	tree := ParseItinerary("  - **Cost**: $10\n")

	if len(tree.Days) != 0 {
		t.Errorf("expected no days, got %d", len(tree.Days))
	}
	if len(tree.CostBreakdown) != 0 {
		t.Errorf("expected no cost entries, got %d", len(tree.CostBreakdown))
	}
	if len(tree.SpecialConsiderations) != 0 {
		t.Errorf("expected no considerations, got %d", len(tree.SpecialConsiderations))
	}
}

func TestParseItineraryDetailBeforeActivityDropped(t *testing.T) {
	text := "### Day 1: Arrival\n#### Morning\n  - **Cost**: $10\n- **8:00 AM**: Visit temple\n"

	tree := ParseItinerary(text)

	morning := tree.Days[0].Sections["morning"]
	if len(morning) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(morning))
	}
	if len(morning[0].Details) != 0 {
		t.Errorf("orphan detail attached to later activity: %+v", morning[0].Details)
	}
}

func TestParseItineraryCostBreakdown(t *testing.T) {
	text := "### Overall Cost Breakdown\n- **Accommodation**: $200\n- **Food**: $120\n"

	tree := ParseItinerary(text)

	if len(tree.CostBreakdown) != 2 {
		t.Fatalf("expected 2 cost items, got %d", len(tree.CostBreakdown))
	}
	if tree.CostBreakdown[0].Category != "Accommodation" || tree.CostBreakdown[0].Amount != "$200" {
		t.Errorf("cost 0 = %+v", tree.CostBreakdown[0])
	}
	if tree.CostBreakdown[1].Category != "Food" || tree.CostBreakdown[1].Amount != "$120" {
		t.Errorf("cost 1 = %+v", tree.CostBreakdown[1])
	}
}

func TestParseItineraryCostBreakdownDuplicateKeepsFirstSeenOrder(t *testing.T) {
	text := "### Overall Cost Breakdown\n- **Accommodation**: $200\n- **Food**: $120\n- **Accommodation**: $250\n"

	tree := ParseItinerary(text)

	if len(tree.CostBreakdown) != 2 {
		t.Fatalf("expected 2 cost items, got %d", len(tree.CostBreakdown))
	}
	if tree.CostBreakdown[0].Category != "Accommodation" || tree.CostBreakdown[0].Amount != "$250" {
		t.Errorf("duplicate should update value in place, got %+v", tree.CostBreakdown[0])
	}
}

func TestParseItinerarySpecialConsiderations(t *testing.T) {
	text := "### Special Considerations\n- Bring sunscreen\n- Book temple tickets ahead\n"

	tree := ParseItinerary(text)

	want := []string{"Bring sunscreen", "Book temple tickets ahead"}
	if len(tree.SpecialConsiderations) != len(want) {
		t.Fatalf("expected %d considerations, got %d", len(want), len(tree.SpecialConsiderations))
	}
	for i, s := range want {
		if tree.SpecialConsiderations[i] != s {
			t.Errorf("consideration %d = %q, want %q", i, tree.SpecialConsiderations[i], s)
		}
	}
}

func TestParseItinerarySpecialConsiderationsKeepBoldMarkers(t *testing.T) {
	text := "### Special Considerations\n- **Accessibility**: limited wheelchair access\n"

	tree := ParseItinerary(text)

	if len(tree.SpecialConsiderations) != 1 {
		t.Fatalf("expected 1 consideration, got %d", len(tree.SpecialConsiderations))
	}
	if tree.SpecialConsiderations[0] != "**Accessibility**: limited wheelchair access" {
		t.Errorf("consideration = %q", tree.SpecialConsiderations[0])
	}
}

func TestParseItineraryCostModeEndsDayContext(t *testing.T) {
	text := "### Day 1: Arrival\n#### Morning\n- **8:00 AM**: Visit temple\n" +
		"### Overall Cost Breakdown\n- **Accommodation**: $200\n"

	tree := ParseItinerary(text)

	if len(tree.Days[0].Sections["morning"]) != 1 {
		t.Fatalf("morning activity lost")
	}
	if len(tree.CostBreakdown) != 1 {
		t.Errorf("cost line after mode switch filed as activity, breakdown = %+v", tree.CostBreakdown)
	}
}

func TestParseItinerarySectionHeaderResumesDayParsing(t *testing.T) {
	text := "### Day 1: Arrival\n#### Morning\n- **8:00 AM**: Visit temple\n" +
		"### Overall Cost Breakdown\n- **Accommodation**: $200\n" +
		"#### Afternoon\n- **2:00 PM**: Museum tour\n"

	tree := ParseItinerary(text)

	afternoon := tree.Days[0].Sections["afternoon"]
	if len(afternoon) != 1 {
		t.Fatalf("expected the post-header bullet to be an afternoon activity, got %d; costBreakdown=%+v",
			len(afternoon), tree.CostBreakdown)
	}
	if afternoon[0].Time != "2:00 PM" || afternoon[0].Description != "Museum tour" {
		t.Errorf("afternoon activity = %+v", afternoon[0])
	}
	if len(tree.CostBreakdown) != 1 {
		t.Errorf("cost breakdown should hold only the entry before the header, got %+v", tree.CostBreakdown)
	}
}

func TestParseItineraryMalformedLinesIgnored(t *testing.T) {
	text := "### Day 1: Arrival\n#### Morning\n" +
		"- **8:00 AM without closing marker\n" + // no "**: " delimiter
		"- plain bullet in day mode\n" +
		"random prose line\n" +
		"- **9:00 AM**: Breakfast\n" +
		"  - **no delimiter here\n"

	tree := ParseItinerary(text)

	morning := tree.Days[0].Sections["morning"]
	if len(morning) != 1 {
		t.Fatalf("expected only the well-formed activity, got %d", len(morning))
	}
	if morning[0].Time != "9:00 AM" {
		t.Errorf("time = %q", morning[0].Time)
	}
	if len(morning[0].Details) != 0 {
		t.Errorf("malformed detail kept: %+v", morning[0].Details)
	}
}

func TestParseItineraryUnknownSectionNotAddressable(t *testing.T) {
	text := "### Day 1: Arrival\n#### Midnight\n- **11:00 PM**: Stargazing\n"

	tree := ParseItinerary(text)

	for name, acts := range tree.Days[0].Sections {
		if len(acts) != 0 {
			t.Errorf("activity filed under unexpected section %q", name)
		}
	}
}

func TestParseItineraryEmptyInput(t *testing.T) {
	tree := ParseItinerary("")

	if tree.Days == nil || tree.CostBreakdown == nil || tree.SpecialConsiderations == nil {
		t.Errorf("collections must be non-nil so they serialize as empty arrays")
	}
}
