package scheduling

import (
	"testing"
	"time"
)

// Fixed week in March 2026: the 2nd is a Monday.
var (
	monday    = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	tuesday   = time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	wednesday = time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)
	friday    = time.Date(2026, time.March, 6, 0, 0, 0, 0, time.UTC)
	saturday  = time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC)
	sunday    = time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC)
)

func TestParseDayRuleRange(t *testing.T) {
	rule, err := ParseDayRule("Lunes a Viernes")
	if err != nil {
		t.Fatalf("expected range expression to parse, got error: %v", err)
	}
	if rule.Kind() != RuleRange {
		t.Fatalf("expected RuleRange, got %v", rule.Kind())
	}

	if !rule.WorksOn(wednesday) {
		t.Error("Lunes a Viernes should cover Wednesday")
	}
	if rule.WorksOn(saturday) {
		t.Error("Lunes a Viernes should not cover Saturday")
	}
	if !rule.WorksOn(monday) || !rule.WorksOn(friday) {
		t.Error("range bounds must be inclusive")
	}
}

func TestParseDayRuleCommaList(t *testing.T) {
	rule, err := ParseDayRule("Lunes, Miércoles, Viernes")
	if err != nil {
		t.Fatalf("expected comma list to parse, got error: %v", err)
	}
	if rule.Kind() != RuleSet {
		t.Fatalf("expected RuleSet, got %v", rule.Kind())
	}

	if !rule.WorksOn(wednesday) {
		t.Error("list should cover Miércoles")
	}
	if rule.WorksOn(tuesday) {
		t.Error("list should not cover Martes")
	}
}

func TestParseDayRuleConjunction(t *testing.T) {
	rule, err := ParseDayRule("Martes y Jueves")
	if err != nil {
		t.Fatalf("expected conjunction to parse, got error: %v", err)
	}
	if !rule.WorksOn(tuesday) {
		t.Error("conjunction should cover Martes")
	}
	if rule.WorksOn(wednesday) {
		t.Error("conjunction should not cover Miércoles")
	}
}

func TestParseDayRuleSingle(t *testing.T) {
	rule, err := ParseDayRule("Sábado")
	if err != nil {
		t.Fatalf("expected single day to parse, got error: %v", err)
	}
	if rule.Kind() != RuleSingle {
		t.Fatalf("expected RuleSingle, got %v", rule.Kind())
	}
	if !rule.WorksOn(saturday) {
		t.Error("single rule should cover its own day")
	}
	if rule.WorksOn(sunday) {
		t.Error("single rule should not cover another day")
	}
}

func TestParseDayRuleRejectsUnknownNames(t *testing.T) {
	for _, expr := range []string{
		"",
		"Funday",
		"Lunes a Funday",
		"Lunes, Funday, Viernes",
		"lunes",  // case sensitive
		"Sabado", // accent sensitive
	} {
		if _, err := ParseDayRule(expr); err == nil {
			t.Errorf("expected %q to fail parsing", expr)
		}
	}
}

func TestInvertedRangeMatchesNothing(t *testing.T) {
	rule, err := ParseDayRule("Viernes a Lunes")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	for _, day := range []time.Time{monday, wednesday, friday, sunday} {
		if rule.WorksOn(day) {
			t.Errorf("inverted range should not cover %s", day.Weekday())
		}
	}
}
