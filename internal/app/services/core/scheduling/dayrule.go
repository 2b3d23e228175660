package scheduling

import (
	"fmt"
	"strings"
	"time"
)

// weekdayNames is the canonical Monday-first week in the rule language.
// Matching is exact: case and accents must agree with these spellings.
var weekdayNames = []string{
	"Lunes",
	"Martes",
	"Miércoles",
	"Jueves",
	"Viernes",
	"Sábado",
	"Domingo",
}

const (
	rangeSeparator       = " a "
	conjunctionSeparator = " y "
)

type RuleKind int

const (
	// RuleRange matches every weekday whose Monday-first index falls
	// inclusively between two named days, e.g. "Lunes a Viernes".
	RuleRange RuleKind = iota
	// RuleSet matches an explicit list of named days, written either as a
	// comma list ("Lunes, Miércoles, Viernes") or joined with " y "
	// ("Martes y Jueves").
	RuleSet
	// RuleSingle matches exactly one named day.
	RuleSingle
)

// DayRule is the parsed form of a specialty's working-days expression.
// Parsing happens once at specialty create/edit time; readers that find an
// expression that no longer parses treat the specialty as working no days
// rather than failing the request.
type DayRule struct {
	kind  RuleKind
	start int
	end   int
	days  map[int]struct{}
}

func (r DayRule) Kind() RuleKind {
	return r.kind
}

// WorksOn reports whether the rule covers the date's weekday.
func (r DayRule) WorksOn(date time.Time) bool {
	idx := mondayFirstIndex(date.Weekday())
	switch r.kind {
	case RuleRange:
		return idx >= r.start && idx <= r.end
	case RuleSet:
		_, ok := r.days[idx]
		return ok
	case RuleSingle:
		return idx == r.start
	default:
		return false
	}
}

// ParseDayRule matches the expression against exactly one of the textual
// patterns, tested in priority order: range, comma list, conjunction,
// single day. Any unrecognized day name fails the whole parse.
func ParseDayRule(expression string) (DayRule, error) {
	expr := strings.TrimSpace(expression)
	if expr == "" {
		return DayRule{}, fmt.Errorf("empty working days expression")
	}

	switch {
	case strings.Contains(expr, rangeSeparator):
		parts := strings.SplitN(expr, rangeSeparator, 2)
		start, ok1 := weekdayIndexOf(parts[0])
		end, ok2 := weekdayIndexOf(parts[1])
		if !ok1 || !ok2 {
			return DayRule{}, fmt.Errorf("unknown day name in range %q", expr)
		}
		return DayRule{kind: RuleRange, start: start, end: end}, nil

	case strings.Contains(expr, ","):
		return parseDayList(expr, ",")

	case strings.Contains(expr, conjunctionSeparator):
		return parseDayList(expr, conjunctionSeparator)

	default:
		idx, ok := weekdayIndexOf(expr)
		if !ok {
			return DayRule{}, fmt.Errorf("unknown day name %q", expr)
		}
		return DayRule{kind: RuleSingle, start: idx}, nil
	}
}

func parseDayList(expr, separator string) (DayRule, error) {
	days := make(map[int]struct{})
	for _, token := range strings.Split(expr, separator) {
		idx, ok := weekdayIndexOf(token)
		if !ok {
			return DayRule{}, fmt.Errorf("unknown day name %q in list %q", strings.TrimSpace(token), expr)
		}
		days[idx] = struct{}{}
	}
	return DayRule{kind: RuleSet, days: days}, nil
}

func weekdayIndexOf(name string) (int, bool) {
	trimmed := strings.TrimSpace(name)
	for i, day := range weekdayNames {
		if trimmed == day {
			return i, true
		}
	}
	return 0, false
}

// mondayFirstIndex maps time.Weekday to the canonical Monday-first index,
// so Sunday lands at 6 rather than 0.
func mondayFirstIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
