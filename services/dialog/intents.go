package dialog

import (
	"regexp"
	"strings"
)

// Intent is the coarse classification of a user turn.
type Intent string

const (
	IntentReserve  Intent = "reserve"
	IntentMenu     Intent = "menu"
	IntentCancel   Intent = "cancel"
	IntentModify   Intent = "modify"
	IntentHours    Intent = "hours"
	IntentGreeting Intent = "greeting"
	IntentThanks   Intent = "thanks"
	IntentBye      Intent = "bye"
	IntentUnknown  Intent = "unknown"
)

// Keyword patterns are checked in priority order; the first match wins.
var intentPatterns = []struct {
	intent  Intent
	pattern *regexp.Regexp
}{
	{IntentReserve, regexp.MustCompile(`\b(reserve|book|table|reservation|booking|seat)\b`)},
	{IntentMenu, regexp.MustCompile(`\b(menu|dish|food|eat|starter|dessert|drink|beverage|veg|non.?veg|vegan|biryani|chicken|paneer)\b`)},
	{IntentCancel, regexp.MustCompile(`\b(cancel|remove|delete)\b`)},
	{IntentModify, regexp.MustCompile(`\b(change|modify|update|reschedule)\b`)},
	{IntentHours, regexp.MustCompile(`\b(hour|open|close|timing|schedule|available|availability)\b`)},
	{IntentGreeting, regexp.MustCompile(`\b(hi|hello|hey|good morning|good evening|good afternoon)\b`)},
	{IntentThanks, regexp.MustCompile(`\b(thank|thanks|thx)\b`)},
	{IntentBye, regexp.MustCompile(`\b(bye|goodbye|see you)\b`)},
}

// Classify maps a raw turn to exactly one Intent. Case-insensitive, never
// fails; unmatched input is IntentUnknown.
func Classify(input string) Intent {
	lower := strings.ToLower(input)
	for _, p := range intentPatterns {
		if p.pattern.MatchString(lower) {
			return p.intent
		}
	}
	return IntentUnknown
}

var (
	affirmativePattern = regexp.MustCompile(`\b(yes|yeah|yep|sure|confirm|proceed|ok|okay|go ahead|lock|do it|absolutely|please)\b`)
	negativePattern    = regexp.MustCompile(`\b(no|nope|cancel|nah|don't|never mind|forget)\b`)
)

// IsAffirmative reports whether the turn reads as a yes. Not mutually
// exclusive with IsNegative; callers decide priority.
func IsAffirmative(input string) bool {
	return affirmativePattern.MatchString(strings.ToLower(input))
}

// IsNegative reports whether the turn reads as a no.
func IsNegative(input string) bool {
	return negativePattern.MatchString(strings.ToLower(input))
}

var menuCategoryPatterns = []struct {
	category string
	pattern  *regexp.Regexp
}{
	{"starter", regexp.MustCompile(`\b(starter|appetizer)\b`)},
	{"main", regexp.MustCompile(`\b(main|course|entree)\b`)},
	{"dessert", regexp.MustCompile(`\b(dessert|sweet)\b`)},
	{"beverage", regexp.MustCompile(`\b(drink|beverage|wine|beer)\b`)},
	{"vegetarian", regexp.MustCompile(`\b(veg|vegetarian)\b`)},
	{"non-veg", regexp.MustCompile(`\b(non.?veg|chicken|mutton|fish|prawn|lamb)\b`)},
	{"vegan", regexp.MustCompile(`\bvegan\b`)},
	{"gluten-free", regexp.MustCompile(`\bgluten\b`)},
}

// DetectMenuSubcategory finds the menu category a turn is asking about.
// Empty when nothing matches.
func DetectMenuSubcategory(input string) string {
	lower := strings.ToLower(input)
	for _, p := range menuCategoryPatterns {
		if p.category == "vegetarian" && strings.Contains(lower, "non") {
			continue
		}
		if p.pattern.MatchString(lower) {
			return p.category
		}
	}
	return ""
}
