package dialog

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"lamaison/models"
	"lamaison/services/restaurant"
)

// Engine is the deterministic reservation dialog engine. It holds only
// read-only collaborators; all per-session state lives in the
// ConversationState value passed through ProcessTurn, so one engine serves
// any number of concurrent sessions.
type Engine struct {
	catalog *restaurant.Catalog
	table   *restaurant.AvailabilityTable
	clock   func() time.Time
}

// NewEngine builds an engine over a menu catalog and availability table.
func NewEngine(catalog *restaurant.Catalog, table *restaurant.AvailabilityTable) *Engine {
	return &Engine{catalog: catalog, table: table, clock: time.Now}
}

// NewEngineWithClock fixes the clock used to resolve "today" and
// "tomorrow". Intended for tests.
func NewEngineWithClock(catalog *restaurant.Catalog, table *restaurant.AvailabilityTable, clock func() time.Time) *Engine {
	return &Engine{catalog: catalog, table: table, clock: clock}
}

// Turn is the engine's answer to one user message.
type Turn struct {
	Reply string
	// Intent is the classification of the message, set only when the
	// session was idle and the message was classified.
	Intent Intent
	// FallbackEligible marks turns the engine answered with the generic
	// capability reply; the caller may instead relay these to the hosted
	// model for free-form Q&A.
	FallbackEligible bool
}

// Greeting is the opening message shown before the first user turn.
func (e *Engine) Greeting() string {
	return "Welcome to La Maison! I can help you book a table, browse the menu, or check availability. What can I do for you?"
}

// ProcessTurn advances the conversation by one user message. It is a pure
// state transition: the input state is not mutated and the successor state
// is returned alongside the reply.
func (e *Engine) ProcessTurn(state models.ConversationState, userInput string) (models.ConversationState, Turn) {
	input := strings.TrimSpace(userInput)

	switch state.Phase {
	case models.PhaseConfirm:
		return e.handleConfirm(state, input)
	case models.PhaseCancelConfirm:
		return e.handleCancelConfirm(state, input)
	case models.PhaseCollecting:
		return e.handleCollecting(state, input)
	default:
		return e.handleIdle(state, input)
	}
}

func (e *Engine) handleConfirm(state models.ConversationState, input string) (models.ConversationState, Turn) {
	if IsAffirmative(input) {
		r := state.Draft
		state.Confirmed = &r
		state.Phase = models.PhaseIdle
		state.Draft = models.ReservationDraft{}
		reply := fmt.Sprintf("You're all set! Table for %d on %s at %s, under %s. We look forward to seeing you at La Maison!",
			r.Guests, r.Date, r.Time, r.Name)
		return state, Turn{Reply: reply}
	}
	if IsNegative(input) {
		state.Phase = models.PhaseIdle
		state.Draft = models.ReservationDraft{}
		return state, Turn{Reply: "No worries, I've scrapped that. Let me know if you'd like to start fresh."}
	}
	return state, Turn{Reply: "Just need a yes or no on that booking — shall I confirm it?"}
}

// handleCancelConfirm cancels only on an explicit yes. Anything else keeps
// the reservation and returns to idle; there is no re-prompt here.
func (e *Engine) handleCancelConfirm(state models.ConversationState, input string) (models.ConversationState, Turn) {
	if IsAffirmative(input) {
		state.Confirmed = nil
		state.Phase = models.PhaseIdle
		return state, Turn{Reply: "Done, your reservation is cancelled. If you'd like to rebook anytime, just say the word."}
	}
	state.Phase = models.PhaseIdle
	return state, Turn{Reply: "Alright, keeping your reservation as is. Anything else?"}
}

func (e *Engine) handleCollecting(state models.ConversationState, input string) (models.ConversationState, Turn) {
	// A flat refusal early in the flow means the user wants out.
	if IsNegative(input) && len(missingFields(state.Draft)) > 2 {
		state.Phase = models.PhaseIdle
		state.Draft = models.ReservationDraft{}
		return state, Turn{Reply: "No problem, we can pick this up anytime. What else can I help with?"}
	}

	e.absorbWithFallback(&state.Draft, input)

	notice := e.availabilityNotice(&state.Draft)
	if notice != "" && state.Draft.Time == "" {
		// Slot conflict: the draft was rolled back and the notice asks
		// for a new time or day.
		return state, Turn{Reply: notice}
	}

	if len(missingFields(state.Draft)) == 0 {
		state.Phase = models.PhaseConfirm
		return state, Turn{Reply: notice + buildConfirmation(state.Draft)}
	}
	return state, Turn{Reply: notice + askNext(state.Draft)}
}

func (e *Engine) handleIdle(state models.ConversationState, input string) (models.ConversationState, Turn) {
	intent := Classify(input)

	switch intent {
	case IntentReserve:
		state.Phase = models.PhaseCollecting
		state.Draft = models.ReservationDraft{}
		e.absorb(&state.Draft, input)

		notice := e.availabilityNotice(&state.Draft)
		if notice != "" && state.Draft.Time == "" {
			return state, Turn{Reply: notice, Intent: intent}
		}
		if len(missingFields(state.Draft)) == 0 {
			state.Phase = models.PhaseConfirm
			return state, Turn{Reply: notice + buildConfirmation(state.Draft), Intent: intent}
		}
		return state, Turn{Reply: notice + askNext(state.Draft), Intent: intent}

	case IntentMenu:
		if cat := DetectMenuSubcategory(input); cat != "" {
			return state, Turn{Reply: e.catalog.Lookup(cat), Intent: intent}
		}
		return state, Turn{Reply: e.catalog.Summary(), Intent: intent}

	case IntentCancel:
		if state.Confirmed != nil {
			state.Phase = models.PhaseCancelConfirm
			r := state.Confirmed
			reply := fmt.Sprintf("I have your booking under **%s** for %d on %s at %s. Want me to cancel it?",
				r.Name, r.Guests, r.Date, r.Time)
			return state, Turn{Reply: reply, Intent: intent}
		}
		return state, Turn{Reply: "I don't have an active reservation on file. Would you like to make one?", Intent: intent}

	case IntentModify:
		if state.Confirmed != nil {
			state.Phase = models.PhaseCollecting
			state.Draft = *state.Confirmed
			return state, Turn{Reply: "Sure, let's update your booking. What would you like to change — day, time, or guest count?", Intent: intent}
		}
		return state, Turn{Reply: "No active reservation to modify. Want to book a new one?", Intent: intent}

	case IntentHours:
		return state, Turn{Reply: "We're open daily — **lunch 12–3 PM** and **dinner 7–10 PM**. Want me to check a specific slot?", Intent: intent}

	case IntentGreeting:
		return state, Turn{Reply: "Hey there! I can help you book a table, check the menu, or look up availability. What sounds good?", Intent: intent}

	case IntentThanks:
		return state, Turn{Reply: "Happy to help! Enjoy your visit to La Maison.", Intent: intent}

	case IntentBye:
		return state, Turn{Reply: "See you soon! Looking forward to having you at La Maison.", Intent: intent}

	default:
		return state, Turn{
			Reply:            "I can help with **reservations**, **menu info**, or **availability**. What would you like?",
			Intent:           IntentUnknown,
			FallbackEligible: true,
		}
	}
}

// Required fields in prompt and fallback priority order.
const (
	fieldDay    = "day"
	fieldTime   = "time"
	fieldGuests = "guests"
	fieldName   = "name"
	fieldPhone  = "phone"
)

func missingFields(r models.ReservationDraft) []string {
	var missing []string
	if r.Day == "" {
		missing = append(missing, fieldDay)
	}
	if r.Time == "" {
		missing = append(missing, fieldTime)
	}
	if r.Guests == 0 {
		missing = append(missing, fieldGuests)
	}
	if r.Name == "" {
		missing = append(missing, fieldName)
	}
	if r.Phone == "" {
		missing = append(missing, fieldPhone)
	}
	return missing
}

func collectedCount(r models.ReservationDraft) int {
	count := 0
	for _, present := range []bool{r.Day != "", r.Date != "", r.Time != "", r.Guests != 0, r.Name != "", r.Phone != ""} {
		if present {
			count++
		}
	}
	return count
}

// askNext prompts for up to two missing fields at once, enough to keep the
// flow moving without overwhelming the user.
func askNext(r models.ReservationDraft) string {
	missing := missingFields(r)
	if len(missing) == 0 {
		return ""
	}

	asks := make([]string, 0, 2)
	for _, f := range missing {
		switch f {
		case fieldDay:
			asks = append(asks, "which day")
		case fieldTime:
			asks = append(asks, "what time (lunch 12–2 PM / dinner 7–9 PM)")
		case fieldGuests:
			asks = append(asks, "how many guests")
		case fieldName:
			asks = append(asks, "a name for the reservation")
		case fieldPhone:
			asks = append(asks, "a contact number")
		}
		if len(asks) == 2 {
			break
		}
	}

	if collectedCount(r) == 0 {
		return fmt.Sprintf("Great, I'll set that up. Could you let me know %s?", strings.Join(asks, " and "))
	}
	return fmt.Sprintf("Got it. I just need %s.", strings.Join(asks, " and "))
}

func buildConfirmation(r models.ReservationDraft) string {
	plural := ""
	if r.Guests > 1 {
		plural = "s"
	}
	return fmt.Sprintf("Here's what I have:\n- **%s** (%s) at **%s**\n- **%d guest%s**\n- Under **%s** — %s\n\nShall I lock this in?",
		r.Date, r.Day, r.Time, r.Guests, plural, r.Name, r.Phone)
}

// absorb opportunistically pulls any extractable fields from the turn into
// the draft, never overwriting fields already collected. Reports whether
// the extractors found anything at all.
func (e *Engine) absorb(r *models.ReservationDraft, input string) bool {
	d := ExtractBookingDetails(input, e.clock())
	if d.HasDay && r.Day == "" {
		r.Day = d.Day.Day
		r.Date = d.Day.Date
	}
	if d.Time != "" && r.Time == "" {
		r.Time = d.Time
	}
	if d.Guests != 0 && r.Guests == 0 {
		r.Guests = d.Guests
	}
	if d.Name != "" && r.Name == "" {
		r.Name = d.Name
	}
	if d.Phone != "" && r.Phone == "" {
		r.Phone = d.Phone
	}
	return d.HasAny()
}

var allDigits = regexp.MustCompile(`^\d+$`)

// absorbWithFallback absorbs, and only when the generic extractors found
// nothing interprets the whole turn as a value for the first missing field.
// This precedence keeps single-field answers like "Rahul" working without
// letting them clobber richer turns.
func (e *Engine) absorbWithFallback(r *models.ReservationDraft, input string) {
	if e.absorb(r, input) {
		return
	}

	missing := missingFields(*r)
	if len(missing) == 0 {
		return
	}

	switch missing[0] {
	case fieldDay:
		if d, ok := ExtractDay(input, e.clock()); ok {
			r.Day = d.Day
			r.Date = d.Date
		}
	case fieldTime:
		if t, ok := ExtractTime(input); ok {
			r.Time = t
		}
	case fieldGuests:
		if g, ok := ExtractGuestCount(input); ok {
			r.Guests = g
		}
	case fieldName:
		if len(input) >= 2 && !allDigits.MatchString(input) {
			r.Name = strings.TrimSpace(input)
		}
	case fieldPhone:
		if p, ok := ExtractPhone(input); ok {
			r.Phone = p
		}
	}
}

// availabilityNotice checks capacity once day, time, and guests are all
// known. A limited slot returns a soft warning and leaves the draft alone;
// a conflict clears the time (and the day too when the whole day is
// saturated) and returns the message that asks the user to pick again.
func (e *Engine) availabilityNotice(r *models.ReservationDraft) string {
	if r.Day == "" || r.Time == "" || r.Guests == 0 {
		return ""
	}

	result := e.table.Check(r.Day, r.Time, r.Guests)
	if result.Available {
		if result.Slot != nil && result.Slot.Status == models.SlotLimited {
			return fmt.Sprintf("%s on %s is filling up, but I can still get you in. ", r.Time, r.Date)
		}
		return ""
	}

	if len(result.Alternatives) > 0 {
		requested := r.Time
		r.Time = ""
		suggestions := result.Alternatives
		if len(suggestions) > 2 {
			suggestions = suggestions[:2]
		}
		return fmt.Sprintf("%s at %s is fully booked for %d. How about %s?",
			r.Date, requested, r.Guests, strings.Join(suggestions, " or "))
	}

	date := r.Date
	if date == "" {
		date = "that day"
	}
	guests := r.Guests
	r.Day = ""
	r.Date = ""
	r.Time = ""
	return fmt.Sprintf("We're pretty packed on %s for %d guests. Want to try a different day?", date, guests)
}
