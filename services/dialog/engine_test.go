package dialog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lamaison/models"
	"lamaison/services/restaurant"
)

func newTestEngine() *Engine {
	catalog := restaurant.NewCatalog(restaurant.DefaultMenu())
	table := restaurant.NewAvailabilityTable(restaurant.DefaultSchedule())
	return NewEngineWithClock(catalog, table, func() time.Time { return testNow })
}

func TestGreeting(t *testing.T) {
	e := newTestEngine()
	assert.Equal(t, "Welcome to La Maison! I can help you book a table, browse the menu, or check availability. What can I do for you?", e.Greeting())
}

func TestIdleSmallTalk(t *testing.T) {
	e := newTestEngine()
	idle := models.NewConversationState()

	cases := []struct {
		name   string
		input  string
		intent Intent
		reply  string
	}{
		{"Hours", "when do you open", IntentHours, "We're open daily — **lunch 12–3 PM** and **dinner 7–10 PM**. Want me to check a specific slot?"},
		{"Greeting", "hello", IntentGreeting, "Hey there! I can help you book a table, check the menu, or look up availability. What sounds good?"},
		{"Thanks", "thanks!", IntentThanks, "Happy to help! Enjoy your visit to La Maison."},
		{"Bye", "goodbye", IntentBye, "See you soon! Looking forward to having you at La Maison."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, turn := e.ProcessTurn(idle, tc.input)
			assert.Equal(t, tc.intent, turn.Intent)
			assert.Equal(t, tc.reply, turn.Reply)
			assert.Equal(t, models.PhaseIdle, next.Phase)
			assert.False(t, turn.FallbackEligible)
		})
	}
}

func TestIdleMenu(t *testing.T) {
	e := newTestEngine()
	idle := models.NewConversationState()

	t.Run("Summary", func(t *testing.T) {
		next, turn := e.ProcessTurn(idle, "show me the menu")
		assert.Equal(t, IntentMenu, turn.Intent)
		assert.Contains(t, turn.Reply, "Butter Chicken")
		assert.Equal(t, models.PhaseIdle, next.Phase)
	})

	t.Run("Subcategory", func(t *testing.T) {
		_, turn := e.ProcessTurn(idle, "what do you have for dessert")
		assert.Equal(t, IntentMenu, turn.Intent)
		assert.Contains(t, turn.Reply, "**Desserts**")
		assert.Contains(t, turn.Reply, "Gulab Jamun")
		assert.NotContains(t, turn.Reply, "Butter Chicken")
	})
}

func TestIdleUnknownIsFallbackEligible(t *testing.T) {
	e := newTestEngine()
	next, turn := e.ProcessTurn(models.NewConversationState(), "tell me about parking")
	assert.Equal(t, IntentUnknown, turn.Intent)
	assert.True(t, turn.FallbackEligible)
	assert.Equal(t, "I can help with **reservations**, **menu info**, or **availability**. What would you like?", turn.Reply)
	assert.Equal(t, models.PhaseIdle, next.Phase)
}

func TestReserveHappyPath(t *testing.T) {
	e := newTestEngine()
	state := models.NewConversationState()

	state, turn := e.ProcessTurn(state, "Book a table on Wednesday at 7 pm")
	assert.Equal(t, IntentReserve, turn.Intent)
	assert.Equal(t, models.PhaseCollecting, state.Phase)
	assert.Equal(t, "Wednesday", state.Draft.Day)
	assert.Equal(t, "7:00 PM", state.Draft.Time)
	assert.Equal(t, 7, state.Draft.Guests) // the hour doubles as the first in-range number
	assert.Equal(t, "Got it. I just need a name for the reservation and a contact number.", turn.Reply)

	state, turn = e.ProcessTurn(state, "the name is Priya Sharma")
	assert.Equal(t, models.PhaseCollecting, state.Phase)
	assert.Equal(t, "Priya Sharma", state.Draft.Name)
	assert.Equal(t, "Got it. I just need a contact number.", turn.Reply)

	state, turn = e.ProcessTurn(state, "98765 43210")
	require.Equal(t, models.PhaseConfirm, state.Phase)
	assert.Equal(t, "Here's what I have:\n- **Wednesday** (Wednesday) at **7:00 PM**\n- **7 guests**\n- Under **Priya Sharma** — 98765 43210\n\nShall I lock this in?", turn.Reply)

	state, turn = e.ProcessTurn(state, "yes please")
	assert.Equal(t, models.PhaseIdle, state.Phase)
	require.NotNil(t, state.Confirmed)
	assert.Equal(t, "Priya Sharma", state.Confirmed.Name)
	assert.Equal(t, "98765 43210", state.Confirmed.Phone)
	assert.Equal(t, models.ReservationDraft{}, state.Draft)
	assert.Equal(t, "You're all set! Table for 7 on Wednesday at 7:00 PM, under Priya Sharma. We look forward to seeing you at La Maison!", turn.Reply)
}

func TestReserveAnyOrderThenDecline(t *testing.T) {
	e := newTestEngine()
	state := models.NewConversationState()

	state, turn := e.ProcessTurn(state, "book a table for tomorrow")
	assert.Equal(t, "Tuesday", state.Draft.Day)
	assert.Equal(t, "Tomorrow", state.Draft.Date)
	assert.Empty(t, state.Draft.Name, "relative day words are not names")
	assert.Equal(t, "Got it. I just need what time (lunch 12–2 PM / dinner 7–9 PM) and how many guests.", turn.Reply)

	state, turn = e.ProcessTurn(state, "12 pm")
	assert.Equal(t, "12:00 PM", state.Draft.Time)
	assert.Equal(t, 12, state.Draft.Guests)
	assert.Equal(t, "Got it. I just need a name for the reservation and a contact number.", turn.Reply)

	state, _ = e.ProcessTurn(state, "I'm Arjun")
	assert.Equal(t, "Arjun", state.Draft.Name)

	state, turn = e.ProcessTurn(state, "+91 98765 43210")
	require.Equal(t, models.PhaseConfirm, state.Phase)
	assert.Contains(t, turn.Reply, "- **Tomorrow** (Tuesday) at **12:00 PM**")
	assert.Contains(t, turn.Reply, "- **12 guests**")

	state, turn = e.ProcessTurn(state, "no")
	assert.Equal(t, models.PhaseIdle, state.Phase)
	assert.Nil(t, state.Confirmed)
	assert.Equal(t, models.ReservationDraft{}, state.Draft)
	assert.Equal(t, "No worries, I've scrapped that. Let me know if you'd like to start fresh.", turn.Reply)
}

func TestConfirmReprompt(t *testing.T) {
	e := newTestEngine()
	state := models.ConversationState{
		Phase: models.PhaseConfirm,
		Draft: models.ReservationDraft{Day: "Monday", Date: "Monday", Time: "7:00 PM", Guests: 2, Name: "Asha", Phone: "5551234567"},
	}

	next, turn := e.ProcessTurn(state, "what?")
	assert.Equal(t, models.PhaseConfirm, next.Phase)
	assert.Equal(t, state.Draft, next.Draft)
	assert.Equal(t, "Just need a yes or no on that booking — shall I confirm it?", turn.Reply)
}

func TestSingleFieldFallback(t *testing.T) {
	e := newTestEngine()
	state := models.ConversationState{
		Phase: models.PhaseCollecting,
		Draft: models.ReservationDraft{Day: "Monday", Date: "Monday", Time: "7:00 PM", Guests: 2},
	}

	// "Rahul" matches no extractor, so the whole turn becomes the name.
	next, turn := e.ProcessTurn(state, "Rahul")
	assert.Equal(t, "Rahul", next.Draft.Name)
	assert.Equal(t, "Got it. I just need a contact number.", turn.Reply)

	// A bare digit run reads as a phone number, never as a name.
	next, _ = e.ProcessTurn(state, "1234567")
	assert.Empty(t, next.Draft.Name)
	assert.Equal(t, "1234567", next.Draft.Phone)
}

func TestSlotConflictThenLimitedWarning(t *testing.T) {
	e := newTestEngine()
	state := models.NewConversationState()

	// Saturday 1:00 PM is fully booked; the time is cleared and the two
	// closest open slots are offered.
	state, turn := e.ProcessTurn(state, "Book a table on Saturday for 1")
	assert.Equal(t, models.PhaseCollecting, state.Phase)
	assert.Equal(t, "Saturday", state.Draft.Day)
	assert.Empty(t, state.Draft.Time)
	assert.Equal(t, 1, state.Draft.Guests)
	assert.Equal(t, "Saturday at 1:00 PM is fully booked for 1. How about 12:00 PM or 2:00 PM?", turn.Reply)

	// Picking a limited slot goes through with a soft warning.
	state, turn = e.ProcessTurn(state, "7 pm")
	assert.Equal(t, "7:00 PM", state.Draft.Time)
	assert.Equal(t, "7:00 PM on Saturday is filling up, but I can still get you in. Got it. I just need a name for the reservation and a contact number.", turn.Reply)
}

func TestSaturatedDayClearsDay(t *testing.T) {
	e := newTestEngine()
	state := models.NewConversationState()

	// Party of 8 needs an 8-top and Saturday has none left at any time.
	state, turn := e.ProcessTurn(state, "Book a table on Saturday at 8 pm")
	assert.Equal(t, models.PhaseCollecting, state.Phase)
	assert.Empty(t, state.Draft.Day)
	assert.Empty(t, state.Draft.Date)
	assert.Empty(t, state.Draft.Time)
	assert.Equal(t, 8, state.Draft.Guests)
	assert.Equal(t, "We're pretty packed on Saturday for 8 guests. Want to try a different day?", turn.Reply)
}

func TestAbandonEarlyRefusal(t *testing.T) {
	e := newTestEngine()
	state := models.NewConversationState()

	state, turn := e.ProcessTurn(state, "book a table")
	assert.Equal(t, models.PhaseCollecting, state.Phase)
	assert.Equal(t, "Great, I'll set that up. Could you let me know which day and what time (lunch 12–2 PM / dinner 7–9 PM)?", turn.Reply)

	state, turn = e.ProcessTurn(state, "no, forget it")
	assert.Equal(t, models.PhaseIdle, state.Phase)
	assert.Equal(t, models.ReservationDraft{}, state.Draft)
	assert.Equal(t, "No problem, we can pick this up anytime. What else can I help with?", turn.Reply)
}

func TestLateRefusalDoesNotAbandon(t *testing.T) {
	e := newTestEngine()
	state := models.ConversationState{
		Phase: models.PhaseCollecting,
		Draft: models.ReservationDraft{Day: "Monday", Date: "Monday", Time: "7:00 PM", Guests: 2, Name: "Rahul"},
	}

	// With only the phone missing a "no" is not treated as walking away.
	next, turn := e.ProcessTurn(state, "no")
	assert.Equal(t, models.PhaseCollecting, next.Phase)
	assert.Equal(t, "Rahul", next.Draft.Name)
	assert.Equal(t, "Got it. I just need a contact number.", turn.Reply)
}

func TestCancelFlow(t *testing.T) {
	e := newTestEngine()
	confirmed := models.ReservationDraft{Day: "Friday", Date: "Friday", Time: "7:00 PM", Guests: 2, Name: "Asha", Phone: "5551234567"}

	t.Run("NoReservation", func(t *testing.T) {
		next, turn := e.ProcessTurn(models.NewConversationState(), "I want to cancel")
		assert.Equal(t, models.PhaseIdle, next.Phase)
		assert.Equal(t, "I don't have an active reservation on file. Would you like to make one?", turn.Reply)
	})

	t.Run("ConfirmedCancel", func(t *testing.T) {
		state := models.ConversationState{Phase: models.PhaseIdle, Confirmed: &confirmed}

		state, turn := e.ProcessTurn(state, "I want to cancel")
		require.Equal(t, models.PhaseCancelConfirm, state.Phase)
		assert.Equal(t, "I have your booking under **Asha** for 2 on Friday at 7:00 PM. Want me to cancel it?", turn.Reply)

		state, turn = e.ProcessTurn(state, "yes")
		assert.Equal(t, models.PhaseIdle, state.Phase)
		assert.Nil(t, state.Confirmed)
		assert.Equal(t, "Done, your reservation is cancelled. If you'd like to rebook anytime, just say the word.", turn.Reply)
	})

	t.Run("AnythingElseKeepsIt", func(t *testing.T) {
		state := models.ConversationState{Phase: models.PhaseCancelConfirm, Confirmed: &confirmed}

		next, turn := e.ProcessTurn(state, "actually hold on")
		assert.Equal(t, models.PhaseIdle, next.Phase)
		require.NotNil(t, next.Confirmed)
		assert.Equal(t, "Asha", next.Confirmed.Name)
		assert.Equal(t, "Alright, keeping your reservation as is. Anything else?", turn.Reply)
	})
}

func TestModify(t *testing.T) {
	e := newTestEngine()
	confirmed := models.ReservationDraft{Day: "Friday", Date: "Friday", Time: "7:00 PM", Guests: 2, Name: "Asha", Phone: "5551234567"}

	t.Run("PrefillsDraft", func(t *testing.T) {
		state := models.ConversationState{Phase: models.PhaseIdle, Confirmed: &confirmed}

		next, turn := e.ProcessTurn(state, "can we change it")
		assert.Equal(t, models.PhaseCollecting, next.Phase)
		assert.Equal(t, confirmed, next.Draft)
		assert.Equal(t, "Sure, let's update your booking. What would you like to change — day, time, or guest count?", turn.Reply)
	})

	t.Run("NoReservation", func(t *testing.T) {
		next, turn := e.ProcessTurn(models.NewConversationState(), "can we change it")
		assert.Equal(t, models.PhaseIdle, next.Phase)
		assert.Equal(t, "No active reservation to modify. Want to book a new one?", turn.Reply)
	})
}

func TestProcessTurnIsPure(t *testing.T) {
	e := newTestEngine()
	confirmed := models.ReservationDraft{Day: "Friday", Date: "Friday", Time: "7:00 PM", Guests: 2, Name: "Asha", Phone: "5551234567"}
	state := models.ConversationState{Phase: models.PhaseCancelConfirm, Confirmed: &confirmed}

	next, _ := e.ProcessTurn(state, "yes")
	assert.Nil(t, next.Confirmed)
	require.NotNil(t, state.Confirmed)
	assert.Equal(t, "Asha", state.Confirmed.Name)

	t.Run("Deterministic", func(t *testing.T) {
		s := models.NewConversationState()
		n1, t1 := e.ProcessTurn(s, "Book a table on Wednesday at 7 pm")
		n2, t2 := e.ProcessTurn(s, "Book a table on Wednesday at 7 pm")
		assert.Equal(t, n1, n2)
		assert.Equal(t, t1, t2)
	})
}
