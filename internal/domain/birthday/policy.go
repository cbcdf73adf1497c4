package birthday

import "time"

// Transition is the single lifecycle action due for a party chat today.
type Transition int

const (
	// TransitionNone means no action is due.
	TransitionNone Transition = iota
	// TransitionAnnounce means today is the birthday and the congratulation
	// has not been posted yet.
	TransitionAnnounce
	// TransitionWarn means the chat is one day away from leaving its
	// retention window and the warning has not been posted yet.
	TransitionWarn
	// TransitionExpire means the chat is past its retention boundary and
	// must be torn down.
	TransitionExpire
)

func (t Transition) String() string {
	switch t {
	case TransitionAnnounce:
		return "announce"
	case TransitionWarn:
		return "warn"
	case TransitionExpire:
		return "expire"
	default:
		return "none"
	}
}

// Evaluate classifies an active party chat into exactly one transition for
// today, given the celebrant's birth date and the chat's notification
// flags. Expiry wins over notifications: a chat past its retention
// boundary is torn down without a final announcement. Announce and warn
// are idempotent through their flags, so a repeat evaluation on the same
// day yields TransitionNone.
func Evaluate(today time.Time, month, day int, announced, warned bool, before, after int) Transition {
	if !IsWithinWindow(today, month, day, before, after) {
		return TransitionExpire
	}

	if !announced && IsAnniversary(today, month, day) {
		return TransitionAnnounce
	}

	if !warned && after > 0 && DaysPastAnniversary(today, month, day) == after-1 {
		return TransitionWarn
	}

	return TransitionNone
}
