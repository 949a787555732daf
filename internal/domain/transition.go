package domain

// TransitionTargets is the explicit status transition table: for each current
// status, the set of statuses it may move to. The table is deliberately
// permissive — any status may move to any of the other three — and is kept
// as data so it can be tightened later without touching call sites.
var TransitionTargets = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusCompleted},
	StatusConfirmed: {StatusPending, StatusCancelled, StatusCompleted},
	StatusCancelled: {StatusPending, StatusConfirmed, StatusCompleted},
	StatusCompleted: {StatusPending, StatusConfirmed, StatusCancelled},
}

// CanTransition reports whether the transition table allows moving
// from current to target.
func CanTransition(current, target BookingStatus) bool {
	for _, allowed := range TransitionTargets[current] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Transition validates a status change and returns the accepted new status.
// A transition to the current status is always rejected, as is any value
// outside the closed enumeration.
func Transition(current, target BookingStatus) (BookingStatus, error) {
	if err := ValidateStatus(current); err != nil {
		return "", err
	}
	if err := ValidateStatus(target); err != nil {
		return "", err
	}
	if current == target {
		return "", ErrSameStatus
	}
	if !CanTransition(current, target) {
		return "", ErrTransitionNotAllowed
	}
	return target, nil
}

// Accept is the pending → confirmed shortcut.
func Accept(current BookingStatus) (BookingStatus, error) {
	if current != StatusPending {
		return "", ErrNotPending
	}
	return Transition(current, StatusConfirmed)
}

// Decline is the pending → cancelled shortcut.
func Decline(current BookingStatus) (BookingStatus, error) {
	if current != StatusPending {
		return "", ErrNotPending
	}
	return Transition(current, StatusCancelled)
}
