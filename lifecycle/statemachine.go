package lifecycle

import "concession-stand-api/models"

// Transition defines one automatic, timer-driven state change. Method
// restricts the transition to one delivery method; empty means both.
type Transition struct {
	From   models.OrderStatus
	To     models.OrderStatus
	Method models.DeliveryMethod
}

// autoTransitions is the authoritative lifecycle definition: strictly
// forward, no state revisited, no step skipped. Pickup orders stop at
// ready and wait for the customer; delivery orders continue to the
// seat. The manual "I'm here" acknowledgment (ready -> completed for
// pickup) is a user action and deliberately absent from this table.
var autoTransitions = []Transition{
	{From: models.StatusConfirmed, To: models.StatusPreparing},
	{From: models.StatusPreparing, To: models.StatusReady},
	{From: models.StatusReady, To: models.StatusOutForDelivery, Method: models.DeliveryToSeat},
	{From: models.StatusOutForDelivery, To: models.StatusDelivered, Method: models.DeliveryToSeat},
}

// NextStatus returns the single next automatic status for an order in
// the given state, or false when the state is terminal for that
// delivery method.
func NextStatus(from models.OrderStatus, method models.DeliveryMethod) (models.OrderStatus, bool) {
	for _, t := range autoTransitions {
		if t.From != from {
			continue
		}
		if t.Method != "" && t.Method != method {
			continue
		}
		return t.To, true
	}
	return "", false
}

// IsTerminal reports whether no automatic transition remains
func IsTerminal(status models.OrderStatus, method models.DeliveryMethod) bool {
	_, ok := NextStatus(status, method)
	return !ok
}

// StatusSequence returns the full automatic path an order of the given
// delivery method walks from creation, for the info endpoint.
func StatusSequence(method models.DeliveryMethod) []models.OrderStatus {
	seq := []models.OrderStatus{models.StatusConfirmed}
	for {
		next, ok := NextStatus(seq[len(seq)-1], method)
		if !ok {
			return seq
		}
		seq = append(seq, next)
	}
}

// AllTransitions returns the automatic transition table for documentation
func AllTransitions() []Transition {
	return autoTransitions
}
