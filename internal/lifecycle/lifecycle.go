// Package lifecycle enforces the cheque status state machine:
// RECEIVED -> DEPOSITED -> CLEARED | BOUNCED.
package lifecycle

import (
	"time"

	"chequesaathi/internal/domain"
	"chequesaathi/internal/models"
)

// Successors returns the statuses reachable from s in one step.
func Successors(s domain.ChequeStatus) []domain.ChequeStatus {
	switch s {
	case domain.ChequeReceived:
		return []domain.ChequeStatus{domain.ChequeDeposited}
	case domain.ChequeDeposited:
		return []domain.ChequeStatus{domain.ChequeCleared, domain.ChequeBounced}
	case domain.ChequeCleared, domain.ChequeBounced:
		return nil
	}
	return nil
}

func Allowed(from, to domain.ChequeStatus) bool {
	for _, s := range Successors(from) {
		if s == to {
			return true
		}
	}
	return false
}

// Data carries the optional metadata of a transition. Dates left nil
// default to the transition time.
type Data struct {
	DepositDate  *time.Time
	ClearedDate  *time.Time
	BouncedDate  *time.Time
	BounceReason *string
}

// Change is the set of columns a transition writes.
type Change struct {
	From         domain.ChequeStatus
	To           domain.ChequeStatus
	DepositDate  *time.Time
	ClearedDate  *time.Time
	BouncedDate  *time.Time
	BounceReason *string
	UpdatedByID  string
}

func (c Change) Columns() map[string]interface{} {
	cols := map[string]interface{}{
		"status":        c.To,
		"updated_by_id": c.UpdatedByID,
	}
	if c.DepositDate != nil {
		cols["deposit_date"] = *c.DepositDate
	}
	if c.ClearedDate != nil {
		cols["cleared_date"] = *c.ClearedDate
	}
	if c.BouncedDate != nil {
		cols["bounced_date"] = *c.BouncedDate
	}
	if c.BounceReason != nil {
		cols["bounce_reason"] = *c.BounceReason
	}
	return cols
}

func pick(d *time.Time, now time.Time) *time.Time {
	if d != nil {
		t := *d
		return &t
	}
	return &now
}

// Transition moves c to target, recording the date of the step and stamping
// actorID. c is modified only on success.
func Transition(c *models.Cheque, target domain.ChequeStatus, data Data, actorID string, now time.Time) (Change, error) {
	if !target.Valid() {
		return Change{}, domain.Validation("invalid status %q", target)
	}
	if c.Status.Terminal() || !Allowed(c.Status, target) {
		return Change{}, domain.InvalidTransition(c.Status, target)
	}

	ch := Change{From: c.Status, To: target, UpdatedByID: actorID}
	switch target {
	case domain.ChequeDeposited:
		ch.DepositDate = pick(data.DepositDate, now)
	case domain.ChequeCleared:
		ch.ClearedDate = pick(data.ClearedDate, now)
	case domain.ChequeBounced:
		ch.BouncedDate = pick(data.BouncedDate, now)
		if data.BounceReason != nil && *data.BounceReason != "" {
			r := *data.BounceReason
			ch.BounceReason = &r
		}
	case domain.ChequeReceived:
		// unreachable: RECEIVED has no predecessor
	}

	c.Status = ch.To
	c.UpdatedByID = actorID
	if ch.DepositDate != nil {
		c.DepositDate = ch.DepositDate
	}
	if ch.ClearedDate != nil {
		c.ClearedDate = ch.ClearedDate
	}
	if ch.BouncedDate != nil {
		c.BouncedDate = ch.BouncedDate
	}
	if ch.BounceReason != nil {
		c.BounceReason = ch.BounceReason
	}
	return ch, nil
}
