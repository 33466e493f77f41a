package entities

import "time"

// ActorID references the user behind a creation, change or retirement.
// It is resolved by the identity store, never here. Empty means unset.
type ActorID string

// Audit records who created and last changed an entity.
type Audit struct {
	Creator     ActorID
	DateCreated time.Time // zero = not set
	ChangedBy   ActorID
	DateChanged time.Time // zero = not set
}

// RecordCreation stamps the creator. It is meant to be called once, when the
// entity is first built; calling it again overwrites the stamp.
func (a *Audit) RecordCreation(actor ActorID, at time.Time) {
	a.Creator = actor
	a.DateCreated = at
}

// RecordModification stamps the last change. It does not depend on the
// retirement state.
func (a *Audit) RecordModification(actor ActorID, at time.Time) {
	a.ChangedBy = actor
	a.DateChanged = at
}

// Retirement is the soft-delete state of an entity. A retired entity stays
// stored and readable but is flagged inactive.
type Retirement struct {
	Retired      bool
	DateRetired  time.Time
	RetiredBy    ActorID
	RetireReason string
}

// IsRetired reports whether the entity is currently retired.
func (r *Retirement) IsRetired() bool {
	return r.Retired
}

// Retire moves the entity to the retired state. Retiring an already retired
// entity overwrites the previous actor, reason and date.
func (r *Retirement) Retire(actor ActorID, reason string, at time.Time) {
	r.Retired = true
	r.RetiredBy = actor
	r.DateRetired = at
	r.RetireReason = reason
}

// Unretire moves the entity back to the active state. DateRetired, RetiredBy
// and RetireReason keep the values of the last retirement.
func (r *Retirement) Unretire() {
	r.Retired = false
}
