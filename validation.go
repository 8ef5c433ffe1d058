package secureownable

import (
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/particlecs/secureownable/types"
)

// Role names the contract roles an operation can be gated on.
type Role string

const (
	RoleOwner       Role = "owner"
	RoleBroadcaster Role = "broadcaster"
	RoleRecovery    Role = "recovery"
)

const (
	// MinTimelockPeriodInDays and MaxTimelockPeriodInDays bound the allowed
	// timelock period of a contract.
	MinTimelockPeriodInDays uint64 = 1
	MaxTimelockPeriodInDays uint64 = 30

	// CancelCooldown is the minimum time that must elapse after a two-phase
	// request before it can be cancelled. It blocks same-block cancel/approve
	// races regardless of the configured timelock period.
	CancelCooldown = time.Hour
)

// RoleHolder pairs a role name with the address currently holding it.
type RoleHolder struct {
	Role    Role
	Address common.Address
}

// ValidateCallerRole checks that caller holds at least one of the given
// roles. It returns an UnauthorizedRoleError naming the expected roles
// otherwise.
func ValidateCallerRole(caller common.Address, holders ...RoleHolder) error {
	for _, h := range holders {
		if caller == h.Address {
			return nil
		}
	}

	roles := make([]Role, 0, len(holders))
	for _, h := range holders {
		roles = append(roles, h.Role)
	}

	return NewUnauthorizedRoleError(caller, roles...)
}

// IsApprovable reports whether a two-phase operation can be approved at the
// given time: it must be PENDING and its release time must have passed.
func IsApprovable(rec types.TxRecord, now time.Time) bool {
	return rec.Status == types.TxStatusPending && uint64(now.Unix()) >= rec.ReleaseTime
}

// ValidateApprovable returns an error describing why a record cannot be
// approved at the given time, or nil.
func ValidateApprovable(rec types.TxRecord, now time.Time) error {
	if rec.Status != types.TxStatusPending {
		return NewOperationNotPendingError(rec.TxID, rec.Status)
	}
	if uint64(now.Unix()) < rec.ReleaseTime {
		return NewNotYetReleasableError(rec.TxID, rec.ReleaseTime, uint64(now.Unix()))
	}

	return nil
}

// CancellableAt returns the earliest time a two-phase operation can be
// cancelled: one CancelCooldown after the request, i.e.
// releaseTime - timelockPeriod + CancelCooldown.
func CancellableAt(rec types.TxRecord, timelockPeriod time.Duration) time.Time {
	requestedAt := int64(rec.ReleaseTime) - int64(timelockPeriod/time.Second)

	return time.Unix(requestedAt, 0).Add(CancelCooldown)
}

// IsCancellable reports whether a two-phase operation can be cancelled at
// the given time.
func IsCancellable(rec types.TxRecord, timelockPeriod time.Duration, now time.Time) bool {
	return rec.Status == types.TxStatusPending && !now.Before(CancellableAt(rec, timelockPeriod))
}

// ValidateCancellable returns an error describing why a record cannot be
// cancelled at the given time, or nil.
func ValidateCancellable(rec types.TxRecord, timelockPeriod time.Duration, now time.Time) error {
	if rec.Status != types.TxStatusPending {
		return NewOperationNotPendingError(rec.TxID, rec.Status)
	}
	if at := CancellableAt(rec, timelockPeriod); now.Before(at) {
		return NewCancelCooldownActiveError(rec.TxID, uint64(at.Unix()), uint64(now.Unix()))
	}

	return nil
}

// ValidateDeadline checks that a meta-transaction deadline is strictly in
// the future.
func ValidateDeadline(deadline uint64, now time.Time) error {
	if deadline <= uint64(now.Unix()) {
		return NewInvalidDeadlineError(deadline, uint64(now.Unix()))
	}

	return nil
}

// ValidateTimelockPeriod checks that a timelock period lies within the
// allowed bounds.
func ValidateTimelockPeriod(days uint64) error {
	if days < MinTimelockPeriodInDays || days > MaxTimelockPeriodInDays {
		return NewTimelockOutOfRangeError(days)
	}

	return nil
}
