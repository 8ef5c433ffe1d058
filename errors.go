package secureownable

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/particlecs/secureownable/types"
)

var (
	// ErrSignerRequired is returned when a state-changing operation is
	// attempted on a manager constructed without a read-write gateway.
	ErrSignerRequired = errors.New("operation requires a connected signer")

	// ErrSenderRequired is returned when no caller address is supplied.
	ErrSenderRequired = errors.New("caller address is required")
)

// UnauthorizedRoleError is returned when the caller does not hold any of the
// roles authorized for an operation.
type UnauthorizedRoleError struct {
	Caller        common.Address
	ExpectedRoles []Role
}

// NewUnauthorizedRoleError creates a new UnauthorizedRoleError.
func NewUnauthorizedRoleError(caller common.Address, expected ...Role) *UnauthorizedRoleError {
	return &UnauthorizedRoleError{Caller: caller, ExpectedRoles: expected}
}

func (e *UnauthorizedRoleError) Error() string {
	if len(e.ExpectedRoles) == 1 {
		return fmt.Sprintf("caller %s is not the %s", e.Caller, e.ExpectedRoles[0])
	}

	return fmt.Sprintf("caller %s holds none of the required roles %v", e.Caller, e.ExpectedRoles)
}

// NoOpChangeError is returned when a requested update carries a new value
// equal to the current value.
type NoOpChangeError struct {
	Field string
}

// NewNoOpChangeError creates a new NoOpChangeError.
func NewNoOpChangeError(field string) *NoOpChangeError {
	return &NoOpChangeError{Field: field}
}

func (e *NoOpChangeError) Error() string {
	return fmt.Sprintf("new %s must be different from the current %s", e.Field, e.Field)
}

// InvalidRecoveryAddressError is returned when a recovery update targets the
// current recovery address or the current owner.
type InvalidRecoveryAddressError struct {
	Address common.Address
	Reason  string
}

// NewInvalidRecoveryAddressError creates a new InvalidRecoveryAddressError.
func NewInvalidRecoveryAddressError(addr common.Address, reason string) *InvalidRecoveryAddressError {
	return &InvalidRecoveryAddressError{Address: addr, Reason: reason}
}

func (e *InvalidRecoveryAddressError) Error() string {
	return fmt.Sprintf("invalid recovery address %s: %s", e.Address, e.Reason)
}

// TimelockOutOfRangeError is returned when a timelock period update falls
// outside the allowed bounds.
type TimelockOutOfRangeError struct {
	Days uint64
}

// NewTimelockOutOfRangeError creates a new TimelockOutOfRangeError.
func NewTimelockOutOfRangeError(days uint64) *TimelockOutOfRangeError {
	return &TimelockOutOfRangeError{Days: days}
}

func (e *TimelockOutOfRangeError) Error() string {
	return fmt.Sprintf("timelock period of %d days is outside the allowed range [%d, %d]",
		e.Days, MinTimelockPeriodInDays, MaxTimelockPeriodInDays)
}

// OperationNotPendingError is returned when an operation that must be PENDING
// is in another state.
type OperationNotPendingError struct {
	TxID   *big.Int
	Status types.TxStatus
}

// NewOperationNotPendingError creates a new OperationNotPendingError.
func NewOperationNotPendingError(txID *big.Int, status types.TxStatus) *OperationNotPendingError {
	return &OperationNotPendingError{TxID: txID, Status: status}
}

func (e *OperationNotPendingError) Error() string {
	return fmt.Sprintf("operation %v is %s, not PENDING", e.TxID, e.Status)
}

// NotYetReleasableError is returned when a two-phase approval is attempted
// before the operation's release time.
type NotYetReleasableError struct {
	TxID        *big.Int
	ReleaseTime uint64
	Now         uint64
}

// NewNotYetReleasableError creates a new NotYetReleasableError.
func NewNotYetReleasableError(txID *big.Int, releaseTime, now uint64) *NotYetReleasableError {
	return &NotYetReleasableError{TxID: txID, ReleaseTime: releaseTime, Now: now}
}

func (e *NotYetReleasableError) Error() string {
	return fmt.Sprintf("operation %v is not yet releasable: release time %d, current time %d",
		e.TxID, e.ReleaseTime, e.Now)
}

// CancelCooldownActiveError is returned when a two-phase cancellation is
// attempted during the cool-down window after the request.
type CancelCooldownActiveError struct {
	TxID          *big.Int
	CancellableAt uint64
	Now           uint64
}

// NewCancelCooldownActiveError creates a new CancelCooldownActiveError.
func NewCancelCooldownActiveError(txID *big.Int, cancellableAt, now uint64) *CancelCooldownActiveError {
	return &CancelCooldownActiveError{TxID: txID, CancellableAt: cancellableAt, Now: now}
}

func (e *CancelCooldownActiveError) Error() string {
	return fmt.Sprintf("operation %v cannot be cancelled before %d, current time %d",
		e.TxID, e.CancellableAt, e.Now)
}

// InvalidDeadlineError is returned when a meta-transaction deadline is not
// strictly in the future.
type InvalidDeadlineError struct {
	Deadline uint64
	Now      uint64
}

// NewInvalidDeadlineError creates a new InvalidDeadlineError.
func NewInvalidDeadlineError(deadline, now uint64) *InvalidDeadlineError {
	return &InvalidDeadlineError{Deadline: deadline, Now: now}
}

func (e *InvalidDeadlineError) Error() string {
	return fmt.Sprintf("meta transaction deadline %d is not in the future (current time %d)", e.Deadline, e.Now)
}

// SelectorMismatchError is returned when a meta-transaction's handler
// selector does not match the handler recognized for its operation type and
// action. This prevents a broadcaster from being handed a validly-signed
// payload for a different purpose.
type SelectorMismatchError struct {
	Handler  string
	Expected [4]byte
	Got      [4]byte
}

// NewSelectorMismatchError creates a new SelectorMismatchError.
func NewSelectorMismatchError(handler string, expected, got [4]byte) *SelectorMismatchError {
	return &SelectorMismatchError{Handler: handler, Expected: expected, Got: got}
}

func (e *SelectorMismatchError) Error() string {
	return fmt.Sprintf("handler selector %x does not match %s (%x)", e.Got, e.Handler, e.Expected)
}

// OperationTypeMismatchError is returned when a signing flow targets a
// pending operation of a different type than the one the flow handles.
// Without this guard a payload signed through the wrong flow would be
// stored under the wrong operation type and dispatched to a handler its
// selector does not target.
type OperationTypeMismatchError struct {
	TxID     *big.Int
	Expected types.OperationType
	Got      types.OperationType
}

// NewOperationTypeMismatchError creates a new OperationTypeMismatchError.
func NewOperationTypeMismatchError(txID *big.Int, expected, got types.OperationType) *OperationTypeMismatchError {
	return &OperationTypeMismatchError{TxID: txID, Expected: expected, Got: got}
}

func (e *OperationTypeMismatchError) Error() string {
	return fmt.Sprintf("operation %v is a %s, not a %s", e.TxID, e.Got, e.Expected)
}

// InvalidSignatureError is returned when a stored signature does not recover
// to the signer named in the payload's params.
type InvalidSignatureError struct {
	Signer    common.Address
	Recovered common.Address
}

// NewInvalidSignatureError creates a new InvalidSignatureError.
func NewInvalidSignatureError(signer, recovered common.Address) *InvalidSignatureError {
	return &InvalidSignatureError{Signer: signer, Recovered: recovered}
}

func (e *InvalidSignatureError) Error() string {
	return fmt.Sprintf("signature recovers to %s, expected signer %s", e.Recovered, e.Signer)
}

// NoPendingSignatureError is returned when no unbroadcast signed
// meta-transaction exists for the requested operation type and action.
type NoPendingSignatureError struct {
	Type   types.OperationType
	Action types.TxAction
}

// NewNoPendingSignatureError creates a new NoPendingSignatureError.
func NewNoPendingSignatureError(opType types.OperationType, action types.TxAction) *NoPendingSignatureError {
	return &NoPendingSignatureError{Type: opType, Action: action}
}

func (e *NoPendingSignatureError) Error() string {
	return fmt.Sprintf("no pending signature for %s %s", e.Type, e.Action)
}

// UnsupportedOperationError is returned when no workflow descriptor exists
// for an operation type, or the requested action is not part of its
// workflow.
type UnsupportedOperationError struct {
	Type   types.OperationType
	Action types.TxAction
}

// NewUnsupportedOperationError creates a new UnsupportedOperationError.
func NewUnsupportedOperationError(opType types.OperationType, action types.TxAction) *UnsupportedOperationError {
	return &UnsupportedOperationError{Type: opType, Action: action}
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("operation type %s does not support action %q", e.Type, e.Action)
}

// InvalidContractError is returned when an address does not expose the
// SecureOwnable read interface.
type InvalidContractError struct {
	Address common.Address
	Err     error
}

// NewInvalidContractError creates a new InvalidContractError.
func NewInvalidContractError(addr common.Address, err error) *InvalidContractError {
	return &InvalidContractError{Address: addr, Err: err}
}

func (e *InvalidContractError) Error() string {
	return fmt.Sprintf("address %s is not a SecureOwnable contract: %v", e.Address, e.Err)
}

func (e *InvalidContractError) Unwrap() error {
	return e.Err
}
