package flows

import "errors"

// Guard violations. Messages are shown to the user as-is.
var (
	ErrContractValueRequired      = errors.New("contract value must be greater than zero")
	ErrContractStartDateRequired  = errors.New("contract start date is required")
	ErrContractEndBeforeStart     = errors.New("contract end date must be after start date")
	ErrRejectionReasonRequired    = errors.New("rejection requires a justification")
	ErrCancellationReasonRequired = errors.New("cancellation requires a justification")

	ErrApprovedHoursNegative = errors.New("approved hours must not be negative")
	ErrApprovedHoursExceeded = errors.New("approved hours exceed recorded hours")

	ErrSuspensionReasonRequired   = errors.New("suspension reason is required")
	ErrSuspensionStartRequired    = errors.New("suspension start date is required")
	ErrSuspensionEndRequired      = errors.New("end date is required for a temporary suspension")
	ErrSuspensionEndNotAfterStart = errors.New("end date must be after start date")
	ErrSuspensionStartInPast      = errors.New("start date cannot be before today")
	ErrSuspensionTypeInvalid      = errors.New("suspension type must be TEMPORARIA or PERMANENTE")
	ErrSelfSuspension             = errors.New("cannot suspend own account")
	ErrSelfReactivation           = errors.New("cannot reactivate own account")
)
