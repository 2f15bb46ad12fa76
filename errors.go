package moneykeeper

import (
	"errors"
	"fmt"
)

// Sentinel errors for cross-layer signaling. Callers match them with
// errors.Is and recover locally: the operation that produced one of these
// has left all state unchanged.
var (
	// ErrNotFound reports a lookup of an absent account or transaction.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateName reports an account name already taken in the ledger.
	ErrDuplicateName = errors.New("duplicate account name")
	// ErrDuplicateID reports a transaction id collision within the ledger.
	ErrDuplicateID = errors.New("duplicate transaction id")
	// ErrDuplicateTag reports a tag already present on the transaction.
	ErrDuplicateTag = errors.New("duplicate tag")
	// ErrTagLimit reports an attempt to grow a transaction past MaxTags tags.
	ErrTagLimit = errors.New("tag limit exceeded")
	// ErrLastAccount refuses the deletion of the sole remaining account.
	ErrLastAccount = errors.New("invariant violation: last account")
	// ErrRatesUnavailable reports a conversion attempted against an empty
	// rate table. Conversions fail rather than guess a rate.
	ErrRatesUnavailable = errors.New("exchange rates unavailable")
)

// ValidationError reports a rejected value on construction or mutation.
// The target object keeps its previous state.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is makes any two ValidationErrors match, so callers can test the kind
// without caring about the field.
func (e ValidationError) Is(target error) bool {
	_, ok := target.(ValidationError)
	return ok
}

// UnknownCurrencyError reports a currency code absent from the rate table.
type UnknownCurrencyError struct {
	Code string
}

func (e UnknownCurrencyError) Error() string {
	return fmt.Sprintf("unknown currency %q", e.Code)
}

func (e UnknownCurrencyError) Is(target error) bool {
	_, ok := target.(UnknownCurrencyError)
	return ok
}
