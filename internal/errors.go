package bstudio_errors

import "fmt"

// ErrInvalidArgument rejects a call before anything touches the
// database. Maps to a 400 at the API layer.
type ErrInvalidArgument struct {
	Argument string
	Reason   string
}

func (e ErrInvalidArgument) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Argument, e.Reason)
}

// ErrLotNotFound indicates the requested purchase lot does not exist.
// Maps to a 404 at the API layer.
type ErrLotNotFound struct {
	PurchaseLotID int32
}

func (e ErrLotNotFound) Error() string {
	return fmt.Sprintf("purchase lot %d does not exist", e.PurchaseLotID)
}
