package reservation

import (
	"errors"
	"fmt"
)

// ErrRejected marks every business-rule rejection; the concrete *Rejection carries the message.
var ErrRejected = errors.New("reservation rejected")

type Reason string

const (
	ReasonFlavorInactive     Reason = "flavor_inactive"
	ReasonFlavorInaccessible Reason = "flavor_inaccessible"
	ReasonTooLong            Reason = "too_long"
	ReasonBeforeFlavorStart  Reason = "before_flavor_start"
	ReasonAfterFlavorEnd     Reason = "after_flavor_end"
	ReasonInvertedWindow     Reason = "inverted_window"
	ReasonNoCapacity         Reason = "no_capacity"
	ReasonNoLease            Reason = "no_lease"
	ReasonNotActive          Reason = "not_active"
	ReasonEndNotAfter        Reason = "end_not_after"
	ReasonExtendFailed       Reason = "extend_failed"
)

func (r Reason) String() string {
	return string(r)
}

type Rejection struct {
	Reason  Reason
	Message string
}

func (r *Rejection) Error() string {
	return r.Message
}

func (r *Rejection) Is(target error) bool {
	return target == ErrRejected
}

func reject(reason Reason, format string, args ...any) error {
	return &Rejection{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// AsRejection unwraps err into a *Rejection if it is one.
func AsRejection(err error) (*Rejection, bool) {
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}

func RejectNoCapacity() error {
	return reject(ReasonNoCapacity, "No capacity")
}

func RejectExtendFailed() error {
	return reject(ReasonExtendFailed, "Failed to extend lease")
}
