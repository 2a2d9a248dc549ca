package engine

import (
	"github.com/spacemonkeygo/errors"
)

// grouping for faults raised by the runtime itself (as opposed to the
// typed errors in api/def, which describe caller-visible conditions).
var Error *errors.ErrorClass = errors.NewClass("RuntimeError")
