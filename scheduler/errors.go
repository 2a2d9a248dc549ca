package scheduler

import (
	"github.com/spacemonkeygo/errors"
)

// grouping, do not instantiate
var Error *errors.ErrorClass = errors.NewClass("SchedulerError")

// error when a scheduler is started without a runtime and root bound.
var NotConfiguredError *errors.ErrorClass = Error.NewClass("NotConfiguredError")
