package depot

import (
	"fmt"

	"github.com/TheBitDrifter/bark"
)

const (
	logWorld = "world"
	logIndex = "archetype_index"
	logQueue = "op_queue"
)

// fatal reports a broken storage invariant. These are bugs, never caller errors.
func fatal(format string, args ...any) {
	err := bark.AddTrace(fmt.Errorf(format, args...))
	bark.For(logWorld).Error("invariant violated", bark.KeyError, err)
	panic(err)
}
