//go:build debug

package math

import (
	"fmt"

	"github.com/Kargisa/newtons/engine/core"
)

const debugAssertions = true

// debugAssert reports a violated precondition and panics. Only compiled into
// builds using the `debug` tag; release builds propagate NaN/Inf silently.
func debugAssert(cond bool, msg string, args ...interface{}) {
	if cond {
		return
	}
	text := fmt.Sprintf(msg, args...)
	core.LogError("assertion failed: %s", text)
	panic("newtons/math: " + text)
}
