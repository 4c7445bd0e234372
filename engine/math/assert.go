//go:build !debug

package math

// debugAssertions is switched on with the `debug` build tag.
const debugAssertions = false

func debugAssert(cond bool, msg string, args ...interface{}) {}
