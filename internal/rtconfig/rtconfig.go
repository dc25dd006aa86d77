// Package rtconfig holds the runtime's process-wide build-time switches:
// currently just float-enabled. This core has no float or complex type,
// and true division raises TypeError whether the switch is set or not.
package rtconfig

// FloatEnabled mirrors the source's float-enabled build option. It is a
// package variable rather than a Go build tag because it is read at a
// call site (ops' true-division case), not used to exclude whole files.
var FloatEnabled = false
