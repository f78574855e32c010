package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Calls bool
	Stack bool
}

var d *debug

func init() {
	d = &debug{}
	Reload()
}

// Reload re-reads the debug settings from the environment.
func Reload() {
	d.Calls = boolEnv("NEST_DEBUG_CALLS")
	d.Stack = boolEnv("NEST_DEBUG_STACK")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Calls reports whether writer open/close calls are logged.
func Calls() bool {
	return d.Calls
}

// Stack reports whether nests check their shared open stack by default.
func Stack() bool {
	return d.Stack
}
