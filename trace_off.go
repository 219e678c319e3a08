//go:build !asn1der_debug

package asn1der

/*
trace_off.go is the default (non-debug) build: every tracing hook
compiles down to nothing. See trace_on.go for the "asn1der_debug"
build-tagged implementation.
*/

func debugTrace(_, _ string, _ ...any) {}
