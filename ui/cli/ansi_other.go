//go:build !windows

package cli

// EnableANSI is a no-op: unix terminals understand escape codes.
func EnableANSI() {}
