//go:build !linux && !darwin && !windows

package clip

// New returns the headless no-op backend on platforms without a supported
// clipboard implementation.
func New() Backend { return newHeadless() }
