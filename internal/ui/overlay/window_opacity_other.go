//go:build !windows

package overlay

// Window translucency comes from the background rectangle alpha alone on
// platforms without a layered-window API.
func (overlay *Window) applyNativeOpacity(uint8) {}
