//go:build !windows && !linux

package platform

// New returns the placeholder provider. Window enumeration and state
// changes are only implemented for Windows and X11.
func New() Provider {
	return Unsupported{}
}
