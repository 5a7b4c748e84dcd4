//go:build !linux && !windows

package platform

// NewNative opens the window-system backend for the running platform.
func NewNative() (Backend, func(), error) {
	return nil, nil, ErrUnsupported
}
