//go:build !linux || !cgo

package libinput

// systemNative has no implementation without cgo on Linux; Open reports
// ErrUnsupported.
func systemNative() Native { return nil }
