//go:build !cgo || !espresso

package espresso

// NativeEngine returns ErrNoNative: the binary was built without the espresso tag.
func NativeEngine() (Engine, error) {
	return nil, ErrNoNative
}
