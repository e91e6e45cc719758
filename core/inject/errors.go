package inject

import "errors"

var (
	// ErrDuplicateBinding indicates two bindings in one plan share a name.
	ErrDuplicateBinding = errors.New("duplicate dependency binding")

	// ErrNilProvider indicates a binding or override was given a nil provider.
	ErrNilProvider = errors.New("nil dependency provider")

	// ErrEmptyBindingName indicates a binding was declared without a name.
	ErrEmptyBindingName = errors.New("empty dependency binding name")
)
