package collections

import "github.com/Fantom-foundation/Coffer/common"

const (
	// ErrIndexOutOfRange is returned when an index argument lies outside
	// the valid bounds of the requested operation.
	ErrIndexOutOfRange = common.ConstError("index out of range")

	// ErrDuplicateKey is returned when adding a key that is already present.
	ErrDuplicateKey = common.ConstError("duplicate key")

	// ErrKeyNotFound is returned by direct-access operations on absent keys.
	ErrKeyNotFound = common.ConstError("key not found")

	// ErrCanceled is returned by context-aware iteration once the
	// controlling context has been canceled.
	ErrCanceled = common.ConstError("canceled")

	// ErrNativeProperty is returned when a dynamic overlay operation names
	// a property registered as native.
	ErrNativeProperty = common.ConstError("property is native")
)
