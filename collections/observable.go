package collections

import "github.com/Fantom-foundation/Coffer/common"

//go:generate mockgen -source observable.go -destination observable_mocks.go -package collections

// ChangeKind enumerates the kinds of mutations an observable container reports.
type ChangeKind byte

const (
	// Added indicates that a new element entered the container.
	Added ChangeKind = iota
	// Removed indicates that an element left the container.
	Removed
	// Replaced indicates that an element was substituted by another one.
	Replaced
	// Reset indicates that the container was cleared as a whole.
	Reset
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Replaced:
		return "replaced"
	case Reset:
		return "reset"
	}
	return "unknown"
}

// ListChange is an immutable description of one completed mutation of an
// observable list. Only the fields relevant for the kind are set: NewItem
// for Added and Replaced, OldItem for Removed and Replaced, neither for Reset.
type ListChange[T any] struct {
	Kind    ChangeKind
	NewItem T
	OldItem T
}

// MapChange is an immutable description of one completed mutation of an
// observable map, analogous to ListChange with key/value entries as payload.
type MapChange[K comparable, V any] struct {
	Kind     ChangeKind
	NewEntry common.MapEntry[K, V]
	OldEntry common.MapEntry[K, V]
}

// ListListener receives change notifications from an ObservableList.
//
// Listeners are invoked synchronously while the list's internal lock is held:
// a listener observes mutations in the exact order they were applied and no
// other operation can interleave with the callback. The lock is not
// reentrant; calling any operation of the notifying list from within the
// callback deadlocks.
type ListListener[T any] interface {
	OnListChange(change ListChange[T])
}

// MapListener receives change notifications from an ObservableMap, under the
// same locking regime as ListListener.
type MapListener[K comparable, V any] interface {
	OnMapChange(change MapChange[K, V])
}
