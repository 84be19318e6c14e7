package mtree

import "reflect"

// reflectDeepEqual is the fallback used by objectsEqual for object types
// that do not implement Equatable. Isolated in its own file so the
// reflect import only taxes the slow path.
func reflectDeepEqual[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}
