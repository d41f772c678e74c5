package column

import "iter"

// emptyHandle represents a column with no payload: every position is
// missing, and length comes from the header's aux field (or the caller's
// hint when no region was supplied at all).
type emptyHandle[T any] struct {
	length int
}

func newEmptyHandle[T any](length int) *emptyHandle[T] {
	return &emptyHandle[T]{length: length}
}

func (h *emptyHandle[T]) Length() int { return h.length }

func (h *emptyHandle[T]) IsAvailable(int) bool { return false }

func (h *emptyHandle[T]) Get(int) T {
	var zero T
	return zero
}

func (h *emptyHandle[T]) GetSafe(i int) (T, bool) {
	var zero T
	return zero, false
}

func (h *emptyHandle[T]) GetBoxed(int) any { return nil }

func (h *emptyHandle[T]) All() iter.Seq[T] {
	return func(func(T) bool) {}
}

func (h *emptyHandle[T]) AllOptional() iter.Seq2[T, bool] {
	return func(yield func(T, bool) bool) {
		var zero T
		for i := 0; i < h.length; i++ {
			if !yield(zero, false) {
				return
			}
		}
	}
}

// emptyAnyHandle is the type-erased form New returns for the Empty major
// type and the absent-region case, before the caller's T is known. Typed
// rehydrates it into emptyHandle[T] once T is available.
type emptyAnyHandle struct {
	length int
}

func (h *emptyAnyHandle) Length() int { return h.length }

func (h *emptyAnyHandle) IsAvailable(int) bool { return false }

func (h *emptyAnyHandle) GetBoxed(int) any { return nil }
