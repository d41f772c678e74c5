package column

import (
	"github.com/vecio/colvec/errs"
	"github.com/vecio/colvec/wire"
)

// New resolves a column handle from a byte region, following this
// dispatch:
//  1. An absent region (nil/empty) yields an Empty handle of lengthHint.
//  2. Otherwise the 4-byte header is parsed.
//  3. major=Empty yields an Empty handle whose length is the header's aux.
//  4. Any other major dispatches to the registry's maker for elem.
//
// lengthHint is only consulted in case 1; every other case derives its
// length from the blob itself.
func New(registry *Registry, elem ElementType, region []byte, lengthHint int) (AnyHandle, error) {
	if len(region) == 0 {
		return &emptyAnyHandle{length: lengthHint}, nil
	}

	header, err := wire.Decode(region)
	if err != nil {
		return nil, err
	}

	if header.Major == wire.Empty {
		return &emptyAnyHandle{length: int(header.Aux)}, nil
	}

	maker, err := registry.lookup(elem)
	if err != nil {
		return nil, err
	}

	return maker(header, region[wire.HeaderSize:], int(header.Aux))
}

// Typed resolves a column handle the same way New does, then asserts it
// to the statically known Handle[T] -- the common case where the caller
// already knows which Go type elem decodes to.
func Typed[T any](registry *Registry, elem ElementType, region []byte, lengthHint int) (Handle[T], error) {
	h, err := New(registry, elem, region, lengthHint)
	if err != nil {
		return nil, err
	}

	if eh, ok := h.(*emptyAnyHandle); ok {
		return newEmptyHandle[T](eh.length), nil
	}

	typed, ok := As[T](h)
	if !ok {
		return nil, errs.ErrTypeMismatch
	}

	return typed, nil
}
