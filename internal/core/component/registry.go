package component

import (
	"fmt"
	"slices"
	"sync"

	"github.com/zeusync/tabletop/internal/core/record"
)

// Decoder builds a Component from a record whose discriminator it is
// registered under. DecodeBase covers the shared attributes.
type Decoder func(record.Record) (Component, error)

var (
	registryMu sync.RWMutex
	registry   = map[Kind]Decoder{
		KindBase:         decodeBaseKind,
		KindSimple:       decodeSimple,
		KindSimpleCard:   decodeSimpleCard,
		KindTwoSidedCard: decodeTwoSidedCard,
	}
)

// Register adds a decoder for a new discriminator.
func Register(kind Kind, dec Decoder) error {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[kind]; exists {
		return fmt.Errorf("%w: component type %q", record.ErrAlreadyRegistered, kind)
	}
	registry[kind] = dec
	return nil
}

// Kinds lists the registered discriminators in ascending order.
func Kinds() []Kind {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Kind, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// FromRecord dispatches rec on its `type` field. Unknown discriminators fail
// with record.ErrUnknownType; there is no fallback to the base kind.
func FromRecord(rec record.Record) (Component, error) {
	kind, err := record.Kind(rec)
	if err != nil {
		return nil, err
	}
	registryMu.RLock()
	dec, ok := registry[Kind(kind)]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: unknown component type: %s", record.ErrUnknownType, kind)
	}
	return dec(rec)
}

// FromValue is FromRecord for values that still have to be checked to be a mapping.
func FromValue(v any) (Component, error) {
	rec, err := record.Mapping(v)
	if err != nil {
		return nil, err
	}
	return FromRecord(rec)
}
