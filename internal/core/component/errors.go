package component

import "errors"

var (
	// ErrNotVisible means a component was rendered for a player it is hidden from.
	ErrNotVisible = errors.New("component is not visible")
	// ErrFieldNotFound means a component holds no data under the requested name.
	ErrFieldNotFound = errors.New("data field not found")
	// ErrFixedFields means a field outside a structured component's layout was added.
	ErrFixedFields = errors.New("component has a fixed set of data fields")
	// ErrNilData means a nil data value was put into a component.
	ErrNilData = errors.New("nil data")
)
