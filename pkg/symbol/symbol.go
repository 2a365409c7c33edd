// Package symbol provides unique identity values.
package symbol

import "github.com/google/uuid"

// Symbol is a unique identity value. Two symbols are only ever equal when they are the same symbol,
// regardless of their descriptions.
type Symbol struct {
	id          uuid.UUID
	description string
}

// New creates a new unique symbol with an optional description.
func New(description string) *Symbol {
	return &Symbol{
		id:          uuid.New(),
		description: description,
	}
}

// ID returns the identifier that makes the symbol unique.
func (symbol *Symbol) ID() uuid.UUID {
	return symbol.id
}

// Description returns the description given on creation.
func (symbol *Symbol) Description() string {
	return symbol.description
}

func (symbol *Symbol) String() string {
	return "Symbol(" + symbol.description + ")"
}
