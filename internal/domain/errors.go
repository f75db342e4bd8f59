package domain

import "fmt"

// Sentinel errors for the domain layer.
var (
	ErrEmptyCatalog   = fmt.Errorf("catalog has no agents")
	ErrEmptyTemplates = fmt.Errorf("template set is empty")
	ErrBadTemplate    = fmt.Errorf("template must contain exactly one intent placeholder")
	ErrUnknownAgent   = fmt.Errorf("agent not in catalog")
	ErrForeignIntent  = fmt.Errorf("intent not owned by agent")
	ErrBadRecord      = fmt.Errorf("record is not a valid training example")
)
