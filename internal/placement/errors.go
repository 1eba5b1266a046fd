package placement

import "errors"

var (
	ErrStaleSelection  = errors.New("placement: selection is outside the catalog")
	ErrBlocked         = errors.New("placement: footprint overlaps existing geometry")
	ErrNoAnchor        = errors.New("placement: category has no live parent anchor")
	ErrNotPreviewing   = errors.New("placement: nothing under the aim ray")
	ErrUnknownCategory = errors.New("placement: unknown category")
)
