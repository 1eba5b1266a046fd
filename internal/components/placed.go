package components

import (
	"time"

	"github.com/Develoder/BuilderEX/internal/engine"
)

// Placed marks an object committed by the placement tool and records where
// it came from.
type Placed struct {
	engine.BaseComponent
	Category string
	Template string
	Sequence uint64
	PlacedAt time.Time
}

func NewPlaced(category, template string, seq uint64) *Placed {
	return &Placed{
		Category: category,
		Template: template,
		Sequence: seq,
		PlacedAt: time.Now(),
	}
}

func (p *Placed) Clone() engine.Component {
	c := *p
	c.BaseComponent = engine.BaseComponent{}
	return &c
}
