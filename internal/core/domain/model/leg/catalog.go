package leg

import (
	"slices"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
)

// Catalog is the immutable transport network. It indexes legs by origin and
// by ID and keeps the definition order of the source list. A Catalog is never
// modified after NewCatalog returns, so concurrent readers need no locking.
type Catalog struct {
	legs         []*Leg
	byID         map[string]*Leg
	byOrigin     map[string][]*Leg
	destinations map[string]struct{}
	locations    []string
}

// NewCatalog builds a catalog from the given legs. Every leg must be valid and
// leg IDs must be unique.
func NewCatalog(legs []*Leg) (*Catalog, error) {
	c := &Catalog{
		legs:         make([]*Leg, 0, len(legs)),
		byID:         make(map[string]*Leg, len(legs)),
		byOrigin:     make(map[string][]*Leg),
		destinations: make(map[string]struct{}),
	}

	seen := make(map[string]struct{})
	for _, l := range legs {
		if err := l.Validate(); err != nil {
			return nil, err
		}
		if _, ok := c.byID[l.ID()]; ok {
			return nil, errs.NewObjectAlreadyExistsError("leg", l.ID())
		}

		c.legs = append(c.legs, l)
		c.byID[l.ID()] = l
		c.byOrigin[l.From().Name()] = append(c.byOrigin[l.From().Name()], l)
		c.destinations[l.To().Name()] = struct{}{}

		for _, name := range []string{l.From().Name(), l.To().Name()} {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				c.locations = append(c.locations, name)
			}
		}
	}
	slices.Sort(c.locations)

	return c, nil
}

// LegsFrom returns the legs departing from the location in definition order.
// An unknown location yields an empty result.
func (c *Catalog) LegsFrom(from kernel.Location) []*Leg {
	return slices.Clone(c.byOrigin[from.Name()])
}

// Leg returns the leg with the given ID.
func (c *Catalog) Leg(id string) (*Leg, bool) {
	l, ok := c.byID[id]
	return l, ok
}

// Legs returns every leg in definition order.
func (c *Catalog) Legs() []*Leg {
	return slices.Clone(c.legs)
}

// Locations returns the names of every location touched by a leg, sorted.
func (c *Catalog) Locations() []string {
	return slices.Clone(c.locations)
}

// IsEndpoint reports whether any leg arrives at the location.
func (c *Catalog) IsEndpoint(loc kernel.Location) bool {
	_, ok := c.destinations[loc.Name()]
	return ok
}

// Len returns the number of legs.
func (c *Catalog) Len() int {
	return len(c.legs)
}
