// Package legfile loads a transport network from a YAML file.
//
// The file lists legs in definition order:
//
//	legs:
//	  - id: leg_berlin_leipzig
//	    operator: DHL
//	    from: Berlin
//	    to: Leipzig
//	    max_weight: 500
//	    transit_time: 3
//	    tariff:
//	      base_cost: 50
//	      weight_factor: 1
//	      value_factor: 0.05
//
// Unknown keys are rejected so a misspelt field does not silently default to zero.
package legfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/leg"
	"parcels/internal/core/ports"

	"gopkg.in/yaml.v3"
)

var _ ports.LegSource = (*Source)(nil)

// File is the document layout of a network file.
type File struct {
	Legs []LegEntry `yaml:"legs"`
}

// LegEntry is one leg of a network file.
type LegEntry struct {
	ID          string      `yaml:"id"`
	Operator    string      `yaml:"operator"`
	From        string      `yaml:"from"`
	To          string      `yaml:"to"`
	MaxWeight   float64     `yaml:"max_weight"`
	TransitTime int         `yaml:"transit_time"`
	Tariff      TariffEntry `yaml:"tariff"`
}

// TariffEntry holds the pricing coefficients of a leg.
type TariffEntry struct {
	BaseCost     float64 `yaml:"base_cost"`
	WeightFactor float64 `yaml:"weight_factor"`
	ValueFactor  float64 `yaml:"value_factor"`
}

// Source reads legs from a file on every LoadLegs call.
type Source struct {
	path string
}

// NewSource creates a Source for the file at path. The file is not opened
// until LoadLegs.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// LoadLegs reads and decodes the file.
func (s *Source) LoadLegs(ctx context.Context) ([]*leg.Leg, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read leg file: %w", err)
	}

	legs, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return legs, nil
}

// Decode parses a network document and builds its legs. Every invalid entry
// is reported, not only the first.
func Decode(r io.Reader) ([]*leg.Leg, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("leg file is empty")
		}
		return nil, fmt.Errorf("decode leg file: %w", err)
	}
	if len(file.Legs) == 0 {
		return nil, errors.New("leg file defines no legs")
	}

	legs := make([]*leg.Leg, 0, len(file.Legs))
	var errList []error
	for i, entry := range file.Legs {
		l, err := entry.toDomain()
		if err != nil {
			errList = append(errList, fmt.Errorf("legs[%d] %q: %w", i, entry.ID, err))
			continue
		}
		legs = append(legs, l)
	}
	if len(errList) > 0 {
		return nil, errors.Join(errList...)
	}

	return legs, nil
}

// Encode writes legs in the network file layout.
func Encode(w io.Writer, legs []*leg.Leg) error {
	file := File{Legs: make([]LegEntry, 0, len(legs))}
	for _, l := range legs {
		file.Legs = append(file.Legs, LegEntry{
			ID:          l.ID(),
			Operator:    l.Operator(),
			From:        l.From().Name(),
			To:          l.To().Name(),
			MaxWeight:   l.MaxWeight(),
			TransitTime: l.TransitTime(),
			Tariff: TariffEntry{
				BaseCost:     l.Tariff().BaseCost,
				WeightFactor: l.Tariff().WeightFactor,
				ValueFactor:  l.Tariff().ValueFactor,
			},
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return err
	}
	return enc.Close()
}

func (e LegEntry) toDomain() (*leg.Leg, error) {
	from, fromErr := kernel.NewLocation(e.From)
	to, toErr := kernel.NewLocation(e.To)
	if err := errors.Join(fromErr, toErr); err != nil {
		return nil, err
	}

	return leg.NewLeg(e.ID, e.Operator, from, to, e.MaxWeight, e.TransitTime, leg.Tariff{
		BaseCost:     e.Tariff.BaseCost,
		WeightFactor: e.Tariff.WeightFactor,
		ValueFactor:  e.Tariff.ValueFactor,
	})
}
