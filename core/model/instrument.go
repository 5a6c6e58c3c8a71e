package model

import "fmt"

// InstrumentType identifies one of the placeable instruments. The set is
// closed: every switch over it must handle all three values.
type InstrumentType int

const (
	Synth InstrumentType = iota
	Pluck
	Kick
)

func (t InstrumentType) String() string {
	switch t {
	case Synth:
		return "synth"
	case Pluck:
		return "pluck"
	case Kick:
		return "kick"
	default:
		return fmt.Sprintf("InstrumentType(%d)", int(t))
	}
}

// Valid reports whether t is one of the catalog instruments.
func (t InstrumentType) Valid() bool {
	return t >= Synth && t <= Kick
}

// Descriptor is the per-instrument record the rest of the system keys off.
// Sample is the audio key (wav file stem), Note the MIDI pitch used by the
// MIDI backend, Impulse the scale impulse applied to a node on trigger.
type Descriptor struct {
	Name    string
	Sample  string
	Note    uint8
	Impulse float64
}

var catalog = map[InstrumentType]Descriptor{
	Synth: {Name: "Synth", Sample: "synth", Note: 60, Impulse: 1.0},
	Pluck: {Name: "Pluck", Sample: "pluck", Note: 64, Impulse: 1.0},
	Kick:  {Name: "Kick", Sample: "kick", Note: 36, Impulse: 1.2},
}

// DescriptorFor looks up the catalog entry for t. An unknown type is a
// programming error and is reported, never papered over with a zero record.
func DescriptorFor(t InstrumentType) (Descriptor, error) {
	d, ok := catalog[t]
	if !ok {
		return Descriptor{}, fmt.Errorf("unknown instrument type %d", int(t))
	}
	return d, nil
}

// Instruments returns the catalog types in a stable order.
func Instruments() []InstrumentType {
	return []InstrumentType{Synth, Pluck, Kick}
}
