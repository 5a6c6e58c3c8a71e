// Package midi is the alternate trigger backend: instead of playing a
// decoded sample, a trigger becomes a NoteOn on an external MIDI port.
package midi

import (
	"fmt"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // register MIDI driver

	"github.com/ingyamilmolinar/planebeat/core/model"
	game_log "github.com/ingyamilmolinar/planebeat/internal/log"
)

const (
	channel = 9 // general MIDI percussion channel
	velo    = 100
	// gate is how long a triggered note is held before NoteOff. Fixed:
	// triggers carry no duration.
	gate = 120 * time.Millisecond
)

// Dispatcher sends one NoteOn per trigger and schedules the matching
// NoteOff itself. Like the sample backend it keeps no handle to a sounding
// note and never cancels one.
type Dispatcher struct {
	send   func(gomidi.Message) error
	logger *game_log.Logger
}

// NewDispatcher opens the named out port, or the first available port when
// name is empty. Failure is fatal to startup, same as the audio device.
func NewDispatcher(name string, logger *game_log.Logger) (*Dispatcher, error) {
	var (
		out drivers.Out
		err error
	)
	if name == "" {
		ports := gomidi.GetOutPorts()
		if len(ports) == 0 {
			return nil, fmt.Errorf("midi: no out ports available")
		}
		out = ports[0]
	} else {
		out, err = gomidi.FindOutPort(name)
		if err != nil {
			return nil, fmt.Errorf("midi out %q: %w", name, err)
		}
	}
	send, err := gomidi.SendTo(out)
	if err != nil {
		return nil, fmt.Errorf("midi open %q: %w", out.String(), err)
	}
	logger.Infof("[MIDI] sending to %q", out.String())
	return &Dispatcher{send: send, logger: logger}, nil
}

func (d *Dispatcher) Dispatch(t model.InstrumentType) {
	desc, err := model.DescriptorFor(t)
	if err != nil {
		d.logger.Errorf("[MIDI] %v", err)
		return
	}
	if err := d.send(gomidi.NoteOn(channel, desc.Note, velo)); err != nil {
		d.logger.Warnf("[MIDI] note on %d failed: %v", desc.Note, err)
		return
	}
	time.AfterFunc(gate, func() {
		if err := d.send(gomidi.NoteOff(channel, desc.Note)); err != nil {
			d.logger.Warnf("[MIDI] note off %d failed: %v", desc.Note, err)
		}
	})
}
