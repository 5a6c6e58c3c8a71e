package audio

import (
	"github.com/ingyamilmolinar/planebeat/core/model"
	game_log "github.com/ingyamilmolinar/planebeat/internal/log"
)

// Dispatcher resolves a trigger against the bank and plays the buffer.
// A miss — entry still loading or failed for good — drops the trigger
// silently. That loss is the documented policy, not a bug: there is no
// retry and no queueing, the next sweep simply tries again.
type Dispatcher struct {
	bank   *Bank
	out    Output
	logger *game_log.Logger
}

func NewDispatcher(bank *Bank, out Output, logger *game_log.Logger) *Dispatcher {
	return &Dispatcher{bank: bank, out: out, logger: logger}
}

func (d *Dispatcher) Dispatch(t model.InstrumentType) {
	pcm, ok := d.bank.Lookup(t)
	if !ok {
		d.logger.Debugf("[AUDIO] no buffer for %s, trigger dropped", t)
		return
	}
	d.out.Play(pcm)
}
