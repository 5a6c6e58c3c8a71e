// Package audio holds the decoded sample bank and the fire-and-forget
// playback path behind the engine's Dispatcher interface.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ingyamilmolinar/planebeat/core/model"
	game_log "github.com/ingyamilmolinar/planebeat/internal/log"
)

// Bank caches one decoded PCM buffer (s16le mono, 44100Hz) per instrument.
// Entries appear asynchronously as decoding finishes and are never removed
// or replaced; a missing entry means "still loading" or "failed", and both
// are handled identically by the dispatcher.
type Bank struct {
	mu      sync.RWMutex
	buffers map[model.InstrumentType][]byte
}

func NewBank() *Bank {
	return &Bank{buffers: map[model.InstrumentType][]byte{}}
}

// Lookup returns the decoded buffer for t if it has resolved.
func (b *Bank) Lookup(t model.InstrumentType) ([]byte, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	pcm, ok := b.buffers[t]
	return pcm, ok
}

func (b *Bank) put(t model.InstrumentType, pcm []byte) {
	b.mu.Lock()
	b.buffers[t] = pcm
	b.mu.Unlock()
}

// Loaded returns how many entries have resolved.
func (b *Bank) Loaded() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.buffers)
}

// LoadDir decodes <dir>/<sample>.wav for every catalog instrument, one
// goroutine per entry. A failed open or decode leaves that entry absent for
// the rest of the session; triggers for it are dropped silently downstream,
// so the only trace is the warning logged here.
func (b *Bank) LoadDir(dir string, logger *game_log.Logger) {
	for _, t := range model.Instruments() {
		desc, err := model.DescriptorFor(t)
		if err != nil {
			logger.Errorf("[BANK] %v", err)
			continue
		}
		path := filepath.Join(dir, desc.Sample+".wav")
		go func(t model.InstrumentType, path string) {
			pcm, err := loadWAV(path)
			if err != nil {
				logger.Warnf("[BANK] %s stays silent: %v", t, err)
				return
			}
			b.put(t, pcm)
			logger.Infof("[BANK] loaded %s (%d bytes)", t, len(pcm))
		}(t, path)
	}
}

func loadWAV(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wav: %w", err)
	}
	defer f.Close()
	pcm, err := decodeWAV(f)
	if err != nil {
		return nil, fmt.Errorf("decode wav %s: %w", path, err)
	}
	return pcm, nil
}
