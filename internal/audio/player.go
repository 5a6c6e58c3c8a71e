package audio

import (
	"bytes"
	"fmt"

	"github.com/ebitengine/oto/v3"
)

// Output starts an independent one-shot playback of a PCM buffer.
type Output interface {
	Play(pcm []byte)
}

// Player is the oto-backed Output. One context is shared by every one-shot;
// oto mixes overlapping players itself.
type Player struct {
	ctx *oto.Context
}

// NewPlayer opens the audio device. Failure here is fatal to startup: the
// caller must not start the tick loop without a working backend.
func NewPlayer() (*Player, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}
	<-ready
	return &Player{ctx: ctx}, nil
}

// Play starts pcm as a standalone voice and forgets about it: no handle, no
// cancellation, overlapping instances allowed.
func (p *Player) Play(pcm []byte) {
	go func() {
		pl := p.ctx.NewPlayer(bytes.NewReader(pcm))
		pl.Play()
	}()
}
