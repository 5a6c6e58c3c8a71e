package audio

import (
	"bytes"
	"fmt"
	"io"

	wav "github.com/youpy/go-wav"
)

// sampleRate is the only rate the output path runs at; samples are expected
// to ship at it already.
const sampleRate = 44100

// decodeWAV reads a whole WAV stream into s16le mono PCM bytes. Stereo
// sources are reduced to their first channel.
func decodeWAV(r io.Reader) ([]byte, error) {
	// wav.NewReader needs io.ReaderAt, so buffer the stream first.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read wav: %w", err)
	}
	wr := wav.NewReader(bytes.NewReader(data))
	format, err := wr.Format()
	if err != nil {
		return nil, fmt.Errorf("read format: %w", err)
	}
	if int(format.SampleRate) != sampleRate {
		return nil, fmt.Errorf("expected %dHz wav, got %d", sampleRate, format.SampleRate)
	}

	var pcm []byte
	for {
		samples, err := wr.ReadSamples()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read samples: %w", err)
		}
		for _, s := range samples {
			v := wr.FloatValue(s, 0)
			if v > 1.0 {
				v = 1.0
			}
			if v < -1.0 {
				v = -1.0
			}
			s16 := int16(v * 32767)
			pcm = append(pcm, byte(s16), byte(s16>>8))
		}
	}
	if len(pcm) == 0 {
		return nil, fmt.Errorf("no frames")
	}
	return pcm, nil
}
