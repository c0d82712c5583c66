//go:build !tinygo && cgo

package hal

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	beepSampleRate = beep.SampleRate(44100)
	beepToneHz     = 880
	beepLength     = 50 * time.Millisecond
)

// hostBeeper plays a short sine tone through the default audio device.
type hostBeeper struct{}

func newHostBeeper() (Beeper, error) {
	if err := speaker.Init(beepSampleRate, beepSampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return hostBeeper{}, nil
}

func (hostBeeper) Click() {
	sine, err := generators.SineTone(beepSampleRate, beepToneHz)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(beepSampleRate.N(beepLength), sine))
}
