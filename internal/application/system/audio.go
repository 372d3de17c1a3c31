package system

// AudioDevice is the ambient sound output the scene drives.
// Implementations own decoding and device state.
type AudioDevice interface {
	Play()
	Pause()
	Stop()
	SetVolume(volume float64)
	SetLooping(loop bool)
}

// AmbientSound decides when the ambient loop plays and how loud
type AmbientSound struct {
	device  AudioDevice
	playing bool
	volume  float64
}

// NewAmbientSound wraps device. A nil device yields a silent controller.
func NewAmbientSound(device AudioDevice) *AmbientSound {
	if device == nil {
		device = nopAudio{}
	}
	device.SetLooping(true)
	return &AmbientSound{device: device}
}

// Apply starts or pauses the loop for this frame. While armed the volume is
// refreshed every frame.
func (a *AmbientSound) Apply(armed bool, volume float64) {
	if !armed {
		if a.playing {
			a.device.Pause()
			a.playing = false
		}
		return
	}

	if !a.playing {
		a.device.Play()
		a.playing = true
	}
	a.volume = volume
	a.device.SetVolume(volume)
}

// Silence stops the loop at once, e.g. when a dialogue line starts
func (a *AmbientSound) Silence() {
	a.device.Stop()
	a.playing = false
}

// IsPlaying reports whether the loop was last told to play
func (a *AmbientSound) IsPlaying() bool {
	return a.playing
}

// Volume returns the last volume applied
func (a *AmbientSound) Volume() float64 {
	return a.volume
}

type nopAudio struct{}

func (nopAudio) Play()             {}
func (nopAudio) Pause()            {}
func (nopAudio) Stop()             {}
func (nopAudio) SetVolume(float64) {}
func (nopAudio) SetLooping(bool)   {}
