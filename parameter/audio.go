package parameter

import "time"

// Ambient hum
const (
	// HumSampleRate is the speaker sample rate in Hz
	HumSampleRate = 48000

	// HumBufferDuration is the speaker buffer length
	HumBufferDuration = 100 * time.Millisecond

	// HumBaseFreq/HumFifthFreq are the two drone partials
	HumBaseFreq  = 110.0
	HumFifthFreq = 165.0

	// HumMaxGain is the output amplitude at level 1
	HumMaxGain = 0.12

	// HumGlide is the per-sample fraction of the distance to the target gain
	HumGlide = 0.0005
)
