package parameter

import "time"

// Frame pacing
const (
	// RefreshRate is the default frames per second when the host has no refresh signal
	RefreshRate = 60

	// RefreshRateMax bounds configured refresh rate
	RefreshRateMax = 240

	// EventBufferSize is the host event channel capacity
	EventBufferSize = 256

	// FPSSmoothing is the EMA weight of the newest frame interval in the fps gauge
	FPSSmoothing = 0.1

	// ConfigReloadDebounce coalesces bursts of editor writes
	ConfigReloadDebounce = 200 * time.Millisecond
)
