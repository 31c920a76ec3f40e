package parameter

import "time"

// Gradient Blobs
const (
	// BlobAlpha is the peak wash opacity at a blob center
	BlobAlpha = 0.18

	// BlobRadiusScale sizes blobs relative to the shorter surface side
	BlobRadiusScale = 0.45

	BlobPeriod1 = 20 * time.Second
	BlobPeriod2 = 25 * time.Second
	BlobPeriod3 = 30 * time.Second
)
