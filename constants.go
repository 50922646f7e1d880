package fir

// Delay line constants
const (
	newestSample = 0 // Register index of the most recent input
	shiftStep    = 1 // Positions the register moves per input sample
)

// Convolution constants
const (
	convLengthOffset = 1 // len(y) = len(x) + len(h) - convLengthOffset
)

// Preset tap counts
const (
	presetTaps3 = 3
	presetTaps5 = 5
)

// Block filter constants
const (
	// Initial block capacity for BlockFilter scratch buffers
	defaultBlockSize = 1024
)
