package ui

// FrameStats keeps a rolling window of frame times.
type FrameStats struct {
	samples []float64
	next    int
	full    bool
	frames  uint64
}

// NewFrameStats creates a window of n samples.
func NewFrameStats(n int) *FrameStats {
	if n < 1 {
		n = 1
	}
	return &FrameStats{samples: make([]float64, n)}
}

// Add records one frame time in seconds. Non-positive values are ignored.
func (f *FrameStats) Add(dt float64) {
	if dt <= 0 {
		return
	}
	f.samples[f.next] = dt
	f.next = (f.next + 1) % len(f.samples)
	if f.next == 0 {
		f.full = true
	}
	f.frames++
}

// Mean returns the average frame time of the window in seconds.
func (f *FrameStats) Mean() float64 {
	n := f.next
	if f.full {
		n = len(f.samples)
	}
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range f.samples[:n] {
		sum += s
	}
	return sum / float64(n)
}

// FPS returns the frame rate implied by Mean.
func (f *FrameStats) FPS() float64 {
	m := f.Mean()
	if m == 0 {
		return 0
	}
	return 1 / m
}

// Frames returns the total number of frames recorded.
func (f *FrameStats) Frames() uint64 {
	return f.frames
}
