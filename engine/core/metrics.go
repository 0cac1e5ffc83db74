package core

import "github.com/spaghettifunk/lovely/engine/containers"

const AVG_COUNT int = 30

// Metrics keeps a rolling average of frame times and counts frames per second.
type Metrics struct {
	frameTimes         *containers.RingQueue[float64]
	msAvg              float64
	frames             int32
	accumulatedFrameMS float64
	fps                float64
}

func NewMetrics() *Metrics {
	return &Metrics{
		frameTimes: containers.NewRingQueue[float64](AVG_COUNT),
	}
}

// Update records one frame that took frameElapsedTime seconds.
func (ms *Metrics) Update(frameElapsedTime float64) {
	// Calculate frame ms average over the last AVG_COUNT frames.
	frameMS := frameElapsedTime * 1000.0
	ms.frameTimes.Push(frameMS)

	var total float64
	ms.frameTimes.Each(func(t float64) { total += t })
	ms.msAvg = total / float64(ms.frameTimes.Len())

	// Calculate Frames per second.
	ms.accumulatedFrameMS += frameMS
	if ms.accumulatedFrameMS > 1000 {
		ms.fps = float64(ms.frames)
		ms.accumulatedFrameMS -= 1000
		ms.frames = 0
	}

	// Count all Frames.
	ms.frames++
}

func (ms *Metrics) FPS() float64 {
	return ms.fps
}

// FrameTime returns the average frame time in milliseconds.
func (ms *Metrics) FrameTime() float64 {
	return ms.msAvg
}

func (ms *Metrics) Frame() (float64, float64) {
	return ms.fps, ms.msAvg
}
