// Package delay provides ring-buffer delay lines used by the delay and
// chorus effects.
package delay

// Line is a circular buffer supporting fractional-position reads via
// linear interpolation between adjacent samples. It is the shared
// primitive under both Delay and InterpolatedDelay, and under the
// chorus effect, so none of them own more than one buffer. The reverb
// keeps its own comb and all-pass buffers and does not use Line.
type Line struct {
	buffer   []float32
	writePos int
}

// NewLine allocates a delay line sized to hold maxDelaySeconds of audio
// at sampleRate.
func NewLine(maxDelaySeconds, sampleRate float64) *Line {
	size := int(maxDelaySeconds*sampleRate) + 1
	if size < 2 {
		size = 2
	}
	return &Line{buffer: make([]float32, size)}
}

// Reset clears the buffer and rewinds the write position.
func (l *Line) Reset() {
	for i := range l.buffer {
		l.buffer[i] = 0
	}
	l.writePos = 0
}

// Write appends a sample and advances the write position.
func (l *Line) Write(sample float32) {
	l.buffer[l.writePos] = sample
	l.writePos++
	if l.writePos >= len(l.buffer) {
		l.writePos = 0
	}
}

// Read returns the sample delaySamples behind the write position, using
// linear interpolation when delaySamples is not an integer.
func (l *Line) Read(delaySamples float64) float32 {
	n := len(l.buffer)
	readPos := float64(l.writePos) - delaySamples
	for readPos < 0 {
		readPos += float64(n)
	}
	i0 := int(readPos)
	if i0 >= n {
		i0 -= n
	}
	frac := float32(readPos - float64(i0))
	i1 := i0 + 1
	if i1 >= n {
		i1 = 0
	}
	return l.buffer[i0]*(1.0-frac) + l.buffer[i1]*frac
}

// Delay is an integer-tap feedback delay line: `Delay Samples` is an
// integer offset, feedback recirculates the delayed signal, and the
// output is a dry/wet mix.
type Delay struct {
	line         *Line
	delaySamples int
	feedback     float32
	mix          float32
}

// NewDelay creates a Delay with the given maximum delay time in seconds.
func NewDelay(maxDelaySeconds, sampleRate float64) *Delay {
	return &Delay{
		line:         NewLine(maxDelaySeconds, sampleRate),
		delaySamples: int(0.25 * sampleRate),
		feedback:     0.3,
		mix:          0.3,
	}
}

// SetDelaySamples sets the integer delay offset in samples.
func (d *Delay) SetDelaySamples(samples int) {
	if samples < 0 {
		samples = 0
	}
	d.delaySamples = samples
}

// SetFeedback sets the feedback coefficient.
func (d *Delay) SetFeedback(feedback float32) {
	d.feedback = feedback
}

// SetMix sets the dry/wet mix in [0,1].
func (d *Delay) SetMix(mix float32) {
	d.mix = mix
}

// Process writes input plus recirculated feedback and returns the
// dry/wet-mixed output.
func (d *Delay) Process(input float32) float32 {
	delayed := d.line.Read(float64(d.delaySamples))
	d.line.Write(input + d.feedback*delayed)
	return input*(1.0-d.mix) + delayed*d.mix
}

// InterpolatedDelay is a Delay whose read position is float-valued so it
// can be modulated smoothly (by a chorus LFO, for instance) without
// zipper noise.
type InterpolatedDelay struct {
	line         *Line
	delaySamples float64
	feedback     float32
	mix          float32
}

// NewInterpolatedDelay creates an InterpolatedDelay with the given
// maximum delay time in seconds.
func NewInterpolatedDelay(maxDelaySeconds, sampleRate float64) *InterpolatedDelay {
	return &InterpolatedDelay{
		line:         NewLine(maxDelaySeconds, sampleRate),
		delaySamples: 0.25 * sampleRate,
		feedback:     0.3,
		mix:          0.3,
	}
}

// SetDelaySamples sets the fractional delay offset in samples.
func (d *InterpolatedDelay) SetDelaySamples(samples float64) {
	if samples < 0 {
		samples = 0
	}
	d.delaySamples = samples
}

// SetFeedback sets the feedback coefficient.
func (d *InterpolatedDelay) SetFeedback(feedback float32) {
	d.feedback = feedback
}

// SetMix sets the dry/wet mix in [0,1].
func (d *InterpolatedDelay) SetMix(mix float32) {
	d.mix = mix
}

// Process writes input plus recirculated feedback and returns the
// dry/wet-mixed output, reading the delay line at a fractional position.
func (d *InterpolatedDelay) Process(input float32) float32 {
	delayed := d.line.Read(d.delaySamples)
	d.line.Write(input + d.feedback*delayed)
	return input*(1.0-d.mix) + delayed*d.mix
}
