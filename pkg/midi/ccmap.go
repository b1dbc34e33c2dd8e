package midi

// CCMap dispatches controller numbers to grouped parameter names.
// Values are linearly mapped from the 0..127 controller range onto the
// target parameter's own [min, max] before being written, so a mapping
// entry only needs to name the parameter, not rescale it by hand.
type CCMap struct {
	entries map[uint8]string
}

// DefaultCCMap returns the envelope's standard controller map: CC 70-73
// drive Attack, Decay, Sustain, and Release. The table is otherwise
// open; a host may add further entries with Set without disturbing
// the default four.
func DefaultCCMap() *CCMap {
	m := &CCMap{entries: make(map[uint8]string)}
	m.Set(CCAttack, "Attack")
	m.Set(CCDecay, "Decay")
	m.Set(CCSustain, "Sustain")
	m.Set(CCRelease, "Release")
	return m
}

// Set maps controller to the grouped parameter named name.
func (m *CCMap) Set(controller uint8, name string) {
	m.entries[controller] = name
}

// Unset removes any mapping for controller.
func (m *CCMap) Unset(controller uint8) {
	delete(m.entries, controller)
}

// ParameterFor returns the parameter name mapped to controller, if any.
func (m *CCMap) ParameterFor(controller uint8) (string, bool) {
	name, ok := m.entries[controller]
	return name, ok
}

// Scale linearly maps a 0..127 controller value onto [min, max].
func Scale(value uint8, min, max float32) float32 {
	t := float32(value) / 127.0
	return min + t*(max-min)
}
