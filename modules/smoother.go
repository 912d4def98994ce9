package modules

// EMASmoother is a single-pole exponential moving average:
// smoothed = smoothed*(1-alpha) + raw*alpha.
type EMASmoother struct {
	alpha         float64
	value         float64
	seeded        bool
	seedFromFirst bool
}

// NewEMASmoother creates a smoother starting at 0. With seedFromFirst the first Update
// adopts the raw value instead of blending against 0.
func NewEMASmoother(alpha float64, seedFromFirst bool) *EMASmoother {
	return &EMASmoother{
		alpha:         alpha,
		seedFromFirst: seedFromFirst,
	}
}

// Update blends raw into the running value and returns the new smoothed value.
func (s *EMASmoother) Update(raw float64) float64 {
	if s.seedFromFirst && !s.seeded {
		s.value = raw
	} else {
		s.value = s.value*(1-s.alpha) + raw*s.alpha
	}
	s.seeded = true
	return s.value
}

// Value returns the current smoothed value without updating it.
func (s *EMASmoother) Value() float64 {
	return s.value
}

// Reset returns the smoother to its initial state.
func (s *EMASmoother) Reset() {
	s.value = 0
	s.seeded = false
}

// EyeSmoothState carries the smoothed openness of both eyes of one face.
type EyeSmoothState struct {
	Left  *EMASmoother
	Right *EMASmoother
}

func NewEyeSmoothState(alpha float64, seedFromFirst bool) *EyeSmoothState {
	return &EyeSmoothState{
		Left:  NewEMASmoother(alpha, seedFromFirst),
		Right: NewEMASmoother(alpha, seedFromFirst),
	}
}

// SmootherRegistry hands out one EyeSmoothState per tracking ID. Faces without an ID all
// share the registry's default state, so in multi-face scenes their eye signals mix.
// A registry is not safe for concurrent use.
type SmootherRegistry struct {
	alpha         float64
	seedFromFirst bool
	shared        *EyeSmoothState
	tracked       map[string]*EyeSmoothState
}

func NewSmootherRegistry(alpha float64, seedFromFirst bool) *SmootherRegistry {
	return &SmootherRegistry{
		alpha:         alpha,
		seedFromFirst: seedFromFirst,
		shared:        NewEyeSmoothState(alpha, seedFromFirst),
		tracked:       make(map[string]*EyeSmoothState),
	}
}

// Get returns the state for trackingID, creating it on first use.
func (r *SmootherRegistry) Get(trackingID string) *EyeSmoothState {
	if trackingID == "" {
		return r.shared
	}
	state, ok := r.tracked[trackingID]
	if !ok {
		state = NewEyeSmoothState(r.alpha, r.seedFromFirst)
		r.tracked[trackingID] = state
	}
	return state
}

// Forget drops the state of one tracked face.
func (r *SmootherRegistry) Forget(trackingID string) {
	delete(r.tracked, trackingID)
}

// Reset clears every tracked state and the shared one.
func (r *SmootherRegistry) Reset() {
	r.shared = NewEyeSmoothState(r.alpha, r.seedFromFirst)
	r.tracked = make(map[string]*EyeSmoothState)
}

// Len returns the number of tracked faces.
func (r *SmootherRegistry) Len() int {
	return len(r.tracked)
}
