package repository

// Horizon selects the EMA window used for trend signals.
type Horizon string

const (
	HorizonShort Horizon = "short"
	HorizonLong  Horizon = "long"
)

// EMAPeriod returns the EMA window length for the horizon.
func (h Horizon) EMAPeriod() int {
	if h == HorizonLong {
		return 200
	}
	return 20
}

// IsValidHorizon returns true if h is a supported horizon.
func IsValidHorizon(h Horizon) bool {
	switch h {
	case HorizonShort, HorizonLong:
		return true
	default:
		return false
	}
}

// DefaultHorizon returns the default signal horizon.
func DefaultHorizon() Horizon { return HorizonShort }

// NormalizeHorizon converts raw string to a valid horizon (or default).
func NormalizeHorizon(s string) Horizon {
	if s == "" {
		return DefaultHorizon()
	}
	h := Horizon(s)
	if IsValidHorizon(h) {
		return h
	}
	return DefaultHorizon()
}
