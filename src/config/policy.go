package config

// Policy decides when a report surface is produced.
type Policy string

const (
	PolicyAlways    Policy = "always"
	PolicyNever     Policy = "never"
	PolicyOnFailure Policy = "on-failure"
)

var validPolicies = map[Policy]bool{
	PolicyAlways:    true,
	PolicyNever:     true,
	PolicyOnFailure: true,
}

// Applies reports whether the surface should be produced given whether any
// build failed.
func (p Policy) Applies(anyFailed bool) bool {
	switch p {
	case PolicyAlways:
		return true
	case PolicyOnFailure:
		return anyFailed
	default:
		return false
	}
}
