package seismic

// RefreshState is the phase the refresh cycle is in.
type RefreshState int32

const (
	StateIdle RefreshState = iota
	StateFetching
	StateNormalizing
	StateSwapping
	StateLoggingError
)

func (s RefreshState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateNormalizing:
		return "normalizing"
	case StateSwapping:
		return "swapping"
	case StateLoggingError:
		return "logging_error"
	default:
		return "unknown"
	}
}

// RefreshOutcome describes how a refresh cycle ended.
type RefreshOutcome string

const (
	OutcomeUpdated   RefreshOutcome = "updated"
	OutcomeEmpty     RefreshOutcome = "empty"
	OutcomeFailed    RefreshOutcome = "failed"
	OutcomeContended RefreshOutcome = "contended"
)
