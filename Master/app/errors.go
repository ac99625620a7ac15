package master

import "fmt"

// RunExhaustedError is the terminal failure state: unfinished chunks remain
// but no alive worker is left to take them. It names exactly what is missing
// rather than returning a truncated result.
type RunExhaustedError struct {
	MissingChunks []int
	FailedWorkers []uint32
}

func (e *RunExhaustedError) Error() string {
	return fmt.Sprintf("run exhausted: %d chunks incomplete %v, failed workers %v",
		len(e.MissingChunks), e.MissingChunks, e.FailedWorkers)
}

// ConfigurationError reports invalid startup parameters. Raised before any
// dispatch begins.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid configuration: " + e.Reason
}
