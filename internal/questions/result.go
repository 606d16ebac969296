package questions

// TimeoutMessage is returned to HTTP callers in place of questions when the
// model did not answer in time.
const TimeoutMessage = "LLM 응답 시간 초과"

type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeTimeout
	OutcomeUpstreamError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeUpstreamError:
		return "upstream_error"
	default:
		return "unknown"
	}
}

// Result is the outcome of one generation. Questions is only meaningful for
// OutcomeSuccess; Err is set for the failure outcomes.
type Result struct {
	Outcome   Outcome
	Questions []string
	Err       error
}

// Degraded returns the list exposed over HTTP. It is never nil.
func (r Result) Degraded() []string {
	switch r.Outcome {
	case OutcomeSuccess:
		if r.Questions == nil {
			return []string{}
		}
		return r.Questions
	case OutcomeTimeout:
		return []string{TimeoutMessage}
	default:
		return []string{}
	}
}
