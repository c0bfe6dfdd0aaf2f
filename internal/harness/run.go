package harness

import "fmt"

// Result reports the outcome of running one scenario.
type Result struct {
	Scenario string        `json:"scenario"`
	Input    InputSummary  `json:"input"`
	Passed   bool          `json:"passed"`
	Checks   []CheckResult `json:"checks"`
}

// CheckResult reports one evaluated check.
type CheckResult struct {
	Op   string `json:"op"`
	Got  string `json:"got"`
	Want string `json:"want"`
	Pass bool   `json:"pass"`
}

// Run builds the scenario's input and evaluates every check.
//
// A check that renders but differs from its expectation marks the
// result failed without error; only malformed scenarios (bad literals,
// unknown ops, out-of-range bases) return an error.
func Run(sc *Scenario) (*Result, error) {
	n, input, err := sc.Input()
	if err != nil {
		return nil, err
	}

	result := &Result{
		Scenario: sc.Name,
		Input:    input,
		Passed:   true,
	}

	for _, c := range sc.Checks {
		got, err := renderOp(n, c)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: check %q: %w", sc.Name, c.Op, err)
		}
		pass := got == c.Want
		if !pass {
			result.Passed = false
		}
		result.Checks = append(result.Checks, CheckResult{
			Op:   c.Op,
			Got:  got,
			Want: c.Want,
			Pass: pass,
		})
	}

	return result, nil
}
