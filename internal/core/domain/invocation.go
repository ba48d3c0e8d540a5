package domain

// Invocation is the passthrough argument list for the underlying build tool,
// with the scheme and test-plan designations scanned out. The argument list
// itself is never mutated or reordered.
type Invocation struct {
	Args     []string
	Scheme   string
	TestPlan string
}

const (
	schemeFlag   = "-scheme"
	testPlanFlag = "-testPlan"
)

// ParseInvocation scans passthrough arguments for the scheme and optional
// test-plan designations. It fails with ErrSchemeNotPassed before any graph
// work occurs when no scheme is given.
func ParseInvocation(args []string) (Invocation, error) {
	inv := Invocation{Args: args}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case schemeFlag:
			if i+1 < len(args) {
				inv.Scheme = args[i+1]
				i++
			}
		case testPlanFlag:
			if i+1 < len(args) {
				inv.TestPlan = args[i+1]
				i++
			}
		}
	}
	if inv.Scheme == "" {
		return Invocation{}, ErrSchemeNotPassed
	}
	return inv, nil
}
