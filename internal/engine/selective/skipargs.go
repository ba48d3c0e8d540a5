package selective

import "go.trai.ch/sift/internal/core/domain"

const skipTestingPrefix = "-skip-testing:"

// ComposeSkipArguments appends one -skip-testing:<identifier> token per
// skippable identifier, in declaration order, after the original arguments.
// Existing tokens are preserved verbatim and never reordered. Skip tokens
// already present are not duplicated, so composition is idempotent. An empty
// skip set returns the original arguments unchanged.
func ComposeSkipArguments(args []string, skippable []domain.TestIdentifier) []string {
	if len(skippable) == 0 {
		return args
	}

	present := make(map[string]bool)
	for _, arg := range args {
		present[arg] = true
	}

	out := make([]string, len(args), len(args)+len(skippable))
	copy(out, args)
	for _, id := range skippable {
		token := skipTestingPrefix + id.String()
		if present[token] {
			continue
		}
		present[token] = true
		out = append(out, token)
	}
	return out
}
