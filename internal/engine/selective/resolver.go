// Package selective implements the selective test caching engine: resolving
// testable targets, classifying them against the cache, composing skip
// arguments, and dispatching the reduced invocation.
package selective

import (
	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/zerr"
)

// ResolveTestTargets returns the named scheme and its candidate test targets
// in declaration order. When a test-plan name is given, the plan whose path's
// base name matches is used regardless of its default flag. Otherwise the
// scheme's plain target list wins; if the scheme defines plans instead, the
// default plan is used.
func ResolveTestTargets(graph *domain.Graph, schemeName, testPlanName string) (domain.Scheme, []domain.GraphTarget, error) {
	scheme, err := graph.SchemeNamed(schemeName)
	if err != nil {
		return domain.Scheme{}, nil, err
	}

	refs, err := testableReferences(scheme, testPlanName)
	if err != nil {
		return domain.Scheme{}, nil, err
	}

	targets := make([]domain.GraphTarget, 0, len(refs))
	seen := make(map[domain.GraphTarget]bool, len(refs))
	for _, ref := range refs {
		gt, err := graph.ResolveReference(ref)
		if err != nil {
			return domain.Scheme{}, nil, err
		}
		if seen[gt] {
			continue
		}
		seen[gt] = true
		targets = append(targets, gt)
	}
	return scheme, targets, nil
}

func testableReferences(scheme domain.Scheme, testPlanName string) ([]domain.TargetReference, error) {
	action := scheme.TestAction
	if action == nil {
		return nil, nil
	}

	if testPlanName != "" {
		for _, plan := range action.TestPlans {
			if plan.Name() == testPlanName {
				return plan.Targets, nil
			}
		}
		err := zerr.With(zerr.Wrap(domain.ErrTestPlanNotFound, ""), "test_plan", testPlanName)
		return nil, zerr.With(err, "scheme", scheme.Name)
	}

	if len(action.Targets) > 0 {
		return action.Targets, nil
	}

	for _, plan := range action.TestPlans {
		if plan.IsDefault {
			return plan.Targets, nil
		}
	}
	return nil, nil
}
