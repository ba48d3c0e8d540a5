package domain

import "go.trai.ch/zerr"

var (
	// ErrSchemeNotPassed is returned when the invocation arguments contain no scheme designation.
	ErrSchemeNotPassed = zerr.New("no scheme passed")

	// ErrSchemeNotFound is returned when no project in the graph defines the requested scheme.
	ErrSchemeNotFound = zerr.New("scheme not found")

	// ErrTestPlanNotFound is returned when the requested test plan does not exist in the scheme.
	ErrTestPlanNotFound = zerr.New("test plan not found")

	// ErrTargetNotFound is returned when a scheme references a target that is not in the graph.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrProjectAlreadyExists is returned when adding a project whose path is already in the graph.
	ErrProjectAlreadyExists = zerr.New("project already exists")

	// ErrMissingTargetHash is returned when the hash mapping lacks an entry for a resolved target.
	// Every resolved candidate must have exactly one hash; absence is a defect.
	ErrMissingTargetHash = zerr.New("missing target hash")

	// ErrTestRunFailed is returned when the underlying build tool exits non-zero.
	ErrTestRunFailed = zerr.New("test run failed")
)
