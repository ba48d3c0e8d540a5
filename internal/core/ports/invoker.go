package ports

import "context"

// BuildToolInvoker runs the underlying native build/test tool. The call
// blocks until the tool exits; a non-zero exit surfaces as an error and is
// propagated to the caller unmodified. Retries, if any, belong to the tool.
//
//go:generate go run go.uber.org/mock/mockgen -source=invoker.go -destination=mocks/mock_invoker.go -package=mocks
type BuildToolInvoker interface {
	// Run invokes the tool with the given ordered argument sequence.
	Run(ctx context.Context, arguments []string) error
}
