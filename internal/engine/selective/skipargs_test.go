package selective_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/sift/internal/engine/selective"
)

func TestComposeSkipArguments(t *testing.T) {
	original := []string{"test", "-scheme", "App", "-destination", "generic"}

	t.Run("appends skip tokens after original arguments in order", func(t *testing.T) {
		composed := selective.ComposeSkipArguments(original, []domain.TestIdentifier{"UnitTests", "UITests"})
		assert.Equal(t, []string{
			"test", "-scheme", "App", "-destination", "generic",
			"-skip-testing:UnitTests", "-skip-testing:UITests",
		}, composed)
	})

	t.Run("empty skip set returns arguments unchanged", func(t *testing.T) {
		composed := selective.ComposeSkipArguments(original, nil)
		assert.Equal(t, original, composed)
	})

	t.Run("does not mutate the original arguments", func(t *testing.T) {
		args := []string{"test", "-scheme", "App"}
		_ = selective.ComposeSkipArguments(args, []domain.TestIdentifier{"UnitTests"})
		assert.Equal(t, []string{"test", "-scheme", "App"}, args)
	})

	t.Run("composing twice yields the same result as once", func(t *testing.T) {
		skip := []domain.TestIdentifier{"UnitTests", "UITests"}
		once := selective.ComposeSkipArguments(original, skip)
		twice := selective.ComposeSkipArguments(once, skip)
		assert.Equal(t, once, twice)
	})
}
