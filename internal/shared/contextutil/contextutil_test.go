package contextutil_test

import (
	"context"
	"testing"

	"go-employee-form/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestID(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "REQ-1")
	assert.Equal(t, "REQ-1", contextutil.GetRequestID(ctx))
	assert.Equal(t, "", contextutil.GetRequestID(context.Background()))
}

func TestGetLogger(t *testing.T) {
	scoped := zap.NewExample()
	fallback := zap.NewNop()

	t.Run("scoped logger wins", func(t *testing.T) {
		ctx := contextutil.WithLogger(context.Background(), scoped)
		assert.Same(t, scoped, contextutil.GetLogger(ctx, fallback))
	})

	t.Run("fallback when missing", func(t *testing.T) {
		assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))
	})

	t.Run("never nil", func(t *testing.T) {
		assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))
	})
}
