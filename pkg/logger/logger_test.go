package logger_test

import (
	"context"
	"testing"

	"github.com/lufutu/scrumsan-sub003/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetup(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment} {
		t.Run(env, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(env)
			})
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestGet(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx), "should return default logger when context has no logger")

	custom, _ := zap.NewDevelopment()
	ctxWithLogger := logger.WithLogger(ctx, custom)
	require.Equal(t, custom, logger.Get(ctxWithLogger), "should return logger from context")
}

func TestWithFields(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	ctx := logger.WithFields(context.Background(), zap.String("request_id", "abc"))
	require.NotEqual(t, logger.Get(context.Background()), logger.Get(ctx))
}
