package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sngm3741/liff-survey/api/internal/config"
)

func TestOpen_Memory(t *testing.T) {
	store, err := Open(context.Background(), config.Config{StoreDriver: config.StoreMemory}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "memory", store.Name)
	assert.NotNil(t, store.Responses)
	assert.NotNil(t, store.Admin)
	assert.Nil(t, store.Failures)
	assert.NoError(t, store.Ping(context.Background()))
	assert.NoError(t, store.Close(context.Background()))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.Config{StoreDriver: "redis"}, zap.NewNop())
	assert.Error(t, err)
}
