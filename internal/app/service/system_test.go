package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/atinyakov/fridgebook/internal/app/service"
	"github.com/atinyakov/fridgebook/internal/mocks"
	"github.com/atinyakov/fridgebook/internal/storage"
)

func TestSystemService_Stats(t *testing.T) {
	ctx := context.Background()
	store := storage.CreateMemoryStorage()

	require.NoError(t, store.SetFields(ctx, storage.UserDoc("u1"), nil))
	require.NoError(t, store.SetFields(ctx, storage.UserDoc("u2"), nil))
	require.NoError(t, store.SetFields(ctx, storage.FridgeDoc("f1"), nil))
	require.NoError(t, store.SetFields(ctx, storage.FridgeRecipeDoc("f1", "r1"), nil))

	stats, err := service.NewSystemService(store).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Users)
	assert.Equal(t, 1, stats.Fridges)
	assert.Equal(t, 0, stats.Recipes)
}

func TestSystemService_StatsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStorage(ctrl)

	store.EXPECT().CountDocuments(gomock.Any(), storage.FridgeCollection).Return(0, errors.New("boom"))
	store.EXPECT().CountDocuments(gomock.Any(), gomock.Any()).Return(1, nil).AnyTimes()

	_, err := service.NewSystemService(store).Stats(context.Background())
	assert.Error(t, err)
}

func TestSystemService_Ping(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStorage(ctrl)
	store.EXPECT().PingContext(gomock.Any()).Return(nil)

	assert.NoError(t, service.NewSystemService(store).PingContext(context.Background()))
}
