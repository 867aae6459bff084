package repo

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"asset-inventory/internal/domain"
)

func newTestGorm(t *testing.T) *Gorm {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	r := NewGorm(db)
	ctx := context.Background()
	require.NoError(t, r.Migrate(ctx))
	require.NoError(t, r.Seed(ctx))
	return r
}

func TestGorm_SeedIsIdempotent(t *testing.T) {
	r := newTestGorm(t)
	ctx := context.Background()
	require.NoError(t, r.Seed(ctx))

	users, err := r.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)

	assets, err := r.ListAssets(ctx)
	require.NoError(t, err)
	require.Len(t, assets, 5)
	assert.Equal(t, "Dell Inc.", *assets[0].Supplier)
	assert.Nil(t, assets[0].Notes)
}

func TestGorm_DeleteLocationInUse(t *testing.T) {
	r := newTestGorm(t)
	ctx := context.Background()

	locs, _ := r.ListLocations(ctx)
	assets, _ := r.ListAssets(ctx)
	used := assets[0].LocationCode

	require.ErrorIs(t, r.DeleteLocation(ctx, used), domain.ErrLocationInUse)

	afterLocs, _ := r.ListLocations(ctx)
	afterAssets, _ := r.ListAssets(ctx)
	assert.Equal(t, locs, afterLocs)
	assert.Equal(t, assets, afterAssets)
}

func TestGorm_DeleteUnusedLocation(t *testing.T) {
	r := newTestGorm(t)
	ctx := context.Background()

	l := domain.Location{Description: "Garagem", Active: true}
	require.NoError(t, r.CreateLocation(ctx, &l))
	require.NotZero(t, l.Code)

	require.NoError(t, r.DeleteLocation(ctx, l.Code))
	locs, _ := r.ListLocations(ctx)
	assert.Len(t, locs, 4)
}

func TestGorm_UpdateAndFind(t *testing.T) {
	r := newTestGorm(t)
	ctx := context.Background()

	a, err := r.FindAssetByCode(ctx, "00055791")
	require.NoError(t, err)

	a.Inventoried = true
	a.Supplier = nil
	require.NoError(t, r.UpdateAsset(ctx, &a))

	got, err := r.FindAssetByCode(ctx, "00055791")
	require.NoError(t, err)
	assert.True(t, got.Inventoried)
	assert.Nil(t, got.Supplier)

	_, err = r.FindAssetByCode(ctx, "99999999")
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestGorm_UpdateMissing(t *testing.T) {
	r := newTestGorm(t)
	ctx := context.Background()

	assert.ErrorIs(t, r.UpdateAsset(ctx, &domain.Asset{Cod: 999, Code: "00000999"}), domain.ErrAssetNotFound)
	assert.ErrorIs(t, r.UpdateLocation(ctx, &domain.Location{Code: 999}), domain.ErrLocationNotFound)
	assert.ErrorIs(t, r.UpdateUser(ctx, &domain.User{ID: 999}), domain.ErrUserNotFound)

	assets, _ := r.ListAssets(ctx)
	assert.Len(t, assets, 5)
}

func TestGorm_FindActiveUserByLogin(t *testing.T) {
	r := newTestGorm(t)
	ctx := context.Background()

	u, err := r.FindActiveUserByLogin(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "Admin User", u.Name)

	_, err = r.FindActiveUserByLogin(ctx, "inactive")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
