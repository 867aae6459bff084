package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asset-inventory/internal/domain"
	"asset-inventory/internal/repo"
)

func newAsset(code string) domain.Asset {
	return domain.Asset{
		Code:         code,
		Description:  "Mesa de reunião",
		AcquiredAt:   "2024-03-01",
		LocationCode: 1,
		Status:       domain.StatusActive,
	}
}

func TestAssetService_CreatePadsCode(t *testing.T) {
	ctx := context.Background()
	svc := NewAssetService(repo.NewSeededMemory(), NoLatency)

	a, err := svc.Create(ctx, newAsset("55"))
	require.NoError(t, err)
	assert.Equal(t, "00000055", a.Code)
	assert.Equal(t, 6, a.Cod)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "00000055", all[len(all)-1].Code)
}

func TestAssetService_CreateKeepsLongCode(t *testing.T) {
	svc := NewAssetService(repo.NewMemory(), NoLatency)

	a, err := svc.Create(context.Background(), newAsset("123456789"))
	require.NoError(t, err)
	assert.Equal(t, "123456789", a.Code)
}

func TestAssetService_GetByUnpaddedCode(t *testing.T) {
	ctx := context.Background()
	svc := NewAssetService(repo.NewSeededMemory(), NoLatency)

	_, err := svc.Create(ctx, newAsset("00000789"))
	require.NoError(t, err)

	got, err := svc.GetByCode(ctx, "789")
	require.NoError(t, err)
	assert.Equal(t, "00000789", got.Code)

	_, err = svc.GetByCode(ctx, "4242")
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestAssetService_UpdateRepadsAndReplaces(t *testing.T) {
	ctx := context.Background()
	svc := NewAssetService(repo.NewSeededMemory(), NoLatency)

	up := newAsset("12")
	up.Cod = 1
	got, err := svc.Update(ctx, up)
	require.NoError(t, err)
	assert.Equal(t, "00000012", got.Code)

	all, _ := svc.List(ctx)
	assert.Equal(t, "Mesa de reunião", all[0].Description)
	assert.Nil(t, all[0].Supplier, "update replaces the whole record")

	missing := newAsset("1")
	missing.Cod = 77
	_, err = svc.Update(ctx, missing)
	assert.EqualError(t, err, "asset not found")
}

func TestAssetService_DeleteIsUnconditional(t *testing.T) {
	ctx := context.Background()
	svc := NewAssetService(repo.NewSeededMemory(), NoLatency)

	require.NoError(t, svc.Delete(ctx, 1))
	require.NoError(t, svc.Delete(ctx, 1))
	all, _ := svc.List(ctx)
	assert.Len(t, all, 4)
}

func TestLocationService_Delete(t *testing.T) {
	ctx := context.Background()
	store := repo.NewSeededMemory()
	svc := NewLocationService(store, NoLatency)

	err := svc.Delete(ctx, 3)
	assert.EqualError(t, err, "cannot remove a physical location already in use by a registered asset")

	locs, _ := svc.List(ctx)
	assert.Len(t, locs, 4)

	require.NoError(t, svc.Delete(ctx, 4))
	locs, _ = svc.List(ctx)
	assert.Len(t, locs, 3)
}

func TestLocationService_SequentialKeys(t *testing.T) {
	ctx := context.Background()
	svc := NewLocationService(repo.NewSeededMemory(), NoLatency)

	first, err := svc.Create(ctx, domain.Location{Description: "Sala 301", Active: true})
	require.NoError(t, err)
	second, err := svc.Create(ctx, domain.Location{Description: "Sala 301", Active: true})
	require.NoError(t, err)

	assert.Equal(t, 5, first.Code)
	assert.Equal(t, first.Code+1, second.Code)
}

func TestLocationService_UpdateMissing(t *testing.T) {
	svc := NewLocationService(repo.NewSeededMemory(), NoLatency)
	_, err := svc.Update(context.Background(), domain.Location{Code: 42, Description: "x"})
	assert.EqualError(t, err, "location not found")
}

func TestUserService_CreateAndUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(repo.NewSeededMemory(), NoLatency)
	svc.now = func() time.Time { return time.Date(2024, 7, 9, 15, 0, 0, 0, time.UTC) }

	u, err := svc.Create(ctx, domain.User{Name: "Maria", Login: "maria", Email: "maria@example.com", Active: true})
	require.NoError(t, err)
	assert.Equal(t, 4, u.ID)
	assert.Equal(t, "2024-07-09", u.RegisteredAt)

	u.Name = "Maria Silva"
	u.RegisteredAt = "1999-01-01"
	got, err := svc.Update(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", got.Name)
	assert.Equal(t, "2024-07-09", got.RegisteredAt)

	_, err = svc.Update(ctx, domain.User{ID: 50})
	assert.EqualError(t, err, "user not found")
}

func TestUserService_DuplicateLoginAllowed(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(repo.NewSeededMemory(), NoLatency)

	_, err := svc.Create(ctx, domain.User{Name: "Outro Admin", Login: "admin", Email: "a2@example.com"})
	require.NoError(t, err)

	users, _ := svc.List(ctx)
	assert.Len(t, users, 4)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(repo.NewSeededMemory(), "password", NoLatency)

	u, err := svc.Login(ctx, "admin", "password")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Login)

	_, wrongPass := svc.Login(ctx, "admin", "wrong")
	_, inactive := svc.Login(ctx, "inactive", "password")
	_, unknown := svc.Login(ctx, "nobody", "password")

	for _, err := range []error{wrongPass, inactive, unknown} {
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.EqualError(t, err, "invalid credentials or inactive user")
	}
}

func TestLatency_CancelledBeforeWrite(t *testing.T) {
	store := repo.NewSeededMemory()
	svc := NewLocationService(store, Latency{Write: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Create(ctx, domain.Location{Description: "never"})
	require.ErrorIs(t, err, context.Canceled)

	locs, _ := store.ListLocations(context.Background())
	assert.Len(t, locs, 4)
}
