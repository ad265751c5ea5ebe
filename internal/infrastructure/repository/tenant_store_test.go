package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/bizdesk-api/internal/config"
	"github.com/sangkips/bizdesk-api/internal/domain/entity"
	"github.com/sangkips/bizdesk-api/internal/domain/enum"
	domainRepo "github.com/sangkips/bizdesk-api/internal/domain/repository"
	"github.com/sangkips/bizdesk-api/internal/infrastructure/database"
	"github.com/sangkips/bizdesk-api/pkg/apperror"
	"github.com/sangkips/bizdesk-api/pkg/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	log := zaptest.NewLogger(t)
	db, err := database.Open(&config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"}, false, log)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db, log))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newCaller(t *testing.T, v *identity.JWTVerifier, uid string) *identity.Caller {
	t.Helper()
	token, err := v.Issue(uid, uid+"@example.com")
	require.NoError(t, err)
	caller, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	return caller
}

func newClientStore(t *testing.T) (*TenantStore[entity.Client, *entity.Client], *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	store := NewTenantStore[entity.Client](newTestDB(t), CollectionConfig{
		Resource:  "Klant",
		Orderable: map[string]string{"name": "name"},
	}, clock.Now)
	return store, clock
}

func TestTenantStoreCreateStampsServerFields(t *testing.T) {
	store, clock := newClientStore(t)
	v := identity.NewJWTVerifier("secret", "test", time.Hour)
	alice := store.For(newCaller(t, v, "alice"))
	ctx := context.Background()

	client := &entity.Client{Name: "Bakkerij Jansen", Type: enum.ClientTypeBusiness, Status: enum.ClientStatusActive}
	client.UserID = "mallory"
	require.NoError(t, alice.Create(ctx, client))

	assert.NotEqual(t, uuid.Nil, client.ID)
	assert.Equal(t, "alice", client.UserID)
	assert.Equal(t, clock.Now(), client.CreatedAt)
	assert.Equal(t, clock.Now(), client.UpdatedAt)

	got, err := alice.Get(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, client.Name, got.Name)
	assert.Equal(t, "alice", got.UserID)
	assert.True(t, client.CreatedAt.Equal(got.CreatedAt))
}

func TestTenantStoreIsolation(t *testing.T) {
	store, _ := newClientStore(t)
	v := identity.NewJWTVerifier("secret", "test", time.Hour)
	alice := store.For(newCaller(t, v, "alice"))
	bob := store.For(newCaller(t, v, "bob"))
	ctx := context.Background()

	client := &entity.Client{Name: "Alice BV", Type: enum.ClientTypeBusiness, Status: enum.ClientStatusActive}
	require.NoError(t, alice.Create(ctx, client))

	list, err := bob.List(ctx, domainRepo.ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = bob.Get(ctx, client.ID)
	assert.True(t, apperror.IsNotFound(err))

	stolen := *client
	stolen.Name = "Bob BV"
	err = bob.Update(ctx, &stolen)
	assert.True(t, apperror.IsNotFound(err))

	err = bob.Delete(ctx, client.ID)
	assert.True(t, apperror.IsNotFound(err))

	got, err := alice.Get(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice BV", got.Name)
}

func TestTenantStoreNilCaller(t *testing.T) {
	store, _ := newClientStore(t)
	anon := store.For(nil)
	ctx := context.Background()

	_, err := anon.List(ctx, domainRepo.ListOptions{})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	_, err = anon.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	assert.ErrorIs(t, anon.Create(ctx, &entity.Client{Name: "x"}), apperror.ErrUnauthorized)
	assert.ErrorIs(t, anon.Update(ctx, &entity.Client{Name: "x"}), apperror.ErrUnauthorized)
	assert.ErrorIs(t, anon.Delete(ctx, uuid.New()), apperror.ErrUnauthorized)
}

func TestTenantStoreUpdateKeepsImmutableFields(t *testing.T) {
	store, clock := newClientStore(t)
	v := identity.NewJWTVerifier("secret", "test", time.Hour)
	alice := store.For(newCaller(t, v, "alice"))
	ctx := context.Background()

	client := &entity.Client{Name: "Old", Type: enum.ClientTypeBusiness, Status: enum.ClientStatusActive}
	require.NoError(t, alice.Create(ctx, client))
	created := client.CreatedAt

	clock.Advance(time.Minute)
	changed := *client
	changed.Name = "New"
	changed.UserID = "bob"
	changed.CreatedAt = time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, alice.Update(ctx, &changed))

	assert.Equal(t, "alice", changed.UserID)
	assert.True(t, created.Equal(changed.CreatedAt))
	assert.Equal(t, clock.Now(), changed.UpdatedAt)

	got, err := alice.Get(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, "alice", got.UserID)
	assert.True(t, created.Equal(got.CreatedAt))
	assert.True(t, clock.Now().Equal(got.UpdatedAt))
}

func TestTenantStoreListOrdering(t *testing.T) {
	store, clock := newClientStore(t)
	v := identity.NewJWTVerifier("secret", "test", time.Hour)
	alice := store.For(newCaller(t, v, "alice"))
	ctx := context.Background()

	for _, name := range []string{"Bravo", "Alpha", "Charlie"} {
		require.NoError(t, alice.Create(ctx, &entity.Client{Name: name, Type: enum.ClientTypeBusiness, Status: enum.ClientStatusActive}))
		clock.Advance(time.Second)
	}

	names := func(list []entity.Client) []string {
		out := make([]string, len(list))
		for i, c := range list {
			out[i] = c.Name
		}
		return out
	}

	list, err := alice.List(ctx, domainRepo.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Charlie", "Alpha", "Bravo"}, names(list))

	list, err = alice.List(ctx, domainRepo.ListOptions{OrderBy: "name", Ascending: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Bravo", "Charlie"}, names(list))

	_, err = alice.List(ctx, domainRepo.ListOptions{OrderBy: "name; DROP TABLE clients"})
	require.True(t, apperror.IsAppError(err))
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestTenantStoreDeleteMissing(t *testing.T) {
	store, _ := newClientStore(t)
	v := identity.NewJWTVerifier("secret", "test", time.Hour)
	alice := store.For(newCaller(t, v, "alice"))

	err := alice.Delete(context.Background(), uuid.New())
	assert.True(t, apperror.IsNotFound(err))
}
