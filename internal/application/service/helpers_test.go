package service

import (
	"context"
	"testing"
	"time"

	"github.com/sangkips/bizdesk-api/internal/config"
	"github.com/sangkips/bizdesk-api/internal/domain/entity"
	"github.com/sangkips/bizdesk-api/internal/infrastructure/database"
	infraRepo "github.com/sangkips/bizdesk-api/internal/infrastructure/repository"
	"github.com/sangkips/bizdesk-api/pkg/identity"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

type testClock struct {
	t time.Time
}

func (c *testClock) Now() time.Time {
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestClock() *testClock {
	return &testClock{t: time.Date(2024, 6, 14, 10, 30, 0, 0, time.UTC)}
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

var testVerifier = identity.NewJWTVerifier("service-test-secret", "bizdesk-test", time.Hour)

func callerFor(t *testing.T, uid string) *identity.Caller {
	t.Helper()
	token, err := testVerifier.Issue(uid, uid+"@example.com")
	require.NoError(t, err)
	caller, err := testVerifier.Verify(context.Background(), token)
	require.NoError(t, err)
	return caller
}

func quoteStore(db *gorm.DB, clock *testClock) *infraRepo.TenantStore[entity.Quote, *entity.Quote] {
	return infraRepo.NewTenantStore[entity.Quote](db, infraRepo.CollectionConfig{
		Resource:  "Offerte",
		Orderable: map[string]string{"datum": "date", "nummer": "number"},
	}, clock.Now)
}

func strPtr(s string) *string {
	return &s
}
