package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/home-services/internal/db"
	"github.com/BruksfildServices01/home-services/internal/domain/booking"
	"github.com/BruksfildServices01/home-services/internal/domain/user"
	"github.com/BruksfildServices01/home-services/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := db.GormConfig()
	cfg.Logger = logger.Default.LogMode(logger.Silent)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), cfg)
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func seedUser(t *testing.T, repo *UserGormRepository, email string) *models.User {
	t.Helper()

	u := &models.User{Name: "Ann", Email: email, PasswordHash: "hash"}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestUserGormRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserGormRepository(newTestDB(t))

	u := seedUser(t, repo, "ann@x.com")
	assert.NotEmpty(t, u.ID)

	err := repo.Create(ctx, &models.User{Name: "Other", Email: "ann@x.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, user.ErrEmailTaken)

	got, err := repo.GetByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = repo.GetByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, user.ErrNotFound)

	got.Phone = "1234567890"
	got.AvatarURL = "https://img.example/a.png"
	require.NoError(t, repo.Update(ctx, got))

	reloaded, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "1234567890", reloaded.Phone)
	assert.Equal(t, "https://img.example/a.png", reloaded.AvatarURL)
}

func TestUserGormRepository_DuplicateInsertIsEmailTaken(t *testing.T) {
	gdb := newTestDB(t)
	seedUser(t, NewUserGormRepository(gdb), "ann@x.com")

	err := gdb.Create(&models.User{Name: "Racer", Email: "ann@x.com", PasswordHash: "h"}).Error
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	assert.ErrorIs(t, translateUserError(err), user.ErrEmailTaken)
	assert.NoError(t, translateUserError(nil))
}

func TestUserGormRepository_EmailIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewUserGormRepository(newTestDB(t))

	seedUser(t, repo, "ann@x.com")
	seedUser(t, repo, "Ann@X.com")

	_, err := repo.GetByEmail(ctx, "ANN@X.COM")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestBookingGormRepository_TiedCreatedAtKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	ann := seedUser(t, NewUserGormRepository(gdb), "ann@x.com")
	repo := NewBookingGormRepository(gdb)

	at := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	for _, n := range names {
		require.NoError(t, repo.Create(ctx, &models.Booking{
			UserID: ann.ID, Service: n, Price: "₹100", Date: "2026-02-01", Time: "10:00",
			Status: string(booking.StatusConfirmed), CreatedAt: at,
		}))
	}

	all, err := repo.ListByUser(ctx, ann.ID)
	require.NoError(t, err)
	got := make([]string, 0, len(all))
	for _, b := range all {
		got = append(got, b.Service)
	}
	assert.Equal(t, names, got)

	recent, err := repo.ListRecentByUser(ctx, ann.ID, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "H", recent[0].Service)
	assert.Equal(t, "F", recent[2].Service)
}

func TestBookingGormRepository(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	users := NewUserGormRepository(gdb)
	repo := NewBookingGormRepository(gdb)

	ann := seedUser(t, users, "ann@x.com")
	bob := seedUser(t, users, "bob@x.com")

	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		b := &models.Booking{
			UserID:    ann.ID,
			Service:   fmt.Sprintf("S%d", i),
			Price:     "₹100",
			Date:      "2026-02-01",
			Time:      "10:00",
			Status:    string(booking.StatusConfirmed),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(ctx, b))
	}
	require.NoError(t, repo.Create(ctx, &models.Booking{
		UserID: bob.ID, Service: "Bob", Price: "₹1", Date: "2026-02-01", Time: "10:00",
		Status: string(booking.StatusConfirmed),
	}))

	all, err := repo.ListByUser(ctx, ann.ID)
	require.NoError(t, err)
	require.Len(t, all, 7)
	assert.Equal(t, "S0", all[0].Service)
	assert.Equal(t, "S6", all[6].Service)

	recent, err := repo.ListRecentByUser(ctx, ann.ID, 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	assert.Equal(t, "S6", recent[0].Service)
	assert.Equal(t, "S2", recent[4].Service)

	_, err = repo.GetForUser(ctx, all[0].ID, bob.ID)
	assert.ErrorIs(t, err, booking.ErrNotFound)

	b, err := repo.GetForUser(ctx, all[0].ID, ann.ID)
	require.NoError(t, err)
	_, err = booking.Cancel(b, time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, b))

	b, err = repo.GetForUser(ctx, all[0].ID, ann.ID)
	require.NoError(t, err)
	assert.Equal(t, string(booking.StatusCancelled), b.Status)
	assert.NotNil(t, b.CancelledAt)
}

func TestFeedbackGormRepository_NewestFirst(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	ann := seedUser(t, NewUserGormRepository(gdb), "ann@x.com")
	repo := NewFeedbackGormRepository(gdb)

	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	for i := 1; i <= 3; i++ {
		require.NoError(t, repo.Create(ctx, &models.Feedback{
			UserID:    ann.ID,
			Rating:    i,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	list, err := repo.ListByUser(ctx, ann.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 3, list[0].Rating)
	assert.Equal(t, 1, list[2].Rating)
}

func TestFeedbackGormRepository_TiedCreatedAtNewestFirst(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	ann := seedUser(t, NewUserGormRepository(gdb), "ann@x.com")
	repo := NewFeedbackGormRepository(gdb)

	at := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.Create(ctx, &models.Feedback{UserID: ann.ID, Rating: i, CreatedAt: at}))
	}

	list, err := repo.ListByUser(ctx, ann.ID)
	require.NoError(t, err)
	require.Len(t, list, 5)
	for i, f := range list {
		assert.Equal(t, 5-i, f.Rating)
	}
}
