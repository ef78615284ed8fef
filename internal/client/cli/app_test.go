package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mygaadi/mygaadi/internal/client/alerts"
	"github.com/mygaadi/mygaadi/internal/client/config"
	"github.com/mygaadi/mygaadi/internal/client/session"
	"github.com/mygaadi/mygaadi/internal/client/storage"
	"github.com/mygaadi/mygaadi/internal/client/store"
	"github.com/mygaadi/mygaadi/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// loggedInApp builds an App with a live session over an in-memory store.
func loggedInApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	ctx := context.Background()

	adapter, err := storage.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.NotificationsEnabled = false

	var out bytes.Buffer
	sm := session.NewManager(cfg, adapter, alerts.NewMemorySetStore(), PrintSink{Out: &out}, testLogger())

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, session.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
		Email:            "asha@example.com",
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = sm.Login(ctx, signed)
	require.NoError(t, err)

	app := NewApp(cfg, sm, nil, nil, testLogger())
	app.out = &out
	return app, &out
}

func (a *App) feed(input string) {
	a.reader = bufio.NewReader(strings.NewReader(input))
}

func TestAddAndListVehicles(t *testing.T) {
	app, out := loggedInApp(t)
	ctx := context.Background()

	app.feed("Zen\nMaruti\nZen\n2004\nKA01AB1234\n")
	require.NoError(t, app.AddVehicle(ctx))

	app.feed("Alto\nMaruti\nAlto 800\n2019\nKA05ZZ9999\n")
	require.NoError(t, app.AddVehicle(ctx))

	out.Reset()
	require.NoError(t, app.ListVehicles(ctx))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Alto")
	assert.Contains(t, lines[1], "Zen")
}

func TestListVehiclesSortOrderSetting(t *testing.T) {
	app, out := loggedInApp(t)
	ctx := context.Background()

	_, err := app.session.Store().AddVehicle(ctx, store.VehicleInput{Name: "Alto"})
	require.NoError(t, err)
	_, err = app.session.Store().AddVehicle(ctx, store.VehicleInput{Name: "Zen"})
	require.NoError(t, err)

	app.config.DefaultSortOrder = config.SortOldest
	out.Reset()
	require.NoError(t, app.ListVehicles(ctx))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Zen")
	assert.Contains(t, lines[1], "Alto")
}

func TestAddExpenseRejectsUnknownCategory(t *testing.T) {
	app, out := loggedInApp(t)

	app.feed("v1\nGroceries\n")
	err := app.AddExpense(context.Background())
	require.Error(t, err)
	assert.Contains(t, out.String(), "Unknown category")
	assert.Empty(t, app.session.Store().Expenses())
}

func TestClearAllRequiresConfirmation(t *testing.T) {
	app, out := loggedInApp(t)
	ctx := context.Background()

	_, err := app.session.Store().AddVehicle(ctx, store.VehicleInput{Name: "Alto"})
	require.NoError(t, err)

	app.feed("no\n")
	require.NoError(t, app.ClearAll(ctx))
	assert.Len(t, app.session.Store().Vehicles(), 1)
	assert.Contains(t, out.String(), "Cancelled")

	app.feed("yes\n")
	require.NoError(t, app.ClearAll(ctx))
	assert.Empty(t, app.session.Store().Vehicles())
}

func TestStatsOutput(t *testing.T) {
	app, out := loggedInApp(t)
	ctx := context.Background()

	v, err := app.session.Store().AddVehicle(ctx, store.VehicleInput{Name: "Alto"})
	require.NoError(t, err)

	app.feed("" +
		v.ID + "\nFuel\n2025-04-01\n1500\nfull tank\n")
	require.NoError(t, app.AddExpense(ctx))

	out.Reset()
	require.NoError(t, app.Stats(ctx))

	assert.Contains(t, out.String(), "Vehicles: 1")
	assert.Contains(t, out.String(), "Total spent: 1500.00")
	assert.Contains(t, out.String(), "Fuel: 1500.00")
}
