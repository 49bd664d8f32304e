//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/model"
	repo "github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/repository/postgres"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/store"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/testutil"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "screener_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/screener_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestSlotRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	slots := repo.NewSlotRepository(conn)
	require.NoError(t, slots.Ping(ctx))

	_, err = slots.Read(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrSlotNotFound)

	require.NoError(t, slots.Write(ctx, "k", []byte(`["800-111-0000"]`)))
	require.NoError(t, slots.Write(ctx, "k", []byte(`[]`)))

	got, err := slots.Read(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)
}

func TestSlotRepository_WithAdapter(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	adapter := store.NewAdapter(repo.NewSlotRepository(conn), "integration", testutil.MakeNoopLogger())
	assert.Equal(t, store.Seed(), adapter.Load(ctx))

	entries := store.Seed()[:3]
	require.NoError(t, adapter.Save(ctx, entries))

	loaded := adapter.Load(ctx)
	require.Len(t, loaded, 3)
	assert.Equal(t, entries[2].Number, loaded[2].Number)
}
