package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 7, 4, 20, 15, 0, 0, time.UTC)

func clock() time.Time { return now }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func soupItem(t *testing.T) menu.Item {
	t.Helper()
	item, err := menu.RestoreItem(1, "Soup", kernel.MustMoney("4.00"))
	require.NoError(t, err)
	return item
}
