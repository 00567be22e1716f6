package telemetry

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScopedAPI(t *testing.T) {
	recorder := NewRecorderAPI()
	scoped := NewScopedAPI("nlrb_scraper", recorder)

	scoped.ReportBroken("client.fetch", "boom")
	scoped.ReportWarning("list-page.title")
	scoped.ReportCount("client.cases", 12)

	broken := recorder.Reports("broken")
	require.Len(t, broken, 1)
	require.Equal(t, "nlrb_scraper: client.fetch", broken[0].Id)
	require.Equal(t, []any{"boom"}, broken[0].Params)

	require.True(t, recorder.Has("warning", "list-page.title"))
	require.False(t, recorder.Has("broken", "list-page.title"))

	count, ok := recorder.LastCount("client.cases")
	require.True(t, ok)
	require.Equal(t, int64(12), count)
}

func TestSlogAPI(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tel := NewSlogAPI(logger)

	tel.ReportWarning("detail.scalar", "close-reason")
	require.Contains(t, out.String(), "id=detail.scalar")
	require.Contains(t, out.String(), "params.0=close-reason")
}
