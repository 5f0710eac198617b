package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logEntry decodes the single JSON line the logger wrote into buf.
func logEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// ── NewLogger ─────────────────────────────────────────────────────────────────

func TestNewLogger_NotNil(t *testing.T) {
	require.NotNil(t, NewLogger("scoresync-server"))
}

// Every process stamps its role so server, client and migrator lines can be
// told apart when logs end up in the same place.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("migrator")
	l.Logger = l.Output(&buf)

	l.Info().Msg("page applied")

	assert.Equal(t, "migrator", logEntry(t, &buf)["role"])
}

func TestNewLogger_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("scoresync-server")
	l.Logger = l.Output(&buf)

	l.Info().Msg("listening")

	_, hasTime := logEntry(t, &buf)["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("scoresync-server") // sets zerolog.CallerFieldName as a side-effect
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewLogger_GlobalLevelIsDebug(t *testing.T) {
	NewLogger("scoresync-server")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

// ── Nop ───────────────────────────────────────────────────────────────────────

func TestNop_NotNil(t *testing.T) {
	require.NotNil(t, Nop())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

// ── GetChildLogger ────────────────────────────────────────────────────────────

func TestGetChildLogger_NotNil(t *testing.T) {
	parent := NewLogger("scoresync-server")
	require.NotNil(t, parent.GetChildLogger())
}

func TestGetChildLogger_IsIndependent(t *testing.T) {
	parent := NewLogger("scoresync-server")
	assert.NotSame(t, parent, parent.GetChildLogger())
}

// A child minted per request must keep the parent's role while the trace
// middleware adds its own fields on top.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("scoresync-server")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	child.Logger = child.Output(&buf)
	child.Info().Msg("push accepted")

	assert.Equal(t, "scoresync-server", logEntry(t, &buf)["role"])
}

// ── context / request extraction ─────────────────────────────────────────────

func TestFromContext_NotNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "trace-42").Logger()
	ctx := zl.WithContext(context.Background())

	l := FromContext(ctx)
	require.NotNil(t, l)

	l.Info().Msg("pull page served")

	assert.Equal(t, "trace-42", logEntry(t, &buf)["trace_id"])
}

func TestFromRequest_NotNil(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	require.NotNil(t, FromRequest(req))
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "trace-push-1").Logger()

	req := httptest.NewRequest(http.MethodPost, "/api/sync/push", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	l := FromRequest(req)
	require.NotNil(t, l)

	l.Info().Msg("batch resolved")

	assert.Equal(t, "trace-push-1", logEntry(t, &buf)["trace_id"])
}
