package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecordingWriter(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr}
}

// ---- WriteHeader ----

func TestResponseWriter_StatusRecording(t *testing.T) {
	tests := []struct {
		name           string
		statusCodes    []int // successive WriteHeader calls
		expectedStatus int
	}{
		{
			name:           "accepted push",
			statusCodes:    []int{http.StatusOK},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "rejected batch",
			statusCodes:    []int{http.StatusBadRequest},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "storage outage",
			statusCodes:    []int{http.StatusServiceUnavailable},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "second call ignored",
			statusCodes:    []int{http.StatusOK, http.StatusInternalServerError},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "third call ignored too",
			statusCodes:    []int{http.StatusUnauthorized, http.StatusOK, http.StatusNotFound},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newRecordingWriter(rr)

			for _, code := range tt.statusCodes {
				w.WriteHeader(code)
			}

			assert.Equal(t, tt.expectedStatus, w.status)
			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.True(t, w.wroteHeader)
		})
	}
}

// ---- Write ----

func TestResponseWriter_WriteImpliesOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newRecordingWriter(rr)

	n, err := w.Write([]byte(`{"pulled":0}`))

	require.NoError(t, err)
	assert.Equal(t, 12, n)
	assert.Equal(t, http.StatusOK, w.status)
	assert.True(t, w.wroteHeader)
}

func TestResponseWriter_BodyAccounting(t *testing.T) {
	tests := []struct {
		name         string
		writes       []string
		explicitCode int // 0 means rely on the implicit WriteHeader
		wantStatus   int
		wantSize     int
		wantBody     string // the last chunk only
	}{
		{
			name:       "single chunk, implicit 200",
			writes:     []string{`{"pushed":3,"pulled":1}`},
			wantStatus: http.StatusOK,
			wantSize:   23,
			wantBody:   `{"pushed":3,"pulled":1}`,
		},
		{
			name:       "chunked response accumulates size, keeps last chunk",
			writes:     []string{`{"entities":[`, `{"local_id":"entry-0001"}`, `]}`},
			wantStatus: http.StatusOK,
			wantSize:   40,
			wantBody:   `]}`,
		},
		{
			name:         "explicit 400, then body",
			writes:       []string{"Invalid JSON was passed"},
			explicitCode: http.StatusBadRequest,
			wantStatus:   http.StatusBadRequest,
			wantSize:     23,
			wantBody:     "Invalid JSON was passed",
		},
		{
			name:       "empty body still writes the header",
			writes:     []string{""},
			wantStatus: http.StatusOK,
			wantSize:   0,
			wantBody:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newRecordingWriter(rr)

			if tt.explicitCode != 0 {
				w.WriteHeader(tt.explicitCode)
			}

			for _, chunk := range tt.writes {
				_, err := w.Write([]byte(chunk))
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantBody, string(w.body))
			assert.Equal(t, tt.wantSize, rr.Body.Len())
		})
	}
}

func TestResponseWriter_WriteKeepsExplicitStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newRecordingWriter(rr)

	w.WriteHeader(http.StatusServiceUnavailable)
	_, err := w.Write([]byte("storage temporarily unavailable"))

	require.NoError(t, err)
	// the implicit 200 of Write must not overwrite the explicit status
	assert.Equal(t, http.StatusServiceUnavailable, w.status)
}

// ---- Initial state and proxying ----

func TestResponseWriter_InitialState(t *testing.T) {
	w := newRecordingWriter(httptest.NewRecorder())

	assert.Equal(t, 0, w.status)
	assert.Equal(t, 0, w.size)
	assert.False(t, w.wroteHeader)
	assert.Nil(t, w.body)
}

func TestResponseWriter_ProxiesHeadersToUnderlying(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newRecordingWriter(rr)

	w.Header().Set(traceIDHeader, "trace-42")
	w.WriteHeader(http.StatusOK)

	assert.Equal(t, "trace-42", rr.Header().Get(traceIDHeader))
	assert.Equal(t, http.StatusOK, rr.Code)
}
