package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{}
	hdr.Set("Content-Type", "application/json")
	hdr.Add("X-Custom", "a")
	hdr.Add("X-Custom", "b")
	body := []byte(`{"pages":[]}`)

	bs, err := encodePayload(http.StatusOK, hdr, body)
	require.NoError(t, err)

	status, gotHdr, gotBody, ok := decodePayload(bs)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", gotHdr.Get("Content-Type"))
	assert.Equal(t, []string{"a", "b"}, gotHdr["X-Custom"])
	assert.Equal(t, body, gotBody)
}

func TestDecodePayloadRejectsGarbage(t *testing.T) {
	for _, bs := range [][]byte{nil, {}, {1, 2, 3}, []byte("short")} {
		_, _, _, ok := decodePayload(bs)
		assert.False(t, ok)
	}
	// Header length pointing past the buffer.
	bs, err := encodePayload(200, http.Header{"A": {"b"}}, []byte("x"))
	require.NoError(t, err)
	_, _, _, ok := decodePayload(bs[:9])
	assert.False(t, ok)
}

func TestCacheStorableRejectsOversizedBodies(t *testing.T) {
	const limit = int64(1 << 20)

	// A response that outgrew the capture buffer must not be stored:
	// the buffer holds only the first limit bytes and a hit would
	// replay that truncated body as if it were complete.
	assert.False(t, cacheStorable(http.StatusOK, 2<<20, limit))
	assert.False(t, cacheStorable(http.StatusOK, limit+1, limit))

	assert.True(t, cacheStorable(http.StatusOK, limit, limit))
	assert.True(t, cacheStorable(http.StatusOK, 512, limit))

	// No limit configured: any size is storable.
	assert.True(t, cacheStorable(http.StatusOK, 2<<20, 0))

	// Non-200 responses are never stored regardless of size.
	assert.False(t, cacheStorable(http.StatusNotFound, 10, limit))
	assert.False(t, cacheStorable(http.StatusInternalServerError, 10, limit))
}

func TestCaptureWriterHonorsLimit(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 5}

	n, err := cw.Write([]byte("hello world"))
	require.NoError(t, err)

	// The client gets everything; the buffer stops at the limit.
	assert.Equal(t, len("hello world"), n)
	assert.Equal(t, "hello world", rec.Body.String())
	assert.Equal(t, "hello", cw.buf.String())
	assert.Equal(t, int64(len("hello world")), cw.size)
}

func TestCaptureWriterUnlimited(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK}

	_, err := cw.Write([]byte("abc"))
	require.NoError(t, err)
	_, err = cw.Write([]byte("def"))
	require.NoError(t, err)
	assert.Equal(t, "abcdef", cw.buf.String())
}
