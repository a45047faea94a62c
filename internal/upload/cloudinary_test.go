package upload

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("image/png", 1024))
	assert.NoError(t, Validate("IMAGE/JPEG", MaxImageSize))
	assert.ErrorIs(t, Validate("application/pdf", 10), ErrNotImage)
	assert.ErrorIs(t, Validate("image/png", MaxImageSize+1), ErrTooLarge)
}

type captured struct {
	path, preset, folder, unsigned, signature, filename, body string
}

func cloudinaryStub(t *testing.T, status int, reply string) (*httptest.Server, *captured) {
	t.Helper()
	got := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.path = r.URL.Path
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			got.preset = r.FormValue("upload_preset")
			got.folder = r.FormValue("folder")
			got.unsigned = r.FormValue("unsigned")
			got.signature = r.FormValue("signature")
			got.filename = r.FormValue("filename_override")
			if f, _, err := r.FormFile("file"); err == nil {
				data, _ := io.ReadAll(f)
				got.body = string(data)
				_ = f.Close()
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func TestUploadSendsPresetAndFolder(t *testing.T) {
	srv, got := cloudinaryStub(t, http.StatusOK, `{"secure_url":"https://res.cloudinary.com/demo/qr.png"}`)

	c, err := NewCloudinary("demo", "jbp_events", srv.URL)
	require.NoError(t, err)
	url, err := c.Upload(context.Background(), "qr.png", strings.NewReader("PNGDATA"), "jbp/qr-codes")
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/qr.png", url)

	assert.True(t, strings.HasPrefix(got.path, "/v1_1/demo/"), got.path)
	assert.True(t, strings.HasSuffix(got.path, "/upload"), got.path)
	assert.Equal(t, "jbp_events", got.preset)
	assert.Equal(t, "jbp/qr-codes", got.folder)
	assert.Equal(t, "true", got.unsigned)
	assert.Empty(t, got.signature)
	assert.Equal(t, "qr.png", got.filename)
	assert.Equal(t, "PNGDATA", got.body)
}

func TestUploadSurfacesProviderError(t *testing.T) {
	srv, _ := cloudinaryStub(t, http.StatusBadRequest, `{"error":{"message":"Upload preset not found"}}`)

	c, err := NewCloudinary("demo", "missing", srv.URL)
	require.NoError(t, err)
	_, err = c.Upload(context.Background(), "a.png", strings.NewReader("x"), "")
	require.Error(t, err)
	assert.Equal(t, "Upload preset not found", err.Error())
}

func TestUploadNotConfigured(t *testing.T) {
	c, err := NewCloudinary("", "p", "")
	require.NoError(t, err)
	_, err = c.Upload(context.Background(), "a.png", strings.NewReader("x"), "")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
