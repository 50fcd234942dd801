package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	charm "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arfidakai/Rapihin.ai/internal/client/models"
	"github.com/arfidakai/Rapihin.ai/internal/common"
	"github.com/arfidakai/Rapihin.ai/internal/logging"
)

type stubSessions struct {
	session models.Session
}

func (s *stubSessions) Get() models.Session { return s.session }

func newClient(t *testing.T, url string, session models.Session) *HTTPClient {
	t.Helper()
	log := logging.NewCharmLogger(charm.New(io.Discard))
	return NewHTTPClient(url, &stubSessions{session: session}, 5*time.Second, 10*time.Second, log)
}

func TestNewRequest_AttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-Id")
		_, _ = w.Write([]byte(`{"id":"u1","email":"a@b.c","full_name":"Ada"}`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, models.Session{Credential: "tok-1"})
	_, err := c.Me(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestNewRequest_UnauthenticatedWhenNoCredential(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"document_types":[],"universities":[]}`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, models.Session{})
	_, err := c.Templates(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"email":"a@b.c","password":"secret1"}`, string(body))

		_, _ = w.Write([]byte(`{"access_token":"tok-9","token_type":"bearer",
			"user":{"id":"u1","email":"a@b.c","full_name":"Ada"}}`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, models.Session{})
	session, err := c.Login(context.Background(), "a@b.c", "secret1")
	require.NoError(t, err)

	assert.Equal(t, "tok-9", session.Credential)
	require.NotNil(t, session.User)
	assert.Equal(t, "Ada", session.User.FullName)
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Incorrect email or password"}`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, models.Session{})
	_, err := c.Login(context.Background(), "a@b.c", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestRegister_EmailTaken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Email already registered"}`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, models.Session{})
	_, err := c.Register(context.Background(), "a@b.c", "secret1", "Ada")
	require.ErrorIs(t, err, common.ErrEmailTaken)
}

func TestMe_ExpiredCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Could not validate credentials"}`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, models.Session{Credential: "stale"})
	_, err := c.Me(context.Background())
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestFormatDocument_RoundTripsBytes(t *testing.T) {
	// not valid UTF-8: any text decoding would mangle it
	artifact := []byte{0x50, 0x4b, 0x03, 0x04, 0xff, 0xfe, 0x00, 0x9d}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/format-docx/", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Thesis", r.FormValue("document_type"))
		assert.Equal(t, "ITB", r.FormValue("university"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "thesis.docx", header.Filename)

		uploaded, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte("doc-bytes"), uploaded)

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
		_, _ = w.Write(artifact)
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, models.Session{Credential: "tok-1"})
	fr := models.FormatRequest{
		File:         models.StagedFile{Name: "thesis.docx", SizeBytes: 9},
		DocumentType: models.DocumentThesis,
		University:   models.UniversityITB,
	}

	got, err := c.FormatDocument(context.Background(), fr, bytes.NewReader([]byte("doc-bytes")))
	require.NoError(t, err)
	assert.Equal(t, artifact, got)
}

func TestFormatDocument_ServerDetailSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"template not found"}`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, models.Session{})
	fr := models.FormatRequest{
		File:         models.StagedFile{Name: "thesis.docx"},
		DocumentType: models.DocumentThesis,
		University:   models.UniversityITB,
	}

	_, err := c.FormatDocument(context.Background(), fr, bytes.NewReader(nil))
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.False(t, apiErr.Transport)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "template not found", apiErr.Message())
}

func TestFormatDocument_UnparseableErrorBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, models.Session{})
	fr := models.FormatRequest{File: models.StagedFile{Name: "t.docx"}}

	_, err := c.FormatDocument(context.Background(), fr, bytes.NewReader(nil))
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Empty(t, apiErr.Detail)
	assert.Equal(t, "the formatting service rejected the request", apiErr.Message())
}

func TestTransportFailure_IsFlagged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	c := newClient(t, srv.URL, models.Session{})
	_, err := c.History(context.Background())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.Transport)
	assert.Equal(t, "could not reach the formatting service", apiErr.Message())
}

func TestHistory_PreservesServerOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/history", r.URL.Path)
		_, _ = w.Write([]byte(`{"history":[
			{"id":"3","original_filename":"c.docx","document_type":"Thesis","university":"UI","formatted_at":"2025-03-03T00:00:00"},
			{"id":"1","original_filename":"a.docx","document_type":"Thesis","university":"UI","formatted_at":"2025-03-01T00:00:00"},
			{"id":"2","original_filename":"b.docx","document_type":"Thesis","university":"UI","formatted_at":"2025-03-02T00:00:00"}
		]}`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, models.Session{Credential: "tok-1"})
	records, err := c.History(context.Background())
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, []string{"3", "1", "2"}, []string{records[0].ID, records[1].ID, records[2].ID})
}

func TestTemplates_DecodesMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/templates", r.URL.Path)
		_, _ = w.Write([]byte(`{"document_types":["Thesis"],
			"universities":[{"name":"ITB","description":"Institut Teknologi Bandung template"}]}`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, models.Session{})
	info, err := c.Templates(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Thesis"}, info.DocumentTypes)
	require.Len(t, info.Universities, 1)
	assert.Equal(t, "ITB", info.Universities[0].Name)
}
