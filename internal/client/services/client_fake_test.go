package services

import (
	"context"
	"io"
	"sync"

	"github.com/arfidakai/Rapihin.ai/internal/client/models"
)

// fakeClient implements api.Client for service tests.
type fakeClient struct {
	mu    sync.Mutex
	calls map[string]int

	RegisterRet *models.Session
	RegisterErr error

	LoginRet *models.Session
	LoginErr error

	MeRet *models.User
	MeErr error

	FormatRet []byte
	FormatErr error
	// when non-nil, FormatDocument blocks until the channel is closed or the
	// context is cancelled
	FormatBlock chan struct{}

	HistoryRet []models.HistoryRecord
	HistoryErr error

	TemplatesRet *models.TemplateInfo
	TemplatesErr error

	LastRegisterEmail    string
	LastRegisterPassword string
	LastRegisterFullName string
	LastLoginEmail       string
	LastFormatReq        models.FormatRequest
	LastFormatContent    []byte
}

func newFakeClient() *fakeClient {
	return &fakeClient{calls: map[string]int{}}
}

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
}

func (f *fakeClient) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeClient) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeClient) Register(ctx context.Context, email, password, fullName string) (*models.Session, error) {
	f.record("register")
	f.mu.Lock()
	f.LastRegisterEmail, f.LastRegisterPassword, f.LastRegisterFullName = email, password, fullName
	f.mu.Unlock()
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	f.record("login")
	f.mu.Lock()
	f.LastLoginEmail = email
	f.mu.Unlock()
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Me(ctx context.Context) (*models.User, error) {
	f.record("me")
	return f.MeRet, f.MeErr
}

func (f *fakeClient) FormatDocument(ctx context.Context, fr models.FormatRequest, content io.Reader) ([]byte, error) {
	f.record("format")

	data, err := io.ReadAll(content)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.LastFormatReq = fr
	f.LastFormatContent = data
	f.mu.Unlock()

	if f.FormatBlock != nil {
		select {
		case <-f.FormatBlock:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return append([]byte(nil), f.FormatRet...), f.FormatErr
}

func (f *fakeClient) History(ctx context.Context) ([]models.HistoryRecord, error) {
	f.record("history")
	return f.HistoryRet, f.HistoryErr
}

func (f *fakeClient) Templates(ctx context.Context) (*models.TemplateInfo, error) {
	f.record("templates")
	return f.TemplatesRet, f.TemplatesErr
}
