package api

import (
	"context"
	"io"

	"github.com/arfidakai/Rapihin.ai/internal/client/models"
)

// Client is the API contract with the Rapihin formatting service.
//
// Implementations attach the bearer credential to every request when the
// session store holds one, and normalize failures into the sentinel errors
// of internal/common plus *Error — callers never inspect raw transport
// payloads.
type Client interface {
	Register(ctx context.Context, email, password, fullName string) (*models.Session, error)
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Me(ctx context.Context) (*models.User, error)

	// FormatDocument uploads the staged file content as one multipart request
	// and returns the formatted document bytes exactly as received.
	FormatDocument(ctx context.Context, req models.FormatRequest, content io.Reader) ([]byte, error)

	History(ctx context.Context) ([]models.HistoryRecord, error)
	Templates(ctx context.Context) (*models.TemplateInfo, error)
}

// SessionSource is the read side of the credential store needed by the
// request interceptor.
type SessionSource interface {
	Get() models.Session
}
