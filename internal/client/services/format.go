package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/arfidakai/Rapihin.ai/internal/client/api"
	"github.com/arfidakai/Rapihin.ai/internal/client/models"
	"github.com/arfidakai/Rapihin.ai/internal/common"
	"github.com/arfidakai/Rapihin.ai/internal/filex"
	"github.com/arfidakai/Rapihin.ai/internal/logging"
)

// State is the position of the orchestrator in the formatting lifecycle.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateAwaiting   State = "awaiting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Result is the outcome of the last completed request: exactly one of
// Artifact or Message is set. It is discarded whenever a new file is staged.
type Result struct {
	Artifact *models.Artifact
	Message  string
}

// FormatService is the document formatting orchestrator. One instance owns
// one upload session: the staged file, the single in-flight request, and the
// result.
//
// Invariants:
//   - at most one request is in flight; Submit while submitting/awaiting is
//     rejected with common.ErrRequestInFlight, never queued;
//   - staging a file with a bad extension leaves the previous staged file
//     untouched;
//   - staging a valid file discards any prior result and returns to idle;
//   - after Close, a late response is discarded without mutating state.
type FormatService interface {
	// StageFile validates and stages the file at path, replacing any prior
	// staged file on success.
	StageFile(path string) (models.StagedFile, error)

	// Staged returns the currently staged file, if any.
	Staged() (models.StagedFile, bool)

	// Submit drives one formatting request for the staged file. On success
	// the artifact is written to the output directory and kept retrievable.
	Submit(ctx context.Context, documentType models.DocumentType, university models.University) (models.Artifact, error)

	// Artifact returns the artifact of the last successful request without
	// re-fetching.
	Artifact() (models.Artifact, error)

	// Deliver writes the artifact into the output directory and returns the
	// written path. Safe to call repeatedly; the bytes never change.
	Deliver() (string, error)

	State() State
	Result() (Result, bool)

	// Close tears the orchestrator down, abandoning any in-flight request
	// and releasing the staged file and artifact.
	Close()
}

type formatService struct {
	client    api.Client
	outputDir string
	log       logging.Logger

	mu     sync.Mutex
	state  State
	staged *models.StagedFile
	result *Result
	cancel context.CancelFunc // non-nil exactly while a request is in flight
	closed bool
}

// NewFormatService constructs an orchestrator writing artifacts to outputDir.
func NewFormatService(client api.Client, outputDir string, log logging.Logger) FormatService {
	return &formatService{
		client:    client,
		outputDir: outputDir,
		log:       log.With("component", "format"),
		state:     StateIdle,
	}
}

func (s *formatService) StageFile(path string) (models.StagedFile, error) {
	name := filepath.Base(path)
	if !models.AllowedExtension(name) {
		// the previously staged file, if any, stays selected
		return models.StagedFile{}, common.ErrUnsupportedFileType
	}

	info, err := os.Stat(path)
	if err != nil {
		return models.StagedFile{}, fmt.Errorf("stage file: %w", err)
	}

	staged := models.StagedFile{Name: name, Path: path, SizeBytes: info.Size()}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return models.StagedFile{}, common.ErrClosed
	}
	if s.cancel != nil {
		return models.StagedFile{}, common.ErrRequestInFlight
	}

	s.staged = &staged
	s.result = nil
	s.state = StateIdle

	s.log.Info(context.Background(), "file staged", "name", staged.Name, "size", staged.SizeBytes)
	return staged, nil
}

func (s *formatService) Staged() (models.StagedFile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.staged == nil {
		return models.StagedFile{}, false
	}
	return *s.staged, true
}

func (s *formatService) Submit(ctx context.Context, documentType models.DocumentType, university models.University) (models.Artifact, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return models.Artifact{}, common.ErrClosed
	}
	if s.cancel != nil {
		// at most one in-flight request; do not touch it
		s.mu.Unlock()
		return models.Artifact{}, common.ErrRequestInFlight
	}
	if s.staged == nil {
		s.mu.Unlock()
		return models.Artifact{}, common.ErrNoFileSelected
	}

	s.state = StateValidating
	staged := *s.staged
	if staged.SizeBytes > common.MaxUploadSizeBytes {
		s.state = StateIdle
		s.mu.Unlock()
		return models.Artifact{}, common.ErrFileTooLarge
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.state = StateSubmitting
	s.mu.Unlock()
	defer cancel()

	fr := models.FormatRequest{File: staged, DocumentType: documentType, University: university}

	artifact, err := s.run(ctx, fr)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancel = nil

	if s.closed {
		// torn down while the request was outstanding: discard the outcome
		return models.Artifact{}, common.ErrClosed
	}

	if err != nil {
		s.state = StateFailed
		s.result = &Result{Message: failureMessage(err)}
		return models.Artifact{}, err
	}

	s.state = StateSucceeded
	s.result = &Result{Artifact: &artifact}
	return artifact, nil
}

// run performs the network round trip and the automatic delivery side
// effect. Called without the lock held: this is the suspension point where
// the UI renders its processing indicator.
func (s *formatService) run(ctx context.Context, fr models.FormatRequest) (models.Artifact, error) {
	content, err := os.Open(fr.File.Path)
	if err != nil {
		return models.Artifact{}, fmt.Errorf("open staged file: %w", err)
	}
	defer content.Close()

	s.setState(StateAwaiting)

	data, err := s.client.FormatDocument(ctx, fr, content)
	if err != nil {
		return models.Artifact{}, err
	}

	artifact := models.Artifact{
		Bytes:         data,
		SuggestedName: common.FormattedFilePrefix + fr.File.Name,
	}

	if path, err := s.write(artifact); err != nil {
		// the artifact is still held in memory and retrievable on demand
		s.log.Warn(ctx, "artifact not written", "error", err)
	} else {
		s.log.Info(ctx, "artifact saved", "path", path)
	}

	return artifact, nil
}

func (s *formatService) setState(state State) {
	s.mu.Lock()
	if !s.closed {
		s.state = state
	}
	s.mu.Unlock()
}

func (s *formatService) Artifact() (models.Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil || s.result.Artifact == nil {
		return models.Artifact{}, common.ErrNoResult
	}
	return *s.result.Artifact, nil
}

func (s *formatService) Deliver() (string, error) {
	artifact, err := s.Artifact()
	if err != nil {
		return "", err
	}
	return s.write(artifact)
}

func (s *formatService) write(artifact models.Artifact) (string, error) {
	dir, err := filex.EnsureDir(s.outputDir)
	if err != nil {
		return "", fmt.Errorf("deliver artifact: %w", err)
	}
	path := filepath.Join(dir, artifact.SuggestedName)
	if err := os.WriteFile(path, artifact.Bytes, 0o660); err != nil {
		return "", fmt.Errorf("deliver artifact: %w", err)
	}
	return path, nil
}

func (s *formatService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *formatService) Result() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

func (s *formatService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.cancel != nil {
		s.cancel()
	}
	s.staged = nil
	s.result = nil
}

// failureMessage extracts the user-facing text for a failed submit.
func failureMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}
	if errors.Is(err, common.ErrUnauthorized) {
		return "your session has expired, please log in again"
	}
	return err.Error()
}
