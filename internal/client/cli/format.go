package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/arfidakai/Rapihin.ai/internal/client/models"
	"github.com/arfidakai/Rapihin.ai/internal/common"
)

// Stage validates the file at path and keeps it selected for the next submit.
// A rejected file leaves the previous selection in place.
func (a *App) Stage(ctx context.Context, path string) error {
	staged, err := a.format.StageFile(path)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUnsupportedFileType):
			printlnFn("Only Word documents (.doc, .docx) can be formatted.")
		case errors.Is(err, common.ErrFileTooLarge):
			printlnFn("The file exceeds the 10 MB limit.")
		default:
			printlnFn("Could not stage file:", err.Error())
		}
		return err
	}

	printlnFn(fmt.Sprintf("Staged %s (%d bytes)", staged.Name, staged.SizeBytes))
	return nil
}

// Submit asks for the document type and target university, then runs one
// formatting request for the staged file. The formatted document is written
// to the output directory on success.
func (a *App) Submit(ctx context.Context) error {
	staged, ok := a.format.Staged()
	if !ok {
		printlnFn("No file staged. Use: stage <path-to-docx>")
		return common.ErrNoFileSelected
	}

	docType, err := chooseOption(a.reader, "Document type:", documentTypeNames(), os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	university, err := chooseOption(a.reader, "University standard:", universityNames(), os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Formatting", staged.Name, "...")
	_, err = a.format.Submit(ctx, models.DocumentType(docType), models.University(university))
	if err != nil {
		if errors.Is(err, common.ErrRequestInFlight) {
			printlnFn("A formatting request is already running.")
			return err
		}
		if result, ok := a.format.Result(); ok && result.Message != "" {
			printlnFn("Formatting failed:", result.Message)
		} else {
			printlnFn("Formatting failed:", err.Error())
		}
		return err
	}

	path, err := a.format.Deliver()
	if err != nil {
		printlnFn("Formatted, but saving failed:", err.Error())
		return err
	}

	printlnFn("Saved to", path)
	return nil
}

// Save writes the last formatted document to the output directory again.
func (a *App) Save(ctx context.Context) error {
	path, err := a.format.Deliver()
	if err != nil {
		if errors.Is(err, common.ErrNoResult) {
			printlnFn("Nothing to save yet, run submit first.")
		} else {
			printlnFn("Saving failed:", err.Error())
		}
		return err
	}

	printlnFn("Saved to", path)
	return nil
}

func documentTypeNames() []string {
	names := make([]string, 0, len(models.DocumentTypes))
	for _, dt := range models.DocumentTypes {
		names = append(names, string(dt))
	}
	return names
}

func universityNames() []string {
	names := make([]string, 0, len(models.Universities))
	for _, u := range models.Universities {
		names = append(names, string(u))
	}
	return names
}
