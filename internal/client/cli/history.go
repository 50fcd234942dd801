package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/arfidakai/Rapihin.ai/internal/common"
)

// History prints the user's past formatting runs in the order the server
// returned them.
func (a *App) History(ctx context.Context) error {
	records, err := a.history.Fetch(ctx)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			printlnFn("Your session has expired, please log in again.")
		} else {
			printlnFn("Could not fetch history:", err.Error())
		}
		return err
	}

	if len(records) == 0 {
		printlnFn("No formatting history yet.")
		return nil
	}

	for _, r := range records {
		when := r.FormattedAt
		if ts, err := r.Time(); err == nil {
			when = ts.Format("2006-01-02 15:04")
		}
		printlnFn(fmt.Sprintf("%s  %s  (%s, %s)", when, r.OriginalFilename, r.DocumentType, r.University))
	}
	return nil
}

// Templates prints the document types and university standards the server
// supports.
func (a *App) Templates(ctx context.Context) error {
	info, err := a.history.Templates(ctx)
	if err != nil {
		printlnFn("Could not fetch templates:", err.Error())
		return err
	}

	printlnFn("Document types:")
	for _, dt := range info.DocumentTypes {
		printlnFn("  -", dt)
	}
	printlnFn("Universities:")
	for _, u := range info.Universities {
		printlnFn(fmt.Sprintf("  - %s: %s", u.Name, u.Description))
	}
	return nil
}
