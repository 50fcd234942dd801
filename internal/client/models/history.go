package models

import "time"

// HistoryRecord is one past formatting run, a read-only projection from the
// server. Ordering is server-defined and must be preserved by the client.
type HistoryRecord struct {
	ID               string `json:"id"`
	OriginalFilename string `json:"original_filename"`
	DocumentType     string `json:"document_type"`
	University       string `json:"university"`
	FormattedAt      string `json:"formatted_at"`
}

// historyTimeLayouts covers the timestamp forms the server has been observed
// to emit: RFC3339 and a zone-less ISO variant.
var historyTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// Time parses FormattedAt. Zone-less timestamps are interpreted as UTC.
func (r HistoryRecord) Time() (time.Time, error) {
	var err error
	for _, layout := range historyTimeLayouts {
		var ts time.Time
		ts, err = time.ParseInLocation(layout, r.FormattedAt, time.UTC)
		if err == nil {
			return ts, nil
		}
	}
	return time.Time{}, err
}
