package models

// Artifact is the binary formatted document returned by the server, held
// client-side for delivery. Bytes are exactly the response body; no text
// decoding is ever applied to them.
type Artifact struct {
	Bytes         []byte
	SuggestedName string
}
