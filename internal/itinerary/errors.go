package itinerary

import "errors"

var (
	// ErrDocumentLoad indicates the document could not be fetched: network
	// failure, non-success status, or an unreadable file.
	ErrDocumentLoad = errors.New("itinerary document could not be loaded")

	// ErrDocumentParse indicates the document was fetched but is not valid JSON
	// of the expected shape.
	ErrDocumentParse = errors.New("itinerary document could not be parsed")
)

// Kind returns a short label for a loader error, for display next to the
// placeholder message.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDocumentParse):
		return "ungültiges Format"
	case errors.Is(err, ErrDocumentLoad):
		return "Datei nicht gefunden"
	default:
		return "unbekannter Fehler"
	}
}
