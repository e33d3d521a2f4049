// Package mime lists commonly used media types and maps file extensions onto them.
package mime

import (
	"path"
	"strings"
)

type MIME = string

const (
	OctetStream    MIME = "application/octet-stream"
	Plain          MIME = "text/plain"
	HTML           MIME = "text/html"
	XML            MIME = "text/xml"
	JSON           MIME = "application/json"
	YAML           MIME = "application/yaml"
	PDF            MIME = "application/pdf"
	FormUrlencoded MIME = "application/x-www-form-urlencoded"
	Multipart      MIME = "multipart/form-data"
	ZIP            MIME = "application/zip"
	GZIP           MIME = "application/gzip"
	AVIF           MIME = "image/avif"
	CSS            MIME = "text/css"
	GIF            MIME = "image/gif"
	JPEG           MIME = "image/jpeg"
	PNG            MIME = "image/png"
	SVG            MIME = "image/svg+xml"
	ICO            MIME = "image/vnd.microsoft.icon"
	WEBP           MIME = "image/webp"
	JS             MIME = "text/javascript"
	WASM           MIME = "application/wasm"
	Markdown       MIME = "text/markdown"
)

// Complies returns whether two MIMEs are compatible. Empty MIME is
// considered compatible with any other MIME
func Complies(mime MIME, with string) bool {
	// get rid of parameters if any
	with, _, _ = strings.Cut(with, ";")
	with = strings.TrimSpace(with)
	return len(with) == 0 || with == mime
}

// FromFilename guesses the MIME by the file extension. Unknown extensions result in
// OctetStream.
func FromFilename(filename string) MIME {
	mime, found := Extension[strings.ToLower(path.Ext(filename))]
	if !found {
		return OctetStream
	}

	return mime
}

// ContentType returns the MIME with its default charset parameter, if it has one.
func ContentType(mime MIME) string {
	if charset, found := DefaultCharset[mime]; found {
		return mime + ";charset=" + charset
	}

	return mime
}
