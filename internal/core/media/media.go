// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package media accepts image uploads for item covers.

Uploads are sniffed from their content (the client's declared type is
ignored), renamed to a time-ordered key and written to the upload directory,
which the API serves under /uploads/.
*/
package media

const entity = "media"

// PublicPrefix is the URL path under which stored objects are served.
const PublicPrefix = "/uploads/"

// allowedTypes maps accepted MIME types to the extension used for the key.
var allowedTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Upload describes a stored object.
type Upload struct {
	Key  string `json:"key"`
	URL  string `json:"url"`
	MIME string `json:"mime"`
	Size int64  `json:"size"`
}
