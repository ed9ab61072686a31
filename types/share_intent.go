package types

// ShareFile is one file descriptor in an inbound share payload.
type ShareFile struct {
	Path     string `json:"path"`
	MimeType string `json:"mimeType"`
}

// ShareIntent is an immutable snapshot of a single "user shared X into this
// app" event delivered by the host layer. It carries either free text or an
// ordered list of files; text takes priority when both are present.
type ShareIntent struct {
	Text  string      `json:"text,omitempty"`
	Files []ShareFile `json:"files,omitempty"`
}
