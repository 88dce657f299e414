package dto

import "io"

// UploadFile is an uploaded file handle passed from the HTTP layer into a
// workflow. Content is consumed at most once.
type UploadFile struct {
	Name    string
	Content io.Reader
}
