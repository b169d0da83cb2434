package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"

	"raffle-admin-panel/internal/common/errors"
)

// Upload size caps. A UX guard only: the backend re-validates.
const (
	MaxUploadSize = 25 << 20 // case and case item media
	MaxImageSize  = 15 << 20 // raffle prize images
)

// Upload accumulates a multipart form for the media-carrying endpoints.
// Errors stick: the first rejected field or file fails the whole build.
type Upload struct {
	buf bytes.Buffer
	w   *multipart.Writer
	err error
}

func NewUpload() *Upload {
	u := &Upload{}
	u.w = multipart.NewWriter(&u.buf)
	return u
}

func (u *Upload) Field(name, value string) *Upload {
	if u.err != nil {
		return u
	}
	u.err = u.w.WriteField(name, value)
	return u
}

// File appends the single optional media file. Only images and Lottie JSON
// documents pass, and only under the page's size cap.
func (u *Upload) File(field, filename, mimeType string, data []byte, maxSize int64) *Upload {
	if u.err != nil {
		return u
	}
	if int64(len(data)) > maxSize {
		u.err = errors.Validation(fmt.Sprintf("file is too large, the limit is %dMB", maxSize>>20))
		return u
	}
	if !allowedMime(mimeType) {
		u.err = errors.Validation("only images and JSON animations can be uploaded")
		return u
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	header.Set("Content-Type", mimeType)

	part, err := u.w.CreatePart(header)
	if err != nil {
		u.err = err
		return u
	}
	if _, err := part.Write(data); err != nil {
		u.err = err
	}
	return u
}

func allowedMime(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/") || mimeType == "application/json"
}

// Close finalizes the form and returns the body with its content type.
func (u *Upload) Close() (io.Reader, string, error) {
	if u.err != nil {
		return nil, "", u.err
	}
	if err := u.w.Close(); err != nil {
		return nil, "", err
	}
	return &u.buf, u.w.FormDataContentType(), nil
}
