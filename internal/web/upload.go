package web

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"raffle-admin-panel/internal/api"
	"raffle-admin-panel/internal/common/errors"
)

// uploadFromForm rebuilds the incoming multipart form as an api.Upload:
// every text field is carried through, plus the single optional file under
// fileField. Size and MIME checks happen inside the builder.
func uploadFromForm(c *gin.Context, fileField string, maxSize int64) (*api.Upload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.Validation("a multipart form is required")
	}

	up := api.NewUpload()
	for name, values := range form.Value {
		for _, value := range values {
			up.Field(name, value)
		}
	}

	files := form.File[fileField]
	if len(files) > 0 {
		header := files[0]
		f, err := header.Open()
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeValidation, "failed to read the uploaded file")
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeValidation, "failed to read the uploaded file")
		}
		up.File(fileField, header.Filename, header.Header.Get("Content-Type"), data, maxSize)
	}

	return up, nil
}

// formFloat reads a numeric text field of the already-parsed multipart form.
func formFloat(c *gin.Context, name string) (float64, error) {
	raw := c.PostForm(name)
	if raw == "" {
		return 0, errors.Validation(name + " is required")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Validation(name + " must be a number")
	}
	return v, nil
}
