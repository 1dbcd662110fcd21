package api

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frilo-app/frilo-api/external/objectstore"
)

const (
	// room for the multipart boundaries and headers around the file
	multipartOverhead = 1 << 20

	// bytes http.DetectContentType looks at
	sniffLength = 512
)

// readUpload opens the multipart file of a field after checking its size and
// content type against rule. The type is sniffed from the file itself. The
// request is aborted when the upload is rejected.
func readUpload(c *gin.Context, field string, rule objectstore.Rule) (multipart.File, string, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, rule.MaxBytes+multipartOverhead)

	header, err := c.FormFile(field)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			abortWithEncoding(c, http.StatusRequestEntityTooLarge, errorFileTooLarge, err)
		case errors.Is(err, http.ErrMissingFile):
			abortWithEncoding(c, http.StatusBadRequest, errorFileRequired, err)
		default:
			abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		}
		return nil, "", false
	}

	if header.Size > rule.MaxBytes {
		abortWithEncoding(c, http.StatusRequestEntityTooLarge, errorFileTooLarge)
		return nil, "", false
	}

	f, err := header.Open()
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return nil, "", false
	}

	head := make([]byte, sniffLength)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		f.Close()
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return nil, "", false
	}

	contentType, err := rule.ContentType(head[:n], header.Header.Get("Content-Type"))
	if err != nil {
		f.Close()
		abortWithEncoding(c, http.StatusUnsupportedMediaType, errorUnsupportedFile, err)
		return nil, "", false
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return nil, "", false
	}
	return f, contentType, true
}
