package apiclient

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

// File is an image picked by the admin, forwarded to the upload endpoint.
type File struct {
	Name        string
	ContentType string
	Body        io.Reader
}

type uploadResponse struct {
	Image string `json:"image"`
	URL   string `json:"url"`
}

// Upload posts f as multipart form field "image" and returns the stored path.
func (c *Client) Upload(ctx context.Context, path string, f File) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+escapeQuotes(f.Name)+`"`)
	contentType := f.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return "", &Error{Kind: KindValidation, Message: "invalid image", Err: err}
	}
	if _, err := io.Copy(part, f.Body); err != nil {
		return "", &Error{Kind: KindValidation, Message: "invalid image", Err: err}
	}
	if err := w.Close(); err != nil {
		return "", &Error{Kind: KindValidation, Message: "invalid image", Err: err}
	}

	var out uploadResponse
	if err := c.do(ctx, http.MethodPost, path, nil, &buf, w.FormDataContentType(), &out); err != nil {
		return "", err
	}

	stored := out.Image
	if stored == "" {
		stored = out.URL
	}
	if stored == "" {
		return "", &Error{Kind: KindServer, Status: http.StatusOK, Message: "upload did not return an image path"}
	}
	return stored, nil
}

// ResolveAsset turns a stored upload path into an absolute URL on serverURL.
// Absolute URLs are returned unchanged.
func ResolveAsset(serverURL, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	path = strings.ReplaceAll(path, `\`, "/")
	return strings.TrimRight(serverURL, "/") + "/" + strings.TrimLeft(path, "/")
}

func escapeQuotes(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
