package objectstore

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"mime"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"
)

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrTooLarge        = errors.New("file is too large")
	ErrForeignObject   = errors.New("file does not belong to this entity")
)

const octetStream = "application/octet-stream"

// formats the content sniffer does not recognise, or reports as a generic
// container. The declared type is trusted for them.
var opaqueTypes = map[string]bool{
	"image/heic":      true,
	"audio/mpeg":      true,
	"audio/mp4":       true,
	"audio/aac":       true,
	"video/quicktime": true,
}

var sniffedAliases = map[string]string{
	"audio/wave": "audio/wav",
	"image/jpg":  "image/jpeg",
}

// Rule is what an endpoint accepts: an allow-list of content types and a
// maximum size in bytes
type Rule struct {
	Types    []string
	MaxBytes int64
}

func (r Rule) Allows(contentType string) bool {
	for _, t := range r.Types {
		if t == contentType {
			return true
		}
	}
	return false
}

func normalizeType(contentType string) string {
	t, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	if alias, ok := sniffedAliases[t]; ok {
		return alias
	}
	return t
}

// ContentType sniffs the first bytes of a file and returns its type when
// the rule allows it. The declared type only counts for opaque formats.
func (r Rule) ContentType(head []byte, declared string) (string, error) {
	if len(head) > 512 {
		head = head[:512]
	}

	sniffed := normalizeType(http.DetectContentType(head))
	if r.Allows(sniffed) {
		return sniffed, nil
	}

	declared = normalizeType(declared)
	if opaqueTypes[declared] && (sniffed == octetStream || sniffed == "video/mp4") && r.Allows(declared) {
		return declared, nil
	}
	return "", ErrUnsupportedType
}

// Decode decodes a data uri and checks it against the rule. The returned
// content type is the sniffed one.
func (r Rule) Decode(dataURI string) (string, []byte, error) {
	if !IsDataURI(dataURI) {
		return "", nil, ErrInvalidDataURI
	}

	_, payload, _ := strings.Cut(dataURI, ";base64,")
	if r.MaxBytes > 0 && int64(base64.StdEncoding.DecodedLen(len(payload))) > r.MaxBytes+2 {
		return "", nil, ErrTooLarge
	}

	declared, data, err := DecodeDataURI(dataURI)
	if err != nil {
		return "", nil, err
	}
	if r.MaxBytes > 0 && int64(len(data)) > r.MaxBytes {
		return "", nil, ErrTooLarge
	}

	contentType, err := r.ContentType(data, declared)
	if err != nil {
		return "", nil, err
	}
	return contentType, data, nil
}

// UploadDataURI checks a data uri against rule and stores it under prefix
// with a generated file name
func UploadDataURI(ctx context.Context, store ObjectStore, prefix string, rule Rule, dataURI string) (string, error) {
	contentType, data, err := rule.Decode(dataURI)
	if err != nil {
		return "", err
	}
	return store.Upload(ctx, NewKey(prefix, contentType), contentType, bytes.NewReader(data))
}

type file struct {
	url         string
	contentType string
	data        []byte
}

// Batch is a checked list of files of one entity. Data uris are decoded
// and other entries are urls the entity already owns.
type Batch struct {
	files []file
}

// NewBatch checks every payload before anything is stored. owned reports
// whether a plain url already belongs to the entity and may be nil when
// only data uris are accepted.
func NewBatch(rule Rule, payloads []string, owned func(url string) bool) (*Batch, error) {
	b := &Batch{files: make([]file, 0, len(payloads))}
	for _, payload := range payloads {
		if !IsDataURI(payload) {
			if owned == nil || !owned(payload) {
				return nil, ErrForeignObject
			}
			b.files = append(b.files, file{url: payload})
			continue
		}

		contentType, data, err := rule.Decode(payload)
		if err != nil {
			return nil, err
		}
		b.files = append(b.files, file{contentType: contentType, data: data})
	}
	return b, nil
}

// OwnedURLs accepts the urls in the list
func OwnedURLs(urls []string) func(string) bool {
	set := make(map[string]bool, len(urls))
	for _, u := range urls {
		set[u] = true
	}
	return func(url string) bool {
		return set[url]
	}
}

func (b *Batch) Len() int {
	return len(b.files)
}

// Upload stores the decoded files under prefix concurrently. The result
// keeps the order of the payloads.
func (b *Batch) Upload(ctx context.Context, store ObjectStore, prefix string) ([]string, error) {
	urls := make([]string, len(b.files))

	g, ctx := errgroup.WithContext(ctx)
	for i, f := range b.files {
		i, f := i, f
		if f.data == nil {
			urls[i] = f.url
			continue
		}

		g.Go(func() error {
			url, err := store.Upload(ctx, NewKey(prefix, f.contentType), f.contentType, bytes.NewReader(f.data))
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}
