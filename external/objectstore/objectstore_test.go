package objectstore

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/stretchr/testify/assert"
)

type fakeS3 struct {
	sync.Mutex
	objects map[string]string
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.Lock()
	defer f.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/bucket")
	switch {
	case r.Method == http.MethodPut:
		body, _ := ioutil.ReadAll(r.Body)
		f.objects[strings.TrimPrefix(path, "/")] = string(body)
		w.Header().Set("ETag", `"etag"`)
	case r.Method == http.MethodGet && r.URL.Query().Get("list-type") == "2":
		prefix := r.URL.Query().Get("prefix")
		var b strings.Builder
		b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><ListBucketResult><Name>bucket</Name><IsTruncated>false</IsTruncated>`)
		for k := range f.objects {
			if strings.HasPrefix(k, prefix) {
				b.WriteString("<Contents><Key>" + k + "</Key></Contents>")
			}
		}
		b.WriteString("</ListBucketResult>")
		_, _ = w.Write([]byte(b.String()))
	case r.Method == http.MethodPost:
		body, _ := ioutil.ReadAll(r.Body)
		for k := range f.objects {
			if strings.Contains(string(body), "<Key>"+k+"</Key>") {
				delete(f.objects, k)
			}
		}
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><DeleteResult></DeleteResult>`))
	case r.Method == http.MethodDelete:
		delete(f.objects, strings.TrimPrefix(path, "/"))
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusBadRequest)
	}
}

func newTestStore(t *testing.T) (ObjectStore, *fakeS3) {
	fake := &fakeS3{objects: map[string]string{}}
	ts := httptest.NewServer(fake)
	t.Cleanup(ts.Close)

	sess := session.Must(session.NewSession(aws.NewConfig().
		WithRegion("eu-central-1").
		WithEndpoint(ts.URL).
		WithS3ForcePathStyle(true).
		WithCredentials(credentials.NewStaticCredentials("id", "secret", ""))))

	return NewWithClient(s3.New(sess), Config{
		Region:   "eu-central-1",
		Bucket:   "bucket",
		Endpoint: ts.URL,
	}), fake
}

const (
	pngDataURI  = "data:image/png;base64,iVBORw0KGgo="
	pdfDataURI  = "data:application/pdf;base64,JVBERi0xLjQK"
	htmlDataURI = "data:text/html;base64,PHNjcmlwdD5hbGVydCgxKTwvc2NyaXB0Pg=="
)

var testImageRule = Rule{Types: []string{"image/png", "image/jpeg"}, MaxBytes: 1 << 10}

func TestUploadDataURI(t *testing.T) {
	store, fake := newTestStore(t)

	url, err := UploadDataURI(context.Background(), store, "helpPoints/abc/images", testImageRule, pngDataURI)
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".png"))
	assert.Contains(t, url, "/bucket/helpPoints/abc/images/")

	assert.Len(t, fake.objects, 1)
	for _, v := range fake.objects {
		assert.Equal(t, "\x89PNG\r\n\x1a\n", v)
	}
}

func TestUploadDataURIRejectsDisallowedType(t *testing.T) {
	store, fake := newTestStore(t)

	_, err := UploadDataURI(context.Background(), store, "chats/abc/messages", testImageRule, htmlDataURI)
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.Len(t, fake.objects, 0)
}

func TestDeletePrefix(t *testing.T) {
	store, fake := newTestStore(t)
	fake.objects["helpPoints/abc/images/1.png"] = "1"
	fake.objects["helpPoints/abc/images/2.png"] = "2"
	fake.objects["helpPoints/other/images/3.png"] = "3"

	assert.NoError(t, store.DeletePrefix(context.Background(), "helpPoints/abc"))
	assert.Len(t, fake.objects, 1)
	_, ok := fake.objects["helpPoints/other/images/3.png"]
	assert.True(t, ok)
}

func TestDeleteURL(t *testing.T) {
	store, fake := newTestStore(t)
	fake.objects["users/abc/avatar/1.png"] = "1"

	url, err := store.Upload(context.Background(), "users/abc/avatar/2.png", "image/png", strings.NewReader("2"))
	assert.NoError(t, err)

	assert.NoError(t, store.DeleteURL(context.Background(), "users/abc", url))
	assert.Len(t, fake.objects, 1)
}

func TestDeleteURLRefusesForeignObjects(t *testing.T) {
	store, fake := newTestStore(t)
	fake.objects["helpPoints/other/images/1.png"] = "1"

	url, err := store.Upload(context.Background(), "helpPoints/other/images/2.png", "image/png", strings.NewReader("2"))
	assert.NoError(t, err)

	assert.ErrorIs(t, store.DeleteURL(context.Background(), "chats/abc", url), ErrForeignObject)
	assert.ErrorIs(t, store.DeleteURL(context.Background(), "helpPoints/other/images/../../mine", url), ErrForeignObject)
	assert.ErrorIs(t, store.DeleteURL(context.Background(), "users/abc", "https://elsewhere.example.com/users/abc/avatar/1.png"), ErrForeignObject)
	assert.Len(t, fake.objects, 2)
}

func TestOwns(t *testing.T) {
	store, _ := newTestStore(t)

	url, err := store.Upload(context.Background(), "chats/abc/messages/1.png", "image/png", strings.NewReader("1"))
	assert.NoError(t, err)

	assert.True(t, store.Owns("chats/abc/messages", url))
	assert.True(t, store.Owns("chats/abc", url))
	assert.False(t, store.Owns("chats/ab", url))
	assert.False(t, store.Owns("chats/other/messages", url))
}

func TestBatchUploadKeepsOrder(t *testing.T) {
	store, fake := newTestStore(t)
	rule := Rule{Types: []string{"image/png", "application/pdf"}, MaxBytes: 1 << 10}

	b, err := NewBatch(rule, []string{
		"https://cdn.example.com/kept.png",
		pngDataURI,
		pdfDataURI,
	}, OwnedURLs([]string{"https://cdn.example.com/kept.png"}))
	assert.NoError(t, err)
	assert.Equal(t, 3, b.Len())

	urls, err := b.Upload(context.Background(), store, "chats/abc/messages")
	assert.NoError(t, err)
	assert.Len(t, urls, 3)
	assert.Equal(t, "https://cdn.example.com/kept.png", urls[0])
	assert.True(t, strings.HasSuffix(urls[1], ".png"))
	assert.True(t, strings.HasSuffix(urls[2], ".pdf"))
	assert.Len(t, fake.objects, 2)
}

func TestNewBatchRejectsUnownedURL(t *testing.T) {
	_, err := NewBatch(testImageRule, []string{"https://cdn.example.com/helpPoints/other/images/x.png"}, nil)
	assert.ErrorIs(t, err, ErrForeignObject)

	_, err = NewBatch(testImageRule, []string{"https://cdn.example.com/x.png"}, OwnedURLs([]string{"https://cdn.example.com/y.png"}))
	assert.ErrorIs(t, err, ErrForeignObject)
}

func TestNewBatchChecksEveryPayloadFirst(t *testing.T) {
	_, err := NewBatch(testImageRule, []string{pngDataURI, htmlDataURI}, nil)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
