package view

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/xml"
	"net/http"
	"os"
	"sync"
	"text/template"
	"time"

	"github.com/air-examples/placeholder/models"
	"github.com/cespare/xxhash/v2"
	"github.com/tdewolff/minify/v2"
	mxml "github.com/tdewolff/minify/v2/xml"
)

const feedMaxEntries = 10

// Feed renders an Atom feed of posts and tracks the cache validators
// of the last rendered version.
type Feed struct {
	tmpl *template.Template
	now  func() time.Time

	mu           sync.Mutex
	last         []byte
	etag         string
	lastModified string
}

// NewFeed parses the feed template at path.
func NewFeed(path string) (*Feed, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	f := &Feed{now: time.Now}

	tmpl, err := template.
		New("feed").
		Funcs(map[string]interface{}{
			"xmlescape": func(s string) string {
				buf := bytes.Buffer{}
				xml.EscapeText(&buf, []byte(s))
				return buf.String()
			},
			"now": func() time.Time {
				return f.now().UTC()
			},
			"timefmt": func(t time.Time, l string) string {
				return t.Format(l)
			},
		}).
		Parse(string(b))
	if err != nil {
		return nil, err
	}
	f.tmpl = tmpl

	return f, nil
}

// Build renders the latest posts as minified Atom XML and returns the
// bytes together with their ETag and Last-Modified values. The
// validators only advance when the rendered feed changes.
func (f *Feed) Build(posts []models.Post) ([]byte, string, string, error) {
	if len(posts) > feedMaxEntries {
		posts = posts[:feedMaxEntries]
	}

	buf := bytes.Buffer{}
	if err := f.tmpl.Execute(&buf, map[string]interface{}{
		"Posts": posts,
	}); err != nil {
		return nil, "", "", err
	}

	buf2 := bytes.Buffer{}
	if err := mxml.Minify(minify.New(), &buf2, &buf, nil); err != nil {
		return nil, "", "", err
	}

	b := buf2.Bytes()

	f.mu.Lock()
	defer f.mu.Unlock()

	if !bytes.Equal(b, f.last) {
		f.last = b

		d := make([]byte, 8)
		binary.BigEndian.PutUint64(d, xxhash.Sum64(b))
		f.etag = "\"" + base64.StdEncoding.EncodeToString(d) + "\""

		f.lastModified = f.now().UTC().Format(http.TimeFormat)
	}

	return b, f.etag, f.lastModified, nil
}
