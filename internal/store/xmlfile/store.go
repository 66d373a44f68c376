// Package xmlfile stores movies as <movie> children of a <movies> root.
package xmlfile

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode"

	"movie-catalog/internal/domain/movies"
	"movie-catalog/internal/store/diskfile"
	"movie-catalog/internal/store/filelock"

	"github.com/rs/zerolog"
)

type catalog struct {
	XMLName xml.Name `xml:"movies"`
	Movies  []entry  `xml:"movie"`
}

// entry keeps every child element of a <movie>, in order, whatever its name.
type entry struct {
	Fields []field `xml:",any"`
}

type field struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
}

type Store struct {
	path string
	log  zerolog.Logger
}

func Open(path string, log zerolog.Logger) *Store {
	return &Store{
		path: path,
		log:  log.With().Str("store", "xml").Str("path", path).Logger(),
	}
}

func (s *Store) Path() string { return s.path }

// Load parses the file. A missing or malformed file yields an empty root.
// Every field comes back as text.
func (s *Store) Load(ctx context.Context) ([]movies.Document, error) {
	unlock, err := filelock.Shared(ctx, s.path)
	if err != nil {
		return nil, err
	}
	defer unlock()

	root := s.load()
	docs := make([]movies.Document, 0, len(root.Movies))
	for _, e := range root.Movies {
		var d movies.Document
		for _, f := range e.Fields {
			d.Set(f.XMLName.Local, f.Text)
		}
		docs = append(docs, d)
	}
	return docs, nil
}

// Save adds doc as a new <movie> element and writes the whole tree back.
// Existing elements are kept, including ones the catalog does not know.
func (s *Store) Save(ctx context.Context, doc movies.Document) error {
	unlock, err := filelock.Exclusive(ctx, s.path)
	if err != nil {
		return err
	}
	defer unlock()

	root := s.load()
	root.Movies = append(root.Movies, s.toEntry(doc))
	return s.write(root)
}

// toEntry renders each key as a child element whose text is the string form
// of the value. null becomes an empty element.
func (s *Store) toEntry(doc movies.Document) entry {
	e := entry{Fields: make([]field, 0, doc.Len())}
	for _, f := range doc.Fields() {
		if !isElementName(f.Key) {
			s.log.Warn().Str("key", f.Key).Msg("key is not a valid element name, skipping")
			continue
		}
		e.Fields = append(e.Fields, field{
			XMLName: xml.Name{Local: f.Key},
			Text:    doc.Text(f.Key),
		})
	}
	return e
}

func (s *Store) load() catalog {
	empty := catalog{Movies: []entry{}}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn().Err(err).Msg(movies.ErrFileUnavailable.Error())
		}
		return empty
	}

	var root catalog
	if err := xml.Unmarshal(raw, &root); err != nil {
		s.log.Warn().Err(err).Msg("malformed xml file, starting a new root")
		return empty
	}
	if root.Movies == nil {
		root.Movies = []entry{}
	}
	return root
}

func (s *Store) write(root catalog) error {
	out, err := xml.MarshalIndent(root, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.Write(out)
	buf.WriteByte('\n')
	return diskfile.Replace(s.path, buf.Bytes())
}

func isElementName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case unicode.IsLetter(r), r == '_':
		case i > 0 && (unicode.IsDigit(r) || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return len(name) < 3 || !strings.EqualFold(name[:3], "xml")
}
