// Package charset resolves charset names to encoders and decoders so
// templates can be read and results written in any encoding the
// golang.org/x/text tables know about.
package charset

import (
	"strings"

	"github.com/arthur-debert/tplgen/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// Codec converts between raw file bytes in a named charset and Go strings
type Codec struct {
	name string
	enc  encoding.Encoding
}

// UTF8 is the codec for the default encoding
var UTF8 = &Codec{name: "UTF-8", enc: unicode.UTF8}

// Lookup resolves a charset name. IANA names and aliases are tried first,
// then the WHATWG labels, both case-insensitively.
func Lookup(name string) (*Codec, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, errors.New(errors.ErrEncoding, "encoding name cannot be empty")
	}

	enc, err := ianaindex.IANA.Encoding(trimmed)
	if err != nil || enc == nil {
		enc, err = htmlindex.Get(trimmed)
	}
	if err != nil || enc == nil {
		return nil, errors.Newf(errors.ErrEncoding, "unsupported encoding %q", trimmed).
			WithDetail(errors.DetailEncoding, trimmed)
	}

	canonical := trimmed
	for _, index := range []*ianaindex.Index{ianaindex.MIME, ianaindex.IANA} {
		if n, err := index.Name(enc); err == nil && n != "" {
			canonical = n
			break
		}
	}

	return &Codec{name: canonical, enc: enc}, nil
}

// Name returns the preferred MIME or IANA name of the charset when one exists
func (c *Codec) Name() string {
	return c.name
}

// Decode converts bytes in the codec's charset to a string
func (c *Codec) Decode(data []byte) (string, error) {
	out, err := c.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrEncoding, "cannot decode %s input", c.name).
			WithDetail(errors.DetailEncoding, c.name)
	}
	return string(out), nil
}

// Encode converts text to bytes in the codec's charset. Characters the
// charset cannot represent are an error.
func (c *Codec) Encode(text string) ([]byte, error) {
	out, err := c.enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEncoding, "cannot encode output as %s", c.name).
			WithDetail(errors.DetailEncoding, c.name)
	}
	return out, nil
}
