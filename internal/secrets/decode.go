package secrets

import (
	"encoding/base64"
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	// DecodeErrorPlaceholder replaces a value that could not be decoded
	DecodeErrorPlaceholder = "Decoding error"

	// excludedMarker hides Helm release metadata secrets
	excludedMarker = "helm"
)

// ErrInvalidUTF8 is returned for values that decode to non UTF-8 bytes
var ErrInvalidUTF8 = errors.New("decoded value is not valid UTF-8")

// DecodedField is a data entry after decoding. Err is set, and Value holds
// DecodeErrorPlaceholder, when decoding failed.
type DecodedField struct {
	Key   string
	Value string
	Err   error
}

// Decoded is a Secret with every field decoded
type Decoded struct {
	Namespace string
	Name      string
	Fields    []DecodedField
}

// ID returns namespace/name
func (d Decoded) ID() string {
	return d.Namespace + "/" + d.Name
}

// Failures returns the fields that could not be decoded
func (d Decoded) Failures() []DecodedField {
	var failed []DecodedField
	for _, f := range d.Fields {
		if f.Err != nil {
			failed = append(failed, f)
		}
	}
	return failed
}

// IsExcluded reports whether a secret name contains "helm", ignoring case
func IsExcluded(name string) bool {
	return strings.Contains(strings.ToLower(name), excludedMarker)
}

// DecodeValue base64-decodes encoded and checks the result is UTF-8 text
func DecodeValue(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", ErrInvalidUTF8
	}
	return string(raw), nil
}

// Decode decodes every field of s. A failing field never stops its siblings.
func Decode(s Secret) Decoded {
	d := Decoded{
		Namespace: s.Namespace,
		Name:      s.Name,
		Fields:    make([]DecodedField, 0, len(s.Fields)),
	}

	for _, f := range s.Fields {
		value, err := DecodeValue(f.Encoded)
		if err != nil {
			d.Fields = append(d.Fields, DecodedField{Key: f.Key, Value: DecodeErrorPlaceholder, Err: err})
			continue
		}
		d.Fields = append(d.Fields, DecodedField{Key: f.Key, Value: value})
	}

	return d
}
