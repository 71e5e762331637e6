// Package secrets turns a raw SecretList into printable, decoded records.
package secrets

import (
	"errors"

	"github.com/tidwall/gjson"
)

// ErrInvalidList is returned when the list payload is not valid JSON or
// carries no items array
var ErrInvalidList = errors.New("secret list is not a valid SecretList")

// Field is one entry of a secret's data mapping, still base64 encoded
type Field struct {
	Key     string
	Encoded string
}

// Secret is a secret as served by the API
type Secret struct {
	Namespace string
	Name      string
	Fields    []Field // document order; empty when data is absent
}

// ID returns namespace/name
func (s Secret) ID() string {
	return s.Namespace + "/" + s.Name
}

// ParseList extracts secrets from a JSON encoded SecretList. Item and field
// order follow the document.
func ParseList(raw []byte) ([]Secret, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrInvalidList
	}

	// a typed list with no items marshals as "items": null
	items := gjson.GetBytes(raw, "items")
	if !items.Exists() || (!items.IsArray() && items.Type != gjson.Null) {
		return nil, ErrInvalidList
	}

	secrets := make([]Secret, 0, len(items.Array()))
	items.ForEach(func(_, item gjson.Result) bool {
		s := Secret{
			Namespace: item.Get("metadata.namespace").String(),
			Name:      item.Get("metadata.name").String(),
		}
		item.Get("data").ForEach(func(k, v gjson.Result) bool {
			s.Fields = append(s.Fields, Field{Key: k.String(), Encoded: v.String()})
			return true
		})
		secrets = append(secrets, s)
		return true
	})

	return secrets, nil
}
