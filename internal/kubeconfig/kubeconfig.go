package kubeconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"k8s.io/client-go/util/homedir"
	"sigs.k8s.io/yaml"
)

// NoCurrentContext is shown when the document does not set current-context
const NoCurrentContext = "None"

// ErrNotFound is matched by errors.Is when the kubeconfig file does not exist
var ErrNotFound = errors.New("kube config file not found")

// NotFoundError reports a kubeconfig path that does not exist
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("kube config file not found: %s", e.Path)
}

// Is lets errors.Is(err, ErrNotFound) match
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ReadError reports a kubeconfig file that exists but could not be read
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("unable to read kube config file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError reports a kubeconfig file whose content is not valid YAML
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// Document is the subset of a kubeconfig file needed for diagnostics.
// Contexts keep the order they appear in the file.
type Document struct {
	Kind           string           `json:"kind,omitempty"`
	APIVersion     string           `json:"apiVersion,omitempty"`
	Clusters       []*NamedCluster  `json:"clusters"`
	AuthInfos      []*NamedAuthInfo `json:"users"`
	Contexts       []*NamedContext  `json:"contexts"`
	CurrentContext string           `json:"current-context"`

	// Path the document was loaded from
	Path string `json:"-"`
}

type NamedCluster struct {
	Name    string `json:"name"`
	Cluster struct {
		Server string `json:"server"`
	} `json:"cluster"`
}

type NamedAuthInfo struct {
	Name string `json:"name"`
}

type NamedContext struct {
	Name    string     `json:"name"`
	Context ContextRef `json:"context"`
}

// ContextRef links a context to its cluster and user entries
type ContextRef struct {
	Cluster   string `json:"cluster"`
	User      string `json:"user"`
	Namespace string `json:"namespace,omitempty"`
}

// DefaultPath returns ~/.kube/config
func DefaultPath() string {
	return filepath.Join(homedir.HomeDir(), ".kube", "config")
}

// Load reads and parses the kubeconfig file at path
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, &ReadError{Path: path, Err: err}
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	doc.Path = path
	return doc, nil
}

// Parse decodes kubeconfig YAML. An empty document is valid.
func Parse(data []byte) (*Document, error) {
	doc := &Document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// CurrentContextOrNone returns current-context, or NoCurrentContext when unset
func (d *Document) CurrentContextOrNone() string {
	if d.CurrentContext == "" {
		return NoCurrentContext
	}
	return d.CurrentContext
}

// ContextNames returns every context name in file order
func (d *Document) ContextNames() []string {
	names := make([]string, 0, len(d.Contexts))
	for _, c := range d.Contexts {
		if c == nil {
			continue
		}
		names = append(names, c.Name)
	}
	return names
}

// Context looks up a context entry by name
func (d *Document) Context(name string) (*NamedContext, bool) {
	for _, c := range d.Contexts {
		if c != nil && c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// HasContext reports whether the document defines the named context
func (d *Document) HasContext(name string) bool {
	_, ok := d.Context(name)
	return ok
}
