package secrets

import (
	"fmt"
	"io"
	"strings"
)

// Separator closes every printed secret
var Separator = strings.Repeat("-", 40)

// Printer renders decoded secrets as plain text
type Printer struct {
	out io.Writer
}

// NewPrinter creates a printer writing to out
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Print writes one secret block:
//
//	Namespace: <ns>
//	Name: <name>
//	Data:
//	  <key>: <value>
//	----------------------------------------
func (p *Printer) Print(d Decoded) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Namespace: %s\nName: %s\n", d.Namespace, d.Name)
	b.WriteString("Data:\n")
	for _, f := range d.Fields {
		fmt.Fprintf(&b, "  %s: %s\n", f.Key, f.Value)
	}
	b.WriteString(Separator)
	b.WriteString("\n")

	_, err := io.WriteString(p.out, b.String())
	return err
}

// PrintDecodeFailure reports a field that could not be decoded
func (p *Printer) PrintDecodeFailure(f DecodedField) error {
	_, err := fmt.Fprintf(p.out, "Failed to decode secret %s: %v\n", f.Key, f.Err)
	return err
}
