// Package docs emits the line-oriented description of a benchmark consumed by
// the external documentation tool.
//
// The first line is "<benchmark>;<description>". Each test case follows as
// " <name>;<help>" and each of its parameters as "  <key>;<help>". Names and
// keys must not contain protocol separators and no field may contain ';'.
package docs

import (
	"io"
	"strings"

	"github.com/AndreyAkinshin/gpubench/internal/errors"
	"github.com/AndreyAkinshin/gpubench/internal/testcase"
)

// IllegalNameCharacters may not appear in benchmark names, test names or parameter keys.
const IllegalNameCharacters = " -:='\"<>|{}[]/.,?\\+$"

// IllegalTextCharacters may not appear in descriptions and help messages.
const IllegalTextCharacters = ";"

// Generator renders the documentation of one benchmark.
type Generator struct {
	name        string
	description string
	registry    *testcase.Registry
}

// NewGenerator creates a documentation generator.
func NewGenerator(name, description string, registry *testcase.Registry) *Generator {
	return &Generator{
		name:        name,
		description: description,
		registry:    registry,
	}
}

// Generate validates every field and writes the document to w. Nothing is
// written when a field breaks the protocol.
func (g *Generator) Generate(w io.Writer) error {
	doc, err := g.Render()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, doc)
	return err
}

// Render returns the document. Test cases without any implementation are omitted.
func (g *Generator) Render() (string, error) {
	var sb strings.Builder

	if strings.ContainsAny(g.name, IllegalNameCharacters) {
		return "", errors.Docs("benchmark name contains invalid characters.")
	}
	if strings.ContainsAny(g.description, IllegalTextCharacters) {
		return "", errors.Docs("benchmark description contains invalid characters.")
	}
	sb.WriteString(g.name + ";" + g.description + "\n")

	for _, tc := range g.registry.All() {
		if len(tc.ApisWithImplementation()) == 0 {
			continue
		}
		name := tc.Name()
		if strings.ContainsAny(name, IllegalNameCharacters) {
			return "", errors.Docsf("test case %q contains illegal characters.", name)
		}
		if strings.ContainsAny(tc.Help(), IllegalTextCharacters) {
			return "", errors.Docsf("help message of test case %q contains illegal characters.", name)
		}
		sb.WriteString(" " + name + ";" + tc.Help() + "\n")

		for _, p := range tc.Parameters() {
			if strings.ContainsAny(p.Key(), IllegalNameCharacters) {
				return "", errors.Docsf("argument %q in test case %q contains illegal characters.", p.Key(), name)
			}
			if strings.ContainsAny(p.Help(), IllegalTextCharacters) {
				return "", errors.Docsf("help message of argument %q in test case %q contains illegal characters.", p.Key(), name)
			}
			sb.WriteString("  " + p.Key() + ";" + p.Help() + "\n")
		}
	}
	return sb.String(), nil
}
