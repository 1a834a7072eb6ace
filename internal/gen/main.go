// Command gen writes the per-width entity identifier types of package ecs.
//
//	go generate ./ecs
package main

import (
	"bytes"
	"flag"
	"log"
	"os"
	"strconv"
	"text/template"

	"golang.org/x/tools/imports"
)

type width struct {
	Bits        int
	IndexBits   int
	IndexType   string
	VersionType string
}

func (w width) Name() string {
	return "Entity" + strconv.Itoa(w.Bits)
}

func (w width) Backing() string {
	return "uint" + strconv.Itoa(w.Bits)
}

func (w width) VersionBits() int {
	return w.Bits - w.IndexBits
}

func (w width) IndexMask() uint64 {
	return 1<<w.IndexBits - 1
}

func (w width) VersionMask() uint64 {
	return 1<<w.VersionBits() - 1
}

var widths = []width{
	{Bits: 16, IndexBits: 12, IndexType: "uint32", VersionType: "uint8"},
	{Bits: 32, IndexBits: 20, IndexType: "uint32", VersionType: "uint16"},
	{Bits: 64, IndexBits: 32, IndexType: "uint64", VersionType: "uint32"},
}

const entityTemplate = `// Code generated by internal/gen; DO NOT EDIT.

package ecs

import "strconv"
{{range .}}
// {{.Name}} is a {{.Bits}}-bit entity identifier: {{.IndexBits}} index bits, {{.VersionBits}} version bits.
type {{.Name}} {{.Backing}}

const (
	{{lower .Name}}IndexMask    = {{printf "0x%X" .IndexMask}}
	{{lower .Name}}VersionMask  = {{printf "0x%X" .VersionMask}}
	{{lower .Name}}VersionShift = {{.IndexBits}}
)

var {{lower .Name}}Traits = Traits{
	Bits:         {{.Bits}},
	VersionBits:  {{.VersionBits}},
	IndexMask:    {{lower .Name}}IndexMask,
	VersionMask:  {{lower .Name}}VersionMask,
	VersionShift: {{lower .Name}}VersionShift,
}

// Make{{.Name}} packs index and version into an {{.Name}}. Excess bits are dropped.
func Make{{.Name}}(index {{.IndexType}}, version {{.VersionType}}) {{.Name}} {
	return {{.Name}}({{.Backing}}(index)&{{lower .Name}}IndexMask | ({{.Backing}}(version)&{{lower .Name}}VersionMask)<<{{lower .Name}}VersionShift)
}

// Integral returns the raw value of e.
func (e {{.Name}}) Integral() {{.Backing}} {
	return {{.Backing}}(e)
}

// Index returns the slot index of e.
func (e {{.Name}}) Index() {{.IndexType}} {
{{- if ne .IndexType .Backing}}
	return {{.IndexType}}({{.Backing}}(e) & {{lower .Name}}IndexMask)
{{- else}}
	return {{.Backing}}(e) & {{lower .Name}}IndexMask
{{- end}}
}

// Version returns the generation counter of e.
func (e {{.Name}}) Version() {{.VersionType}} {
	return {{.VersionType}}(({{.Backing}}(e) >> {{lower .Name}}VersionShift) & {{lower .Name}}VersionMask)
}

// IsNull reports whether e compares equal to Null.
func (e {{.Name}}) IsNull() bool {
	return {{.Backing}}(e)&{{lower .Name}}IndexMask == {{lower .Name}}IndexMask
}

func (e {{.Name}}) String() string {
	if e.IsNull() {
		return "{{.Name}}(null)"
	}
	return "{{.Name}}(" + strconv.FormatUint(uint64(e.Index()), 10) + "v" + strconv.FormatUint(uint64(e.Version()), 10) + ")"
}

func ({{.Name}}) traits() Traits {
	return {{lower .Name}}Traits
}

// {{.Name}} converts Null to a concrete {{.Name}}: reserved index, version zero.
func (NullEntity) {{.Name}}() {{.Name}} {
	return {{.Name}}({{lower .Name}}IndexMask)
}
{{end}}`

func main() {
	out := flag.String("out", "entity_generated.go", "output file")
	flag.Parse()

	tmpl := template.Must(template.New("entity").Funcs(template.FuncMap{
		"lower": lowerFirst,
	}).Parse(entityTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, widths); err != nil {
		log.Fatalf("execute template: %v", err)
	}

	src, err := imports.Process(*out, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("format generated code: %v", err)
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
