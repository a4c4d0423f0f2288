package main

import (
	"bytes"
	"strings"
	"text/template"
)

const (
	preludeTemplateName = "prelude.tmpl"
	blockTemplateName   = "block.tmpl"
)

var templateFuncs = template.FuncMap{
	"join": func(opts []string) string {
		return strings.Join(opts, " ")
	},
}

// preludeData is the input of prelude.tmpl.
type preludeData struct {
	OSVar string
}

// blockData is the input of block.tmpl.
type blockData struct {
	Combination
	Jobs    int
	OSVar   string
	GuardOS string
}

func (g *generator) renderPrelude(buf *bytes.Buffer) error {
	return g.preludeTemplate.Execute(buf, preludeData{OSVar: osVar})
}

func (g *generator) renderBlock(buf *bytes.Buffer, c Combination) error {
	return g.blockTemplate.Execute(buf, blockData{
		Combination: c,
		Jobs:        g.Matrix.MakeJobs,
		OSVar:       osVar,
		GuardOS:     profilingUnsupportedOS,
	})
}
