package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"text/template"

	"go.uber.org/zap"
	"golang.org/x/tools/txtar"
)

//go:embed templates.txt
var defaultTemplates string

type generator struct {
	Matrix Matrix // matrix to enumerate

	Template string // txtar archive to use instead of the embedded templates

	logger *zap.Logger

	preludeTemplate *template.Template
	blockTemplate   *template.Template

	// Counters of the last generate call
	report Report
}

func (g *generator) loadTemplates() error {
	var templateData string

	// Try to load from specified template file first
	if g.Template != "" {
		if data, err := os.ReadFile(g.Template); err == nil {
			templateData = string(data)
		} else {
			g.log().Warn("falling back to embedded templates",
				zap.String("template", g.Template), zap.Error(err))
		}
	}

	// Fallback to embedded templates if external file not found or not specified
	if templateData == "" {
		templateData = defaultTemplates
	}

	archive := txtar.Parse([]byte(templateData))
	templates := make(map[string]string)
	for _, file := range archive.Files {
		templates[file.Name] = string(file.Data)
	}

	var err error
	if g.preludeTemplate, err = parseTemplate(templates, preludeTemplateName); err != nil {
		return err
	}
	if g.blockTemplate, err = parseTemplate(templates, blockTemplateName); err != nil {
		return err
	}
	return nil
}

func parseTemplate(templates map[string]string, name string) (*template.Template, error) {
	text, ok := templates[name]
	if !ok {
		return nil, fmt.Errorf("template archive has no %s", name)
	}
	t, err := template.New(name).Funcs(templateFuncs).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", name, err)
	}
	return t, nil
}

func (g *generator) log() *zap.Logger {
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	return g.logger
}

// generate writes the test matrix script to output.
//
// Nothing is written when the matrix is invalid or the templates cannot be
// loaded.
func (g *generator) generate(output io.Writer) error {
	if err := g.Matrix.Validate(); err != nil {
		return err
	}
	if err := g.loadTemplates(); err != nil {
		return err
	}

	g.report = Report{}
	logger := g.log()

	var buf bytes.Buffer
	if err := g.renderPrelude(&buf); err != nil {
		return fmt.Errorf("error rendering prelude: %w", err)
	}

	for c := range g.Matrix.Combinations() {
		if g.Matrix.Excluded(c) {
			g.report.Skipped++
			logger.Debug("skipping combination",
				zap.String("cc", c.Compiler.CC),
				zap.Strings("compiler_opts", c.CompilerOpts),
				zap.Strings("config_opts", c.ConfigOpts))
			continue
		}
		if err := g.renderBlock(&buf, c); err != nil {
			return fmt.Errorf("error rendering %v: %w", c, err)
		}
		g.report.Emitted++
		if c.Guarded() {
			g.report.Guarded++
		}
	}

	_, err := output.Write(buf.Bytes())
	return err
}
