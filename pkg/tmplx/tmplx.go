// Package tmplx wraps text/template with a small set of formatting helpers.
package tmplx

import (
	"bytes"
	"errors"
	"fmt"
	"text/template"
	"unicode/utf8"

	"github.com/spf13/cast"
	"github.com/tidwall/gjson"
)

var (
	ErrRenderTemplate = errors.New("tmplx: render error")
	ErrParseTemplate  = errors.New("tmplx: parse error")
)

type Template struct {
	tmpl *template.Template
}

type Options struct {
	validate ValidateFunc
	testData any
	funcs    template.FuncMap
}

type Option func(*Options) error

type ValidateFunc func(*bytes.Buffer) error

func defaultFuncs() template.FuncMap {
	return template.FuncMap{
		"default":  defaultFunc,
		"jsonGet":  jsonGet,
		"truncate": truncateFunc,
	}
}

// WithTemplateFunc adds a single custom template function
func WithTemplateFunc(name string, fn any) Option {
	return func(t *Options) error {
		if name == "" || fn == nil {
			return fmt.Errorf("%w: empty template func", ErrParseTemplate)
		}
		t.funcs[name] = fn
		return nil
	}
}

// WithValidate renders testData at parse time and hands the output to validateFn.
func WithValidate(testData any, validateFn ValidateFunc) Option {
	return func(t *Options) error {
		t.validate = validateFn
		t.testData = testData
		return nil
	}
}

func MustParse(name string, text string, opts ...Option) *Template {
	t, err := Parse(name, text, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

func Parse(name string, text string, args ...Option) (*Template, error) {
	opts := &Options{
		funcs: defaultFuncs(),
	}
	for _, arg := range args {
		if err := arg(opts); err != nil {
			return nil, err
		}
	}

	tmpl, err := template.New(name).
		Option("missingkey=zero").
		Funcs(opts.funcs).
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseTemplate, err)
	}

	t := &Template{
		tmpl: tmpl,
	}
	if opts.validate != nil {
		if err := t.validate(opts.testData, opts.validate); err != nil {
			return nil, err
		}
	}

	return t, nil
}

func (t *Template) validate(data any, validate ValidateFunc) error {
	buf, err := t.Render(data)
	if err != nil {
		return err
	}
	if err := validate(buf); err != nil {
		return fmt.Errorf("validate template: %w", err)
	}
	return nil
}

func (t *Template) Render(data any) (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	if err := t.tmpl.Execute(buf, data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderTemplate, err)
	}
	return buf, nil
}

func (t *Template) RenderString(data any) (string, error) {
	buf, err := t.Render(data)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func defaultFunc(def any, value any) any {
	if value != nil && cast.ToString(value) != "" {
		return value
	}
	return def
}

// jsonGet reads path from a JSON document; scalars come back as their text.
func jsonGet(path string, raw string) string {
	return gjson.Get(raw, path).String()
}

// truncateFunc cuts value to at most width runes, marking the cut with "...".
func truncateFunc(width int, value any) string {
	s := cast.ToString(value)
	if width <= 3 || utf8.RuneCountInString(s) <= width {
		return s
	}
	return string([]rune(s)[:width-3]) + "..."
}
