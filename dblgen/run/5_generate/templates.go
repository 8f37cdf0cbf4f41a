package generate

import (
	"text/template"
)

// unexported constants.
const (
	doubleTemplateText = `// Code generated by dblgen. DO NOT EDIT.

package {{.PkgName}}

import (
{{- range .Imports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)

// {{.TypeName}} is the {{.Kind}} returned by {{.Constructor}}.
// Each method field stubs and verifies calls to that method.
type {{.TypeName}} struct {
	Imp    *double.Imp
	Target string
{{- if .Spy}}
	Real   {{.InterfaceType}}
{{- end}}
{{- range .Methods}}
	{{.Name}} *double.DependencyMethod
{{- end}}
}

// Interface returns the {{.Kind}} as an implementation of {{.InterfaceType}}.
func (d *{{.TypeName}}) Interface() {{.InterfaceType}} {
	return &{{.ImplName}}{owner: d}
}

// {{.Constructor}} creates a new {{.Kind}} for the {{.InterfaceType}} interface.
{{- if .Spy}}
// Calls that match no stub reach realImpl.
{{- end}}
func {{.Constructor}}(t double.TestReporter{{if .Spy}}, realImpl {{.InterfaceType}}{{end}}) *{{.TypeName}} {
	imp := double.GetOrCreateImp(t)
	target := imp.NewTarget("{{.BaseName}}")

	return &{{.TypeName}}{
		Imp:    imp,
		Target: target,
{{- if .Spy}}
		Real:   realImpl,
{{- end}}
{{- range .Methods}}
		{{.Name}}: double.NewDependencyMethod(imp, target, "{{.Name}}"),
{{- end}}
	}
}

// {{.ImplName}} implements {{.InterfaceType}} by routing calls through the {{.Kind}}.
type {{.ImplName}} struct {
	owner *{{.TypeName}}
}
{{range .ImplMethods}}
// {{.Name}} implements {{$.InterfaceType}}.{{.Name}}.
func (impl *{{$.ImplName}}) {{.Name}}({{.Params}}){{.ResultsDecl}} {
	args := []any{ {{- .FixedArgs -}} }
{{- if .VariadicName}}
	for _, v := range {{.VariadicName}} {
		args = append(args, v)
	}
{{- end}}

	{{if .ReturnExpr}}values := {{end}}impl.owner.Imp.Invoke(impl.owner.Target, "{{.Name}}", args, {{.ResultCount}}, {{if $.Spy}}func() []any {
{{.RealCall}}
	}{{else}}nil{{end}})
{{- if .ReturnExpr}}

	return {{.ReturnExpr}}
{{- end}}
}
{{end}}`
)

// unexported variables.
var (
	//nolint:gochecknoglobals // Parsed once; templates are immutable after parse
	doubleTemplate = template.Must(template.New("double").Parse(doubleTemplateText))
)
