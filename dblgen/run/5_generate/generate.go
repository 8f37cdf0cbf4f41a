// Package generate renders mock and spy source for a detected interface.
package generate

import (
	"bytes"
	"fmt"
	"go/format"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	detect "github.com/toejough/catcalc/dblgen/run/3_detect"
)

// Exported constants.
const (
	// DoublePkgPath is the import path of the runtime generated code uses.
	DoublePkgPath = "github.com/toejough/catcalc/double"
)

// Info says what to generate and where it will live.
type Info struct {
	PkgName     string // package of the generated file (GOPACKAGE)
	ImportPath  string // import path of the interface's package; unused when Qualifier is empty
	Qualifier   string // prefix for the interface's package in generated code; empty when same package
	Constructor string // e.g. MockArithmetic
	Spy         bool
}

// Code returns gofmt-ed source for a double of iface.
func Code(iface detect.Interface, info Info) (string, error) {
	data := buildTemplateData(iface, info)

	var buf bytes.Buffer

	err := doubleTemplate.Execute(&buf, data)
	if err != nil {
		return "", errors.Wrap(err, "failed to execute template")
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return "", errors.Wrapf(err, "generated code for %s does not parse", info.Constructor)
	}

	return string(formatted), nil
}

// DefaultConstructor returns Mock<Interface> or Spy<Interface>.
func DefaultConstructor(interfaceName string, spy bool) string {
	if spy {
		return spyPrefix + interfaceName
	}

	return mockPrefix + interfaceName
}

// unexported constants.
const (
	mockPrefix = "Mock"
	spyPrefix  = "Spy"
)

type methodData struct {
	Name         string
	ResultCount  int
	Params       string
	ResultsDecl  string
	FixedArgs    string
	VariadicName string
	RealCall     string
	ReturnExpr   string
}

type templateData struct {
	PkgName       string
	Imports       []detect.Import
	InterfaceType string
	BaseName      string
	Constructor   string
	TypeName      string
	ImplName      string
	Kind          string
	Spy           bool
	Methods       []methodData // declaration order, for fields
	ImplMethods   []methodData // sorted by name, the order go-reorder emits methods in
}

func buildMethodData(method detect.Method) methodData {
	params := make([]string, 0, len(method.Params))
	fixed := make([]string, 0, len(method.Params))
	callArgs := make([]string, 0, len(method.Params))
	variadicName := ""

	for i, param := range method.Params {
		if method.Variadic && i == len(method.Params)-1 {
			params = append(params, param.Name+" ..."+param.Type)
			callArgs = append(callArgs, param.Name+"...")
			variadicName = param.Name

			continue
		}

		params = append(params, param.Name+" "+param.Type)
		fixed = append(fixed, param.Name)
		callArgs = append(callArgs, param.Name)
	}

	data := methodData{
		Name:         method.Name,
		ResultCount:  len(method.Results),
		Params:       strings.Join(params, ", "),
		FixedArgs:    strings.Join(fixed, ", "),
		VariadicName: variadicName,
	}

	realCall := "impl.owner.Real." + method.Name + "(" + strings.Join(callArgs, ", ") + ")"

	switch len(method.Results) {
	case 0:
		data.RealCall = realCall + "\n\nreturn nil"
	case 1:
		data.ResultsDecl = " " + method.Results[0]
		data.RealCall = "return []any{" + realCall + "}"
	default:
		data.ResultsDecl = " (" + strings.Join(method.Results, ", ") + ")"

		names := make([]string, len(method.Results))
		for i := range method.Results {
			names[i] = fmt.Sprintf("r%d", i)
		}

		data.RealCall = strings.Join(names, ", ") + " := " + realCall +
			"\n\nreturn []any{" + strings.Join(names, ", ") + "}"
	}

	returns := make([]string, 0, len(method.Results))
	for i, result := range method.Results {
		returns = append(returns, fmt.Sprintf("double.Result[%s](impl.owner.Imp, values, %d)", result, i))
	}

	data.ReturnExpr = strings.Join(returns, ", ")

	return data
}

func buildTemplateData(iface detect.Interface, info Info) templateData {
	kind, prefix := "mock", mockPrefix
	if info.Spy {
		kind, prefix = "spy", spyPrefix
	}

	baseName := strings.TrimPrefix(info.Constructor, prefix)
	if baseName == "" {
		baseName = iface.Name
	}

	typeName := baseName + strings.ToUpper(kind[:1]) + kind[1:]

	interfaceType := iface.Name
	imports := []detect.Import{{Path: DoublePkgPath}}

	if info.Qualifier != "" {
		interfaceType = info.Qualifier + "." + iface.Name

		imp := detect.Import{Path: info.ImportPath}
		if lastElement(info.ImportPath) != info.Qualifier {
			imp.Alias = info.Qualifier
		}

		imports = append(imports, imp)
	}

	imports = append(imports, iface.Imports...)

	methods := make([]methodData, 0, len(iface.Methods))
	for _, method := range iface.Methods {
		methods = append(methods, buildMethodData(method))
	}

	implMethods := slices.Clone(methods)
	slices.SortFunc(implMethods, func(a, b methodData) int {
		return strings.Compare(a.Name, b.Name)
	})

	return templateData{
		PkgName:       info.PkgName,
		Imports:       dedupeImports(imports),
		InterfaceType: interfaceType,
		BaseName:      baseName,
		Constructor:   info.Constructor,
		TypeName:      typeName,
		ImplName:      lowerFirst(typeName) + "Impl",
		Kind:          kind,
		Spy:           info.Spy,
		Methods:       methods,
		ImplMethods:   implMethods,
	}
}

func dedupeImports(imports []detect.Import) []detect.Import {
	seen := make(map[string]bool, len(imports))
	unique := make([]detect.Import, 0, len(imports))

	for _, imp := range imports {
		if seen[imp.Path] {
			continue
		}

		seen[imp.Path] = true

		unique = append(unique, imp)
	}

	return unique
}

func lastElement(path string) string {
	return path[strings.LastIndex(path, "/")+1:]
}

func lowerFirst(name string) string {
	r, size := utf8.DecodeRuneInString(name)

	return string(unicode.ToLower(r)) + name[size:]
}
