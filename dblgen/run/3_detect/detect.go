// Package detect finds the doubled interface in parsed source and describes
// its methods as strings ready for code generation.
package detect

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/dave/dst"
	"github.com/pkg/errors"
)

// Exported variables.
var (
	// ErrBadTarget is returned for a target that is not Interface or pkg.Interface.
	ErrBadTarget = errors.New("bad target")
	// ErrInterfaceNotFound is returned when no interface of the wanted name is declared.
	ErrInterfaceNotFound = errors.New("interface not found")
	// ErrUnsupported is returned for interface shapes the generator cannot double.
	ErrUnsupported = errors.New("unsupported interface")
)

// Import is one import the generated file needs.
type Import struct {
	Alias string // empty when the path's last element is the package name
	Path  string
}

// Interface is a doubled interface with every method flattened in.
type Interface struct {
	Name    string
	PkgName string // package the interface is declared in
	Methods []Method
	Imports []Import // imports the method signatures refer to
}

// Method is one interface method.
type Method struct {
	Name     string
	Params   []Param
	Results  []string
	Variadic bool // last param is variadic; its Type holds the element type
}

// Param is a named parameter. Unnamed and blank parameters get argN names.
type Param struct {
	Name string
	Type string
}

// Target is the parsed form of a pkg.Interface argument.
type Target struct {
	PkgRef        string // "" for an interface in the invoking package
	InterfaceName string
}

// FindInterface locates name among files and flattens its methods.
// Identifiers naming the package's own types are prefixed with qualifier
// when it is non-empty. Embedded interfaces must be declared in files too.
func FindInterface(files []*dst.File, name, qualifier string) (Interface, error) {
	decls := interfaceDecls(files)

	decl, ok := decls[name]
	if !ok {
		return Interface{}, errors.Wrapf(ErrInterfaceNotFound, "%q", name)
	}

	if decl.typeParams {
		return Interface{}, errors.Wrapf(ErrUnsupported, "%q has type parameters", name)
	}

	collector := &methodCollector{
		decls:     decls,
		qualifier: qualifier,
		seen:      map[string]bool{},
		imports:   map[string]Import{},
	}

	err := collector.collect(name, decl)
	if err != nil {
		return Interface{}, err
	}

	return Interface{
		Name:    name,
		PkgName: decl.file.Name.Name,
		Methods: collector.methods,
		Imports: collector.sortedImports(),
	}, nil
}

// ImportPathFor returns the import path the invoking file uses for pkgRef,
// matching either an explicit alias or the path's last element.
func ImportPathFor(file *dst.File, pkgRef string) (string, bool) {
	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		if spec.Name != nil {
			if spec.Name.Name == pkgRef {
				return path, true
			}

			continue
		}

		if lastElement(path) == pkgRef {
			return path, true
		}
	}

	return "", false
}

// ParseTarget splits "pkg.Interface" or "Interface".
func ParseTarget(target string) (Target, error) {
	parts := strings.Split(target, ".")

	switch {
	case len(parts) == 1 && isIdent(parts[0]):
		return Target{InterfaceName: parts[0]}, nil
	case len(parts) == 2 && isIdent(parts[0]) && isIdent(parts[1]):
		return Target{PkgRef: parts[0], InterfaceName: parts[1]}, nil
	default:
		return Target{}, errors.Wrapf(ErrBadTarget, "%q: want Interface or pkg.Interface", target)
	}
}

type ifaceDecl struct {
	file       *dst.File
	iface      *dst.InterfaceType
	typeParams bool
}

type methodCollector struct {
	decls     map[string]ifaceDecl
	qualifier string
	seen      map[string]bool
	methods   []Method
	imports   map[string]Import
}

func (c *methodCollector) collect(name string, decl ifaceDecl) error {
	for _, field := range decl.iface.Methods.List {
		switch fieldType := field.Type.(type) {
		case *dst.FuncType:
			for _, methodName := range field.Names {
				if c.seen[methodName.Name] {
					continue
				}

				c.seen[methodName.Name] = true

				method, err := c.method(methodName.Name, fieldType, decl.file)
				if err != nil {
					return errors.Wrapf(err, "%s.%s", name, methodName.Name)
				}

				c.methods = append(c.methods, method)
			}
		case *dst.Ident:
			embedded, ok := c.decls[fieldType.Name]
			if !ok {
				return errors.Wrapf(ErrUnsupported, "%s embeds %s, which is not an interface in this package",
					name, fieldType.Name)
			}

			err := c.collect(fieldType.Name, embedded)
			if err != nil {
				return err
			}
		default:
			return errors.Wrapf(ErrUnsupported, "%s embeds %T; only same-package interfaces can be embedded",
				name, field.Type)
		}
	}

	return nil
}

func (c *methodCollector) method(name string, ftype *dst.FuncType, file *dst.File) (Method, error) {
	method := Method{Name: name}

	if ftype.Params != nil {
		for _, field := range ftype.Params.List {
			typeExpr := field.Type
			if ellipsis, ok := typeExpr.(*dst.Ellipsis); ok {
				method.Variadic = true
				typeExpr = ellipsis.Elt
			}

			typeStr, err := c.typeString(typeExpr, file)
			if err != nil {
				return Method{}, err
			}

			names := field.Names
			if len(names) == 0 {
				names = []*dst.Ident{{Name: "_"}}
			}

			for _, ident := range names {
				method.Params = append(method.Params, Param{
					Name: paramName(ident.Name, len(method.Params)),
					Type: typeStr,
				})
			}
		}
	}

	if ftype.Results != nil {
		for _, field := range ftype.Results.List {
			typeStr, err := c.typeString(field.Type, file)
			if err != nil {
				return Method{}, err
			}

			count := max(len(field.Names), 1)
			for range count {
				method.Results = append(method.Results, typeStr)
			}
		}
	}

	return method, nil
}

func (c *methodCollector) sortedImports() []Import {
	imports := make([]Import, 0, len(c.imports))
	for _, imp := range c.imports {
		imports = append(imports, imp)
	}

	sortImports(imports)

	return imports
}

// typeString renders a type expression, qualifying the package's own types
// and recording the imports that selector expressions need.
//
//nolint:cyclop // Type-switch dispatcher over DST type expressions
func (c *methodCollector) typeString(expr dst.Expr, file *dst.File) (string, error) {
	switch typed := expr.(type) {
	case *dst.Ident:
		if isBuiltinType(typed.Name) || c.qualifier == "" {
			return typed.Name, nil
		}

		if !isExported(typed.Name) {
			return "", errors.Wrapf(ErrUnsupported, "unexported type %s cannot be named from another package", typed.Name)
		}

		return c.qualifier + "." + typed.Name, nil
	case *dst.SelectorExpr:
		pkgIdent, ok := typed.X.(*dst.Ident)
		if !ok {
			return "", errors.Wrapf(ErrUnsupported, "selector type %T", typed.X)
		}

		path, ok := ImportPathFor(file, pkgIdent.Name)
		if !ok {
			return "", errors.Wrapf(ErrUnsupported, "no import for package %s", pkgIdent.Name)
		}

		imp := Import{Path: path}
		if lastElement(path) != pkgIdent.Name {
			imp.Alias = pkgIdent.Name
		}

		c.imports[path] = imp

		return pkgIdent.Name + "." + typed.Sel.Name, nil
	case *dst.StarExpr:
		inner, err := c.typeString(typed.X, file)

		return "*" + inner, err
	case *dst.ArrayType:
		elem, err := c.typeString(typed.Elt, file)
		if err != nil {
			return "", err
		}

		if typed.Len == nil {
			return "[]" + elem, nil
		}

		lit, ok := typed.Len.(*dst.BasicLit)
		if !ok {
			return "", errors.Wrap(ErrUnsupported, "array length must be a literal")
		}

		return "[" + lit.Value + "]" + elem, nil
	case *dst.MapType:
		key, err := c.typeString(typed.Key, file)
		if err != nil {
			return "", err
		}

		value, err := c.typeString(typed.Value, file)

		return "map[" + key + "]" + value, err
	case *dst.ChanType:
		value, err := c.typeString(typed.Value, file)

		switch typed.Dir {
		case dst.SEND:
			return "chan<- " + value, err
		case dst.RECV:
			return "<-chan " + value, err
		default:
			return "chan " + value, err
		}
	case *dst.InterfaceType:
		if typed.Methods == nil || len(typed.Methods.List) == 0 {
			return "any", nil
		}

		return "", errors.Wrap(ErrUnsupported, "inline interface types")
	case *dst.FuncType:
		return c.funcTypeString(typed, file)
	default:
		return "", errors.Wrapf(ErrUnsupported, "type expression %T", expr)
	}
}

func (c *methodCollector) funcTypeString(ftype *dst.FuncType, file *dst.File) (string, error) {
	render := func(list *dst.FieldList) ([]string, error) {
		var parts []string

		if list == nil {
			return parts, nil
		}

		for _, field := range list.List {
			prefix := ""
			typeExpr := field.Type

			if ellipsis, ok := typeExpr.(*dst.Ellipsis); ok {
				prefix = "..."
				typeExpr = ellipsis.Elt
			}

			typeStr, err := c.typeString(typeExpr, file)
			if err != nil {
				return nil, err
			}

			for range max(len(field.Names), 1) {
				parts = append(parts, prefix+typeStr)
			}
		}

		return parts, nil
	}

	params, err := render(ftype.Params)
	if err != nil {
		return "", err
	}

	results, err := render(ftype.Results)
	if err != nil {
		return "", err
	}

	out := "func(" + strings.Join(params, ", ") + ")"

	switch len(results) {
	case 0:
		return out, nil
	case 1:
		return out + " " + results[0], nil
	default:
		return out + " (" + strings.Join(results, ", ") + ")", nil
	}
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Names the generated method bodies use
	reservedNames = map[string]bool{
		"args": true, "values": true, "impl": true, "v": true, "double": true,
		"r0": true, "r1": true, "r2": true, "r3": true,
	}
)

func interfaceDecls(files []*dst.File) map[string]ifaceDecl {
	decls := map[string]ifaceDecl{}

	for _, file := range files {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*dst.GenDecl)
			if !ok {
				continue
			}

			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*dst.TypeSpec)
				if !ok {
					continue
				}

				iface, ok := typeSpec.Type.(*dst.InterfaceType)
				if !ok {
					continue
				}

				decls[typeSpec.Name.Name] = ifaceDecl{
					file:       file,
					iface:      iface,
					typeParams: typeSpec.TypeParams != nil && len(typeSpec.TypeParams.List) > 0,
				}
			}
		}
	}

	return decls
}

func isBuiltinType(name string) bool {
	switch name {
	case "bool", "byte", "complex64", "complex128",
		"error", "float32", "float64", "int",
		"int8", "int16", "int32", "int64",
		"rune", "string", "uint", "uint8",
		"uint16", "uint32", "uint64", "uintptr",
		"any":
		return true
	}

	return false
}

func isExported(name string) bool {
	if name == "" {
		return false
	}

	return unicode.IsUpper(rune(name[0]))
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}

		return false
	}

	return true
}

func lastElement(path string) string {
	return path[strings.LastIndex(path, "/")+1:]
}

func paramName(name string, index int) string {
	if name == "" || name == "_" {
		return fmt.Sprintf("arg%d", index)
	}

	if reservedNames[name] {
		return name + "Arg"
	}

	return name
}

func sortImports(imports []Import) {
	slices.SortFunc(imports, func(a, b Import) int {
		return strings.Compare(a.Path, b.Path)
	})
}
