package generate_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	. "github.com/onsi/gomega"
	detect "github.com/toejough/catcalc/dblgen/run/3_detect"
	generate "github.com/toejough/catcalc/dblgen/run/5_generate"
	"github.com/toejough/go-reorder"
	"pgregory.net/rapid"
)

func TestCode_MockOfQualifiedInterface(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	code, err := generate.Code(arithmetic(), generate.Info{
		PkgName:     "catcalc_test",
		ImportPath:  "github.com/toejough/catcalc",
		Qualifier:   "catcalc",
		Constructor: "MockArithmetic",
	})
	g.Expect(err).NotTo(HaveOccurred())

	file := mustParse(t, code)
	g.Expect(file.Name.Name).To(Equal("catcalc_test"))
	g.Expect(importPaths(file)).To(ConsistOf(`"github.com/toejough/catcalc"`, `"github.com/toejough/catcalc/double"`))

	g.Expect(code).To(HavePrefix("// Code generated by dblgen. DO NOT EDIT."))
	g.Expect(code).To(ContainSubstring("func MockArithmetic(t double.TestReporter) *ArithmeticMock {"))
	g.Expect(code).To(ContainSubstring(`imp.NewTarget("Arithmetic")`))
	g.Expect(code).To(ContainSubstring("func (d *ArithmeticMock) Interface() catcalc.Arithmetic {"))
	g.Expect(code).To(ContainSubstring("func (impl *arithmeticMockImpl) Add(a float64, b float64) float64 {"))
	g.Expect(code).To(ContainSubstring(`values := impl.owner.Imp.Invoke(impl.owner.Target, "Add", args, 1, nil)`))
	g.Expect(code).To(ContainSubstring("return double.Result[float64](impl.owner.Imp, values, 0)"))
	g.Expect(code).NotTo(ContainSubstring("Real"))
}

func TestCode_SpyCallsRealImplementation(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	iface := arithmetic()
	iface.Name = "Service"
	iface.Methods = append(iface.Methods, detect.Method{Name: "ConstantFifteen", Results: []string{"float64"}})

	code, err := generate.Code(iface, generate.Info{
		PkgName:     "catcalc_test",
		ImportPath:  "github.com/toejough/catcalc",
		Qualifier:   "catcalc",
		Constructor: generate.DefaultConstructor("Service", true),
		Spy:         true,
	})
	g.Expect(err).NotTo(HaveOccurred())

	mustParse(t, code)
	g.Expect(code).To(ContainSubstring("func SpyService(t double.TestReporter, realImpl catcalc.Service) *ServiceSpy {"))
	g.Expect(code).To(ContainSubstring("return []any{impl.owner.Real.Add(a, b)}"))
	g.Expect(code).To(ContainSubstring("func (impl *serviceSpyImpl) ConstantFifteen() float64 {"))
	g.Expect(code).To(ContainSubstring("args := []any{}"))
}

func TestCode_VariadicMultiResultAndNoResultMethods(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	iface := detect.Interface{
		Name:    "Evaluator",
		PkgName: "calc",
		Imports: []detect.Import{{Path: "context"}},
		Methods: []detect.Method{
			{
				Name: "Eval",
				Params: []detect.Param{
					{Name: "ctx", Type: "context.Context"},
					{Name: "rest", Type: "float64"},
				},
				Results:  []string{"float64", "error"},
				Variadic: true,
			},
			{Name: "Reset"},
		},
	}

	for _, spy := range []bool{false, true} {
		code, err := generate.Code(iface, generate.Info{
			PkgName:     "calc",
			Constructor: generate.DefaultConstructor("Evaluator", spy),
			Spy:         spy,
		})
		g.Expect(err).NotTo(HaveOccurred())

		mustParse(t, code)
		g.Expect(code).To(ContainSubstring("Eval(ctx context.Context, rest ...float64) (float64, error)"))
		g.Expect(code).To(ContainSubstring("for _, v := range rest {"))
		g.Expect(code).To(ContainSubstring("return double.Result[float64](impl.owner.Imp, values, 0), double.Result[error](impl.owner.Imp, values, 1)"))
		g.Expect(code).To(ContainSubstring("func (d *Evaluator"))
		g.Expect(code).NotTo(ContainSubstring("calc.Evaluator"))
	}
}

func TestCode_CustomConstructorKeepsKindSuffix(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	code, err := generate.Code(arithmetic(), generate.Info{
		PkgName:     "catcalc",
		Constructor: "NewFakeMath",
	})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(code).To(ContainSubstring("func NewFakeMath(t double.TestReporter) *NewFakeMathMock {"))
	g.Expect(code).To(ContainSubstring(`imp.NewTarget("NewFakeMath")`))
}

func TestCode_AliasedQualifier(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	code, err := generate.Code(arithmetic(), generate.Info{
		PkgName:     "other",
		ImportPath:  "example.com/v2/catcalc",
		Qualifier:   "calc2",
		Constructor: "MockArithmetic",
	})
	g.Expect(err).NotTo(HaveOccurred())

	file := mustParse(t, code)
	g.Expect(importPaths(file)).To(ContainElement(`calc2 "example.com/v2/catcalc"`))
}

func TestCode_OutputIsAlreadyInReorderOrder(t *testing.T) {
	t.Parallel()

	for _, spy := range []bool{false, true} {
		g := NewWithT(t)

		code, err := generate.Code(arithmetic(), generate.Info{
			PkgName:     "catcalc_test",
			ImportPath:  "github.com/toejough/catcalc",
			Qualifier:   "catcalc",
			Constructor: generate.DefaultConstructor("Arithmetic", spy),
			Spy:         spy,
		})
		g.Expect(err).NotTo(HaveOccurred())

		reordered, err := reorder.Source(code)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(reordered).To(Equal(code), "spy=%v", spy)

		g.Expect(code).To(ContainSubstring("as an implementation of catcalc.Arithmetic."))
		g.Expect(strings.Index(code, ") Interface() ")).To(BeNumerically("<", strings.Index(code, "\nfunc "+generate.DefaultConstructor("Arithmetic", spy)+"(")))
		g.Expect(strings.Index(code, ") Divide(")).To(BeNumerically("<", strings.Index(code, ") Subtract(")))
	}
}

func TestDefaultConstructor(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(generate.DefaultConstructor("Arithmetic", false)).To(Equal("MockArithmetic"))
	g.Expect(generate.DefaultConstructor("Service", true)).To(Equal("SpyService"))
}

func TestCode_ArbitraryInterfacesProduceValidGo(t *testing.T) {
	t.Parallel()

	types := []string{"int", "string", "float64", "error", "[]byte", "map[string]int", "func(int) bool", "*int", "any"}
	ident := rapid.StringMatching(`[A-Z][a-z]{1,8}`)

	rapid.Check(t, func(rt *rapid.T) {
		names := rapid.SliceOfNDistinct(ident, 1, 5, rapid.ID[string]).Draw(rt, "methods")
		methods := make([]detect.Method, 0, len(names))

		for _, name := range names {
			paramTypes := rapid.SliceOfN(rapid.SampledFrom(types), 0, 4).Draw(rt, name+"Params")
			params := make([]detect.Param, 0, len(paramTypes))

			for i, typ := range paramTypes {
				params = append(params, detect.Param{Name: "p" + strings.Repeat("x", i), Type: typ})
			}

			methods = append(methods, detect.Method{
				Name:     name,
				Params:   params,
				Results:  rapid.SliceOfN(rapid.SampledFrom(types), 0, 3).Draw(rt, name+"Results"),
				Variadic: len(params) > 0 && rapid.Bool().Draw(rt, name+"Variadic"),
			})
		}

		spy := rapid.Bool().Draw(rt, "spy")

		code, err := generate.Code(
			detect.Interface{Name: "Subject", PkgName: "p", Methods: methods},
			generate.Info{PkgName: "p", Constructor: generate.DefaultConstructor("Subject", spy), Spy: spy},
		)
		if err != nil {
			rt.Fatalf("Code: %v", err)
		}

		_, err = parser.ParseFile(token.NewFileSet(), "generated.go", code, 0)
		if err != nil {
			rt.Fatalf("generated code does not parse: %v\n%s", err, code)
		}
	})
}

func arithmetic() detect.Interface {
	binary := func(name string) detect.Method {
		return detect.Method{
			Name:    name,
			Params:  []detect.Param{{Name: "a", Type: "float64"}, {Name: "b", Type: "float64"}},
			Results: []string{"float64"},
		}
	}

	return detect.Interface{
		Name:    "Arithmetic",
		PkgName: "catcalc",
		Methods: []detect.Method{binary("Add"), binary("Subtract"), binary("Multiply"), binary("Divide")},
	}
}

func importPaths(file *ast.File) []string {
	paths := make([]string, 0, len(file.Imports))

	for _, spec := range file.Imports {
		if spec.Name != nil {
			paths = append(paths, spec.Name.Name+" "+spec.Path.Value)

			continue
		}

		paths = append(paths, spec.Path.Value)
	}

	return paths
}

func mustParse(t *testing.T, code string) *ast.File {
	t.Helper()

	file, err := parser.ParseFile(token.NewFileSet(), "generated.go", code, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, code)
	}

	return file
}
