package main

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/analysis/singlechecker"
	"golang.org/x/tools/go/ast/inspector"
)

const doc = `configfirst: keep environment access inside the config package

Two rules are enforced:

1. Test files must not call os.Setenv, os.Unsetenv or t.Setenv. Build the
   configuration with testutil.TestConfig(t, overrides) and pass it to
   constructors instead.
2. Non-test code must not call os.Getenv or os.LookupEnv outside
   internal/platform/config. Read settings from *config.Config.
`

// configPkgSuffix is the only package allowed to read the environment.
const configPkgSuffix = "internal/platform/config"

var Analyzer = &analysis.Analyzer{
	Name:     "configfirst",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func main() {
	singlechecker.Main(Analyzer)
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	configPkg := strings.HasSuffix(pass.Pkg.Path(), configPkgSuffix)

	inspect.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		fun, ok := call.Fun.(*ast.SelectorExpr)
		if !ok {
			return
		}

		inTest := strings.HasSuffix(pass.Fset.Position(call.Pos()).Filename, "_test.go")
		name := fun.Sel.Name

		if isOSFunc(pass, fun) {
			switch {
			case inTest && (name == "Setenv" || name == "Unsetenv"):
				pass.Reportf(call.Pos(),
					"os.%s is forbidden in test files: build the config with testutil.TestConfig(t, overrides)", name)
			case !inTest && !configPkg && (name == "Getenv" || name == "LookupEnv"):
				pass.Reportf(call.Pos(),
					"os.%s outside %s: read the value from *config.Config", name, configPkgSuffix)
			}
			return
		}

		if inTest && name == "Setenv" && isTestingT(pass, fun.X) {
			pass.Reportf(call.Pos(),
				"t.Setenv is forbidden in test files: build the config with testutil.TestConfig(t, overrides)")
		}
	})

	return nil, nil
}

func isOSFunc(pass *analysis.Pass, sel *ast.SelectorExpr) bool {
	ident, ok := sel.X.(*ast.Ident)
	if !ok {
		return false
	}
	pkgName, ok := pass.TypesInfo.Uses[ident].(*types.PkgName)
	return ok && pkgName.Imported().Path() == "os"
}

// isTestingT reports whether expr has type *testing.T or *testing.B.
func isTestingT(pass *analysis.Pass, expr ast.Expr) bool {
	t := pass.TypesInfo.TypeOf(expr)
	if t == nil {
		return false
	}
	ptr, ok := t.(*types.Pointer)
	if !ok {
		return false
	}
	named, ok := ptr.Elem().(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return false
	}
	if named.Obj().Pkg().Path() != "testing" {
		return false
	}
	switch named.Obj().Name() {
	case "T", "B":
		return true
	}
	return false
}
