// Package loader resolves the types a record's fields refer to that the
// source AST alone cannot size: named basic types and records declared
// in other packages, build-tagged files or hand-written code.
package loader

import (
	"fmt"
	"go/constant"
	"go/types"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"github.com/alexhholmes/fixedwire/internal/analyzer"
	"github.com/alexhholmes/fixedwire/internal/logging"
	"github.com/alexhholmes/fixedwire/internal/parser"
)

// PackageLoader loads and caches Go packages.
type PackageLoader struct {
	dir   string
	cache map[string]*packages.Package
	mu    sync.RWMutex
}

// NewPackageLoader creates a new PackageLoader resolving patterns
// relative to dir.
func NewPackageLoader(dir string) *PackageLoader {
	return &PackageLoader{
		dir:   dir,
		cache: make(map[string]*packages.Package),
	}
}

// LoadPackage loads a package by its import path or directory pattern.
func (l *PackageLoader) LoadPackage(pattern string) (*packages.Package, error) {
	l.mu.RLock()
	if pkg, ok := l.cache[pattern]; ok {
		l.mu.RUnlock()
		return pkg, nil
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()

	// Check again in case it was loaded while we were waiting for the lock
	if pkg, ok := l.cache[pattern]; ok {
		return pkg, nil
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports | packages.NeedTypes |
			packages.NeedTypesSizes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir: l.dir,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to load package %q: %w", pattern, err)
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("package %q not found", pattern)
	}

	pkg := pkgs[0]
	// A package whose generated file is stale or missing does not type
	// check; what did check is still usable
	for _, e := range pkg.Errors {
		logging.Logger().Debug("package load error", zap.String("package", pattern), zap.String("error", e.Error()))
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("package %q has no type information", pattern)
	}

	l.cache[pattern] = pkg
	return pkg, nil
}

// Populate registers in reg every type the parsed package's records refer
// to that type checking can resolve: named basic types, and records from
// this package or imported ones that already have wire methods.
// Records annotated in src are left to the registry's own sizing.
func (l *PackageLoader) Populate(src *parser.Package, reg *analyzer.TypeRegistry) error {
	pkg, err := l.LoadPackage(".")
	if err != nil {
		return err
	}

	annotated := make(map[string]bool)
	for _, decl := range src.Types {
		annotated[decl.Name] = true
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		switch obj := scope.Lookup(name).(type) {
		case *types.TypeName:
			if !annotated[name] {
				register(reg, name, obj)
			}
		case *types.Const:
			// Covers lengths the AST cannot fold, e.g. PageSize - 10
			if v, ok := constant.Int64Val(constant.ToInt(obj.Val())); ok {
				reg.RegisterConst(name, int(v))
			}
		}
	}

	imported := make(map[string]*types.Package)
	for _, imp := range pkg.Types.Imports() {
		imported[imp.Path()] = imp
	}

	for _, ref := range qualifiedRefs(src) {
		qual, name, _ := strings.Cut(ref, ".")
		path, ok := src.Imports[qual]
		if !ok {
			continue
		}
		imp, ok := imported[path]
		if !ok {
			logging.Logger().Debug("import not loaded", zap.String("path", path))
			continue
		}
		tn, ok := imp.Scope().Lookup(name).(*types.TypeName)
		if !ok || !tn.Exported() {
			continue
		}
		register(reg, ref, tn)
	}

	return nil
}

// register classifies one type name and records it under key
func register(reg *analyzer.TypeRegistry, key string, tn *types.TypeName) {
	t := types.Unalias(tn.Type())
	if isRecord(t) {
		reg.Register(key, analyzer.Dynamic)
		logging.Logger().Debug("resolved record", zap.String("type", key))
		return
	}

	underlying, ok := fixedUnderlying(t)
	if !ok {
		return
	}
	if tn.IsAlias() {
		reg.RegisterAlias(key, underlying)
	} else {
		reg.RegisterNamed(key, underlying)
	}
	logging.Logger().Debug("resolved named type", zap.String("type", key), zap.String("underlying", underlying))
}

// isRecord reports whether t has the full set of wire methods with a
// value receiver for encoding and a pointer receiver for decoding
func isRecord(t types.Type) bool {
	value := types.NewMethodSet(t)
	pointer := types.NewMethodSet(types.NewPointer(t))
	return value.Lookup(nil, "MarshalWire") != nil &&
		value.Lookup(nil, "WireSize") != nil &&
		pointer.Lookup(nil, "UnmarshalWire") != nil
}

// fixedUnderlying renders a basic type or an array of basic types the
// analyzer can size
func fixedUnderlying(t types.Type) (string, bool) {
	switch u := t.Underlying().(type) {
	case *types.Basic:
		if _, ok := analyzer.CodecOf(u.Name()); ok {
			return u.Name(), true
		}
	case *types.Array:
		if elem, ok := u.Elem().Underlying().(*types.Basic); ok {
			if _, ok := analyzer.CodecOf(elem.Name()); ok {
				return fmt.Sprintf("[%d]%s", u.Len(), elem.Name()), true
			}
		}
	}
	return "", false
}

// qualifiedRefs lists the distinct pkg.Type references in the package's
// record fields and in the targets of its aliases (type P = geo.Point)
func qualifiedRefs(src *parser.Package) []string {
	seen := make(map[string]bool)
	var refs []string
	add := func(goType string) {
		if i := strings.LastIndex(goType, "]"); i >= 0 {
			goType = goType[i+1:]
		}
		if strings.Contains(goType, ".") && !seen[goType] {
			seen[goType] = true
			refs = append(refs, goType)
		}
	}

	for _, decl := range src.Types {
		for _, field := range decl.Fields {
			add(field.GoType)
		}
	}
	aliases := make([]string, 0, len(src.Aliases))
	for name := range src.Aliases {
		aliases = append(aliases, name)
	}
	sort.Strings(aliases)
	for _, name := range aliases {
		add(src.Aliases[name])
	}
	return refs
}
