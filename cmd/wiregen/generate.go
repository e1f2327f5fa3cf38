package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alexhholmes/fixedwire/internal/analyzer"
	"github.com/alexhholmes/fixedwire/internal/codegen"
	"github.com/alexhholmes/fixedwire/internal/config"
	"github.com/alexhholmes/fixedwire/internal/loader"
	"github.com/alexhholmes/fixedwire/internal/logging"
	"github.com/alexhholmes/fixedwire/internal/parser"
)

// options are the command-line flags; set values override the config file
type options struct {
	Dir     string
	Output  string
	Types   string
	Config  string
	Dump    bool
	NoLoad  bool
	Verbose bool
}

var errAnalysis = errors.New("analysis failed; no file written")

func generate(opts options, out io.Writer, rep *reporter) error {
	dir := packageDir(opts.Dir, os.Getenv("GOFILE"))

	cfg, err := loadConfig(opts.Config, dir)
	if err != nil {
		return err
	}
	if opts.Output != "" {
		cfg.Output = opts.Output
	}
	if opts.Types != "" {
		cfg.Types = config.ParseTypes(opts.Types)
	}
	if opts.NoLoad {
		cfg.Load = false
	}
	if opts.Verbose {
		cfg.LogLevel = zapcore.DebugLevel
	}

	logger := newLogger(rep.w, cfg.LogLevel)
	defer logger.Sync()
	logging.SetLogger(logger)
	defer logging.SetLogger(nil)

	pkg, err := parser.ParseDir(dir)
	if err != nil {
		return err
	}
	logger.Debug("parsed package",
		zap.String("package", pkg.Name),
		zap.String("dir", dir),
		zap.Int("records", len(pkg.Types)))

	if opts.Dump {
		return dump(out, pkg, cfg)
	}

	reg := analyzer.NewTypeRegistry()
	reg.RegisterPackage(pkg)
	if cfg.Load {
		if err := loader.NewPackageLoader(dir).Populate(pkg, reg); err != nil {
			logger.Warn("type loading failed; only types declared in this package will resolve", zap.Error(err))
		}
	}

	plans, failed := analyze(pkg, reg, cfg, rep)
	if failed > 0 {
		return fmt.Errorf("%d record(s): %w", failed, errAnalysis)
	}
	if len(plans) == 0 {
		logger.Info("no @wire records to generate", zap.String("package", pkg.Name))
		return nil
	}

	src, err := codegen.GenerateFile(&codegen.File{
		Package: pkg.Name,
		Imports: pkg.Imports,
		Plans:   plans,
	})
	if err != nil {
		return err
	}

	path := outputPath(cfg.Output, dir, pkg.Name)
	if omitted := omittedRecords(pkg, plans); len(omitted) > 0 && cfg.Output == "" {
		rep.Warn(fmt.Sprintf("%s now holds only the selected records; %s lose their generated methods",
			filepath.Base(path), strings.Join(omitted, ", ")))
	}
	return codegen.WriteFile(path, src)
}

func analyze(pkg *parser.Package, reg *analyzer.TypeRegistry, cfg config.Config, rep *reporter) ([]*analyzer.RecordPlan, int) {
	var plans []*analyzer.RecordPlan
	failed := 0
	selected := selectRecords(pkg, reg, cfg, rep)

	for _, decl := range pkg.Types {
		if !selected[decl.Name] {
			continue
		}

		if cfg.Atomic && decl.Anno != nil && !decl.Anno.AtomicSet {
			decl.Anno.Atomic = true
		}

		plan, err := analyzer.Analyze(decl, reg)
		if err != nil {
			failed++
			if plan == nil || len(plan.Errors) == 0 {
				rep.Error(decl.Pos, err.Error())
				continue
			}
			for _, msg := range plan.Errors {
				rep.Error(decl.Pos, msg)
			}
			continue
		}
		logging.Logger().Debug("analyzed record",
			zap.String("type", plan.TypeName),
			zap.String("width", plan.WidthSrc),
			zap.Bool("atomic", plan.Atomic))
		plans = append(plans, plan)
	}

	return plans, failed
}

// selectRecords applies the types filter and then adds every @wire record
// of the package that a selected record embeds or holds, directly, through
// an alias or as an array element. Their methods are called by the
// selected record's code, so they are generated into the same file.
func selectRecords(pkg *parser.Package, reg *analyzer.TypeRegistry, cfg config.Config, rep *reporter) map[string]bool {
	decls := make(map[string]*parser.TypeDecl, len(pkg.Types))
	for _, decl := range pkg.Types {
		decls[decl.Name] = decl
	}

	selected := make(map[string]bool)
	var queue []*parser.TypeDecl
	for _, decl := range pkg.Types {
		if cfg.Wants(decl.Name) {
			selected[decl.Name] = true
			queue = append(queue, decl)
		}
	}

	for _, name := range cfg.Types {
		if decls[name] == nil {
			rep.Warn(fmt.Sprintf("%s: no @wire record with this name in package %s", name, pkg.Name))
		}
	}

	for len(queue) > 0 {
		decl := queue[0]
		queue = queue[1:]
		for _, field := range decl.Fields {
			if field.Tag != nil && field.Tag.Skip {
				continue
			}
			dep := decls[recordRef(field.GoType, reg)]
			if dep == nil || selected[dep.Name] {
				continue
			}
			selected[dep.Name] = true
			queue = append(queue, dep)
			rep.Warn(fmt.Sprintf("%s: generated as well, %s.%s refers to it", dep.Name, decl.Name, field.Name))
		}
	}

	return selected
}

// recordRef is the type a field's codec comes from: the field type itself,
// or the element type of an array, with aliases resolved
func recordRef(goType string, reg *analyzer.TypeRegistry) string {
	resolved := reg.ResolveType(goType)
	if strings.HasPrefix(resolved, "[") {
		_, elem, err := reg.ArrayOf(resolved)
		if err != nil {
			return ""
		}
		resolved = reg.ResolveType(elem)
	}
	return resolved
}

// omittedRecords lists the package's struct records left out of plans
func omittedRecords(pkg *parser.Package, plans []*analyzer.RecordPlan) []string {
	planned := make(map[string]bool, len(plans))
	for _, plan := range plans {
		planned[plan.TypeName] = true
	}
	var omitted []string
	for _, decl := range pkg.Types {
		if decl.Shape == parser.ShapeStruct && !planned[decl.Name] {
			omitted = append(omitted, decl.Name)
		}
	}
	return omitted
}

// packageDir is dir when given, else the directory of $GOFILE under
// go generate, else the working directory
func packageDir(dir, gofile string) string {
	if dir != "" {
		return dir
	}
	if gofile != "" {
		return filepath.Dir(gofile)
	}
	return "."
}

func loadConfig(path, dir string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	path = filepath.Join(dir, config.DefaultFile)
	if _, err := os.Stat(path); err != nil {
		return config.Default(), nil
	}
	return config.Load(path)
}

func outputPath(output, dir, pkgName string) string {
	if output == "" {
		return codegen.OutputPath(dir, pkgName)
	}
	if filepath.IsAbs(output) {
		return output
	}
	return filepath.Join(dir, output)
}

// newLogger is zap's development console format at the given level
func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core, zap.Development())
}
