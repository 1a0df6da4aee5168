package gotypes

import (
	"fmt"
	"go/types"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
	"golang.org/x/tools/go/packages"
)

// Loader loads type information for Go packages so descriptor sources can
// resolve the types named by annotated code
type Loader struct {
	// Dir is the working directory for loads; empty means the process
	// working directory
	Dir string
}

// Load loads the packages matching the given patterns with full type
// information. Packages with compilation errors are rejected: descriptors
// built from partially resolved types would not be trustworthy.
func (l *Loader) Load(patterns ...string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName |
			packages.NeedTypes |
			packages.NeedModule,
		Dir: l.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages %v: %w", patterns, err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, fmt.Errorf("packages %v have compilation errors", patterns)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages matched %v", patterns)
	}

	return pkgs, nil
}

// Lookup resolves a package-level named type declared in pkg
func (l *Loader) Lookup(pkg *packages.Package, name string) (types.Type, error) {
	obj := pkg.Types.Scope().Lookup(name)
	if obj == nil {
		return nil, fmt.Errorf("type '%s' not found in package %s", name, pkg.PkgPath)
	}
	return obj.Type(), nil
}

// ModulePath returns the module path governing the given directory by
// locating the nearest go.mod and parsing its module declaration. Useful
// for turning source directories into package load patterns.
func ModulePath(dir string) (string, error) {
	goModPath, err := findGoMod(dir)
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(goModPath)
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod file: %w", err)
	}

	modFile, err := modfile.Parse(goModPath, content, nil)
	if err != nil {
		return "", fmt.Errorf("failed to parse go.mod file: %w", err)
	}

	if modFile.Module == nil {
		return "", fmt.Errorf("no module declaration found in %s", goModPath)
	}

	return modFile.Module.Mod.Path, nil
}

// findGoMod walks up from dir until it finds a go.mod file
func findGoMod(dir string) (string, error) {
	currentDir := filepath.Clean(dir)

	for {
		goModPath := filepath.Join(currentDir, "go.mod")
		if info, err := os.Stat(goModPath); err == nil && !info.IsDir() {
			return goModPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", fmt.Errorf("go.mod not found in %s or any parent directory", dir)
}
