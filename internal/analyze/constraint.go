package analyze

import (
	"fmt"
	"go/ast"
	"go/build/constraint"
	"path/filepath"
	"strings"
)

// Operating systems and architectures a file name suffix can imply,
// as listed by go/build.
var (
	knownOS = map[string]bool{
		"aix": true, "android": true, "darwin": true, "dragonfly": true, "freebsd": true,
		"hurd": true, "illumos": true, "ios": true, "js": true, "linux": true, "nacl": true,
		"netbsd": true, "openbsd": true, "plan9": true, "solaris": true, "wasip1": true,
		"windows": true, "zos": true,
	}
	knownArch = map[string]bool{
		"386": true, "amd64": true, "amd64p32": true, "arm": true, "armbe": true, "arm64": true,
		"arm64be": true, "loong64": true, "mips": true, "mipsle": true, "mips64": true,
		"mips64le": true, "mips64p32": true, "mips64p32le": true, "ppc": true, "ppc64": true,
		"ppc64le": true, "riscv": true, "riscv64": true, "s390": true, "s390x": true,
		"sparc": true, "sparc64": true, "wasm": true,
	}
)

// fileConstraint returns the build constraint a source file is compiled
// under: its //go:build line (or // +build lines) and the GOOS/GOARCH implied
// by its name, joined with &&. It returns "" for unconstrained files.
func fileConstraint(filename string, file *ast.File) (string, error) {
	var exprs []constraint.Expr

	header, err := headerConstraint(file)
	if err != nil {
		return "", fmt.Errorf("%s: %w", filepath.Base(filename), err)
	}

	if header != nil {
		exprs = append(exprs, header)
	}

	for _, tag := range impliedTags(filepath.Base(filename)) {
		exprs = append(exprs, &constraint.TagExpr{Tag: tag})
	}

	if len(exprs) == 0 {
		return "", nil
	}

	expr := exprs[0]
	for _, x := range exprs[1:] {
		expr = &constraint.AndExpr{X: expr, Y: x}
	}

	return expr.String(), nil
}

// headerConstraint parses the constraint lines above the package clause.
// A //go:build line takes precedence over // +build lines.
func headerConstraint(file *ast.File) (constraint.Expr, error) {
	var plus constraint.Expr

	for _, g := range file.Comments {
		if g.Pos() >= file.Package {
			break
		}

		for _, c := range g.List {
			switch {
			case constraint.IsGoBuild(c.Text):
				return constraint.Parse(c.Text)
			case constraint.IsPlusBuild(c.Text):
				x, err := constraint.Parse(c.Text)
				if err != nil {
					return nil, err
				}

				if plus == nil {
					plus = x
				} else {
					plus = &constraint.AndExpr{X: plus, Y: x}
				}
			}
		}
	}

	return plus, nil
}

// impliedTags returns the GOOS and GOARCH tags implied by a file name such as
// "conn_linux_amd64.go", following the go/build naming rules.
func impliedTags(name string) []string {
	name, _, _ = strings.Cut(name, ".")

	i := strings.Index(name, "_")
	if i < 0 {
		return nil
	}

	parts := strings.Split(name[i:], "_")
	if n := len(parts); n > 0 && parts[n-1] == "test" {
		parts = parts[:n-1]
	}

	n := len(parts)
	switch {
	case n >= 2 && knownOS[parts[n-2]] && knownArch[parts[n-1]]:
		return []string{parts[n-2], parts[n-1]}
	case n >= 1 && (knownOS[parts[n-1]] || knownArch[parts[n-1]]):
		return []string{parts[n-1]}
	}

	return nil
}
