package merger

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jmattsson/arxtools/arxdoc"
	"github.com/jmattsson/arxtools/arxerrors"
)

// CopyPackage copies the element tree of a source package into dstParent.
// The source package shape is validated (name holder, element container,
// optional nested package container); a missing destination package is
// synthesized with a fresh, path-derived identity. Nested packages are
// copied recursively.
//
// graceful lists the package names whose clashes are handled gracefully.
// An empty list makes every package graceful, matching the historic
// behavior orchestration scripts rely on; a non-empty list makes every
// name outside it strict.
//
// The returned PathMap accumulates the relocation entries of every Extend
// performed, across all nesting levels.
func (m *Merger) CopyPackage(src, dstParent *arxdoc.Node, srcDoc, dstDoc *arxdoc.Document, graceful []string) (PathMap, error) {
	return m.copyPackage(src, dstParent, srcDoc, dstDoc, graceful, "")
}

// copyPackage is CopyPackage with an optional forced mode. A non-empty
// forced mode overrides the graceful-list rule for every package in the
// subtree: plans use it to pin a whole root package strict or graceful.
func (m *Merger) copyPackage(src, dstParent *arxdoc.Node, srcDoc, dstDoc *arxdoc.Document, graceful []string, forced Mode) (PathMap, error) {
	srcHasPkgs, err := validatePackage(src, srcDoc)
	if err != nil {
		return nil, err
	}

	name := src.LocalName()
	pathMap := make(PathMap)

	dst := dstParent.FindNamed("AR-PACKAGE", name)
	if dst == nil {
		// No destination package; synthesize one. The identity embeds the
		// source path so the synthesized package stays traceable.
		srcPath, err := arxdoc.AbsolutePath(src, srcDoc)
		if err != nil {
			return nil, err
		}
		dst = NewPackage(name, uuid.NewString()+strings.ReplaceAll(srcPath, "/", "-"))
		if srcHasPkgs {
			dst.Children = append(dst.Children, NewPackages())
		}
		dstDoc.Attach(dstParent, dst)
		mergerLogger.Info("created missing destination package",
			"package", name,
			"source", srcPath)
		m.warnings = append(m.warnings,
			NewPackageSynthesizedWarning(name, srcPath, srcDoc.SourcePath))
	} else {
		dstHasPkgs, err := validatePackage(dst, dstDoc)
		if err != nil {
			return nil, err
		}
		if srcHasPkgs && !dstHasPkgs {
			dstDoc.Attach(dst, NewPackages())
		}
	}

	mode := forced
	if mode == "" {
		mode = packageMode(name, graceful)
	}

	srcElements := src.Child("ELEMENTS")
	dstElements := dst.Child("ELEMENTS")
	pm, err := m.Extend(srcElements.Children, dstElements, srcDoc, dstDoc, WithMode(mode))
	if err != nil {
		return nil, err
	}
	pathMap.Merge(pm)

	if srcHasPkgs {
		dstPkgs := dst.Child("AR-PACKAGES")
		for _, pkg := range src.Child("AR-PACKAGES").Children {
			pm, err := m.copyPackage(pkg, dstPkgs, srcDoc, dstDoc, graceful, forced)
			if err != nil {
				return nil, err
			}
			pathMap.Merge(pm)
		}
	}
	return pathMap, nil
}

// CopyRootPackages copies every root package plan names from srcDoc into
// dstDoc's top-level package container, accumulating one PathMap across all
// of them. A package absent from the source is recorded as a missing source
// unless plan tolerates it; like strict clashes, the recorded state aborts
// the run at orchestration level, after all packages had a chance to copy.
func (m *Merger) CopyRootPackages(srcDoc, dstDoc *arxdoc.Document, plan *Plan) (PathMap, error) {
	dstParent := dstDoc.Root.Child("AR-PACKAGES")
	if dstParent == nil {
		return nil, &arxerrors.MissingContainerError{
			Tag:        "AR-PACKAGES",
			ParentPath: "/",
			SourceFile: dstDoc.SourcePath,
			Message:    "destination document has no top-level package container",
		}
	}

	pathMap := make(PathMap)
	for _, pkg := range plan.Packages {
		mergerLogger.Info("copying package", "package", pkg.Name, "source", srcDoc.SourcePath)

		src := srcDoc.Root.FindNamed("AR-PACKAGE", pkg.Name)
		if src == nil {
			tolerated := plan.Tolerates(pkg.Name)
			if !tolerated {
				mergerLogger.Warn("package missing in source document",
					"package", pkg.Name,
					"source", srcDoc.SourcePath)
				m.clashes.RecordMissingSource(pkg.Name)
			}
			m.warnings = append(m.warnings,
				NewMissingSourcePackageWarning(pkg.Name, srcDoc.SourcePath, tolerated))
			continue
		}

		pm, err := m.copyPackage(src, dstParent, srcDoc, dstDoc, pkg.Graceful, pkg.Mode)
		if err != nil {
			return nil, err
		}
		pathMap.Merge(pm)
	}
	return pathMap, nil
}

// validatePackage checks the structural shape of a package node: a leading
// name holder, an element container second, and at most one trailing nested
// package container. It reports whether the nested container is present.
func validatePackage(pkg *arxdoc.Node, doc *arxdoc.Document) (bool, error) {
	malformed := func(msg string) error {
		return &arxerrors.PlanError{
			Option:  "package",
			Value:   pkg.LocalName(),
			Message: msg + " (source " + doc.SourcePath + ")",
		}
	}

	if pkg.Tag != "AR-PACKAGE" {
		return false, malformed("node is not an AR-PACKAGE")
	}
	if len(pkg.Children) < 2 || pkg.Children[0].Tag != "SHORT-NAME" {
		return false, malformed("package does not start with a SHORT-NAME")
	}
	if pkg.Children[1].Tag != "ELEMENTS" {
		return false, malformed("package has no ELEMENTS container")
	}
	if len(pkg.Children) == 2 {
		return false, nil
	}
	if len(pkg.Children) > 3 {
		return false, malformed("unhandled package shape (more than 3 children)")
	}
	if pkg.Children[2].Tag != "AR-PACKAGES" {
		return false, malformed("third package child is not AR-PACKAGES")
	}
	return true, nil
}

// packageMode resolves the effective merge mode of one package against a
// graceful list: an empty list means graceful for everyone, a non-empty
// list means graceful for its members only.
func packageMode(name string, graceful []string) Mode {
	if len(graceful) == 0 {
		return ModeGraceful
	}
	for _, g := range graceful {
		if g == name {
			return ModeGraceful
		}
	}
	return ModeStrict
}
