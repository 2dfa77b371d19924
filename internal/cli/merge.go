package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmattsson/arxtools/arxdoc"
	"github.com/jmattsson/arxtools/arxio"
	"github.com/jmattsson/arxtools/merger"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge packages from source documents into a destination document",
	Long: `Merges the packages a YAML plan names from each source document into the
destination document, in the order the sources are given. Sources are merged
strictly sequentially; after the last one, duplicate identities introduced
by the merges are replaced.

The run aborts with a non-zero exit, without writing the output, when a
strict-mode name clash was recorded or a non-tolerated source package was
missing.

Examples:
  arxtools merge --plan plan.yaml -i extract1.arxml,extract2.arxml -d base.arxml -o merged.arxml
  arxtools merge --plan plan.yaml -i extract.arxml -d base.arxml -o merged.arxml --mode graceful`,
	RunE: runMerge,
}

var (
	mergeInputs []string
	mergeDest   string
	mergeOutput string
	mergePlan   string
	mergeMode   string
)

func init() {
	rootCmd.AddCommand(mergeCmd)
	mergeCmd.Flags().StringSliceVarP(&mergeInputs, "input", "i", nil, "Source documents, in merge order")
	mergeCmd.Flags().StringVarP(&mergeDest, "dest", "d", "", "Destination document")
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "", "Output file for the merged document")
	mergeCmd.Flags().StringVar(&mergePlan, "plan", "", "YAML merge plan")
	mergeCmd.Flags().StringVar(&mergeMode, "mode", "", "Pin clash handling for all packages (strict or graceful)")
	_ = mergeCmd.MarkFlagRequired("input")
	_ = mergeCmd.MarkFlagRequired("dest")
	_ = mergeCmd.MarkFlagRequired("output")
	_ = mergeCmd.MarkFlagRequired("plan")
}

func runMerge(cmd *cobra.Command, args []string) error {
	plan, err := merger.LoadPlan(mergePlan)
	if err != nil {
		return err
	}
	if mergeMode != "" {
		if !merger.IsValidMode(mergeMode) {
			return fmt.Errorf("invalid mode %q, valid modes: %v", mergeMode, merger.ValidModes())
		}
		for i := range plan.Packages {
			plan.Packages[i].Mode = merger.Mode(mergeMode)
		}
	}

	dstDoc, err := arxio.ReadFile(mergeDest)
	if err != nil {
		return err
	}

	m := merger.New(merger.DefaultConfig())
	pathMap := make(merger.PathMap)
	for _, input := range mergeInputs {
		srcDoc, err := arxio.ReadFile(input)
		if err != nil {
			return err
		}
		pm, err := m.CopyRootPackages(srcDoc, dstDoc, plan)
		if err != nil {
			return err
		}
		pathMap.Merge(pm)
	}

	// References in the destination that still point at pre-merge source
	// paths follow the moved elements.
	if err := relocateReferences(dstDoc, pathMap); err != nil {
		return err
	}

	replaced := m.EnsureUniqueIdentities(dstDoc)
	if replaced > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "replaced %d duplicate identities\n", replaced)
	}

	if summary := m.Warnings().Summary(); summary != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), summary)
	}

	if m.Clashes().AnyStrict() {
		return fmt.Errorf("aborting: %d strict name clash(es) recorded, output not written",
			len(m.Clashes().Strict()))
	}
	if m.Clashes().AnyMissingSource() {
		return fmt.Errorf("aborting: missing source packages %v, output not written",
			m.Clashes().MissingSource())
	}

	if err := arxio.WriteFile(dstDoc, mergeOutput); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", mergeOutput)
	return nil
}

// relocateReferences rewrites every reference field in doc that has an
// entry in pathMap. Unmatched references are left alone: they point at
// elements the plan did not move.
func relocateReferences(doc *arxdoc.Document, pathMap merger.PathMap) error {
	if len(pathMap) == 0 {
		return nil
	}
	var refs []*arxdoc.Node
	doc.Root.Walk(func(n *arxdoc.Node) {
		if len(n.Children) == 0 && n.Text != "" && isReferenceTag(n.Tag) {
			refs = append(refs, n)
		}
	})
	return merger.Relocate(refs, pathMap, false)
}

func isReferenceTag(tag string) bool {
	return strings.HasSuffix(tag, "-REF") || strings.HasSuffix(tag, "-TREF")
}
