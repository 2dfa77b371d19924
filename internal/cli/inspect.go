package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmattsson/arxtools/arxdoc"
	"github.com/jmattsson/arxtools/arxio"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Print the tag tree of a document",
	Long: `Prints the tag tree of a document, one tag per line, indented by depth.
Named nodes show their local name; the traversal depth can be limited.

Examples:
  arxtools inspect merged.arxml
  arxtools inspect merged.arxml --depth 4`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

var inspectDepth int

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().IntVar(&inspectDepth, "depth", 0, "Maximum depth to print (0 = unlimited)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	doc, err := arxio.ReadFile(args[0])
	if err != nil {
		return err
	}
	writeTagTree(cmd.OutOrStdout(), doc.Root, 0, inspectDepth)
	return nil
}

// writeTagTree prints n's subtree one tag per line, two spaces of indent per
// level, the local name appended to named nodes. maxDepth 0 means unlimited.
func writeTagTree(w io.Writer, n *arxdoc.Node, depth, maxDepth int) {
	if maxDepth > 0 && depth >= maxDepth {
		return
	}
	line := strings.Repeat("  ", depth) + n.Tag
	if name := n.LocalName(); name != "" {
		line += " " + name
	}
	fmt.Fprintln(w, line)
	for _, c := range n.Children {
		writeTagTree(w, c, depth+1, maxDepth)
	}
}
