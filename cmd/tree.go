package cmd

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"k8s.io/utils/ptr"

	"github.com/radiofrance/robotkw/pkg/keyword"
	"github.com/radiofrance/robotkw/pkg/robotkw"
)

const treeIndent = "  "

func treeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tree SOURCE",
		Short: "Print the keyword tree of a report as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := robotkw.Parse(args[0])
			if err != nil {
				return err
			}

			renderTree(cmd.OutOrStdout(), record)
			return nil
		},
	}
}

// renderTree displays every keyword of the tree as a row, names being indented by depth.
func renderTree(w io.Writer, record keyword.Record) {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	var data [][]string
	record.Walk(func(kw keyword.Record, depth int) {
		data = append(data, []string{
			strings.Repeat(treeIndent, depth) + kw.DisplayName(),
			kw.DisplayStatus(),
			ptr.Deref(kw.StartTime, ""),
			ptr.Deref(kw.EndTime, ""),
		})
	})

	table.AppendBulk(data)

	table.SetHeader([]string{"Keyword", "Status", "Start", "End"})
	table.Render()
}
