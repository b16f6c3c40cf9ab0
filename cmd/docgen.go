package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

const frontMatter = `---
title: "%s"
weight: %d
---
`

func docgenCommand() *cobra.Command {
	var docPath string

	cmd := &cobra.Command{
		Use:    "docgen",
		Short:  "Generate the markdown documentation of the robotkw commands.",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return generateDocs(rootCmd, docPath)
		},
	}
	cmd.Flags().StringVar(&docPath, "path", "./docs/cmd",
		"directory where the markdown files are written")

	return cmd
}

func generateDocs(root *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	root.DisableAutoGenTag = true
	return doc.GenMarkdownTreeCustom(root, dir, docFrontMatter, docLink)
}

// docFrontMatter titles each page after its command, "robotkw_convert.md" becoming "robotkw convert".
// The root page comes first, sub-commands after it.
func docFrontMatter(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), path.Ext(filename))
	words := strings.Split(base, "_")

	return fmt.Sprintf(frontMatter, strings.Join(words, " "), len(words))
}

func docLink(name string) string {
	return "../" + strings.ToLower(strings.TrimSuffix(name, path.Ext(name))) + "/"
}
