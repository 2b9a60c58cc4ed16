package cmd

import (
	"fmt"

	"github.com/elseano/mdstruct/pkg/util"
	"github.com/spf13/cobra"
)

func newASTCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ast [FILENAME]",
		Short: "Displays the transformed Markdown AST",
		Args:  cobra.MaximumNArgs(1),
		RunE:  ast,
	}
}

func ast(cmd *cobra.Command, args []string) error {
	doc, _, err := loadDocument(args)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), util.DumpNode(doc.Root, doc.Source))

	return nil
}
