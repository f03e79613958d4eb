package main

import (
	"fmt"

	"github.com/animalet/launchutil/pkg/files"
	"github.com/animalet/launchutil/pkg/namespace"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newNamespaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "namespace",
		Short: "Print a random namespace name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := namespace.Generate()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ns)
			return err
		},
	}
}

func newCredsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "creds <name>",
		Short: "Locate a credentials file",
		Long:  `Prints the path of the credentials file, searching the current directory, its parent and $HOME/.kube.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, ok := files.CredsFilePath(args[0])
			if !ok {
				return errors.Errorf("credentials file %q not found", args[0])
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
}

func newReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <file>",
		Short: "Print a data file without surrounding whitespace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := files.ReadDataFile(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), content)
			return err
		},
	}
}
