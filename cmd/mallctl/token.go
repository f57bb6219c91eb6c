package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xinfuli/points-mall/tokenstore"
)

func newTokenCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the auth token sent with live requests",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <token>",
			Short: "Store the auth token",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := o.openStore()
				if err != nil {
					return err
				}
				defer func() { _ = store.Close() }()
				return tokenstore.SetToken(cmd.Context(), store, args[0])
			},
		},
		&cobra.Command{
			Use:   "get",
			Short: "Print the stored auth token",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := o.openStore()
				if err != nil {
					return err
				}
				defer func() { _ = store.Close() }()
				token, err := tokenstore.GetToken(cmd.Context(), store)
				if err != nil {
					return err
				}
				if token == "" {
					return fmt.Errorf("no token stored")
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
				return err
			},
		},
		&cobra.Command{
			Use:   "remove",
			Short: "Delete the stored auth token",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := o.openStore()
				if err != nil {
					return err
				}
				defer func() { _ = store.Close() }()
				return tokenstore.RemoveToken(cmd.Context(), store)
			},
		},
	)
	return cmd
}
