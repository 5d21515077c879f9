package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/TomasB/geolookup/internal/record"
	"github.com/TomasB/geolookup/internal/version"
	"github.com/spf13/cobra"
	"google.golang.org/grpc/status"
)

type options struct {
	root    string
	addr    string
	timeout time.Duration
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "geolookupctl",
		Short:         "query MaxMind databases locally or through a geolookup server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.root, "root", ".", "install root searched for maxminddb.mmdb and data/maxminddb.dat")
	flags.StringVar(&opts.addr, "addr", "", "address of a geolookup gRPC server; empty runs lookups in-process")
	flags.DurationVar(&opts.timeout, "timeout", 10*time.Second, "timeout for remote calls")

	rootCmd.AddCommand(
		newLookupCmd(opts),
		newCountryCmd(opts),
		newRefreshCmd(opts),
		newRecordsCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func (o *options) backend() (backend, error) {
	if o.addr == "" {
		return newLocalBackend(o.root), nil
	}
	return newRemoteBackend(o.addr)
}

// run opens a backend for the duration of fn.
func (o *options) run(cmd *cobra.Command, fn func(ctx context.Context, b backend) (any, error)) error {
	b, err := o.backend()
	if err != nil {
		return err
	}
	defer b.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
	defer cancel()

	out, err := fn(ctx, b)
	if err != nil {
		return printError(cmd.OutOrStdout(), err)
	}
	return printJSON(cmd.OutOrStdout(), out)
}

func newLookupCmd(opts *options) *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "lookup <ip>",
		Short: "Look up a record for an IP address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := record.ParseAddress(args[0]); err != nil {
				return printError(cmd.OutOrStdout(), err)
			}
			t, err := record.ParseTypeName(typeName)
			if err != nil {
				return printError(cmd.OutOrStdout(), err)
			}
			return opts.run(cmd, func(ctx context.Context, b backend) (any, error) {
				return b.Lookup(ctx, args[0], t)
			})
		},
	}
	cmd.Flags().StringVarP(&typeName, "type", "t", record.TypeCountry.String(), "record type name or code")
	return cmd
}

func newCountryCmd(opts *options) *cobra.Command {
	var locale string

	cmd := &cobra.Command{
		Use:   "country <ip>",
		Short: "Print the country name for an IP address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, b backend) (any, error) {
				name, err := b.Country(ctx, args[0], locale)
				if err != nil {
					return nil, err
				}
				return map[string]*string{"name": name}, nil
			})
		},
	}
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "preferred locale, falls back to "+record.DefaultLocale)
	return cmd
}

func newRefreshCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Reopen the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, b backend) (any, error) {
				if err := b.Refresh(ctx); err != nil {
					return nil, err
				}
				return map[string]bool{"success": true}, nil
			})
		},
	}
}

func newRecordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "records",
		Short: "List record types and their codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			types := make(map[string]int64)
			for _, info := range record.Types() {
				types[info.Name] = info.Code
			}
			return printJSON(cmd.OutOrStdout(), types)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return err
		},
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printError writes the lookup error as {"error": msg} and returns it so the
// process exits non-zero.
func printError(w io.Writer, err error) error {
	msg := err.Error()
	if st, ok := status.FromError(err); ok {
		msg = st.Message()
	}
	if perr := printJSON(w, map[string]string{"error": msg}); perr != nil {
		return perr
	}
	return err
}
