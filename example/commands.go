package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/next-trace/scg-failure/compat"
	"github.com/next-trace/scg-failure/failure"
)

func newCatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <path>",
		Short: "Print a file, failing with the path as context",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readFile(args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), text)

			return failure.Context(err, "unable to write output")
		},
	}
}

func newPortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "port <path>",
		Short: "Read a TCP port number from a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readPort(args[0])
			if err != nil {
				return failure.Context(err, "unable to determine listen port")
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), p)

			return err
		},
	}
}

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env <name>",
		Short: "Print a non-empty environment variable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			val, err := failure.FromLookup(os.LookupEnv(name)).
				Filter(func(s string) bool { return s != "" }).
				OrFail(name + " is not set").
				Get()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), val)

			return err
		},
	}
}

func readFile(path string) (string, error) {
	logrus.WithField("path", path).Debug("reading file")

	return failure.Of(compat.ReadToString(path)).ContextPath("unable to read", path).Get()
}

func readPort(path string) (uint16, error) {
	text, err := readFile(path)
	if err != nil {
		return 0, err
	}

	text = strings.TrimSpace(text)

	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, failure.Fmt(err, "invalid port", text)
	}

	return failure.Of(compat.TryFrom[uint16](n)).ContextFmt("port out of range", n).Get()
}
