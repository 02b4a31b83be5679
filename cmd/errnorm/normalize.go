/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"dirpx.dev/errnorm"
	"dirpx.dev/errnorm/adapter"
	"dirpx.dev/errnorm/build"
	"dirpx.dev/errnorm/config"
	"dirpx.dev/errnorm/mapper"
)

type normalizeOptions struct {
	configPath string
	verbosity  string
	status     bool
	json       bool
}

func newNormalizeCmd(a *app) *cobra.Command {
	opts := &normalizeOptions{}
	cmd := &cobra.Command{
		Use:   "normalize [file]",
		Short: "Normalize an error payload",
		Long: `Read an error payload from file (or stdin when omitted or "-") and print
the normalized error. JSON payloads are decoded, anything else becomes the
message of an "unknown" error.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNormalize(cmd, a, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML options file")
	cmd.Flags().StringVarP(&opts.verbosity, "verbosity", "v", "plain", "Output detail: plain, debug or verbose")
	cmd.Flags().BoolVar(&opts.status, "status", false, "Explain the resolved HTTP and gRPC statuses")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the error view as JSON")
	return cmd
}

func runNormalize(cmd *cobra.Command, a *app, opts *normalizeOptions, args []string) error {
	v, err := parseVerbosity(opts.verbosity)
	if err != nil {
		return err
	}
	o, err := loadOptions(opts.configPath)
	if err != nil {
		return err
	}
	o.Logger = a.logger

	data, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	// Text piped from a shell usually ends with a line break.
	e := errnorm.From(strings.TrimRight(string(data), "\r\n"), o).Force
	if a.debug {
		e.Log(a.logger, "normalize", errnorm.Plain)
	}

	out := cmd.OutOrStdout()
	if opts.json {
		b, err := adapter.MarshalJSON(e.ErrorView())
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(b))
	} else {
		fmt.Fprintln(out, e.Render(v))
	}

	if opts.status {
		m, err := mapper.New()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, m.Explain(e))
	}
	return nil
}

func parseVerbosity(s string) (errnorm.Verbosity, error) {
	switch strings.ToLower(s) {
	case "", "plain":
		return errnorm.Plain, nil
	case "debug":
		return errnorm.Debug, nil
	case "verbose":
		return errnorm.Verbose, nil
	}
	return errnorm.Plain, fmt.Errorf("unknown verbosity %q (want plain, debug or verbose)", s)
}

func loadOptions(path string) (*build.Options, error) {
	if path == "" {
		return build.DefaultOptions(), nil
	}
	return config.LoadFile(path, nil)
}

func readInput(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return b, nil
}
