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

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/errnorm/build"
	"dirpx.dev/errnorm/lookup"
)

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path> [file]",
		Short: "Resolve a path against a JSON document",
		Long: `Resolve a dotted path (e.g. "errors.0.code" or "errors[0].code") against a
JSON document read from file or stdin and print the value found as JSON.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd.InOrStdin(), args[1:])
			if err != nil {
				return err
			}
			doc, err := build.DecodeJSON(string(data))
			if err != nil {
				return fmt.Errorf("decode document: %w", err)
			}

			v := lookup.Resolve(doc, args[0])
			if v == nil {
				a.logger.Debug("path resolves to nothing", zap.String("path", args[0]))
				return fmt.Errorf("path %q resolves to nothing", args[0])
			}
			pv, err := structpb.NewValue(v)
			if err != nil {
				return fmt.Errorf("encode value: %w", err)
			}
			b, err := protojson.Marshal(pv)
			if err != nil {
				return fmt.Errorf("encode value: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
}
