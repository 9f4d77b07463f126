// Copyright 2022 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command usfcli is a small driver around the usf package, in the shape
// of the teacher's own single-command-plus-persistent-flags CLI: render a
// template against string arguments from the shell, run the spec's
// scenario table as a smoke test, or list the custom formatters a given
// build has registered.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/hparracho/usflib"
)

var mode string

var command = &cobra.Command{
	Use:   "usfcli",
	Short: "drive the usf formatting engine from the shell",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch mode {
		case "throw":
			usf.DefaultMode = usf.ModeThrow
		case "abort":
			usf.DefaultMode = usf.ModeAbort
		case "terminate":
			usf.DefaultMode = usf.ModeTerminate
		default:
			return fmt.Errorf("unknown mode %q", mode)
		}
		return nil
	},
}

var renderCmd = &cobra.Command{
	Use:   "render template [args...]",
	Short: "render a template against string arguments",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		template := args[0]
		values := lo.Map(args[1:], func(a string, _ int) usf.Arg {
			return argFromString(a)
		})

		out, err := usf.Sprintf(template, values...)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "run the built-in scenario table and report pass/fail",
	RunE: func(cmd *cobra.Command, args []string) error {
		failures := 0
		for _, sc := range scenarios {
			got, err := usf.Sprintf(sc.template, sc.args...)
			ok := err == nil && got == sc.want
			status := lo.Ternary(ok, "ok", "FAIL")
			fmt.Fprintf(cmd.OutOrStdout(), "%-3s %-8s %q -> %q\n", status, sc.name, sc.template, got)
			if !ok {
				failures++
			}
		}
		if failures > 0 {
			return fmt.Errorf("%d scenario(s) failed", failures)
		}
		return nil
	},
}

var listCustomCmd = &cobra.Command{
	Use:   "list-custom",
	Short: "list the value types with a registered custom formatter",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range usf.ListCustomTypes[byte]() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

// argFromString guesses an Arg's kind from a command-line token: an
// integer literal becomes Int, a float literal becomes Float64, anything
// else is a String. There is no way to request Bool/Char/Pointer/Custom
// from the shell, which is intentional for a smoke-test driver.
func argFromString(s string) usf.Arg {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return usf.Int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return usf.Float64(f)
	}
	return usf.String(s)
}

func init() {
	command.PersistentFlags().StringVarP(&mode, "mode", "m", "throw", "contract violation mode: throw, abort, terminate")
	command.AddCommand(renderCmd, selftestCmd, listCustomCmd)
}

func main() {
	if err := command.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
