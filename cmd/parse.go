/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

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
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gofoam/foamdict"
	"github.com/notargets/gofoam/readfiles"
)

// ParseCmd represents the parse command
var ParseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Read an OpenFOAM dictionary and print it or one of its entries",
	Long: `
Parses any OpenFOAM dictionary file and prints it as YAML, JSON or
normalized dictionary text,

gofoam parse -F system/fvSchemes --key divSchemes/default --format yaml`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var file, key string
		if file, err = cmd.Flags().GetString("file"); err != nil {
			return
		}
		if len(file) == 0 && len(args) == 1 {
			file = args[0]
		}
		if len(file) == 0 {
			return fmt.Errorf("must supply a dictionary file (-F, --file)")
		}
		key, _ = cmd.Flags().GetString("key")
		var d *foamdict.Dict
		if d, err = readfiles.ReadDict(cmd.Context(), file); err != nil {
			return
		}
		return PrintEntry(cmd.OutOrStdout(), d, key, viper.GetString("parse.format"))
	},
}

func init() {
	rootCmd.AddCommand(ParseCmd)
	ParseCmd.Flags().StringP("file", "F", "", "dictionary file to parse")
	ParseCmd.Flags().StringP("key", "k", "", "slash separated path of the entry to print, e.g. SIMPLE/residualControl")
	ParseCmd.Flags().StringP("format", "f", "foam", "output format: foam, yaml or json")
	_ = viper.BindPFlag("parse.format", ParseCmd.Flags().Lookup("format"))
}

// PrintEntry writes the entry at key (the whole dictionary when empty) in
// the requested format. Leaf entries are written as their raw value.
func PrintEntry(w io.Writer, d *foamdict.Dict, key, format string) (err error) {
	var value interface{} = d
	if key = strings.Trim(key, "/"); len(key) != 0 {
		var ok bool
		if value, ok = d.Lookup(strings.Split(key, "/")...); !ok {
			return fmt.Errorf("%w: %s", foamdict.ErrMissingKey, key)
		}
	}
	if s, ok := value.(string); ok {
		_, err = fmt.Fprintln(w, s)
		return
	}
	sub := value.(*foamdict.Dict)
	var out []byte
	switch format {
	case "foam", "":
		out = []byte(foamdict.Format(sub))
	case "yaml":
		if out, err = yaml.Marshal(sub.ToMap()); err != nil {
			return
		}
	case "json":
		if out, err = json.MarshalIndent(sub.ToMap(), "", "  "); err != nil {
			return
		}
		out = append(out, '\n')
	default:
		return fmt.Errorf("unknown format %q, use foam, yaml or json", format)
	}
	_, err = w.Write(out)
	return
}
