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
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/notargets/gofoam/InputParameters"
	"github.com/notargets/gofoam/blockmesh"
	"github.com/notargets/gofoam/foamfile"
	"github.com/notargets/gofoam/readfiles"
)

// CaseCmd represents the case command
var CaseCmd = &cobra.Command{
	Use:   "case",
	Short: "Create or inspect OpenFOAM case folders",
}

var caseInitCmd = &cobra.Command{
	Use:   "init DIR",
	Short: "Write a case folder with default system and constant files",
	Long: `
Writes the default controlDict, fvSchemes, fvSolution, blockMeshDict and
related files. With -I the blockMeshDict is built from a mesh input file,

gofoam case init cases/building -I mesh.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			c         *foamfile.Case
			inputFile string
		)
		inputFile, _ = cmd.Flags().GetString("inputFile")
		if c, err = InitCase(args[0], inputFile); err != nil {
			return
		}
		return readfiles.WriteCase(cmd.Context(), args[0], c)
	},
}

var caseShowCmd = &cobra.Command{
	Use:   "show DIR",
	Short: "List the files of a case folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var c *foamfile.Case
		if c, err = readfiles.ReadCase(cmd.Context(), args[0]); err != nil {
			return
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "PATH\tCLASS\tENTRIES\n")
		for _, f := range c.All() {
			fmt.Fprintf(tw, "%s\t%s\t%d\n", f.Path(), f.Header.Class, f.Body.Len())
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(CaseCmd)
	CaseCmd.AddCommand(caseInitCmd, caseShowCmd)
	caseInitCmd.Flags().StringP("inputFile", "I", "", "YAML or TOML mesh input file for the blockMeshDict")
}

// InitCase builds the default case, replacing the blockMeshDict when a mesh
// input file is given.
func InitCase(dir, inputFile string) (c *foamfile.Case, err error) {
	if c, err = foamfile.NewDefaultCase(filepath.Base(dir)); err != nil {
		return
	}
	if len(inputFile) == 0 {
		return
	}
	var (
		mp  *InputParameters.MeshParameters
		bmd *blockmesh.BlockMeshDict
		f   *foamfile.File
	)
	if mp, err = InputParameters.Load(inputFile); err != nil {
		return
	}
	if bmd, err = mp.BlockMeshDict(); err != nil {
		return
	}
	if f, err = bmd.File(); err != nil {
		return
	}
	c.Set(f)
	return
}
