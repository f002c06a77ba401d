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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gofoam/InputParameters"
	"github.com/notargets/gofoam/blockmesh"
	"github.com/notargets/gofoam/readfiles"
	"github.com/notargets/gofoam/utils"
)

type BlockMeshModel struct {
	InputFile  string
	OutputFile string
}

const exampleMeshFile = `
########################################
Title: "Wind around a building"
ConvertToMeters: 1
CellSize: [1, 1, 0.5]
Tunnel:
  WindDirection: [1, 1]  # Blowing towards north east
  Points: [[0, 0, 0], [10, 20, 30]]
BoundaryLayer:
  - {Axis: 2, StartCellSize: 0.1, EndCellSize: 5}
########################################
`

// BlockMeshCmd represents the blockmesh command
var BlockMeshCmd = &cobra.Command{
	Use:   "blockmesh",
	Short: "Write a blockMeshDict from a box or wind tunnel description",
	Long: `
Reads a YAML or TOML mesh description and writes the matching blockMeshDict,

gofoam blockmesh -I mesh.yaml -o system/blockMeshDict`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		bm := &BlockMeshModel{}
		if bm.InputFile, err = cmd.Flags().GetString("inputFile"); err != nil {
			return
		}
		bm.OutputFile = viper.GetString("blockmesh.output")
		if len(bm.InputFile) == 0 {
			fmt.Printf("Example File:%s\n", exampleMeshFile)
			return fmt.Errorf("must supply a mesh input file (-I, --inputFile)")
		}
		return RunBlockMesh(cmd, bm)
	},
}

func init() {
	rootCmd.AddCommand(BlockMeshCmd)
	BlockMeshCmd.Flags().StringP("inputFile", "I", "", "YAML (.yaml) or TOML (.toml) mesh input file")
	BlockMeshCmd.Flags().StringP("output", "o", "", "blockMeshDict file to write, standard output when empty")
	_ = viper.BindPFlag("blockmesh.output", BlockMeshCmd.Flags().Lookup("output"))
}

func RunBlockMesh(cmd *cobra.Command, bm *BlockMeshModel) (err error) {
	var (
		ctx    = cmd.Context()
		logger = utils.LoggerFrom(ctx)
		timer  = utils.NewTimer(logger)
		mp     *InputParameters.MeshParameters
		bmd    *blockmesh.BlockMeshDict
	)
	if mp, err = InputParameters.Load(bm.InputFile); err != nil {
		return
	}
	if viper.GetBool("verbose") {
		mp.Print()
	}
	if bmd, err = mp.BlockMeshDict(); err != nil {
		return
	}
	b := bmd.Blocks[0]
	logger.Info("block", "divisions", b.Divisions, "grading", b.Grading.Values(),
		"width", b.Width(), "length", b.Length(), "height", b.Height())
	if len(bm.OutputFile) == 0 {
		_, err = bmd.WriteTo(cmd.OutOrStdout())
		return
	}
	if err = readfiles.WriteBlockMeshDict(ctx, bm.OutputFile, bmd); err != nil {
		return
	}
	timer.Done("wrote blockMeshDict", "file", bm.OutputFile)
	return
}
