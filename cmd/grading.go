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

	"github.com/notargets/gofoam/grading"
	"github.com/notargets/gofoam/utils"
)

// GradingRequest holds the known quantities of a graded edge. Zero means
// unknown.
type GradingRequest struct {
	Length, StartSize, EndSize, Ratio, MinStartSize float64
	Count                                           int
}

// GradingCmd represents the grading command
var GradingCmd = &cobra.Command{
	Use:   "grading",
	Short: "Solve the cell count and expansion ratio of a graded edge",
	Long: `
Given any of
  --start --ratio --count
  --length --start --end
  --length --start --ratio
  --length --end --ratio [--minStart]
prints the cell count, cell to cell ratio and the total expansion ratio to use
in simpleGrading,

gofoam grading --length 10 --start 0.01 --end 1`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		req := GradingRequest{}
		req.Length, _ = cmd.Flags().GetFloat64("length")
		req.StartSize, _ = cmd.Flags().GetFloat64("start")
		req.EndSize, _ = cmd.Flags().GetFloat64("end")
		req.Ratio, _ = cmd.Flags().GetFloat64("ratio")
		req.MinStartSize, _ = cmd.Flags().GetFloat64("minStart")
		req.Count, _ = cmd.Flags().GetInt("count")
		var p grading.GradientProperties
		if p, err = SolveGrading(req); err != nil {
			return
		}
		utils.LoggerFrom(cmd.Context()).Debug("solved grading", "iterations", p.Iterations)
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\nsimpleGrading entry: %s\n", p, p.Grading())
		return
	},
}

func init() {
	rootCmd.AddCommand(GradingCmd)
	GradingCmd.Flags().Float64P("length", "L", 0, "edge length")
	GradingCmd.Flags().Float64P("start", "s", 0, "first cell size")
	GradingCmd.Flags().Float64P("end", "e", 0, "last cell size")
	GradingCmd.Flags().Float64P("ratio", "r", 0, "cell to cell expansion ratio")
	GradingCmd.Flags().Float64("minStart", 0, "smallest allowed first cell when solving from the end size")
	GradingCmd.Flags().IntP("count", "n", 0, "number of cells")
}

// SolveGrading picks the solver matching the known quantities.
func SolveGrading(req GradingRequest) (p grading.GradientProperties, err error) {
	switch {
	case req.StartSize > 0 && req.Ratio > 0 && req.Count > 0:
		return grading.ByStartSizeRatioCount(req.StartSize, req.Ratio, req.Count), nil
	case req.Length > 0 && req.StartSize > 0 && req.EndSize > 0:
		return grading.ByLengthStartEndSize(req.Length, req.StartSize, req.EndSize)
	case req.Length > 0 && req.StartSize > 0 && req.Ratio > 0:
		return grading.ByLengthStartSizeRatio(req.Length, req.StartSize, req.Ratio)
	case req.Length > 0 && req.EndSize > 0 && req.Ratio > 0:
		return grading.ByLengthEndSizeRatio(req.Length, req.EndSize, req.Ratio, req.MinStartSize)
	}
	return p, fmt.Errorf("not enough quantities to solve the grading: %+v", req)
}
