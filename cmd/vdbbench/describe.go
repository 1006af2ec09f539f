package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/dase955/VectorDBBench/cases"
)

var (
	describeJSON bool
	customFile   string
)

// caseView is the serialization shape of a descriptor for CLI output.
type caseView struct {
	CaseID      int      `json:"case_id"`
	Identifier  string   `json:"identifier"`
	Label       string   `json:"label"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Dataset     string   `json:"dataset"`
	Size        int64    `json:"size"`
	Dimension   int      `json:"dim"`
	Metric      string   `json:"metric"`
	LoadTimeout string   `json:"load_timeout"`
	Optimize    *string  `json:"optimize_timeout,omitempty"`
	FilterRate  *float64 `json:"filter_rate,omitempty"`
	Filter      *string  `json:"filter,omitempty"`
}

func viewOf(c *cases.Case) (caseView, error) {
	data := c.Dataset.Data()
	v := caseView{
		CaseID:      int(c.CaseID),
		Identifier:  c.CaseID.String(),
		Label:       c.Label.String(),
		Name:        c.Name,
		Description: c.Description,
		Dataset:     data.Name,
		Size:        c.Dataset.RequestedSize(),
		Dimension:   data.Dimension,
		Metric:      string(data.Metric),
		LoadTimeout: c.LoadTimeout.String(),
		FilterRate:  c.FilterRate,
	}
	if c.OptimizeTimeout != nil {
		s := c.OptimizeTimeout.String()
		v.Optimize = &s
	}

	f, err := c.Filters()
	if err != nil {
		return caseView{}, err
	}
	if f != nil {
		expr := fmt.Sprintf("%s %s", f.Field, f.Expr())
		v.Filter = &expr
	}
	return v, nil
}

func renderCase(c *cases.Case) error {
	v, err := viewOf(c)
	if err != nil {
		return err
	}

	if describeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	fmt.Printf("%s (id %d)\n", v.Identifier, v.CaseID)
	fmt.Printf("  name:         %s\n", v.Name)
	fmt.Printf("  label:        %s\n", v.Label)
	fmt.Printf("  dataset:      %s, %d records, %d dim, %s\n", v.Dataset, v.Size, v.Dimension, v.Metric)
	fmt.Printf("  load timeout: %s\n", v.LoadTimeout)
	if v.Optimize != nil {
		fmt.Printf("  optimize:     %s\n", *v.Optimize)
	}
	if v.Filter != nil {
		fmt.Printf("  filter:       %s (rate %v)\n", *v.Filter, *v.FilterRate)
	}
	fmt.Printf("  %s\n", v.Description)
	return nil
}

var describeCmd = &cobra.Command{
	Use:   "describe <case>",
	Short: "Show the fully resolved descriptor of a case",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := cases.ParseCaseType(args[0])
		if err != nil {
			return err
		}
		c, err := cases.Resolve(id)
		if err != nil {
			return err
		}
		return renderCase(c)
	},
}

var customCmd = &cobra.Command{
	Use:   "custom",
	Short: "Build and show a custom case from a YAML spec",
	RunE: func(cmd *cobra.Command, args []string) error {
		if customFile == "" {
			return fmt.Errorf("a spec file is required (-f)")
		}
		c, err := cases.LoadCustom(customFile)
		if err != nil {
			return err
		}
		return renderCase(c)
	},
}

func init() {
	describeCmd.Flags().BoolVar(&describeJSON, "json", false, "emit JSON")
	customCmd.Flags().BoolVar(&describeJSON, "json", false, "emit JSON")
	customCmd.Flags().StringVarP(&customFile, "file", "f", "", "custom case YAML spec")
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(customCmd)
}
