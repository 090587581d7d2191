// Command pricetool converts hotel price lists between the editor's
// sections and the flat records stored by the data service.
//
//	pricetool flatten sections.json > records.json
//	pricetool reconstruct < hotel.json
package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/urfave/cli/v2"

	"travel_console/internal/domain/entity"
	"travel_console/internal/domain/service/pricing"
	"travel_console/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

func main() {
	if err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(os.Args); err != nil {
		logx.NewConsoleLogger(os.Stderr, slog.LevelInfo).Error("pricetool", logx.Error(err))
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	indent := &cli.BoolFlag{
		Name:    "indent",
		Aliases: []string{"i"},
		Usage:   "pretty-print the output",
	}

	return &cli.App{
		Name:      "pricetool",
		Usage:     "convert hotel price lists between editor sections and flat records",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Commands: []*cli.Command{
			{
				Name:      "flatten",
				Usage:     "turn sections into flat records",
				ArgsUsage: "[file]",
				Flags:     []cli.Flag{indent},
				Action:    flatten,
			},
			{
				Name:      "reconstruct",
				Usage:     "group flat records (or a hotel's prices) into sections",
				ArgsUsage: "[file]",
				Flags:     []cli.Flag{indent},
				Action:    reconstruct,
			},
		},
	}
}

type flattenInput struct {
	Sections []entity.PriceSection `json:"sections"`
}

type flattenOutput struct {
	Records []entity.PriceRecord `json:"records"`
}

func flatten(c *cli.Context) error {
	b, err := readInput(c)
	if err != nil {
		return err
	}

	var input flattenInput

	if isArray(b) {
		err = json.Unmarshal(b, &input.Sections)
	} else {
		err = json.Unmarshal(b, &input)
	}

	if err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	if err = pricing.ValidateSections(input.Sections); err != nil {
		fmt.Fprintln(c.App.ErrWriter, "warning:", err) //nolint:errcheck
	}

	return writeOutput(c, flattenOutput{Records: pricing.Flatten(input.Sections)})
}

// reconstructInput accepts {"records": [...]} as well as a hotel object
// with its "prices".
type reconstructInput struct {
	Records []entity.PriceRecord `json:"records"`
	Prices  []entity.PriceRecord `json:"prices"`
}

type reconstructOutput struct {
	Sections []entity.PriceSection `json:"sections"`
}

func reconstruct(c *cli.Context) error {
	b, err := readInput(c)
	if err != nil {
		return err
	}

	var input reconstructInput

	if isArray(b) {
		err = json.Unmarshal(b, &input.Records)
	} else {
		err = json.Unmarshal(b, &input)
	}

	if err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	records := input.Records
	if records == nil {
		records = input.Prices
	}

	return writeOutput(c, reconstructOutput{Sections: pricing.Reconstruct(records)})
}

func readInput(c *cli.Context) ([]byte, error) {
	if path := c.Args().First(); path != "" && path != "-" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("os.ReadFile: %w", err)
		}

		return b, nil
	}

	b, err := io.ReadAll(c.App.Reader)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}

	return b, nil
}

func writeOutput(c *cli.Context, v any) error {
	encoder := json.NewEncoder(c.App.Writer)

	if c.Bool("indent") {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("json.Encode: %w", err)
	}

	return nil
}

func isArray(b []byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) > 0 && b[0] == '['
}
