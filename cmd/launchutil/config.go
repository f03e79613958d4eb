package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/animalet/launchutil/pkg/config"
	"github.com/animalet/launchutil/pkg/files"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
	outputTOML = "toml"
)

func newConfigCmd() *cobra.Command {
	var output, save string

	cmd := &cobra.Command{
		Use:   "config <file>",
		Short: "Load a network config and print it",
		Long: `Loads a JSON or TOML network configuration, replacing every {{NAME}}
placeholder with the NAME environment variable, and prints the result.

Files ending in .json are read as JSON, everything else as TOML.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := config.Load(args[0])
			if err != nil {
				return err
			}
			if save != "" {
				if err := files.WriteLocalJSONFile(filepath.Dir(save), filepath.Base(save), doc); err != nil {
					return err
				}
				log.Info().Str("file", save).Msg("Saved resolved configuration")
			}
			log.Debug().Str("file", args[0]).Str("output", output).Msg("Rendering configuration")
			return render(cmd.OutOrStdout(), doc, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputJSON, "Output format: json, yaml or toml")
	cmd.Flags().StringVar(&save, "save", "", "Also write the resolved configuration as JSON to this file")
	return cmd
}

func render(w io.Writer, doc config.Value, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case outputJSON:
		data, err = json.MarshalIndent(doc, "", "    ")
	case outputYAML:
		data, err = yaml.Marshal(doc.Interface())
	case outputTOML:
		if doc.Kind() != config.KindMapping {
			return errors.Errorf("cannot render a %s as TOML", doc.Kind())
		}
		data, err = toml.Marshal(doc.Interface())
	default:
		return errors.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return errors.Wrapf(err, "error rendering %s", format)
	}

	if _, err = w.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err = fmt.Fprintln(w)
	}
	return err
}
