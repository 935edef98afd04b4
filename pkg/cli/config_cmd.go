package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ghrepo/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// NewConfigCommand creates the config management command
func NewConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage ghrepo configuration",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Generate configuration template",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output path for config file",
					},
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "Force overwrite existing file",
					},
				},
				Action: configInitAction,
			},
		},
	}
}

func configInitAction(ctx context.Context, cmd *cli.Command) error {
	service := usecase.NewConfigService()

	outputPath := cmd.String("output")
	if outputPath == "" {
		outputPath = service.GetDefaultPath()
	}

	if err := service.SaveTemplate(outputPath, cmd.Bool("force")); err != nil {
		return fmt.Errorf("failed to create config template: %w", err)
	}

	fmt.Println("Wrote configuration template to " + outputPath)
	return nil
}
