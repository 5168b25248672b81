package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"codesearch/internal/config"
)

func configCommand(r *runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "manage the configuration file",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "write the default configuration",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: "overwrite an existing file"},
				},
				Action: r.configInit,
			},
			{
				Name:   "show",
				Usage:  "print the effective configuration",
				Action: r.configShow,
			},
			{
				Name:   "path",
				Usage:  "print the configuration file path",
				Action: r.configPath,
			},
		},
	}
}

func (r *runner) configService(cmd *cli.Command) config.ConfigService {
	if path := cmd.String("config"); path != "" {
		return config.NewConfigServiceAt(path)
	}
	return config.NewConfigService()
}

func (r *runner) configInit(_ context.Context, cmd *cli.Command) error {
	svc := r.configService(cmd)
	path := svc.Path()

	if _, err := os.Stat(path); err == nil && !cmd.Bool("force") {
		return usageError(fmt.Errorf("config: %s already exists (use --force to overwrite)", path))
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return usageError(fmt.Errorf("config: %w", err))
	}

	if err := svc.Save(config.DefaultConfig()); err != nil {
		return usageError(fmt.Errorf("config: %w", err))
	}
	_, err := fmt.Fprintf(cmd.Root().Writer, "Wrote %s\n", path)
	return err
}

func (r *runner) configShow(_ context.Context, cmd *cli.Command) error {
	out, err := parseFormat(cmd.String("output"))
	if err != nil {
		return usageError(err)
	}
	cfg, _, err := r.loadConfig(cmd)
	if err != nil {
		return usageError(fmt.Errorf("config: %w", err))
	}

	if out != formatTable {
		return writeData(cmd.Root().Writer, out, cfg)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return usageError(err)
	}
	_, err = cmd.Root().Writer.Write(data)
	return err
}

func (r *runner) configPath(_ context.Context, cmd *cli.Command) error {
	_, err := fmt.Fprintln(cmd.Root().Writer, r.configService(cmd).Path())
	return err
}
