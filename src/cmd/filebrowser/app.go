package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/filebrowser/api/src/client"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func newApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "filebrowser",
		Usage:     "List, fetch and upload files on a remote file browser store",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "remote",
				Usage:   "Store address, e.g. http://localhost:8080",
				Sources: cli.EnvVars("FILEBROWSER_REMOTE"),
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Per-request timeout",
				Value: client.DefaultTimeout,
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Client config file (YAML)",
				Value: defaultConfigPath(),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log requests to stderr",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List the names held by the store",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					adapter, err := newAdapter(cmd)
					if err != nil {
						return err
					}

					names, err := adapter.ListFiles(ctx).Get()
					if err != nil {
						return err
					}

					slices.Sort(names)
					for _, name := range names {
						fmt.Fprintln(cmd.Root().Writer, name)
					}
					return nil
				},
			},
			{
				Name:  "get",
				Usage: "Download one file",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "name",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "out",
						Usage: "Write the file here instead of stdout",
					},
					&cli.BoolFlag{
						Name:  "raw",
						Usage: "Use the raw download endpoint instead of the base64 one",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					name := cmd.StringArg("name")
					if name == "" {
						return fmt.Errorf("missing file name")
					}

					adapter, err := newAdapter(cmd)
					if err != nil {
						return err
					}

					fetch := adapter.GetFile
					if cmd.Bool("raw") {
						fetch = adapter.GetRawFile
					}

					record, err := fetch(ctx, name).Get()
					if err != nil {
						return err
					}

					out := cmd.String("out")
					if out == "" {
						_, err := cmd.Root().Writer.Write(record.Content)
						return err
					}

					if err := os.WriteFile(out, record.Content, 0o644); err != nil {
						return fmt.Errorf("write %s: %w", out, err)
					}
					fmt.Fprintf(cmd.Root().ErrWriter, "Saved %s from %s (%d bytes, %s) to %s\n", record.Name, adapter.BaseURL(), record.Size(), record.ContentType, out)
					return nil
				},
			},
			{
				Name:  "put",
				Usage: "Upload one local file",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Usage: "Name to store the file under (defaults to the local base name)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					localPath := cmd.StringArg("path")
					if localPath == "" {
						return fmt.Errorf("missing local file path")
					}

					name := cmd.String("name")
					if name == "" {
						name = filepath.Base(localPath)
					}

					file, err := os.Open(localPath)
					if err != nil {
						return fmt.Errorf("open %s: %w", localPath, err)
					}
					defer file.Close()

					adapter, err := newAdapter(cmd)
					if err != nil {
						return err
					}

					if err := adapter.SendFile(ctx, file, name).Err(); err != nil {
						return err
					}

					fmt.Fprintf(cmd.Root().ErrWriter, "Stored %s on %s\n", name, adapter.BaseURL())
					return nil
				},
			},
		},
	}
}

// newAdapter resolves the remote address and timeout from flags, environment
// and the config file, in that order.
func newAdapter(cmd *cli.Command) (*client.Adapter, error) {
	cfg, err := readClientConfig(cmd.String("config"), cmd.IsSet("config"))
	if err != nil {
		return nil, err
	}

	remote := cmd.String("remote")
	if remote == "" {
		remote = cfg.RemoteURL
	}
	if remote == "" {
		return nil, fmt.Errorf("no remote set: use --remote, FILEBROWSER_REMOTE or remote_url in the config file")
	}

	timeout := cmd.Duration("timeout")
	if !cmd.IsSet("timeout") && cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	if cmd.Bool("verbose") {
		logger.SetOutput(cmd.Root().ErrWriter)
		logger.SetLevel(logrus.DebugLevel)
	}

	return client.New(remote, client.WithTimeout(timeout), client.WithLogger(logger))
}
