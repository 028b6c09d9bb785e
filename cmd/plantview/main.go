package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/plantview/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := rootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "plantview: %v\n", err)
		return 1
	}
	return 0
}

func rootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "plantview [flags] [file]",
		Short: "Live PlantUML editor for the terminal",
		Long: `plantview renders PlantUML source through a PlantUML server as you type.
The diagram is previewed in the terminal and can be expanded, zoomed and
downloaded in any configured format.`,
		Example: `  # Start with an empty editor
  plantview

  # Edit an existing diagram
  plantview diagram.puml

  # Open a shared link
  plantview --url 'https://example.test/?code=%40startuml...'

  # Pipe source in
  cat diagram.puml | plantview`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if len(args) == 1 {
				opts.File = args[0]
			}
			opts.Stdin = stdin
			opts.StdinPiped = stdinPiped(stdin)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/plantview/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/plantview/prefs.toml)")
	flags.StringVar(&opts.LogFile, "log-file", "", "write logs to this file")
	flags.BoolVarP(&opts.Debug, "debug", "d", false, "enable debug logging")
	flags.StringVar(&opts.URL, "url", "", "URL or query string carrying a code parameter")
	flags.StringVar(&opts.Code, "code", "", "diagram source")

	root.AddCommand(
		linksCmd(&opts, stdout, stderr),
		exportCmd(&opts, stdout, stderr),
		serveCmd(&opts, stderr),
	)
	return root
}

func linksCmd(opts *app.Options, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "links [file]",
		Short: "Print the renderer link for every format",
		Example: `  plantview links diagram.puml
  plantview links --code 'A -> B'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Links(*opts, stdout, stderr)
		},
	}
}

func exportCmd(opts *app.Options, stdout, stderr io.Writer) *cobra.Command {
	var exp app.ExportOptions

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Fetch the rendered diagram and write it out",
		Example: `  plantview export -f svg -o diagram.svg diagram.puml
  plantview export -f txt diagram.puml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Export(cmd.Context(), *opts, exp, stdout, stderr)
		},
	}
	cmd.Flags().StringVarP(&exp.Format, "format", "f", "png", "output format (png, svg, txt)")
	cmd.Flags().StringVarP(&exp.Output, "output", "o", "", "output file (stdout if empty or -)")
	return cmd
}

func serveCmd(opts *app.Options, stderr io.Writer) *cobra.Command {
	var srv app.ServeOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve render results and format redirects over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Serve(cmd.Context(), *opts, srv, stderr)
		},
	}
	cmd.Flags().StringVar(&srv.Addr, "listen", "", "listen address (default from config, 127.0.0.1:8765)")
	cmd.Flags().BoolVar(&srv.AllowAll, "cors-any", false, "allow any CORS origin")
	return cmd
}

// stdinPiped reports whether stdin is a pipe or file rather than a terminal.
func stdinPiped(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return r != nil
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}
