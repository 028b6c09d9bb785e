package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/five82/plantview/internal/render"
	"github.com/five82/plantview/internal/renderer"
	"github.com/five82/plantview/internal/server"
	"github.com/five82/plantview/internal/theme"
)

const exportTimeout = 30 * time.Second

// renderOnce runs the pipeline over the initial source. Empty and failed
// results are errors for the non-interactive commands.
func renderOnce(e env, opts Options) (render.Result, error) {
	text, ok, err := readSource(opts)
	if err != nil {
		return render.Result{}, err
	}
	if !ok {
		return render.Result{}, errNoSource
	}

	res := render.New(render.PlantUML, e.cfg.Links()).Render(text)
	switch res.Kind {
	case render.KindEmpty:
		return res, errNoSource
	case render.KindFailure:
		return res, errors.New(res.Message)
	}
	e.logger.Debug("diagram encoded", "identifier", res.Identifier)
	return res, nil
}

// Links prints one "format<TAB>url" line per configured format.
func Links(opts Options, stdout, stderr io.Writer) error {
	e, err := setup(opts, stderr)
	if err != nil {
		return err
	}
	defer e.Close()

	res, err := renderOnce(e, opts)
	if err != nil {
		return err
	}
	for _, l := range res.Links {
		if _, err := fmt.Fprintf(stdout, "%s\t%s\n", l.Format, l.URL); err != nil {
			return err
		}
	}
	return nil
}

// ExportOptions select the payload written by Export.
type ExportOptions struct {
	Format string
	Output string // file path, empty or "-" for stdout
}

// Export fetches the rendered payload and writes it to a file or stdout.
func Export(ctx context.Context, opts Options, exp ExportOptions, stdout, stderr io.Writer) error {
	e, err := setup(opts, stderr)
	if err != nil {
		return err
	}
	defer e.Close()

	format, err := render.ParseFormat(exp.Format)
	if err != nil {
		return err
	}
	res, err := renderOnce(e, opts)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, exportTimeout)
	defer cancel()
	client := renderer.NewClient(e.cfg.Links())

	if exp.Output == "" || exp.Output == "-" {
		payload, err := client.Fetch(ctx, format, res.Identifier)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", format, err)
		}
		_, err = stdout.Write(payload.Body)
		return err
	}
	if err := renderer.Write(ctx, client, format, res.Identifier, exp.Output); err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}
	e.logger.Info("diagram exported", "format", format, "path", exp.Output)
	return nil
}

// ServeOptions configure the HTTP surface.
type ServeOptions struct {
	Addr     string // overrides listen from the config
	AllowAll bool
}

// Serve runs the HTTP surface until ctx is cancelled.
func Serve(ctx context.Context, opts Options, srv ServeOptions, stderr io.Writer) error {
	e, err := setup(opts, stderr)
	if err != nil {
		return err
	}
	defer e.Close()

	addr := e.cfg.Listen
	if srv.Addr != "" {
		addr = srv.Addr
	}
	pipeline := render.New(render.PlantUML, e.cfg.Links())
	return server.New(server.Config{Addr: addr, AllowAll: srv.AllowAll}, pipeline, e.logger).Run(ctx)
}

// backdropFor returns the animation parameters of the preset named key.
func backdropFor(key string) theme.Backdrop {
	return theme.Get(key).Backdrop
}
