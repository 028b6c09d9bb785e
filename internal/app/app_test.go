package app

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/plantview/internal/encoder"
	"github.com/five82/plantview/internal/render"
	"github.com/five82/plantview/internal/session"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestReadSourcePrecedence(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "diagram.puml")
	if err := os.WriteFile(file, []byte("from file\n"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	tests := []struct {
		name   string
		opts   Options
		want   string
		wantOK bool
	}{
		{"nothing", Options{}, "", false},
		{"url", Options{URL: "https://x.test/?code=A%2520B", Code: "ignored"}, "A B", true},
		{"url without code", Options{URL: "https://x.test/?other=1"}, "", false},
		{"code", Options{Code: "A->B", File: file}, "A->B", true},
		{"file", Options{File: file, StdinPiped: true, Stdin: strings.NewReader("ignored")}, "from file", true},
		{"dash reads stdin", Options{File: "-", Stdin: strings.NewReader("piped\n")}, "piped", true},
		{"piped stdin", Options{StdinPiped: true, Stdin: strings.NewReader("piped")}, "piped", true},
		{"unpiped stdin ignored", Options{Stdin: strings.NewReader("tty")}, "", false},
	}
	for _, tt := range tests {
		got, ok, err := readSource(tt.opts)
		if err != nil {
			t.Fatalf("%s: readSource error: %v", tt.name, err)
		}
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("%s: readSource = (%q, %v), want (%q, %v)", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestReadSourceMissingFile(t *testing.T) {
	t.Parallel()

	_, _, err := readSource(Options{File: filepath.Join(t.TempDir(), "missing.puml")})
	if err == nil || !strings.Contains(err.Error(), "open source") {
		t.Fatalf("error = %v, want open source error", err)
	}
}

func TestSeedRendersInitialSource(t *testing.T) {
	t.Parallel()

	pipeline := render.New(nil, render.NewLinks("", nil))

	sess := session.New(pipeline, nil, nil)
	if err := seed(sess, Options{URL: "?code=%40startuml%0AA-%3EB%0A%40enduml"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if sess.Source != "@startuml\nA->B\n@enduml" || sess.Result.Kind != render.KindSuccess {
		t.Fatalf("session = %q %s, want seeded success", sess.Source, sess.Result.Kind)
	}

	empty := session.New(pipeline, nil, nil)
	if err := seed(empty, Options{}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if empty.Source != "" || empty.Result.Kind != render.KindEmpty {
		t.Fatalf("unseeded session should stay empty")
	}
}

func TestLinksPrintsEveryFormat(t *testing.T) {
	t.Parallel()

	cfg := writeConfig(t, `server_url = "https://render.test/plantuml/"`+"\n"+`formats = ["svg", "png"]`+"\n")
	var stdout, stderr bytes.Buffer

	err := Links(Options{ConfigPath: cfg, Code: "A->B"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("Links: %v", err)
	}

	id, err := encoder.Encode("A->B")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := "svg\thttps://render.test/plantuml/svg/" + id + "\n" +
		"png\thttps://render.test/plantuml/png/" + id + "\n"
	if stdout.String() != want {
		t.Fatalf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestLinksErrors(t *testing.T) {
	t.Parallel()

	cfg := writeConfig(t, "")
	var out bytes.Buffer

	if err := Links(Options{ConfigPath: cfg}, &out, &out); !errors.Is(err, errNoSource) {
		t.Fatalf("no source error = %v, want errNoSource", err)
	}
	if err := Links(Options{ConfigPath: cfg, Code: "   "}, &out, &out); !errors.Is(err, errNoSource) {
		t.Fatalf("blank source error = %v, want errNoSource", err)
	}
	err := Links(Options{ConfigPath: cfg, Code: "\x00"}, &out, &out)
	if err == nil || !strings.HasPrefix(err.Error(), "Unable to encode diagram") {
		t.Fatalf("encode error = %v", err)
	}
}

func TestSetupRejectsBadConfig(t *testing.T) {
	t.Parallel()

	cfg := writeConfig(t, "server_url = [")
	if err := Links(Options{ConfigPath: cfg, Code: "A"}, &bytes.Buffer{}, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected config parse error")
	}
}

func TestExportWritesFileAndStdout(t *testing.T) {
	t.Parallel()

	id, err := encoder.Encode("A->B")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/plantuml/svg/"+id {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("<svg/>"))
	}))
	t.Cleanup(srv.Close)

	cfg := writeConfig(t, `server_url = "`+srv.URL+`/plantuml"`+"\n")
	opts := Options{ConfigPath: cfg, Code: "A->B"}
	out := filepath.Join(t.TempDir(), "out", "diagram.svg")

	var stdout, stderr bytes.Buffer
	if err := Export(context.Background(), opts, ExportOptions{Format: "svg", Output: out}, &stdout, &stderr); err != nil {
		t.Fatalf("Export to file: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil || string(data) != "<svg/>" {
		t.Fatalf("exported file = %q, %v", data, err)
	}

	if err := Export(context.Background(), opts, ExportOptions{Format: "svg"}, &stdout, &stderr); err != nil {
		t.Fatalf("Export to stdout: %v", err)
	}
	if stdout.String() != "<svg/>" {
		t.Fatalf("stdout = %q", stdout.String())
	}

	if err := Export(context.Background(), opts, ExportOptions{Format: "pdf"}, &stdout, &stderr); err == nil {
		t.Fatalf("expected unknown format error")
	}
	if err := Export(context.Background(), opts, ExportOptions{Format: "png"}, &stdout, &stderr); err == nil {
		t.Fatalf("expected renderer error for png")
	}
}

func TestNewLoggerWritesToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "plantview.log")
	logger, closer, err := newLogger(path, true, nil)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Debug("hello", "k", "v")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "msg=hello") || !strings.Contains(string(data), "k=v") {
		t.Fatalf("log = %q", data)
	}
}

func TestNewLoggerFallbacks(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, closer, err := newLogger("", false, &buf)
	if err != nil || closer != nil {
		t.Fatalf("newLogger = %v, %v", closer, err)
	}
	logger.Debug("hidden")
	logger.Info("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("log = %q", buf.String())
	}

	discard, _, err := newLogger("", true, nil)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	discard.Info("nowhere")
}
