package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/dockit/internal/render"
)

var (
	renderKind  string
	renderTheme string
	renderOut   string
)

var renderCmd = &cobra.Command{
	Use:   "render [files...]",
	Short: "Render JSON data files to HTML locally",
	Long: `Render one or more JSON data files to self-contained HTML without a server.

Each input may be plain document data (rendered with --kind) or a wrapper
object {"kind": "...", "data": {...}, "theme": {...}} that picks its own
kind and theme. Output files take the input name with an .html extension.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderKind, "kind", "freeform", "Document kind for plain data files")
	renderCmd.Flags().StringVar(&renderTheme, "theme", "", "Path to a theme JSON file")
	renderCmd.Flags().StringVar(&renderOut, "out", "", "Output directory (defaults to each input's directory)")
	rootCmd.AddCommand(renderCmd)
}

// renderInput is the wrapper form of an input file. Plain data files leave
// Kind empty and are rendered with the --kind flag.
type renderInput struct {
	Kind  string          `json:"kind"`
	Data  render.Map      `json:"data"`
	Theme *render.Theme   `json:"theme"`
	rest  json.RawMessage // original bytes, reused when the file is plain data
}

func loadInput(path string) (*renderInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var in renderInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	in.rest = raw
	return &in, nil
}

// resolve returns the kind, data, and theme to render, falling back to the
// CLI flags for plain data files.
func (in *renderInput) resolve(flagKind string, flagTheme *render.Theme) (render.Kind, render.Map, *render.Theme, error) {
	if in.Kind != "" && in.Data != nil {
		kind, err := render.ParseKind(in.Kind)
		if err != nil {
			return "", nil, nil, err
		}
		theme := in.Theme
		if theme == nil {
			theme = flagTheme
		}
		return kind, in.Data, theme, nil
	}

	kind, err := render.ParseKind(flagKind)
	if err != nil {
		return "", nil, nil, err
	}
	var data render.Map
	if err := json.Unmarshal(in.rest, &data); err != nil {
		return "", nil, nil, fmt.Errorf("data file is not a JSON object: %w", err)
	}
	return kind, data, flagTheme, nil
}

// outputPath maps an input file to its HTML output location.
func outputPath(input, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".html"
	if outDir != "" {
		return filepath.Join(outDir, base)
	}
	return filepath.Join(filepath.Dir(input), base)
}

func loadTheme(path string) (*render.Theme, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme %s: %w", path, err)
	}
	theme := &render.Theme{}
	if err := json.Unmarshal(raw, theme); err != nil {
		return nil, fmt.Errorf("failed to parse theme %s: %w", path, err)
	}
	return theme, nil
}

func renderFile(path, outDir, flagKind string, flagTheme *render.Theme) (string, error) {
	in, err := loadInput(path)
	if err != nil {
		return "", err
	}

	kind, data, theme, err := in.resolve(flagKind, flagTheme)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	html, err := render.Render(kind, data, theme)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	out := outputPath(path, outDir)
	if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", out, err)
	}
	return out, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	flagTheme, err := loadTheme(renderTheme)
	if err != nil {
		return err
	}

	if renderOut != "" {
		if err := os.MkdirAll(renderOut, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(4)

	for _, path := range args {
		g.Go(func() error {
			out, err := renderFile(path, renderOut, renderKind, flagTheme)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		})
	}

	return g.Wait()
}
