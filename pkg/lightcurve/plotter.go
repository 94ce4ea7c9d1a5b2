package lightcurve

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"go.uber.org/zap"

	"github.com/oxygene76/cometmag/pkg/astronomy/brightness"
)

// OutputDisplay renders to a temporary PNG and opens it in the platform viewer
const OutputDisplay = "display"

// DefaultBaseName is the file name used when no output file is configured
const DefaultBaseName = "heliocentric_lightcurves"

// Plotter renders light-curve figures for a brightness model
type Plotter struct {
	model  *brightness.Model
	opts   RenderOptions
	logger *zap.Logger

	// openViewer is replaced in tests
	openViewer func(path string) error
}

// NewPlotter creates a plotter; a nil logger disables logging
func NewPlotter(model *brightness.Model, opts RenderOptions, logger *zap.Logger) *Plotter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Plotter{
		model:      model,
		opts:       opts,
		logger:     logger,
		openViewer: openViewer,
	}
}

// Output writes the figure for output ("display", "png", "pdf" or "svg") and
// returns the path of the written file. An empty file selects a default name.
func (p *Plotter) Output(output, file string) (string, error) {
	if output == OutputDisplay {
		return p.Display()
	}
	format, err := ParseFormat(output)
	if err != nil {
		return "", err
	}
	if file == "" {
		file = DefaultBaseName + "." + string(format)
	}
	if err := p.Save(file, format); err != nil {
		return "", err
	}
	return file, nil
}

// Save renders the figure into a file
func (p *Plotter) Save(path string, format Format) error {
	fig, err := BuildFigure(p.model)
	if err != nil {
		return fmt.Errorf("failed to build figure: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Render(fig, f, format, p.opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	p.logger.Info("Light curves written",
		zap.String("path", path),
		zap.String("format", string(format)),
		zap.Float64("transition_au", fig.TransitionDistance))
	return nil
}

// Display renders a PNG into the temp directory and hands it to the viewer.
// A viewer failure is logged, not returned; the file is still usable.
func (p *Plotter) Display() (string, error) {
	path := filepath.Join(os.TempDir(), DefaultBaseName+".png")
	if err := p.Save(path, FormatPNG); err != nil {
		return "", err
	}
	if err := p.openViewer(path); err != nil {
		p.logger.Warn("Could not open image viewer", zap.String("path", path), zap.Error(err))
	}
	return path, nil
}

func openViewer(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}
