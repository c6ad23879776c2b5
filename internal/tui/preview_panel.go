package tui

import (
	"fmt"
	"path"

	"github.com/MKhiriev/go-house-builder/internal/preview"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
)

// previewModel shows the model download as a progress bar, then a spinner
// standing in for the render loop once the model is loaded.
type previewModel struct {
	spinner spinner.Model
	bar     progress.Model
	status  preview.Status
	name    string
}

func newPreviewModel(modelPath string) previewModel {
	s := spinner.New()
	s.Spinner = spinner.Globe

	return previewModel{
		spinner: s,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		name:    path.Base(modelPath),
	}
}

func (m previewModel) View() string {
	header := titleStyle.Render("3D preview") + " " + helpStyle.Render(m.name)

	var body string
	switch m.status.State {
	case preview.Loaded:
		body = m.spinner.View() + " rendering"
		if m.status.GLTFVersion > 0 {
			body += fmt.Sprintf(" (glTF %d)", m.status.GLTFVersion)
		}
		body += fmt.Sprintf(", %s", humanBytes(m.status.Progress.Loaded))
	case preview.Failed:
		body = errorStyle.Render("model unavailable: "+humanizePreviewError(m.status.Err)) +
			"\n" + helpStyle.Render("ctrl+r: retry")
	default:
		p := m.status.Progress
		if p.Total > 0 {
			body = m.bar.ViewAs(p.Fraction()) + fmt.Sprintf(" %s / %s", humanBytes(p.Loaded), humanBytes(p.Total))
		} else {
			body = m.spinner.View() + " loading model " + humanBytes(p.Loaded)
		}
	}

	return panelStyle.Render(header + "\n" + body)
}

func humanBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", max(n, 0))
	}
}
