package tui

import (
	"fmt"
	"path"
	"strings"

	"github.com/MKhiriev/go-house-builder/internal/preview"
)

// estimateText is the plain-text estimate summary; it is what ctrl+y copies.
func estimateText(identity, modelPath string, st preview.Status) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Estimate for: %s\n", identity)
	fmt.Fprintf(&b, "Design: %s\n", path.Base(modelPath))
	if st.State == preview.Loaded {
		fmt.Fprintf(&b, "Model size: %s\n", humanBytes(st.Progress.Loaded))
	} else {
		fmt.Fprintf(&b, "Model: %s\n", st.State)
	}
	b.WriteString("Status: awaiting design confirmation")

	return b.String()
}

func renderEstimate(identity, modelPath string, st preview.Status) string {
	header := titleStyle.Render("Estimate")
	hint := helpStyle.Render("ctrl+d: confirm design   ctrl+y: copy estimate")
	return panelStyle.Render(header + "\n" + estimateText(identity, modelPath, st) + "\n" + hint)
}
