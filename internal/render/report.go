package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/breeze-rmm/inputstream/internal/privilege"
)

// PrintReport writes the environment report from "inputstream check".
func PrintReport(w io.Writer, format Format, r *privilege.Report) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "Host:         %s\n", r.Hostname)
	fmt.Fprintf(w, "Platform:     %s (%s, %s)\n", r.Platform, r.OS, r.Architecture)
	fmt.Fprintf(w, "Kernel:       %s\n", r.Kernel)
	fmt.Fprintf(w, "Root:         %s\n", yesNo(r.Root))
	fmt.Fprintf(w, "Input group:  %s\n", yesNo(r.InputGroup))
	fmt.Fprintf(w, "Event nodes:  %d (%d readable)\n", len(r.Devices), r.Readable())
	for _, d := range r.Devices {
		if d.Readable {
			fmt.Fprintf(w, "  %-24s ok\n", d.Path)
		} else {
			fmt.Fprintf(w, "  %-24s %s\n", d.Path, d.Error)
		}
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
