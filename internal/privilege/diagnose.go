package privilege

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/breeze-rmm/inputstream/internal/logging"
)

// DefaultInputDir is where the kernel exposes evdev nodes.
const DefaultInputDir = "/dev/input"

// Report is the environment summary printed by "inputstream check".
type Report struct {
	Hostname     string       `json:"hostname" yaml:"hostname"`
	OS           string       `json:"os" yaml:"os"`
	Platform     string       `json:"platform" yaml:"platform"`
	Kernel       string       `json:"kernel" yaml:"kernel"`
	Architecture string       `json:"architecture" yaml:"architecture"`
	Root         bool         `json:"root" yaml:"root"`
	InputGroup   bool         `json:"inputGroup" yaml:"input_group"`
	Devices      []DeviceNode `json:"devices" yaml:"devices"`
}

// DeviceNode is one evdev node and whether this process may open it.
type DeviceNode struct {
	Path     string `json:"path" yaml:"path"`
	Readable bool   `json:"readable" yaml:"readable"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Readable is the number of nodes the process can open.
func (r *Report) Readable() int {
	n := 0
	for _, d := range r.Devices {
		if d.Readable {
			n++
		}
	}
	return n
}

// Diagnose gathers host information and probes every event node in dir.
// Host lookup failures leave the fields empty.
func Diagnose(dir string) *Report {
	if dir == "" {
		dir = DefaultInputDir
	}

	r := &Report{
		Architecture: runtime.GOARCH,
		Root:         IsRunningAsRoot(),
	}

	if info, err := host.Info(); err == nil {
		r.Hostname = info.Hostname
		r.OS = info.OS
		r.Platform = strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
		r.Kernel = info.KernelVersion
	} else {
		log.Debug("host info unavailable", logging.KeyError, err)
	}

	if ok, err := InGroup(InputGroup); err == nil {
		r.InputGroup = ok
	}

	r.Devices = probeDevices(dir)
	return r
}

func probeDevices(dir string) []DeviceNode {
	paths, err := filepath.Glob(filepath.Join(dir, "event*"))
	if err != nil {
		return nil
	}

	nodes := make([]DeviceNode, 0, len(paths))
	for _, p := range paths {
		node := DeviceNode{Path: p}
		f, err := os.Open(p)
		if err != nil {
			node.Error = err.Error()
		} else {
			node.Readable = true
			f.Close()
		}
		nodes = append(nodes, node)
	}
	return nodes
}
