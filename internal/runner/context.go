package runner

import (
	"context"
	"sort"
	"time"

	"github.com/numatools/numacheck/checkers/common"
)

// RunContext carries each pipeline stage's output forward to the next stage.
// Topology discovery fills Interfaces, Devices and NUMANodes; route
// extraction fills Destinations; probing fills Results. Data flows strictly
// forward, so a stage only ever reads fields filled by earlier stages.
//
// The context uses a builder pattern for easy construction:
//
//	rc := NewRunContext(context.Background()).
//	    WithProbeTimeout(2 * time.Second)
type RunContext struct {
	Ctx context.Context

	// Interfaces holds the non-loopback interface names, sorted so that
	// report order never depends on map iteration order.
	Interfaces []string

	// Devices maps interface name to its PCI bus address.
	Devices map[string]string

	// NUMANodes maps PCI bus address to NUMA node, or common.NUMAUnknown.
	NUMANodes map[string]string

	// Destinations maps interface name to its route destinations, in
	// route-file line order.
	Destinations map[string][]string

	// Results accumulates probe outcomes in probe order.
	Results []common.ProbeResult

	ShowVirtual    bool
	ProbeTimeout   time.Duration
	CheckerConfigs map[string]interface{}
}

func NewRunContext(ctx context.Context) *RunContext {
	return &RunContext{
		Ctx:            ctx,
		Devices:        make(map[string]string),
		NUMANodes:      make(map[string]string),
		Destinations:   make(map[string][]string),
		ProbeTimeout:   common.ProbeTimeout,
		CheckerConfigs: make(map[string]interface{}),
	}
}

func (rc *RunContext) WithShowVirtual(show bool) *RunContext {
	rc.ShowVirtual = show
	return rc
}

func (rc *RunContext) WithProbeTimeout(timeout time.Duration) *RunContext {
	rc.ProbeTimeout = timeout
	return rc
}

func (rc *RunContext) SetCheckerConfig(checkerName string, config interface{}) {
	rc.CheckerConfigs[checkerName] = config
}

func (rc *RunContext) GetCheckerConfig(checkerName string) (interface{}, bool) {
	config, ok := rc.CheckerConfigs[checkerName]
	return config, ok
}

// SetInterfaces records the discovered interface names in sorted order.
func (rc *RunContext) SetInterfaces(names []string) {
	rc.Interfaces = append([]string{}, names...)
	sort.Strings(rc.Interfaces)
}
