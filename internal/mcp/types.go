package mcp

type CheckToolInput struct {
	RouteDir       string `json:"route_dir,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`
	ShowVirtual    bool   `json:"show_virtual,omitempty"`
}

type CheckToolOutput struct {
	Results []ProbeResult `json:"results"`
	Summary string        `json:"summary"`
	Report  string        `json:"report"`
}

type ProbeResult struct {
	Interface   string `json:"interface"`
	Destination string `json:"destination"`
	Reachable   bool   `json:"reachable"`
}
