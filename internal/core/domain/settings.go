package domain

// Settings is the host-provided configuration consulted during resolution.
type Settings struct {
	// SDKPath is the configured SDK root.
	SDKPath string `yaml:"sdkPath,omitempty" json:"sdkPath,omitempty"`
	// Tools holds per-tool settings keyed by tool name.
	Tools map[string]ToolSettings `yaml:"tools,omitempty" json:"tools,omitempty"`
	// BaseDir is the directory relative override paths are resolved against.
	BaseDir string `yaml:"-" json:"-"`
	// Source is the path of the file the settings were loaded from, empty when none was found.
	Source string `yaml:"-" json:"-"`
}

// ToolSettings configures a single tool.
type ToolSettings struct {
	PathOverride string `yaml:"pathOverride,omitempty" json:"pathOverride,omitempty"`
	// Arguments replaces the default launch arguments. Nil means unset.
	Arguments []string `yaml:"arguments,omitempty" json:"arguments,omitempty"`
}

// Tool returns the settings for the named tool, or the zero value.
func (s Settings) Tool(name string) ToolSettings {
	if s.Tools == nil {
		return ToolSettings{}
	}
	return s.Tools[name]
}

// PathOverride returns the configured path override for the tool, if any.
func (s Settings) PathOverride(name string) string {
	return s.Tool(name).PathOverride
}

// LaunchCommand is how a host spawns a tool process.
type LaunchCommand struct {
	Path string   `json:"path"`
	Args []string `json:"args"`
}

// DefaultLanguageServerArgs are passed to the language server when no arguments are configured.
func DefaultLanguageServerArgs() []string {
	return []string{"--stdio"}
}
