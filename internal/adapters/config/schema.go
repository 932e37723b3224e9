package config

// File represents the structure of the .cjtool.yaml configuration file.
type File struct {
	SDKPath string             `yaml:"sdkPath"`
	Tools   map[string]ToolDTO `yaml:"tools"`
}

// ToolDTO represents a per-tool section of the configuration.
type ToolDTO struct {
	PathOverride string   `yaml:"pathOverride"`
	Arguments    []string `yaml:"arguments"`
}
