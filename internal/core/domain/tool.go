package domain

import "go.trai.ch/zerr"

// cacheKeyPrefix namespaces tool paths in the resolution cache.
const cacheKeyPrefix = "tool_path_"

// Tool identifies a binary of the Cangjie toolchain.
type Tool struct {
	// Name is the logical binary name without platform extension.
	Name string
	// Subdir is the SDK-relative directory containing the binary.
	Subdir string
	// Downloadable reports whether the tool can be provisioned from the release feed.
	Downloadable bool
}

var (
	// Compiler is the Cangjie compiler.
	Compiler = Tool{Name: "cjc", Subdir: BinDirName}

	// CompilerFrontend is the compiler frontend used as the debugger driver.
	CompilerFrontend = Tool{Name: "cjc-frontend", Subdir: BinDirName}

	// LanguageServer is the Cangjie language server.
	LanguageServer = Tool{Name: "cangjie-lsp", Subdir: BinDirName, Downloadable: true}
)

// KnownTools returns every toolchain binary in display order.
func KnownTools() []Tool {
	return []Tool{Compiler, CompilerFrontend, LanguageServer}
}

// LookupTool returns the known tool with the given name.
func LookupTool(name string) (Tool, error) {
	for _, t := range KnownTools() {
		if t.Name == name {
			return t, nil
		}
	}
	return Tool{}, zerr.With(zerr.Wrap(ErrUnknownTool, "no toolchain binary named "+name), "tool", name)
}

// CacheKey returns the key under which the tool's resolved path is cached.
func (t Tool) CacheKey() string {
	return cacheKeyPrefix + t.Name
}

// Dir returns the SDK-relative directory of the tool, defaulting to bin.
func (t Tool) Dir() string {
	if t.Subdir == "" {
		return BinDirName
	}
	return t.Subdir
}
