package version

import (
	"fmt"
	"runtime"
)

// BinaryName is the name of the kreq binary
const BinaryName = "kreq"

// Build information, populated at build time via -ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Platform is the target platform this binary was built for
var Platform = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)

// GetVersionInfo returns the full version information string
func GetVersionInfo() string {
	return fmt.Sprintf(`%s:
 Version:    %s
 Git commit: %s
 Built:      %s
 Go version: %s
 Platform:   %s`,
		BinaryName, Version, GitCommit, BuildDate, runtime.Version(), Platform)
}
