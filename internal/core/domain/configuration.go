package domain

import "go.trai.ch/zerr"

// BuildConfiguration is the symbolic build profile forwarded by the calling build system.
type BuildConfiguration string

const (
	// ConfigDebug disables optimizations and includes debug information.
	ConfigDebug BuildConfiguration = "Debug"
	// ConfigRelease enables optimizations.
	ConfigRelease BuildConfiguration = "Release"
	// ConfigRelWithDebInfo enables optimizations and keeps debug information.
	ConfigRelWithDebInfo BuildConfiguration = "RelWithDebInfo"
	// ConfigMinSizeRel optimizes for size.
	ConfigMinSizeRel BuildConfiguration = "MinSizeRel"
)

// BuildConfigurations lists every recognized configuration in declaration order.
var BuildConfigurations = []BuildConfiguration{
	ConfigDebug,
	ConfigRelease,
	ConfigRelWithDebInfo,
	ConfigMinSizeRel,
}

// ParseBuildConfiguration converts a configuration name into a BuildConfiguration.
// Names are matched exactly.
func ParseBuildConfiguration(name string) (BuildConfiguration, error) {
	for _, c := range BuildConfigurations {
		if string(c) == name {
			return c, nil
		}
	}
	return "", zerr.With(zerr.Wrap(ErrUnknownConfiguration, name), "configuration", name)
}
