package config

import "github.com/lyraproj/issue/issue"

const (
	ConfigInvalidLogLevel    = `CONFIG_INVALID_LOG_LEVEL`
	ConfigInvalidRequirement = `CONFIG_INVALID_REQUIREMENT`
	ConfigParseFailed        = `CONFIG_PARSE_FAILED`
	ConfigReadFailed         = `CONFIG_READ_FAILED`
	ConfigVersionMismatch    = `CONFIG_VERSION_MISMATCH`
)

func init() {
	issue.Hard(ConfigInvalidLogLevel, `Invalid log_level '%{level}' in %{path}`)

	issue.Hard(ConfigInvalidRequirement, `Invalid requires '%{requires}' in %{path}: %{detail}`)

	issue.Hard(ConfigParseFailed, `Failed to parse configuration '%{path}': %{detail}`)

	issue.Hard(ConfigReadFailed, `Failed to read configuration '%{path}': %{detail}`)

	issue.Hard(ConfigVersionMismatch, `Language version %{version} does not satisfy requires '%{requires}' in %{path}`)
}

func configError(code issue.Code, args issue.H) issue.Reported {
	return issue.NewReported(code, issue.SEVERITY_ERROR, args, nil)
}
