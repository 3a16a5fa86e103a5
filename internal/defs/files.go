package defs

// Well-known file names inside a template.
const (
	// PackageJSON is the npm manifest rewritten during materialization.
	PackageJSON = "package.json"

	// SilenceConfigJS is the silence-cli config of javascript applications.
	SilenceConfigJS = "silence.config.js"

	// SilenceConfigTS is the silence-cli config of typescript applications.
	SilenceConfigTS = "silence.config.ts"
)

// Configuration file locations for create-silence itself.
const (
	// ConfigDirName is the directory under os.UserConfigDir().
	ConfigDirName = "create-silence"

	// ConfigFileName is the YAML user configuration file.
	ConfigFileName = "config.yaml"

	// ConfigEnvVar overrides the configuration file path.
	ConfigEnvVar = "CREATE_SILENCE_CONFIG"
)
