package args

var production bool
var configFilePath string

// Init stores the process flags. It is called once from the root command
// before logging and configuration are initialized.
func Init(isProduction bool, configPath string) {
	production = isProduction
	configFilePath = configPath
}

func IsProduction() bool {
	return production
}

func ConfigFilePath() string {
	return configFilePath
}
