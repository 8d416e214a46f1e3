package env

import (
	"strings"

	"github.com/spf13/viper"
)

// newViper - переменные окружения с значениями по умолчанию
func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault(httpAddrEnvName, ":8080")
	v.SetDefault(logLevelEnvName, "info")
	v.SetDefault(accessTokenDurationEnvName, "30m")
	v.SetDefault(refreshTokenDurationEnvName, "336h")
	v.SetDefault(redisAddrEnvName, "localhost:6379")
	v.SetDefault(redisDBEnvName, 0)
	v.SetDefault(mongoDatabaseEnvName, "bookshelf")
	v.SetDefault(cookieSecureEnvName, false)
	v.SetDefault(configFileEnvName, "config.yaml")

	return v
}

// ConfigFile - путь к YAML файлу с политикой CORS
func ConfigFile() string {
	return newViper().GetString(configFileEnvName)
}
