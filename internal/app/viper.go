package app

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/jingjie2002/GM-Tools-Admin/internal/config"
)

func (a *application) setupViper(path string) error {
	env := config.GetEnvironment()

	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	viper.SetConfigType("yml")

	viper.AddConfigPath(path)

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvPrefix("GM_ADMIN")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("could not read config file: %w", err)
	}

	var c config.Config
	if err := viper.Unmarshal(&c); err != nil {
		return err
	}
	a.config = &c

	fmt.Println("[x] Config loaded successfully")
	return nil
}
