package main

import (
	"github.com/caarlos0/env/v11"

	"github.com/reoring/goconv/i18n"
)

// config is read from the environment; flags override it.
type config struct {
	Lang   string `env:"GOCONV_LANG" envDefault:"en"`
	Format string `env:"GOCONV_FORMAT" envDefault:"auto"`
}

func loadConfig() (config, error) {
	var c config
	if err := env.Parse(&c); err != nil {
		return config{}, err
	}
	c.Lang = i18n.MatchLanguage(c.Lang)
	return c, nil
}
