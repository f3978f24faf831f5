package main

import (
	"flag"

	"tanzo-api/global"
	"tanzo-api/initialize"
	"tanzo-api/server"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to yaml config file")
		host       = flag.String("host", "", "Override HTTP host")
		port       = flag.Int("port", 0, "Override HTTP port")
	)
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("startup failed")
	}

	h := app.Cfg.HTTP.Host
	if *host != "" {
		h = *host
	}
	p := app.Cfg.HTTP.Port
	if *port != 0 {
		p = *port
	}

	global.Logger.Info().Str("host", h).Int("port", p).Msg("listening")
	if err := server.Start(h, p, app.Router); err != nil {
		global.Logger.Fatal().Err(err).Msg("server stopped")
	}
}
