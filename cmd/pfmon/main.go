package main

import (
	"flag"

	"github.com/pldsys/pfbus/internal/config"
	"github.com/pldsys/pfbus/internal/device"
	"github.com/pldsys/pfbus/internal/monitor"
	"github.com/pldsys/pfbus/internal/observability"
	"github.com/pldsys/pfbus/internal/serialport"
)

func main() {
	cfgPath := flag.String("config", "pfbus.toml", "path to the bus configuration")
	flag.Parse()

	logger := observability.InitLogger("pfmon")

	cfg, err := config.LoadBusConfig(*cfgPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	port, err := serialport.Open(cfg.SerialConfig())
	if err != nil {
		logger.Fatal().Err(err).Msg("open serial port")
	}
	defer port.Close()

	filter := cfg.Filter()
	opts := []device.Option{device.WithFilter(filter), device.WithLogger(logger)}

	pumps := make([]monitor.PumpSource, 0, len(cfg.Pumps))
	for _, in := range cfg.Pumps {
		p, err := device.NewPump(port, in.Addr, opts...)
		if err != nil {
			logger.Fatal().Err(err).Str("instrument", in.Name).Msg("bind pump")
		}
		pumps = append(pumps, monitor.PumpSource{Name: in.Name, Dev: p})
	}
	gauges := make([]monitor.GaugeSource, 0, len(cfg.Gauges))
	for _, in := range cfg.Gauges {
		g, err := device.NewGauge(port, in.Addr, opts...)
		if err != nil {
			logger.Fatal().Err(err).Str("instrument", in.Name).Msg("bind gauge")
		}
		gauges = append(gauges, monitor.GaugeSource{Name: in.Name, Dev: g})
	}
	if len(pumps)+len(gauges) == 0 {
		logger.Fatal().Msg("no instruments configured")
	}

	poller := monitor.NewPoller(pumps, gauges, cfg.Monitor.PollInterval.Std(), logger)
	stop := make(chan struct{})
	defer close(stop)
	go poller.Run(stop)

	logger.Info().
		Str("device", cfg.Device).
		Str("addr", cfg.Monitor.Addr).
		Int("instruments", len(pumps)+len(gauges)).
		Msg("pfmon up")

	srv := monitor.NewServer(cfg.Monitor.Addr, poller, cfg.Monitor.CorsOrigins)
	if err := srv.Serve(); err != nil {
		logger.Fatal().Err(err).Msg("http server")
	}
}
