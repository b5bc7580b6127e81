// Package main provides the ImageNet browser daemon.  It serves the
// hypermedia REST API over a taxonomy store; the store can be a
// self-contained in-memory one or a PostgreSQL database shared with
// other daemons.
package main

import (
	"io/ioutil"
	"os"

	"github.com/atheik/imagenet-browser/backend"
	"github.com/atheik/imagenet-browser/cache"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v2"
)

// config holds the optional YAML configuration file.  Every setting
// has a command-line flag equivalent, and flags given explicitly win
// over the file.
type config struct {
	// HTTP is the [ip]:port to serve the REST interface on.
	HTTP string `yaml:"http"`

	// Backend selects the storage backend, as "impl[:address]".
	Backend string `yaml:"backend"`

	// PageSize sets the number of items in one collection page.
	PageSize int `yaml:"page_size"`

	// LogRequests turns on per-request debug logging.
	LogRequests bool `yaml:"log_requests"`
}

func main() {
	storage := backend.Backend{Implementation: "memory"}

	app := cli.NewApp()
	app.Name = "browserd"
	app.Usage = "serve the ImageNet browser REST API"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "http",
			Value: ":5980",
			Usage: "[ip]:port for the HTTP REST interface",
		},
		cli.GenericFlag{
			Name:  "backend",
			Value: &storage,
			Usage: "impl[:address] of the storage backend",
		},
		cli.IntFlag{
			Name:  "page-size",
			Usage: "items per collection page (0 for the default)",
		},
		cli.StringFlag{
			Name:  "config",
			Usage: "global configuration YAML file",
		},
		cli.BoolFlag{
			Name:  "log-requests",
			Usage: "log all requests",
		},
	}
	app.Action = func(c *cli.Context) error {
		var cfg config
		if filename := c.String("config"); filename != "" {
			err := loadConfigYaml(filename, &cfg)
			if err != nil {
				logrus.WithError(err).Fatal("Could not load YAML configuration")
			}
		}
		if !c.IsSet("backend") && cfg.Backend != "" {
			err := storage.Set(cfg.Backend)
			if err != nil {
				logrus.WithError(err).Fatal("Invalid backend in configuration")
			}
		}
		httpBind := c.String("http")
		if !c.IsSet("http") && cfg.HTTP != "" {
			httpBind = cfg.HTTP
		}
		pageSize := c.Int("page-size")
		if !c.IsSet("page-size") {
			pageSize = cfg.PageSize
		}
		logRequests := c.Bool("log-requests") || cfg.LogRequests

		store, err := storage.Store()
		if err != nil {
			logrus.WithError(err).Fatal("Could not create taxonomy backend")
		}
		store = cache.New(store)

		var reqLogger *logrus.Logger
		if logRequests {
			stdlog := logrus.StandardLogger()
			reqLogger = &logrus.Logger{
				Out:       stdlog.Out,
				Formatter: stdlog.Formatter,
				Hooks:     stdlog.Hooks,
				Level:     logrus.DebugLevel,
			}
		}

		go observe(store)
		logrus.WithFields(logrus.Fields{
			"http":    httpBind,
			"backend": storage.String(),
		}).Info("Serving")
		return serveHTTP(store, httpBind, pageSize, reqLogger)
	}

	err := app.Run(os.Args)
	if err != nil {
		logrus.WithError(err).Fatal("Server failed")
	}
}

func loadConfigYaml(filename string, cfg *config) error {
	bytes, err := ioutil.ReadFile(filename)
	if err == nil {
		err = yaml.Unmarshal(bytes, cfg)
	}
	return err
}
