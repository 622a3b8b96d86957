package main

import (
	"context"
	"log"
	"os"

	"github.com/alexandre-normand/specscot"
	"github.com/alexandre-normand/specscot/agent"
	"github.com/alexandre-normand/specscot/config"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	name    = "specscot"
	version = "1.0.0"
)

var (
	configurationPath = kingpin.Flag("configuration", "The path to an optional configuration file (all values can also come from the environment).").Short('c').String()
	logfilePath       = kingpin.Flag("log", "The path to a logfile (default logs to stdout).").Short('l').String()
)

func main() {
	kingpin.Version(version)
	kingpin.Parse()

	v := config.NewViperWithDefaults()

	if *configurationPath != "" {
		v.SetConfigFile(*configurationPath)
		if err := v.ReadInConfig(); err != nil {
			log.Fatalf("Error loading configuration file [%s]: %v", *configurationPath, err)
		}
	} else if home, err := homedir.Dir(); err == nil {
		// A ~/.specscot.* file is optional, the environment is enough on its own
		v.AddConfigPath(home)
		v.SetConfigName(".specscot")
		v.ReadInConfig()
	}

	options := make([]specscot.Option, 0)
	if *logfilePath != "" {
		logfile, err := os.OpenFile(*logfilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatalf("Error opening logfile [%s]: %v", *logfilePath, err)
		}

		options = append(options, specscot.OptionLogfile(logfile))
	}

	if err := config.ValidateRequired(v); err != nil {
		log.Fatal(err)
	}

	pmAgent, err := agent.NewGemini(context.Background(), v.GetString(config.GeminiAPIKeyKey), v.GetString(config.ModelKey), v.GetInt(config.MaxAgentTurnsKey))
	if err != nil {
		log.Fatalf("Error creating PM agent: %v", err)
	}

	bot, err := specscot.New(name, v, pmAgent, options...)
	if err != nil {
		log.Fatal(err)
	}
	defer bot.Close()

	err = bot.Run()
	if err != nil {
		log.Fatal(err)
	}
}
