package main

import (
	"flag"
	"log"

	"PixelLab/internal/config"
	"PixelLab/internal/ui"
)

func main() {
	confPath := flag.String("config", config.Path(), "settings file")
	flag.Parse()

	conf, err := config.Load(*confPath)
	if err != nil {
		log.Printf("[CONFIG] %v, using defaults", err)
		conf = config.Default()
	}
	// A project named on the command line wins over the last one opened.
	if flag.NArg() > 0 {
		conf.LastProject = flag.Arg(0)
	}

	log.Println("Starting PixelLab")
	ui.RunApp(conf, *confPath)
}
