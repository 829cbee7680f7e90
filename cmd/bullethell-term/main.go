package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/automoto/bullethell/config"
	"github.com/automoto/bullethell/core"
	"github.com/automoto/bullethell/levels"
	"github.com/automoto/bullethell/terminal"
	"github.com/gdamore/tcell/v2"
	"github.com/segmentio/ksuid"
)

func main() {
	configPath := flag.String("config", "", "TOML file overriding the default configuration")
	logPath := flag.String("log", "", "write logs to this file (the screen is owned by the game)")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	log.SetPrefix("[" + ksuid.New().String() + "] ")
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	var sink core.SoundSink = core.NopSink{}
	if !*mute {
		sound := terminal.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer sound.Cleanup()
			sink = sound
		}
	}

	session, err := core.NewSession(levels.All(), sink)
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	if *logPath == "" {
		log.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := terminal.NewApp(screen, session).Run(ctx); err != nil {
		log.Printf("terminal: %v", err)
		os.Exit(1)
	}
}
