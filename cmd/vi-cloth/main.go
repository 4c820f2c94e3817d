package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-cloth/audio"
	"github.com/lixenwraith/vi-cloth/core"
	"github.com/lixenwraith/vi-cloth/input"
	"github.com/lixenwraith/vi-cloth/parameter"
	"github.com/lixenwraith/vi-cloth/scenario"
)

var (
	scenarioFlag = flag.String("scenario", "cloth", "Built-in scenario: "+strings.Join(scenario.PresetNames(), ", "))
	fileFlag     = flag.String("file", "", "Scenario TOML file, overrides -scenario")
	keysFlag     = flag.String("keys", "", "Keymap TOML file merged over the default bindings")
	debugFlag    = flag.Bool("debug", false, "Write debug log to "+parameter.LogDir+"/"+parameter.LogFileName)
	muteFlag     = flag.Bool("mute", false, "Start with sound effects muted")
	dumpFlag     = flag.Bool("dump", false, "Print the selected scenario as TOML and exit")
	listFlag     = flag.Bool("list", false, "List built-in scenarios and exit")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if *listFlag {
		for _, name := range scenario.PresetNames() {
			fmt.Println(name)
		}
		return
	}

	sc, err := loadScenario(*fileFlag, *scenarioFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-cloth: %v\n", err)
		os.Exit(1)
	}

	if *dumpFlag {
		data, err := sc.Encode()
		if err != nil {
			fmt.Fprintf(os.Stderr, "vi-cloth: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	keys := input.DefaultKeyTable()
	if *keysFlag != "" {
		if keys, err = input.LoadKeyFile(*keysFlag); err != nil {
			fmt.Fprintf(os.Stderr, "vi-cloth: %v\n", err)
			os.Exit(1)
		}
	}

	if err := run(sc, keys); err != nil {
		fmt.Fprintf(os.Stderr, "vi-cloth: %v\n", err)
		os.Exit(1)
	}
}

func loadScenario(path, preset string) (*scenario.Scenario, error) {
	if path != "" {
		log.Printf("loading scenario file %s", path)
		return scenario.Load(path)
	}
	log.Printf("using built-in scenario %s", preset)
	return scenario.Preset(preset)
}

func run(sc *scenario.Scenario, keys *input.KeyTable) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	screen.EnableMouse()
	screen.HideCursor()

	// Audio failure is non-fatal, the sandbox runs silent
	sounds := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sounds.Initialize(); err != nil {
		if !errors.Is(err, audio.ErrAudioDisabled) {
			log.Printf("audio initialization failed: %v", err)
		}
	} else {
		defer sounds.Cleanup()
	}
	sounds.SetMuted(*muteFlag)

	a, err := newApp(screen, sc, keys, sounds)
	if err != nil {
		return err
	}
	a.muted = *muteFlag
	log.Printf("scenario %s: %d nodes, %d links, %d steps/frame",
		a.name, a.runner.Simulation().NodeCount(), a.runner.Simulation().LinkCount(), a.runner.StepsPerFrame())

	events := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handleEvent(ev) {
				log.Printf("quit at tick %d: %d broken, %d cut", a.runner.Simulation().Tick(), a.broken, a.cut)
				return nil
			}
		case <-ticker.C:
			a.frame()
		}
	}
}
