package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockfall/audio"
	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/engine"
	"github.com/lixenwraith/blockfall/input"
	"github.com/lixenwraith/blockfall/piece"
	"github.com/lixenwraith/blockfall/render"
)

var (
	levelFlag = flag.Int("level", 0, "Starting level (0-29)")
	seedFlag  = flag.Int64("seed", 0, "Piece sequence seed (0 = random)")
	muteFlag  = flag.Bool("mute", false, "Disable audio")
	debugFlag = flag.Bool("debug", false, "Write debug logs to logs/blockfall.log")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before the stack trace so
	// the trace is readable after a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nBLOCKFALL CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	if w, h := screen.Size(); w < constants.MinScreenWidth || h < constants.MinScreenHeight {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Terminal too small: need at least %dx%d, have %dx%d\n",
			constants.MinScreenWidth, constants.MinScreenHeight, w, h)
		os.Exit(1)
	}

	// Audio is best effort; the game runs silent when the speaker
	// cannot be opened
	audioCfg := audio.LoadAudioConfig()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	controller := engine.NewController(engine.Config{
		StartLevel: *levelFlag,
		Randomizer: piece.NewBag(seed),
		Sound:      sound,
	})

	orchestrator := render.NewOrchestrator(screen)
	orchestrator.Register(render.NewWellRenderer(), render.PriorityWell)
	orchestrator.Register(render.NewPieceRenderer(), render.PriorityEntity)
	orchestrator.Register(render.NewSidebarRenderer(), render.PriorityUI)
	orchestrator.Register(render.NewOverlayRenderer(), render.PriorityOverlay)

	inputState := input.NewState(nil)

	eventChan := make(chan tcell.Event, 256)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\nEVENT POLLER CRASHED: %v\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// PollEvent returns nil once the screen is finalized
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	log.Printf("Game started: level=%d seed=%d", *levelFlag, seed)

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				inputState.HandleEvent(ev, time.Now())
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-frameTicker.C:
			frame := inputState.Snapshot(time.Now())
			if !controller.Step(frame) {
				log.Printf("Game exited: score=%d lines=%d level=%d",
					controller.State.Score, controller.State.Lines, controller.State.Level)
				return
			}
			orchestrator.RenderFrame(controller.Snapshot())
		}
	}
}
