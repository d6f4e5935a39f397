// Spheregrid-demo shows a rotating sphere of items in a window. Drag to spin
// the sphere, hover to enlarge, click to select, Esc or right-click to clear.
//
// Without -config it shows sixty placeholder profiles. With -script it
// replays a JSON test script and can exit when done, which is how
// screenshots are produced in CI.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/phanxgames/spheregrid"
	"github.com/phanxgames/spheregrid/ecs"
	"github.com/phanxgames/spheregrid/internal/config"
	"github.com/phanxgames/spheregrid/view"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

const sampleCount = 60

var sampleProfiles = []struct{ name, role string }{
	{"Aziz Karimov", "Frontend Developer"},
	{"Nilufar Saidova", "UI/UX Designer"},
	{"Jasur Toshev", "Backend Developer"},
	{"Sevara Rahimova", "Mobile Developer"},
	{"Bobur Aliyev", "Data Analyst"},
	{"Dilbar Umarova", "Full Stack Developer"},
	{"Timur Nazarov", "DevOps Engineer"},
	{"Gulnora Xasanova", "QA Engineer"},
	{"Sherzod Qodirov", "Cloud Architect"},
	{"Kamola Ergasheva", "Project Manager"},
	{"Nodir Ismoilov", "Security Specialist"},
	{"Zarina Yusupova", "ML Engineer"},
}

func main() {
	configPath := flag.String("config", "", "JSON config file")
	assetDir := flag.String("assets", "", "directory image references are resolved against")
	scriptPath := flag.String("script", "", "JSON test script to replay")
	exitAfter := flag.Bool("exit", false, "close the window when the script finishes")
	shotFormat := flag.String("shot-format", "", "screenshot format: png or webp")
	showFPS := flag.Bool("fps", false, "show FPS overlay")
	autoRotate := flag.Bool("auto-rotate", false, "spin the sphere continuously")
	debug := flag.Bool("debug", false, "log per-frame stats")
	seed := flag.Uint64("seed", 0, "layout jitter seed (0 = random)")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	spheregrid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := defaultConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	cfg.Resolve(config.Flags{
		AssetDir:         *assetDir,
		ScreenshotFormat: *shotFormat,
		ShowFPS:          *showFPS,
		AutoRotate:       *autoRotate,
		Debug:            *debug,
		Seed:             *seed,
	})

	var runner *spheregrid.TestRunner
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalf("read script: %v", err)
		}
		runner, err = spheregrid.LoadTestScript(data)
		if err != nil {
			log.Fatal(err)
		}
	}

	engine := spheregrid.NewEngine(cfg.EngineSettings(*debug), cfg.Items)
	world := donburi.NewWorld()
	unbind := ecs.Bind(world, engine)
	defer unbind()
	ecs.SelectionEventType.Subscribe(world, func(_ donburi.World, ev ecs.SelectionEvent) {
		switch ev.Kind {
		case ecs.Selected:
			fmt.Printf("selected %s (%s)\n", ev.Item.ID, ev.Item.Label)
		case ecs.Cleared:
			fmt.Println("selection cleared")
		}
	})

	images := view.NewImageCache(cfg.AssetDir, cfg.ThumbSize)
	if err := view.Run(engine, images, view.RunConfig{
		Title:            cfg.Title,
		Width:            cfg.Width,
		Height:           cfg.Height,
		ShowFPS:          cfg.ShowFPS,
		ScreenshotDir:    cfg.ScreenshotDir,
		ScreenshotFormat: cfg.ScreenshotFormat,
		Script:           runner,
		ExitOnScriptDone: *exitAfter,
		OnUpdate:         func() { events.ProcessAllEvents(world) },
	}); err != nil {
		log.Fatal(err)
	}
}

// defaultConfig mirrors the Students gallery's defaults: a larger container,
// livelier drag and a slow continuous spin.
func defaultConfig() config.Config {
	f := func(v float64) *float64 { return &v }
	autoRotate := true

	items := make([]spheregrid.Item, sampleCount)
	for i := range items {
		p := sampleProfiles[i%len(sampleProfiles)]
		items[i] = spheregrid.Item{
			ID:      fmt.Sprintf("student-%d", i+1),
			Label:   p.name,
			Caption: p.role,
		}
	}

	return config.Config{
		Title: "Sphere Grid Demo",
		Engine: config.EngineConfig{
			ContainerSize:    f(600),
			SphereRadius:     f(200),
			DragSensitivity:  f(0.8),
			MomentumDecay:    f(0.96),
			MaxRotationSpeed: f(6),
			BaseItemScale:    f(0.15),
			HoverScale:       f(1.3),
			AutoRotate:       &autoRotate,
			AutoRotateSpeed:  f(0.2),
		},
		Items: items,
	}
}
