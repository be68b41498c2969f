package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"math"
	"os"
	"os/signal"
	"syscall"

	"GopherSnippets/internal/behaviour"
	"GopherSnippets/internal/config"
	"GopherSnippets/internal/engine"
	"GopherSnippets/internal/logger"
	"GopherSnippets/internal/scene"
	"GopherSnippets/scripts"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	cameraName = "Camera"
	cameraTag  = "MainCamera"
)

func main() {
	configPath := flag.String("config", "config.json", "path to a .json or .yaml config file")
	scenePath := flag.String("scene", "", "scene file to load and save (overrides config)")
	noSave := flag.Bool("no-save", false, "do not write the scene on exit")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	logger.Init(cfg.LogLevel)
	defer logger.Sync()
	if err != nil {
		logger.Log.Warn("Using default config", zap.String("path", *configPath), zap.Error(err))
	}
	if *scenePath != "" {
		cfg.ScenePath = *scenePath
	}

	if err := run(cfg, *configPath, !*noSave); err != nil {
		logger.Log.Error("Game exited with error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// loadConfig reads the config file, writing the defaults out first when it
// does not exist yet so there is something to edit while the game runs.
func loadConfig(path string) (config.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := config.Save(path, config.Default()); err != nil {
			return config.Default(), err
		}
	}
	return config.Load(path)
}

func run(cfg config.Config, configPath string, saveOnExit bool) error {
	cm := behaviour.GlobalComponentManager
	logger.Log.Debug("Registered scripts", zap.Strings("scripts", behaviour.GetAvailableScripts()))

	if err := loadScene(cm, cfg); err != nil {
		return err
	}

	gameEngine := engine.NewGopher(cm)
	gameEngine.Width = cfg.Window.Width
	gameEngine.Height = cfg.Window.Height
	gameEngine.Title = cfg.Window.Title
	applyConfig(gameEngine, cm, cfg)

	var updates <-chan config.Config
	if watcher, err := config.Watch(configPath); err != nil {
		logger.Log.Warn("Config hot reload disabled", zap.Error(err))
	} else {
		defer watcher.Close()
		updates = watcher.Updates
	}

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupts)

	hud := newTitleHUD(gameEngine, cm, cfg.Window.Title)
	gameEngine.SetOnRenderCallback(func(deltaTime float64) {
		select {
		case next, ok := <-updates:
			if ok {
				applyConfig(gameEngine, cm, next)
			}
		case sig := <-interrupts:
			logger.Log.Info("Shutting down", zap.Stringer("signal", sig))
			gameEngine.Close()
		default:
		}
		hud.refresh()
	})

	logger.Log.Info("Starting game",
		zap.Int32("width", cfg.Window.Width),
		zap.Int32("height", cfg.Window.Height))

	if err := gameEngine.Render(-1, -1); err != nil {
		return err
	}

	if saveOnExit {
		if err := scene.Write(cfg.ScenePath, scene.Capture(cm)); err != nil {
			return err
		}
		logger.Log.Info("Scene saved", zap.String("path", cfg.ScenePath))
	}
	return nil
}

// loadScene replaces whatever cm holds with the saved scene, or with the
// default camera when there is no scene file.
func loadScene(cm *behaviour.ComponentManager, cfg config.Config) error {
	cm.Clear()

	data, err := scene.Read(cfg.ScenePath)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Log.Info("No scene file found, using default scene", zap.String("path", cfg.ScenePath))
		return setupDefaultScene(cm, cfg)
	}
	if err != nil {
		return err
	}
	if err := scene.Restore(cm, data); err != nil {
		return err
	}
	if findCamera(cm) == nil {
		logger.Log.Warn("Scene has no camera, adding one")
		return setupDefaultScene(cm, cfg)
	}
	logger.Log.Info("Scene loaded", zap.String("path", cfg.ScenePath), zap.Int("objects", len(data.Objects)))
	return nil
}

func setupDefaultScene(cm *behaviour.ComponentManager, cfg config.Config) error {
	camera := behaviour.NewGameObject(cameraName)
	camera.Tag = cameraTag
	camera.Transform.SetPosition(mgl32.Vec3{0, 10, 30})

	sc, err := behaviour.AttachScript(camera, "MouseLookScript")
	if err != nil {
		return err
	}
	sc.Script.(*scripts.MouseLookScript).SetOrientation(cfg.MouseLook.InitialYaw, cfg.MouseLook.InitialPitch)

	if _, err := behaviour.AttachScript(camera, "ClickerScript"); err != nil {
		return err
	}

	cm.RegisterGameObject(camera)
	return nil
}

// findCamera prefers the object tagged as main camera and falls back to the
// default camera's name
func findCamera(cm *behaviour.ComponentManager) *behaviour.GameObject {
	if tagged := cm.FindGameObjectsWithTag(cameraTag); len(tagged) > 0 {
		return tagged[0]
	}
	return cm.FindGameObject(cameraName)
}

// applyConfig pushes the mouse settings into the engine and every mouse-look script
func applyConfig(g *engine.Gopher, cm *behaviour.ComponentManager, cfg config.Config) {
	g.Cursor.InvertY = cfg.MouseLook.InvertY
	for _, obj := range cm.GetAllGameObjects() {
		for _, sc := range behaviour.Scripts(obj) {
			if look, ok := sc.Script.(*scripts.MouseLookScript); ok {
				look.Sensitivity = cfg.MouseLook.Sensitivity
			}
		}
	}
	logger.Log.Debug("Mouse settings applied",
		zap.Float32("sensitivity", cfg.MouseLook.Sensitivity),
		zap.Bool("invertY", cfg.MouseLook.InvertY))
}

// titleHUD shows the heading, camera angles and click counter in the window title
type titleHUD struct {
	engine *engine.Gopher
	cm     *behaviour.ComponentManager
	base   string
	last   string
}

func newTitleHUD(g *engine.Gopher, cm *behaviour.ComponentManager, base string) *titleHUD {
	return &titleHUD{engine: g, cm: cm, base: base}
}

func (h *titleHUD) refresh() {
	camera := findCamera(h.cm)
	window := h.engine.GetWindow()
	if camera == nil || window == nil {
		return
	}

	title := h.base + formatHeading(camera.Transform.Forward())
	for _, sc := range behaviour.Scripts(camera) {
		switch s := sc.Script.(type) {
		case *scripts.MouseLookScript:
			title += fmt.Sprintf(" | yaw %.1f° pitch %.1f°", mgl32.RadToDeg(s.Yaw()), mgl32.RadToDeg(s.Pitch()))
		case *scripts.ClickerScript:
			title += fmt.Sprintf(" | clicks %d", s.Counter())
		}
	}

	if title != h.last {
		window.SetTitle(title)
		h.last = title
	}
}

// formatHeading renders the view direction as a compass bearing, with -Z as
// north and +X as east
func formatHeading(forward mgl32.Vec3) string {
	bearing := mgl32.RadToDeg(float32(math.Atan2(float64(forward.X()), float64(-forward.Z()))))
	if bearing < 0 {
		bearing += 360
	}
	return fmt.Sprintf(" | heading %.0f°", bearing)
}
