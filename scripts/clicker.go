package scripts

import (
	"GopherSnippets/internal/behaviour"
	"GopherSnippets/internal/controls"
	"GopherSnippets/internal/input"
	"GopherSnippets/internal/logger"

	"go.uber.org/zap"
)

const ClickerScriptID = "6f1c2f0e-3b7a-4d55-9a61-0c3f8f0b2d14"

// ClickerScript counts down on primary clicks and up on secondary clicks
type ClickerScript struct {
	behaviour.BaseComponent
	clicks controls.ClickCounter
}

func init() {
	behaviour.MustRegisterScript(behaviour.ScriptType{
		ID:   ClickerScriptID,
		Name: "ClickerScript",
		New: func() behaviour.Component {
			return &ClickerScript{}
		},
		Save: saveClicker,
		Load: loadClicker,
	})
}

func (c *ClickerScript) Counter() int {
	return c.clicks.Value()
}

func (c *ClickerScript) OnEvent(ev input.Event) {
	change, ok := ev.(input.ButtonChange)
	if !ok || !change.Pressed {
		return
	}
	c.clicks.OnPress(change.Button)
	logger.Log.Debug("Click",
		zap.Stringer("button", change.Button),
		zap.Int("counter", c.clicks.Value()))
}

func saveClicker(comp behaviour.Component) map[string]any {
	c, ok := comp.(*ClickerScript)
	if !ok {
		return nil
	}
	return map[string]any{"counter": c.Counter()}
}

func loadClicker(comp behaviour.Component, fields map[string]any) error {
	c, ok := comp.(*ClickerScript)
	if !ok {
		return errWrongScript("ClickerScript", comp)
	}
	counter, err := fieldInt(fields, "counter", c.Counter())
	if err != nil {
		return err
	}
	c.clicks = *controls.NewClickCounter(counter)
	return nil
}
