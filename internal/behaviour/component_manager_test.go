package behaviour

import (
	"testing"

	"GopherSnippets/internal/input"
)

func TestComponentManagerRegister(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")

	cm.RegisterGameObject(obj)

	all := cm.GetAllGameObjects()
	if len(all) != 1 {
		t.Errorf("Expected 1 registered object, got %d", len(all))
	}
}

func TestComponentManagerUpdateAll(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)

	cm.UpdateAll()

	if !comp.updateCalled {
		t.Error("Update() was not called on component")
	}
}

func TestComponentManagerFixedUpdateAll(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)

	cm.FixedUpdateAll()

	if !comp.fixedCalled {
		t.Error("FixedUpdate() was not called on component")
	}
}

func TestComponentManagerInactiveObject(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	obj.Active = false
	comp := &MockComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)

	cm.UpdateAll()

	if comp.updateCalled {
		t.Error("Update() should not be called on inactive object")
	}
}

func TestComponentManagerFindGameObject(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("FindMe")
	cm.RegisterGameObject(obj)

	found := cm.FindGameObject("FindMe")

	if found == nil {
		t.Error("FindGameObject should find registered object")
	}
	if found != obj {
		t.Error("FindGameObject returned wrong object")
	}
}

func TestComponentManagerFindGameObjectNotFound(t *testing.T) {
	cm := NewComponentManager()

	found := cm.FindGameObject("NotHere")

	if found != nil {
		t.Error("FindGameObject should return nil for non-existent object")
	}
}

func TestComponentManagerClear(t *testing.T) {
	cm := NewComponentManager()
	cm.RegisterGameObject(NewGameObject("A"))
	cm.RegisterGameObject(NewGameObject("B"))

	cm.Clear()

	all := cm.GetAllGameObjects()
	if len(all) != 0 {
		t.Errorf("Clear should remove all objects, got %d", len(all))
	}
}

func TestComponentManagerDispatchEvent(t *testing.T) {
	cm := NewComponentManager()
	first := &MockComponent{}
	second := &MockComponent{}

	a := NewGameObject("A")
	a.AddComponent(first)
	b := NewGameObject("B")
	b.AddComponent(second)
	cm.RegisterGameObject(a)
	cm.RegisterGameObject(b)

	cm.DispatchEvent(input.ButtonChange{Button: input.ButtonPrimary, Pressed: true})

	if len(first.events) != 1 || len(second.events) != 1 {
		t.Errorf("Expected both components to receive the event, got %d and %d", len(first.events), len(second.events))
	}
}

func TestComponentManagerDispatchSkipsDisabled(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	comp.SetEnabled(false)
	cm.RegisterGameObject(obj)

	cm.DispatchEvent(input.MotionDelta{DX: 1})

	if len(comp.events) != 0 {
		t.Error("Disabled component should not receive events")
	}

	comp.SetEnabled(true)
	obj.Active = false
	cm.DispatchEvent(input.MotionDelta{DX: 1})

	if len(comp.events) != 0 {
		t.Error("Inactive object should not receive events")
	}
}

func TestComponentManagerFindGameObjectsWithTag(t *testing.T) {
	cm := NewComponentManager()
	a := NewGameObject("A")
	a.Tag = "Player"
	b := NewGameObject("B")
	cm.RegisterGameObject(a)
	cm.RegisterGameObject(b)

	found := cm.FindGameObjectsWithTag("Player")

	if len(found) != 1 || found[0] != a {
		t.Errorf("Expected only A tagged Player, got %v", found)
	}
}
