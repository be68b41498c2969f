package behaviour

import "GopherSnippets/internal/input"

// ComponentManager manages all GameObjects and their components
// Similar to Unity's scene management system
type ComponentManager struct {
	gameObjects []*GameObject
}

var GlobalComponentManager = NewComponentManager()

func NewComponentManager() *ComponentManager {
	return &ComponentManager{
		gameObjects: make([]*GameObject, 0),
	}
}

// RegisterGameObject adds a GameObject to the manager
func (cm *ComponentManager) RegisterGameObject(obj *GameObject) {
	cm.gameObjects = append(cm.gameObjects, obj)
	obj.internalStart()
}

// FindGameObject finds a GameObject by name
func (cm *ComponentManager) FindGameObject(name string) *GameObject {
	for _, obj := range cm.gameObjects {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}

// FindGameObjectsWithTag finds all GameObjects with a specific tag
func (cm *ComponentManager) FindGameObjectsWithTag(tag string) []*GameObject {
	var result []*GameObject
	for _, obj := range cm.gameObjects {
		if obj.Tag == tag {
			result = append(result, obj)
		}
	}
	return result
}

// DispatchEvent delivers ev to every enabled EventReceiver on active
// objects, in registration order
func (cm *ComponentManager) DispatchEvent(ev input.Event) {
	for _, obj := range cm.gameObjects {
		obj.internalEvent(ev)
	}
}

// UpdateAll calls Update on all active GameObjects
func (cm *ComponentManager) UpdateAll() {
	for _, obj := range cm.gameObjects {
		obj.internalUpdate()
	}
}

// FixedUpdateAll calls FixedUpdate on all active GameObjects
func (cm *ComponentManager) FixedUpdateAll() {
	for _, obj := range cm.gameObjects {
		obj.internalFixedUpdate()
	}
}

// GetAllGameObjects returns all registered GameObjects
func (cm *ComponentManager) GetAllGameObjects() []*GameObject {
	return cm.gameObjects
}

// Clear removes all GameObjects
func (cm *ComponentManager) Clear() {
	for _, obj := range cm.gameObjects {
		obj.Destroy()
	}
	cm.gameObjects = cm.gameObjects[:0]
}
