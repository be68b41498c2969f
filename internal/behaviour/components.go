package behaviour

import "GopherSnippets/internal/input"

// ComponentType defines the category of a component
type ComponentType string

const (
	ComponentTypeTransform ComponentType = "Transform"
	ComponentTypeScript    ComponentType = "Script"
	ComponentTypeCustom    ComponentType = "Custom"
)

// TypedComponent extends Component with type information
type TypedComponent interface {
	Component
	GetComponentType() ComponentType
	GetTypeName() string
}

func (t *Transform) GetComponentType() ComponentType {
	return ComponentTypeTransform
}

func (t *Transform) GetTypeName() string {
	return "Transform"
}

// ScriptComponent is a wrapper for user scripts to identify them as scripts
type ScriptComponent struct {
	BaseComponent
	ScriptID   string
	ScriptName string
	Script     Component // The actual script implementation
}

func NewScriptComponent(scriptType ScriptType, script Component) *ScriptComponent {
	return &ScriptComponent{
		ScriptID:   scriptType.ID,
		ScriptName: scriptType.Name,
		Script:     script,
	}
}

func (s *ScriptComponent) GetComponentType() ComponentType {
	return ComponentTypeScript
}

func (s *ScriptComponent) GetTypeName() string {
	return s.ScriptName
}

func (s *ScriptComponent) SetEnabled(enabled bool) {
	s.BaseComponent.SetEnabled(enabled)
	if s.Script != nil {
		s.Script.SetEnabled(enabled)
	}
}

func (s *ScriptComponent) Awake() {
	if s.Script != nil {
		s.Script.SetGameObject(s.GetGameObject())
		s.Script.Awake()
	}
}

func (s *ScriptComponent) Start() {
	if s.Script != nil {
		s.Script.Start()
	}
}

func (s *ScriptComponent) Update() {
	if s.Script != nil && s.GetEnabled() {
		s.Script.Update()
	}
}

func (s *ScriptComponent) FixedUpdate() {
	if s.Script != nil && s.GetEnabled() {
		s.Script.FixedUpdate()
	}
}

func (s *ScriptComponent) OnEvent(ev input.Event) {
	if s.Script == nil || !s.GetEnabled() {
		return
	}
	if receiver, ok := s.Script.(EventReceiver); ok {
		receiver.OnEvent(ev)
	}
}

func (s *ScriptComponent) OnDestroy() {
	if s.Script != nil {
		s.Script.OnDestroy()
	}
}

// Helper function to get component type name
func GetComponentTypeName(comp Component) string {
	if typed, ok := comp.(TypedComponent); ok {
		return typed.GetTypeName()
	}
	return "Unknown"
}

// Helper function to get component category
func GetComponentCategory(comp Component) ComponentType {
	if typed, ok := comp.(TypedComponent); ok {
		return typed.GetComponentType()
	}
	return ComponentTypeCustom
}

// Scripts returns the script wrappers attached to obj, in attach order
func Scripts(obj *GameObject) []*ScriptComponent {
	var result []*ScriptComponent
	for _, comp := range obj.Components {
		if GetComponentCategory(comp) != ComponentTypeScript {
			continue
		}
		if sc, ok := comp.(*ScriptComponent); ok {
			result = append(result, sc)
		}
	}
	return result
}
