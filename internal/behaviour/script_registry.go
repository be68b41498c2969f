package behaviour

import (
	"errors"
	"fmt"
	"sort"
)

type ScriptConstructor func() Component

// ScriptType describes a registered script: a stable identity plus the hooks
// the host needs to create it and persist its fields.
type ScriptType struct {
	ID   string // Stable identifier, used in saved scenes
	Name string // Human readable name, used by AttachScript
	New  ScriptConstructor

	// Save returns the script's persisted fields. Load applies them to a
	// freshly constructed script. Both may be nil for scripts with no state.
	Save func(Component) map[string]any
	Load func(Component, map[string]any) error
}

var (
	ErrDuplicateScript = errors.New("script already registered")
	ErrUnknownScript   = errors.New("unknown script")
)

var (
	scriptRegistry = make(map[string]ScriptType) // by name
	scriptIDs      = make(map[string]string)     // id -> name
)

// RegisterScript adds a script type. IDs and names must both be unique.
func RegisterScript(st ScriptType) error {
	if st.ID == "" || st.Name == "" {
		return fmt.Errorf("register script %q: id and name are required", st.Name)
	}
	if st.New == nil {
		return fmt.Errorf("register script %q: constructor is nil", st.Name)
	}
	if _, exists := scriptRegistry[st.Name]; exists {
		return fmt.Errorf("register script %q: %w", st.Name, ErrDuplicateScript)
	}
	if other, exists := scriptIDs[st.ID]; exists {
		return fmt.Errorf("register script %q: id %s used by %q: %w", st.Name, st.ID, other, ErrDuplicateScript)
	}

	scriptRegistry[st.Name] = st
	scriptIDs[st.ID] = st.Name
	return nil
}

// MustRegisterScript is RegisterScript for init functions
func MustRegisterScript(st ScriptType) {
	if err := RegisterScript(st); err != nil {
		panic(err)
	}
}

func GetAvailableScripts() []string {
	names := make([]string, 0, len(scriptRegistry))
	for name := range scriptRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func LookupScript(name string) (ScriptType, bool) {
	st, ok := scriptRegistry[name]
	return st, ok
}

func LookupScriptByID(id string) (ScriptType, bool) {
	name, ok := scriptIDs[id]
	if !ok {
		return ScriptType{}, false
	}
	return LookupScript(name)
}

// AttachScript creates the named script and adds it to obj wrapped in a
// ScriptComponent.
func AttachScript(obj *GameObject, name string) (*ScriptComponent, error) {
	st, ok := LookupScript(name)
	if !ok {
		return nil, fmt.Errorf("attach %q to %s: %w", name, obj.Name, ErrUnknownScript)
	}
	sc := NewScriptComponent(st, st.New())
	obj.AddComponent(sc)
	return sc, nil
}

func resetScriptRegistry() {
	scriptRegistry = make(map[string]ScriptType)
	scriptIDs = make(map[string]string)
}
