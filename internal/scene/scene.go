package scene

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"GopherSnippets/internal/behaviour"
	"GopherSnippets/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// SceneData is the serializable representation of every registered object
type SceneData struct {
	Objects []ObjectData `json:"objects"`
}

type ObjectData struct {
	Name     string       `json:"name"`
	Tag      string       `json:"tag,omitempty"`
	Active   bool         `json:"active"`
	Position [3]float32   `json:"position"`
	Scale    [3]float32   `json:"scale"`
	Rotation [4]float32   `json:"rotation"` // Quaternion: W, X, Y, Z
	Scripts  []ScriptData `json:"scripts,omitempty"`
}

// ScriptData holds one script's identity and its persisted fields
type ScriptData struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Enabled bool           `json:"enabled"`
	Fields  map[string]any `json:"fields,omitempty"`
}

// Capture snapshots all objects in cm
func Capture(cm *behaviour.ComponentManager) *SceneData {
	data := &SceneData{}
	for _, obj := range cm.GetAllGameObjects() {
		data.Objects = append(data.Objects, captureObject(obj))
	}
	return data
}

func captureObject(obj *behaviour.GameObject) ObjectData {
	t := obj.Transform
	od := ObjectData{
		Name:     obj.Name,
		Tag:      obj.Tag,
		Active:   obj.Active,
		Position: [3]float32{t.Position.X(), t.Position.Y(), t.Position.Z()},
		Scale:    [3]float32{t.Scale.X(), t.Scale.Y(), t.Scale.Z()},
		Rotation: [4]float32{t.Rotation.W, t.Rotation.V.X(), t.Rotation.V.Y(), t.Rotation.V.Z()},
	}

	for _, sc := range behaviour.Scripts(obj) {
		sd := ScriptData{ID: sc.ScriptID, Name: sc.ScriptName, Enabled: sc.GetEnabled()}
		if st, ok := behaviour.LookupScriptByID(sc.ScriptID); ok && st.Save != nil {
			sd.Fields = st.Save(sc.Script)
		}
		od.Scripts = append(od.Scripts, sd)
	}
	return od
}

// Restore recreates the objects in data and registers them with cm.
// Scripts whose id is not registered are skipped with a warning; a script
// whose fields fail to load aborts the restore.
func Restore(cm *behaviour.ComponentManager, data *SceneData) error {
	objects := make([]*behaviour.GameObject, 0, len(data.Objects))
	for _, od := range data.Objects {
		obj, err := restoreObject(od)
		if err != nil {
			return err
		}
		objects = append(objects, obj)
	}

	for _, obj := range objects {
		cm.RegisterGameObject(obj)
	}
	return nil
}

func restoreObject(od ObjectData) (*behaviour.GameObject, error) {
	obj := behaviour.NewGameObject(od.Name)
	obj.Tag = od.Tag
	obj.Active = od.Active
	obj.Transform.SetPosition(mgl32.Vec3(od.Position))
	obj.Transform.SetScale(mgl32.Vec3(od.Scale))
	rotation := mgl32.Quat{
		W: od.Rotation[0],
		V: mgl32.Vec3{od.Rotation[1], od.Rotation[2], od.Rotation[3]},
	}
	if rotation.Len() == 0 {
		rotation = mgl32.QuatIdent()
	}
	obj.Transform.SetRotation(rotation)

	for _, sd := range od.Scripts {
		st, ok := behaviour.LookupScriptByID(sd.ID)
		if !ok {
			logger.Log.Warn("Skipping unknown script",
				zap.String("object", od.Name),
				zap.String("id", sd.ID),
				zap.String("name", sd.Name))
			continue
		}

		script := st.New()
		if st.Load != nil && sd.Fields != nil {
			if err := st.Load(script, sd.Fields); err != nil {
				return nil, fmt.Errorf("scene: object %s: script %s: %w", od.Name, st.Name, err)
			}
		}
		sc := behaviour.NewScriptComponent(st, script)
		obj.AddComponent(sc)
		sc.SetEnabled(sd.Enabled)
	}
	return obj, nil
}

func Encode(data *SceneData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

func Decode(raw []byte) (*SceneData, error) {
	var data SceneData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	return &data, nil
}

// Write saves data to path. Paths ending in .gz are gzip-compressed.
func Write(path string, data *SceneData) error {
	raw, err := Encode(data)
	if err != nil {
		return fmt.Errorf("scene: encode: %w", err)
	}

	if isCompressed(path) {
		var buf bytes.Buffer
		gz := gzip.NewWriter(&buf)
		if _, err := gz.Write(raw); err != nil {
			return fmt.Errorf("scene: compress: %w", err)
		}
		if err := gz.Close(); err != nil {
			return fmt.Errorf("scene: compress: %w", err)
		}
		raw = buf.Bytes()
	}

	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("scene: write %s: %w", path, err)
	}
	return nil
}

// Read loads a scene written by Write
func Read(path string) (*SceneData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}

	if isCompressed(path) {
		gz, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("scene: decompress %s: %w", path, err)
		}
		defer gz.Close()
		if raw, err = io.ReadAll(gz); err != nil {
			return nil, fmt.Errorf("scene: decompress %s: %w", path, err)
		}
	}

	return Decode(raw)
}

func isCompressed(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".gz")
}
