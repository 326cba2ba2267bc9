package scene

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kvassilev/raytracer/pkg/camera"
	"github.com/kvassilev/raytracer/pkg/core"
	"github.com/kvassilev/raytracer/pkg/geometry"
	"github.com/kvassilev/raytracer/pkg/lights"
	"github.com/kvassilev/raytracer/pkg/material"
)

// ParseError reports a scene document problem tied to a specific field,
// so the CLI can print "scene: field X: message" and exit with the
// scene-load-failure status.
type ParseError struct {
	Field   string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("field %s: %s", e.Field, e.Message)
}

func fieldErr(field, format string, args ...interface{}) error {
	return &ParseError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// document mirrors the scene file's object-style shape: camera, a list
// of objects (spheres/triangles/cylinders), and a list of lights. Valid
// JSON is valid YAML flow style, so JSON scene files decode too. Material
// parameters are read only from each object's nested "material" mapping,
// with the refractive index under "ior"; material keys written directly
// on an object are ignored.
type document struct {
	Camera  cameraDoc   `yaml:"camera"`
	Objects []objectDoc `yaml:"objects"`
	Lights  []lightDoc  `yaml:"lights"`
	Background *[3]float64 `yaml:"background"`
}

type cameraDoc struct {
	Position    [3]float64  `yaml:"position"`
	LookAt      [3]float64  `yaml:"look_at"`
	Target      *[3]float64 `yaml:"target"`
	Up          [3]float64  `yaml:"up"`
	Width       int         `yaml:"width"`
	Height      int         `yaml:"height"`
	Fov         float64     `yaml:"fov"`
	Aperture    float64     `yaml:"aperture"`
	FocusDist   float64     `yaml:"focus_distance"`
}

type materialDoc struct {
	BaseColor       [3]float64 `yaml:"color"`
	Reflectivity    float64    `yaml:"reflectivity"`
	Transparency    float64    `yaml:"transparency"`
	RefractiveIndex float64    `yaml:"ior"`
	TexturePath     string     `yaml:"texture"`
	Bilinear        bool       `yaml:"bilinear"`
}

type objectDoc struct {
	Type     string      `yaml:"type"` // "sphere" | "triangle" | "cylinder"
	Material materialDoc `yaml:"material"`

	Center [3]float64 `yaml:"center"`
	Radius float64    `yaml:"radius"`

	V0 [3]float64 `yaml:"v0"`
	V1 [3]float64 `yaml:"v1"`
	V2 [3]float64 `yaml:"v2"`

	Axis   [3]float64 `yaml:"axis"`
	Height float64    `yaml:"height"`
}

type lightDoc struct {
	Type      string     `yaml:"type"` // "point" | "area"
	Position  [3]float64 `yaml:"position"`
	Color     [3]float64 `yaml:"color"`
	Intensity float64    `yaml:"intensity"`
	Normal    [3]float64 `yaml:"normal"`
	UAxis     [3]float64 `yaml:"u_axis"`
	VAxis     [3]float64 `yaml:"v_axis"`
	Width     float64    `yaml:"width"`
	Height    float64    `yaml:"height"`
}

// Load reads and parses a scene document from path, validates it, and
// builds the resolved Scene (primitives, BVH, lights, camera).
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fieldErr("file", "%v", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fieldErr("document", "%v", err)
	}

	if doc.Camera.Width <= 0 || doc.Camera.Height <= 0 {
		return nil, fieldErr("camera.width/height", "must be positive, got %dx%d", doc.Camera.Width, doc.Camera.Height)
	}
	if doc.Camera.Fov <= 0 || doc.Camera.Fov >= 180 {
		return nil, fieldErr("camera.fov", "must be in (0, 180), got %v", doc.Camera.Fov)
	}

	position, lookAt, up := toVec3(doc.Camera.Position), toVec3(doc.Camera.LookAt), toVec3(doc.Camera.Up)
	if !position.IsFinite() {
		return nil, fieldErr("camera.position", "non-finite value")
	}
	if !lookAt.IsFinite() {
		return nil, fieldErr("camera.look_at", "non-finite value")
	}
	if !up.IsFinite() {
		return nil, fieldErr("camera.up", "non-finite value")
	}
	if math.IsNaN(doc.Camera.Fov) || math.IsInf(doc.Camera.Fov, 0) {
		return nil, fieldErr("camera.fov", "non-finite value")
	}
	if math.IsNaN(doc.Camera.Aperture) || math.IsInf(doc.Camera.Aperture, 0) {
		return nil, fieldErr("camera.aperture", "non-finite value")
	}
	if math.IsNaN(doc.Camera.FocusDist) || math.IsInf(doc.Camera.FocusDist, 0) {
		return nil, fieldErr("camera.focus_distance", "non-finite value")
	}

	cfg := camera.Config{
		Position:      position,
		LookAt:        lookAt,
		Up:            up,
		ImageWidth:    doc.Camera.Width,
		ImageHeight:   doc.Camera.Height,
		VFov:          doc.Camera.Fov,
		Aperture:      doc.Camera.Aperture,
		FocusDistance: doc.Camera.FocusDist,
	}
	if doc.Camera.Target != nil {
		target := toVec3(*doc.Camera.Target)
		if !target.IsFinite() {
			return nil, fieldErr("camera.target", "non-finite value")
		}
		cfg.Target = &target
	}

	shapes := make([]core.Shape, 0, len(doc.Objects))
	baseDir := filepath.Dir(path)
	for i, obj := range doc.Objects {
		shape, err := buildShape(obj, baseDir)
		if err != nil {
			return nil, fieldErr(fmt.Sprintf("objects[%d]", i), "%v", err)
		}
		shapes = append(shapes, shape)
	}

	sceneLights := make([]*lights.Light, 0, len(doc.Lights))
	for i, l := range doc.Lights {
		light, err := buildLight(l)
		if err != nil {
			return nil, fieldErr(fmt.Sprintf("lights[%d]", i), "%v", err)
		}
		sceneLights = append(sceneLights, light)
	}

	background := core.Vec3{}
	if doc.Background != nil {
		background = toVec3(*doc.Background)
		if !background.IsFinite() {
			return nil, fieldErr("background", "non-finite value")
		}
	}

	return &Scene{
		BVH:        core.BuildBVH(shapes),
		Lights:     sceneLights,
		Camera:     camera.NewCamera(cfg),
		Background: background,
	}, nil
}

func buildShape(obj objectDoc, baseDir string) (core.Shape, error) {
	mat, err := buildMaterial(obj.Material, baseDir)
	if err != nil {
		return nil, err
	}

	switch obj.Type {
	case "sphere":
		if obj.Radius <= 0 {
			return nil, fmt.Errorf("radius must be > 0, got %v", obj.Radius)
		}
		if math.IsNaN(obj.Radius) || math.IsInf(obj.Radius, 0) {
			return nil, fmt.Errorf("radius: non-finite value")
		}
		center := toVec3(obj.Center)
		if !center.IsFinite() {
			return nil, fmt.Errorf("center: non-finite value")
		}
		return &geometry.Sphere{Center: center, Radius: obj.Radius, Material: mat}, nil

	case "triangle":
		v0, v1, v2 := toVec3(obj.V0), toVec3(obj.V1), toVec3(obj.V2)
		if !v0.IsFinite() || !v1.IsFinite() || !v2.IsFinite() {
			return nil, fmt.Errorf("vertices: non-finite value")
		}
		edge1, edge2 := v1.Subtract(v0), v2.Subtract(v0)
		if edge1.Cross(edge2).LengthSquared() < 1e-12 {
			return nil, fmt.Errorf("vertices are collinear or degenerate")
		}
		return &geometry.Triangle{V0: v0, V1: v1, V2: v2, Material: mat}, nil

	case "cylinder":
		if obj.Radius <= 0 {
			return nil, fmt.Errorf("radius must be > 0, got %v", obj.Radius)
		}
		if obj.Height <= 0 {
			return nil, fmt.Errorf("height must be > 0, got %v", obj.Height)
		}
		if math.IsNaN(obj.Radius) || math.IsInf(obj.Radius, 0) || math.IsNaN(obj.Height) || math.IsInf(obj.Height, 0) {
			return nil, fmt.Errorf("radius/height: non-finite value")
		}
		center, axis := toVec3(obj.Center), toVec3(obj.Axis)
		if !center.IsFinite() {
			return nil, fmt.Errorf("center: non-finite value")
		}
		if !axis.IsFinite() {
			return nil, fmt.Errorf("axis: non-finite value")
		}
		return geometry.NewCylinder(center, axis, obj.Radius, obj.Height, mat), nil

	default:
		return nil, fmt.Errorf("unknown object type %q", obj.Type)
	}
}

func buildMaterial(doc materialDoc, baseDir string) (*material.Material, error) {
	if doc.Reflectivity+doc.Transparency > 1 {
		return nil, fmt.Errorf("reflectivity + transparency must be <= 1, got %v", doc.Reflectivity+doc.Transparency)
	}
	if math.IsNaN(doc.Reflectivity) || math.IsInf(doc.Reflectivity, 0) {
		return nil, fmt.Errorf("reflectivity: non-finite value")
	}
	if math.IsNaN(doc.Transparency) || math.IsInf(doc.Transparency, 0) {
		return nil, fmt.Errorf("transparency: non-finite value")
	}
	if math.IsNaN(doc.RefractiveIndex) || math.IsInf(doc.RefractiveIndex, 0) {
		return nil, fmt.Errorf("ior: non-finite value")
	}

	baseColor := toVec3(doc.BaseColor)
	if !baseColor.IsFinite() {
		return nil, fmt.Errorf("color: non-finite value")
	}

	m := &material.Material{
		BaseColor:       baseColor,
		Reflectivity:    doc.Reflectivity,
		Transparency:    doc.Transparency,
		RefractiveIndex: doc.RefractiveIndex,
	}
	if doc.Bilinear {
		m.Filter = material.FilterBilinear
	}

	if doc.TexturePath != "" {
		tex, err := LoadTexture(filepath.Join(baseDir, doc.TexturePath))
		if err != nil {
			return nil, fmt.Errorf("texture %q: %w", doc.TexturePath, err)
		}
		m.Texture = tex
	}
	return m, nil
}

func buildLight(doc lightDoc) (*lights.Light, error) {
	position, color := toVec3(doc.Position), toVec3(doc.Color)
	if !position.IsFinite() {
		return nil, fmt.Errorf("position: non-finite value")
	}
	if !color.IsFinite() {
		return nil, fmt.Errorf("color: non-finite value")
	}
	if math.IsNaN(doc.Intensity) || math.IsInf(doc.Intensity, 0) {
		return nil, fmt.Errorf("intensity: non-finite value")
	}

	l := &lights.Light{
		Position:  position,
		Color:     color,
		Intensity: doc.Intensity,
	}
	switch doc.Type {
	case "", "point":
		l.Kind = lights.Point
	case "area":
		l.Kind = lights.Area
		if doc.Width <= 0 || doc.Height <= 0 {
			return nil, fmt.Errorf("area light width/height must be > 0")
		}
		if math.IsNaN(doc.Width) || math.IsInf(doc.Width, 0) || math.IsNaN(doc.Height) || math.IsInf(doc.Height, 0) {
			return nil, fmt.Errorf("width/height: non-finite value")
		}
		normal, uAxis, vAxis := toVec3(doc.Normal), toVec3(doc.UAxis), toVec3(doc.VAxis)
		if !normal.IsFinite() || !uAxis.IsFinite() || !vAxis.IsFinite() {
			return nil, fmt.Errorf("normal/u_axis/v_axis: non-finite value")
		}
		l.Normal = normal.Normalize()
		l.UAxis = uAxis.Normalize()
		l.VAxis = vAxis.Normalize()
		l.Width = doc.Width
		l.Height = doc.Height
	default:
		return nil, fmt.Errorf("unknown light type %q", doc.Type)
	}
	return l, nil
}

func toVec3(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}
