package metadata

import (
	"fmt"
	"os"

	"github.com/spaghettifunk/lovely/engine/math"
)

/**
 * @brief The step of building a shader program that failed.
 */
type ShaderStage int

const (
	SHADER_STAGE_VERTEX ShaderStage = iota
	SHADER_STAGE_FRAGMENT
	SHADER_STAGE_LINK
)

func (s ShaderStage) String() string {
	switch s {
	case SHADER_STAGE_VERTEX:
		return "vertex"
	case SHADER_STAGE_FRAGMENT:
		return "fragment"
	case SHADER_STAGE_LINK:
		return "link"
	}
	return fmt.Sprintf("ShaderStage(%d)", int(s))
}

/**
 * @brief Returned by the graphics backend when a shader fails to compile or
 * a program fails to link. Log carries the driver's info log.
 */
type ShaderError struct {
	Stage ShaderStage
	Log   string
}

func (e *ShaderError) Error() string {
	if e.Stage == SHADER_STAGE_LINK {
		return "error while linking shader program: " + e.Log
	}
	return fmt.Sprintf("error while compiling %s shader: %s", e.Stage, e.Log)
}

/**
 * @brief Vertex and fragment source code of one shader program.
 */
type ShaderSource struct {
	Name     string
	Vertex   string
	Fragment string
}

/**
 * @brief Reads the vertex and fragment sources of a shader program from disk.
 *
 * @param name The name given to the program.
 * @param vertexPath Path to the vertex shader source.
 * @param fragmentPath Path to the fragment shader source.
 * @return The loaded sources or an error if either file cannot be read.
 */
func LoadShaderSource(name, vertexPath, fragmentPath string) (*ShaderSource, error) {
	vs, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("shader %q: reading vertex source: %w", name, err)
	}
	fs, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("shader %q: reading fragment source: %w", name, err)
	}
	return &ShaderSource{Name: name, Vertex: string(vs), Fragment: string(fs)}, nil
}

/**
 * @brief Uploads uniform values to the bound shader program. Transforms
 * are passed as 16 column-major floats and vectors as 3 floats, the layout
 * the graphics API expects.
 */
type UniformSetter interface {
	SetUniformBool(name string, value bool)
	SetUniformInt(name string, value int32)
	SetUniformFloat(name string, value float32)
	SetUniformVector3(name string, value math.Vec3f)
	SetUniformTransform(name string, value math.Transform)
}

// RecordingUniforms is a UniformSetter that keeps the last value written to
// every uniform, flattened the way a graphics backend would receive it.
type RecordingUniforms struct {
	Ints       map[string]int32
	Floats     map[string]float32
	Vectors    map[string][3]float32
	Transforms map[string][16]float32
	// Order lists uniform names in the order they were first written.
	Order []string
}

func NewRecordingUniforms() *RecordingUniforms {
	return &RecordingUniforms{
		Ints:       make(map[string]int32),
		Floats:     make(map[string]float32),
		Vectors:    make(map[string][3]float32),
		Transforms: make(map[string][16]float32),
	}
}

func (r *RecordingUniforms) seen(name string) {
	for _, n := range r.Order {
		if n == name {
			return
		}
	}
	r.Order = append(r.Order, name)
}

// SetUniformBool stores value as an int, like glUniform1i.
func (r *RecordingUniforms) SetUniformBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	r.SetUniformInt(name, v)
}

func (r *RecordingUniforms) SetUniformInt(name string, value int32) {
	r.seen(name)
	r.Ints[name] = value
}

func (r *RecordingUniforms) SetUniformFloat(name string, value float32) {
	r.seen(name)
	r.Floats[name] = value
}

func (r *RecordingUniforms) SetUniformVector3(name string, value math.Vec3f) {
	r.seen(name)
	var flat [3]float32
	copy(flat[:], value.Slice())
	r.Vectors[name] = flat
}

func (r *RecordingUniforms) SetUniformTransform(name string, value math.Transform) {
	r.seen(name)
	r.Transforms[name] = value.Data()
}

// Reset forgets every recorded value.
func (r *RecordingUniforms) Reset() {
	clear(r.Ints)
	clear(r.Floats)
	clear(r.Vectors)
	clear(r.Transforms)
	r.Order = r.Order[:0]
}
