package opengl

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/lovely/engine/math"
	"github.com/spaghettifunk/lovely/engine/renderer/metadata"
)

// Program is a linked shader program. It implements metadata.UniformSetter;
// uniform locations are looked up once and cached.
type Program struct {
	id        uint32
	locations map[string]int32
}

/**
 * @brief Compiles both stages and links them. A failing stage or link is
 * reported as *metadata.ShaderError carrying the driver's info log.
 */
func NewProgram(vertexSource, fragmentSource string) (*Program, error) {
	vertex, err := compileShader(vertexSource, gl.VERTEX_SHADER, metadata.SHADER_STAGE_VERTEX)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertex)

	fragment, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER, metadata.SHADER_STAGE_FRAGMENT)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragment)

	id := gl.CreateProgram()
	gl.AttachShader(id, vertex)
	gl.AttachShader(id, fragment)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(id, logLen, nil, gl.Str(log))
		gl.DeleteProgram(id)
		return nil, &metadata.ShaderError{Stage: metadata.SHADER_STAGE_LINK, Log: strings.TrimRight(log, "\x00")}
	}

	return &Program{id: id, locations: make(map[string]int32)}, nil
}

func compileShader(source string, shaderType uint32, stage metadata.ShaderStage) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, &metadata.ShaderError{Stage: stage, Log: strings.TrimRight(log, "\x00")}
	}
	return shader, nil
}

func (p *Program) Bind() {
	gl.UseProgram(p.id)
}

func (p *Program) Unbind() {
	gl.UseProgram(0)
}

func (p *Program) Delete() {
	gl.DeleteProgram(p.id)
}

func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

func (p *Program) SetUniformBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	gl.Uniform1i(p.location(name), v)
}

func (p *Program) SetUniformInt(name string, value int32) {
	gl.Uniform1i(p.location(name), value)
}

func (p *Program) SetUniformFloat(name string, value float32) {
	gl.Uniform1f(p.location(name), value)
}

func (p *Program) SetUniformVector3(name string, value math.Vec3f) {
	gl.Uniform3fv(p.location(name), 1, &value[0])
}

// SetUniformTransform uploads value column by column, without transposing.
func (p *Program) SetUniformTransform(name string, value math.Transform) {
	data := value.Data()
	gl.UniformMatrix4fv(p.location(name), 1, false, &data[0])
}
