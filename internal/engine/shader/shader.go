// Package shader compiles generated GLSL into OpenGL programs and wires
// their uniform blocks to the fixed binding points of the uniform contract.
package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// CompileProgram compiles vertex and fragment sources and links them into
// a program. Returns the program ID or an error with the driver's log.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", string(log))
	}

	return program, nil
}

func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, string(log))
	}

	return shader, nil
}

// BindUniformBlock assigns a named uniform block to a buffer binding point.
// Missing blocks are an error so a pipeline cannot silently run with an
// unbound block.
func BindUniformBlock(program uint32, blockName string, binding uint32) error {
	index := gl.GetUniformBlockIndex(program, gl.Str(blockName+"\x00"))
	if index == gl.INVALID_INDEX {
		return fmt.Errorf("uniform block %q not found in program %d", blockName, program)
	}
	gl.UniformBlockBinding(program, index, binding)
	return nil
}

// BindSamplerUnit points a sampler uniform at a texture unit.
func BindSamplerUnit(program uint32, name string, unit int32) error {
	loc := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	if loc < 0 {
		return fmt.Errorf("sampler %q not found in program %d", name, program)
	}
	gl.ProgramUniform1i(program, loc, unit)
	return nil
}
