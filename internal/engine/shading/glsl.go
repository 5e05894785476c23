package shading

import (
	"fmt"
	"strconv"
	"strings"
)

// GLSL realization of the pipeline variants. Each Config generates its
// own pair of shader sources from the same templates, so the three
// near-duplicate programs are one parameterized construction and cannot
// drift from the pure-function semantics.

// VertexSource returns the GLSL vertex shader for the variant.
func (c Config) VertexSource() string {
	var b strings.Builder

	b.WriteString(`#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aUV;

layout (std140) uniform Globals {
	mat4 uMVP;
};

`)

	if c.windowed() {
		b.WriteString(`layout (std140) uniform Locals {
	mat4 uTransform;
	vec4 uUVWindow;
};
`)
	} else {
		b.WriteString(`layout (std140) uniform Locals {
	mat4 uTransform;
};
`)
	}

	b.WriteString(`
out vec2 vUV;

void main() {
	vec4 world = uTransform * vec4(aPosition, 1.0);
	gl_Position = uMVP * world;
`)

	switch c.Windowing {
	case WindowingPlain:
		b.WriteString("\tvUV = uUVWindow.xy + uUVWindow.zw * aUV;\n")
	case WindowingInset:
		e := glslFloat(c.inset())
		fmt.Fprintf(&b, "\tvUV = uUVWindow.xy + vec2(%s) + (uUVWindow.zw - vec2(2.0 * %s)) * aUV;\n", e, e)
	default:
		b.WriteString("\tvUV = aUV;\n")
	}

	b.WriteString("}\n")
	return b.String()
}

// FragmentSource returns the GLSL fragment shader for the variant.
func (c Config) FragmentSource() string {
	if !c.Textured {
		return fmt.Sprintf(`#version 410 core

in vec2 vUV;
out vec4 fragColor;

void main() {
	fragColor = vec4(vUV, %s, 1.0);
}
`, glslFloat(DebugBlue))
	}

	var b strings.Builder
	b.WriteString(`#version 410 core

in vec2 vUV;
out vec4 fragColor;

uniform sampler2D uTexture;

void main() {
	vec4 color = texture(uTexture, vUV);
`)

	if c.Cutout {
		fmt.Fprintf(&b, "\tif (color.a < %s) {\n\t\tdiscard;\n\t}\n", glslFloat(AlphaCutoff))
	}

	b.WriteString("\tfragColor = color;\n}\n")
	return b.String()
}

// glslFloat formats a float32 as a GLSL float literal.
func glslFloat(v float32) string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
