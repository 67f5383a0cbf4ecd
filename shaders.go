package gl2d

import "unsafe"

// Uniform names used by the 2D program.
const (
	UniformScreenSize  = "u_ScreenSize"
	UniformFontTexture = "u_FontTexture"
)

// VertexShaderSource transforms pixel positions (origin top-left) to clip
// space. The 0.375 offset nudges rasterisation onto pixel centers so
// one-pixel lines land on the intended row.
const VertexShaderSource = `#version 410 core
layout (location = 0) in vec2 vert_Position;
layout (location = 1) in vec4 vert_Color;
layout (location = 2) in vec2 vert_UV;

uniform vec2 u_ScreenSize;

out vec4 Color;
out vec2 UV;

void main() {
    vec2 clipPos = (vert_Position + vec2(0.375)) / u_ScreenSize;
    clipPos.y = 1.0 - clipPos.y;
    clipPos = clipPos * 2.0 - 1.0;

    gl_Position = vec4(clipPos, 0.0, 1.0);
    Color = vert_Color;
    UV = vert_UV;
}
`

// FragmentShaderSource modulates the atlas texel by the vertex color.
const FragmentShaderSource = `#version 410 core
uniform sampler2D u_FontTexture;

in vec4 Color;
in vec2 UV;

out vec4 out_Color;

void main() {
    out_Color = texture(u_FontTexture, UV) * Color;
}
`

// VertexLayout2D is the attribute layout of Vertex.
var VertexLayout2D = VertexLayout{
	Stride: int(unsafe.Sizeof(Vertex{})),
	Attribs: []VertexAttrib{
		{Location: 0, Components: 2, Type: AttribFloat32, Offset: unsafe.Offsetof(Vertex{}.Pos)},
		{Location: 1, Components: 4, Type: AttribFloat32, Offset: unsafe.Offsetof(Vertex{}.Color)},
		{Location: 2, Components: 2, Type: AttribFloat32, Offset: unsafe.Offsetof(Vertex{}.UV)},
	},
}
