package renderer

const meshVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vNormal;

void main() {
	vNormal = mat3(transpose(inverse(uModel))) * aNormal;
	gl_Position = uProjection * uView * uModel * vec4(aPos, 1.0);
}
`

// Lighting is two-sided so the sky dome is lit from inside.
const meshFragmentShader = `
#version 410 core

uniform vec4 uColor;
uniform vec3 uLightDir;

in vec3 vNormal;
out vec4 FragColor;

void main() {
	vec3 n = normalize(vNormal);
	float diffuse = abs(dot(n, -uLightDir));
	float light = 0.35 + 0.65 * diffuse;
	FragColor = vec4(uColor.rgb * light, uColor.a);
}
`

const lineVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uView;
uniform mat4 uProjection;

void main() {
	gl_Position = uProjection * uView * vec4(aPos, 1.0);
}
`

const lineFragmentShader = `
#version 410 core

uniform vec4 uColor;
out vec4 FragColor;

void main() {
	FragColor = uColor;
}
`
