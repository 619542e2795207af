package renderer

const sceneVertexShader = `#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec3 aColor;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;
uniform mat3 uNormalMatrix;
uniform float uPointSize;
uniform float uPointScale;

out vec3 vWorldPos;
out vec3 vNormal;
out vec3 vColor;
out float vViewDepth;

void main() {
    vec4 world = uModel * vec4(aPosition, 1.0);
    vec4 view = uView * world;
    vWorldPos = world.xyz;
    vNormal = normalize(uNormalMatrix * aNormal);
    vColor = aColor;
    vViewDepth = -view.z;
    gl_PointSize = max(1.0, uPointSize * uPointScale / max(-view.z, 0.001));
    gl_Position = uProjection * view;
}
`

const sceneFragmentShader = `#version 410 core

#define MAX_DIR 2
#define MAX_POINT 4

in vec3 vWorldPos;
in vec3 vNormal;
in vec3 vColor;
in float vViewDepth;

uniform vec3 uColor;
uniform float uOpacity;
uniform vec3 uEmissive;
uniform float uShininess;
uniform bool uUnlit;
uniform bool uVertexColors;
uniform vec3 uCameraPos;

uniform vec3 uAmbient;
uniform vec3 uDirDirections[MAX_DIR];
uniform vec3 uDirColors[MAX_DIR];
uniform int uDirCount;
uniform vec3 uPointPositions[MAX_POINT];
uniform vec3 uPointColors[MAX_POINT];
uniform float uPointRanges[MAX_POINT];
uniform int uPointCount;

uniform vec3 uFogColor;
uniform float uFogNear;
uniform float uFogFar;

out vec4 FragColor;

vec3 shade(vec3 n, vec3 l, vec3 v, vec3 radiance) {
    float diff = max(dot(n, l), 0.0);
    vec3 h = normalize(l + v);
    float spec = diff > 0.0 ? pow(max(dot(n, h), 0.0), uShininess) * 0.5 : 0.0;
    return radiance * (diff + spec);
}

void main() {
    vec3 base = uColor;
    if (uVertexColors) {
        base *= vColor;
    }

    vec3 color = base;
    if (!uUnlit) {
        vec3 n = normalize(vNormal);
        if (!gl_FrontFacing) {
            n = -n;
        }
        vec3 v = normalize(uCameraPos - vWorldPos);
        vec3 light = uAmbient;
        for (int i = 0; i < uDirCount; i++) {
            light += shade(n, uDirDirections[i], v, uDirColors[i]);
        }
        for (int i = 0; i < uPointCount; i++) {
            vec3 toLight = uPointPositions[i] - vWorldPos;
            float dist = length(toLight);
            float att = 1.0;
            if (uPointRanges[i] > 0.0) {
                att = clamp(1.0 - dist / uPointRanges[i], 0.0, 1.0);
                att *= att;
            }
            light += shade(n, toLight / max(dist, 0.0001), v, uPointColors[i] * att);
        }
        color = base * light;
    }
    color += uEmissive;

    float fog = clamp((vViewDepth - uFogNear) / max(uFogFar - uFogNear, 0.0001), 0.0, 1.0);
    FragColor = vec4(mix(color, uFogColor, fog), uOpacity);
}
`
