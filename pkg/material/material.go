package material

import (
	"github.com/df07/go-cube-raytracer/pkg/core"
)

// Albedo weight indices
const (
	AlbedoDiffuse = iota
	AlbedoSpecular
	AlbedoReflective
	AlbedoRefractive
)

// FaceCount is the number of faces on a cube and the size of the per-face texture array
const FaceCount = 6

// uvCeiling keeps UV just under 1.0 so sampling never indexes past the last texel
const uvCeiling = 1.0 - 1e-6

// worldUp is the reference axis for the approximate tangent frame used by normal maps
var worldUp = core.NewVec3(0, 1, 0)

// Material describes a Phong-style surface. Materials are shared by pointer
// between cubes and must not be modified once rendering starts.
type Material struct {
	Diffuse         core.Vec3                // Base color when a face has no texture
	Specular        float64                  // Specular exponent
	Albedo          [4]float64               // Diffuse, specular, reflective and refractive weights
	RefractiveIndex float64                  // Index of refraction; <= 0 marks an opaque surface
	Textures        [FaceCount]*ImageTexture // Optional texture per face, indexed by face
	NormalMap       *ImageTexture            // Optional tangent-space normal map
}

// NewMaterial creates a material without textures
func NewMaterial(diffuse core.Vec3, specular float64, albedo [4]float64, refractiveIndex float64) *Material {
	return &Material{
		Diffuse:         diffuse,
		Specular:        specular,
		Albedo:          albedo,
		RefractiveIndex: refractiveIndex,
	}
}

// Black returns a material that contributes nothing
func Black() *Material {
	return &Material{}
}

// WithTexture returns the material after assigning the same texture to every face.
// It is intended for scene construction only.
func (m *Material) WithTexture(texture *ImageTexture) *Material {
	for i := range m.Textures {
		m.Textures[i] = texture
	}
	return m
}

// IsTransparent reports whether the material has any refractive weight
func (m *Material) IsTransparent() bool {
	return m.Albedo[AlbedoRefractive] > 0
}

// Surface resolves the color and shading normal at a point on the given face.
// Faces without a texture fall back to the diffuse color; without a normal map
// the geometric normal is returned unchanged.
func (m *Material) Surface(face int, uv core.Vec2, normal core.Vec3) (core.Vec3, core.Vec3) {
	u := clampUV(uv.X)
	v := clampUV(uv.Y)

	color := m.Diffuse
	if face >= 0 && face < FaceCount && m.Textures[face] != nil {
		color = m.Textures[face].Color(u, v)
	}

	if m.NormalMap == nil {
		return color, normal
	}
	return color, perturbNormal(m.NormalMap, u, v, normal)
}

// perturbNormal applies a tangent-space normal map sample to the geometric normal.
// When the normal is parallel to world-up the tangent degenerates to zero and
// only the sample's Z component survives: the normal is kept when the texel's
// blue channel is above 128 and flipped when it is below.
func perturbNormal(normalMap *ImageTexture, u, v float64, normal core.Vec3) core.Vec3 {
	texel := normalMap.Sample(u, v)
	local := core.NewVec3(
		float64(texel.R)/255.0*2.0-1.0,
		float64(texel.G)/255.0*2.0-1.0,
		float64(texel.B)/255.0*2.0-1.0,
	)

	tangent := normal.Cross(worldUp).Normalize()
	bitangent := normal.Cross(tangent)

	perturbed := tangent.Multiply(local.X).
		Add(bitangent.Multiply(local.Y)).
		Add(normal.Multiply(local.Z)).
		Normalize()
	if perturbed.LengthSquared() == 0 {
		return normal
	}
	return perturbed
}

func clampUV(x float64) float64 {
	return max(0, min(uvCeiling, x))
}
