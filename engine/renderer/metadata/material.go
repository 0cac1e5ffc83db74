package metadata

/** @brief The name of the default material. */
const DefaultMaterialName string = "default"

/**
 * @brief The on-disk description of a material. Map names are resolved by
 * the texture system; empty names fall back to the default texture.
 */
type MaterialConfig struct {
	Name            string  `toml:"name"`
	ShaderName      string  `toml:"shader"`
	DiffuseMapName  string  `toml:"diffuse_map_name"`
	SpecularMapName string  `toml:"specular_map_name"`
	Shininess       float32 `toml:"shininess"`
	AutoRelease     bool    `toml:"autorelease"`
}

/**
 * @brief The surface properties of a rendered object: two texture maps and
 * the specular exponent.
 */
type Material struct {
	/** @brief Diffuse map texture. */
	DiffuseMapID TextureID
	/** @brief Specular map texture. */
	SpecularMapID TextureID
	/** @brief Specular exponent. */
	Shininess float32
}

/**
 * @brief Uploads the material as the uniform struct named prefix: the
 * diffuse and specular maps become sampler units 0 and 1 and shininess a
 * float. The textures themselves are bound by the backend.
 *
 * @param uniforms The uniform setter of the bound program.
 * @param prefix The name of the material struct in the shader, e.g. "material".
 */
func (m Material) Apply(uniforms UniformSetter, prefix string) {
	uniforms.SetUniformInt(prefix+".diffuse", int32(TEXTURE_UNIT_DIFFUSE))
	uniforms.SetUniformInt(prefix+".specular", int32(TEXTURE_UNIT_SPECULAR))
	uniforms.SetUniformFloat(prefix+".shininess", m.Shininess)
}

// Bindings returns the texture to bind on each unit referenced by Apply.
func (m Material) Bindings() map[TextureUnit]TextureID {
	return map[TextureUnit]TextureID{
		TEXTURE_UNIT_DIFFUSE:  m.DiffuseMapID,
		TEXTURE_UNIT_SPECULAR: m.SpecularMapID,
	}
}
