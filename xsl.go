// Package xsl provides a cross-compiler core for an HLSL-family shading
// language, lowering typed shader ASTs to GLSL and Vulkan GLSL.
//
// The package ties together the compilation stages that operate on a parsed
// and analyzed program:
//   - ast — the typed syntax tree, type denoters, and constant evaluator
//   - reflection — extraction of the shader's external contract
//   - glsl — the in-place lowering converter toward GLSL/VKSL
//   - moltenvk — a post-pass retyping RWBuffer objects for MoltenVK
//
// The upstream parser and analyzer produce the *ast.Program this package
// consumes; a downstream emitter prints the lowered tree. Each compilation
// owns its program exclusively: passes run to completion in sequence and
// never share mutable state between programs, so independent compilations
// may run on parallel goroutines.
//
// Example usage:
//
//	data, reports, err := xsl.Reflect(program, ast.TargetFragmentShader)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = reports
//
//	opts := xsl.ConvertOptions{
//	    NameMangling: glsl.DefaultNameMangling(),
//	    Options:      glsl.DefaultOptions(),
//	    Version:      glsl.GLSL450,
//	}
//	if err := xsl.Convert(program, ast.TargetFragmentShader, opts); err != nil {
//	    log.Fatal(err)
//	}
package xsl

import (
	"github.com/gogpu/xsl/ast"
	"github.com/gogpu/xsl/glsl"
	"github.com/gogpu/xsl/moltenvk"
	"github.com/gogpu/xsl/reflection"
)

// Reflect analyzes the program for the given shader target using the
// default reflection options.
func Reflect(program *ast.Program, target ast.ShaderTarget) (*reflection.ReflectionData, []reflection.Report, error) {
	return reflection.Reflect(program, target, reflection.DefaultOptions())
}

// ConvertOptions bundles the lowering configuration.
type ConvertOptions struct {
	// NameMangling configures the renaming prefixes.
	NameMangling glsl.NameMangling

	// Options configures the converter behavior.
	Options glsl.Options

	// Version is the target output language version.
	Version glsl.OutputVersion

	// MoltenVK enables the RWBuffer post-pass after lowering.
	MoltenVK bool
}

// DefaultConvertOptions returns the default lowering configuration for the
// given output version.
func DefaultConvertOptions(version glsl.OutputVersion) ConvertOptions {
	return ConvertOptions{
		NameMangling: glsl.DefaultNameMangling(),
		Options:      glsl.DefaultOptions(),
		Version:      version,
	}
}

// Convert lowers the program in place toward the configured output version
// and optionally applies the MoltenVK post-pass.
func Convert(program *ast.Program, target ast.ShaderTarget, opts ConvertOptions) error {
	if err := glsl.Convert(program, target, opts.NameMangling, opts.Options, opts.Version); err != nil {
		return err
	}
	if opts.MoltenVK {
		moltenvk.Convert(program)
	}
	return nil
}
