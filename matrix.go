package main

import (
	"fmt"
	"iter"
	"slices"
)

const (
	// alternateCC names the toolchain that cannot combine 32-bit builds
	// with heap profiling.
	alternateCC = "clang"
	m32Opt      = "-m32"
	profOpt     = "--enable-prof"

	// profilingUnsupportedOS is the uname of the platform without heap
	// profiling support. Profiled blocks are skipped there at shell time.
	profilingUnsupportedOS = "Darwin"
	// osVar is the shell variable the script stores uname in.
	osVar = "unamestr"
)

// Combinations yields every combination of the matrix: compiler pairs in
// the outer loop, compiler option subsets in the middle and configure
// option subsets innermost. Excluded combinations are yielded too; see
// Excluded.
func (m *Matrix) Combinations() iter.Seq[Combination] {
	return func(yield func(Combination) bool) {
		for _, compiler := range m.Compilers {
			for _, compilerOpts := range powerset(m.CompilerOpts) {
				for _, configOpts := range powerset(m.ConfigOpts) {
					c := Combination{
						Compiler:     compiler,
						CompilerOpts: compilerOpts,
						ConfigOpts:   configOpts,
					}
					if !yield(c) {
						return
					}
				}
			}
		}
	}
}

// Excluded reports whether c is dropped from the script.
//
// NOTE: the -m32 test looks at the candidate list m.CompilerOpts, not at
// c.CompilerOpts. As long as -m32 is a candidate, every clang combination
// with --enable-prof is dropped, including the ones that never pass -m32.
// The intent was most likely to drop only clang + -m32 + --enable-prof, but
// the generated scripts have always had the broader behaviour and it is
// kept as is.
func (m *Matrix) Excluded(c Combination) bool {
	return c.Compiler.CC == alternateCC &&
		slices.Contains(m.CompilerOpts, m32Opt) &&
		slices.Contains(c.ConfigOpts, profOpt)
}

// Guarded reports whether the block for c must only run where heap
// profiling is supported.
func (c Combination) Guarded() bool {
	return slices.Contains(c.ConfigOpts, profOpt)
}

// Validate checks that m can be turned into a script.
func (m *Matrix) Validate() error {
	for i, p := range m.Compilers {
		if p.CC == "" {
			return &ValidationError{Field: fmt.Sprintf("compilers[%d].cc", i), Reason: "must not be empty"}
		}
		if p.CXX == "" {
			return &ValidationError{Field: fmt.Sprintf("compilers[%d].cxx", i), Reason: "must not be empty"}
		}
	}
	if i := duplicateCompiler(m.Compilers); i >= 0 {
		return &ValidationError{
			Field:  fmt.Sprintf("compilers[%d]", i),
			Reason: fmt.Sprintf("duplicate compiler pair %v", m.Compilers[i]),
		}
	}
	if err := validateOpts("compiler_opts", m.CompilerOpts); err != nil {
		return err
	}
	if err := validateOpts("config_opts", m.ConfigOpts); err != nil {
		return err
	}
	if m.MakeJobs < 1 {
		return &ValidationError{Field: "make_jobs", Reason: fmt.Sprintf("must be at least 1, got %d", m.MakeJobs)}
	}
	return nil
}

// validateOpts rejects empty and repeated options. A repeated option would
// produce the same combination twice.
func validateOpts(field string, opts []string) error {
	seen := make(map[string]bool, len(opts))
	for i, opt := range opts {
		if opt == "" {
			return &ValidationError{Field: fmt.Sprintf("%s[%d]", field, i), Reason: "must not be empty"}
		}
		if seen[opt] {
			return &ValidationError{Field: fmt.Sprintf("%s[%d]", field, i), Reason: fmt.Sprintf("duplicate option %q", opt)}
		}
		seen[opt] = true
	}
	return nil
}

// duplicateCompiler returns the index of the first repeated pair, or -1.
func duplicateCompiler(pairs []CompilerPair) int {
	seen := make(map[CompilerPair]bool, len(pairs))
	for i, p := range pairs {
		if seen[p] {
			return i
		}
		seen[p] = true
	}
	return -1
}
