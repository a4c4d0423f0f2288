package main

import (
	"fmt"
	"slices"
	"strings"
)

// CompilerPair is a C compiler and the matching C++ compiler.
type CompilerPair struct {
	CC  string `yaml:"cc"`
	CXX string `yaml:"cxx"`
}

func (p CompilerPair) String() string {
	return p.CC + "/" + p.CXX
}

// Matrix describes every dimension of the test matrix.
//
// Compilers, CompilerOpts and ConfigOpts are ordered: the emitted script
// follows their order exactly.
type Matrix struct {
	Compilers    []CompilerPair `yaml:"compilers"`
	CompilerOpts []string       `yaml:"compiler_opts"` // appended to both CC and CXX
	ConfigOpts   []string       `yaml:"config_opts"`   // passed to ./configure
	MakeJobs     int            `yaml:"make_jobs"`     // make -j value
}

// DefaultMatrix is the matrix used when no matrix file is given.
var DefaultMatrix = Matrix{
	Compilers: []CompilerPair{
		{CC: "gcc", CXX: "g++"},
		{CC: "clang", CXX: "clang++"},
	},
	CompilerOpts: []string{
		"-m32",
	},
	ConfigOpts: []string{
		"--enable-debug",
		"--enable-prof",
		"--disable-stats",
		"--with-malloc-conf=tcache:false",
	},
	MakeJobs: 32,
}

// clone returns a copy of m that shares no slices with it.
func (m Matrix) clone() Matrix {
	return Matrix{
		Compilers:    slices.Clone(m.Compilers),
		CompilerOpts: slices.Clone(m.CompilerOpts),
		ConfigOpts:   slices.Clone(m.ConfigOpts),
		MakeJobs:     m.MakeJobs,
	}
}

// Combination is one (compiler pair, compiler options, configure options)
// triple of the matrix.
type Combination struct {
	Compiler     CompilerPair
	CompilerOpts []string
	ConfigOpts   []string
}

func (c Combination) String() string {
	return fmt.Sprintf("%v [%s] [%s]", c.Compiler,
		strings.Join(c.CompilerOpts, " "),
		strings.Join(c.ConfigOpts, " "))
}

// Report counts what a generator run emitted.
type Report struct {
	Emitted int // blocks written
	Skipped int // combinations dropped by the exclusion rule
	Guarded int // emitted blocks wrapped in the OS guard
}

// ValidationError is returned for a matrix that cannot be turned into a
// script.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid matrix %s: %s", e.Field, e.Reason)
}
