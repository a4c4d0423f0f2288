package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombinationsOrder(t *testing.T) {
	m := Matrix{
		Compilers:    []CompilerPair{{"gcc", "g++"}, {"clang", "clang++"}},
		CompilerOpts: []string{"-m32"},
		ConfigOpts:   []string{"--enable-debug"},
		MakeJobs:     1,
	}

	var got []string
	for c := range m.Combinations() {
		got = append(got, c.String())
	}

	assert.Equal(t, []string{
		"gcc/g++ [] []",
		"gcc/g++ [] [--enable-debug]",
		"gcc/g++ [-m32] []",
		"gcc/g++ [-m32] [--enable-debug]",
		"clang/clang++ [] []",
		"clang/clang++ [] [--enable-debug]",
		"clang/clang++ [-m32] []",
		"clang/clang++ [-m32] [--enable-debug]",
	}, got)
}

func TestCombinationsStopEarly(t *testing.T) {
	m := DefaultMatrix.clone()
	n := 0
	for range m.Combinations() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestDefaultMatrixCombinationsUnique(t *testing.T) {
	m := DefaultMatrix.clone()
	seen := make(map[string]bool)
	total, excluded := 0, 0
	for c := range m.Combinations() {
		key := c.String()
		require.False(t, seen[key], "combination %s yielded twice", key)
		seen[key] = true
		total++
		if m.Excluded(c) {
			excluded++
		}
	}
	// 2 compiler pairs x 2 compiler option subsets x 16 configure subsets.
	assert.Equal(t, 64, total)
	// Every clang combination with --enable-prof: 2 x 8.
	assert.Equal(t, 16, excluded)
}

func TestExcluded(t *testing.T) {
	m := DefaultMatrix.clone()
	clang := CompilerPair{"clang", "clang++"}
	gcc := CompilerPair{"gcc", "g++"}

	tests := []struct {
		name string
		c    Combination
		want bool
	}{
		{"clang m32 prof", Combination{clang, []string{"-m32"}, []string{"--enable-prof"}}, true},
		// -m32 is only checked against the candidate list, so clang
		// without -m32 selected is dropped as well.
		{"clang no m32 prof", Combination{clang, []string{}, []string{"--enable-debug", "--enable-prof"}}, true},
		{"clang m32 no prof", Combination{clang, []string{"-m32"}, []string{"--enable-debug"}}, false},
		{"gcc m32 prof", Combination{gcc, []string{"-m32"}, []string{"--enable-prof"}}, false},
		{"gcc nothing", Combination{gcc, nil, nil}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Excluded(tt.c))
		})
	}
}

func TestExcludedWithoutM32Candidate(t *testing.T) {
	m := DefaultMatrix.clone()
	m.CompilerOpts = []string{"-O2"}

	c := Combination{
		Compiler:   CompilerPair{"clang", "clang++"},
		ConfigOpts: []string{"--enable-prof"},
	}
	assert.False(t, m.Excluded(c))
}

func TestGuarded(t *testing.T) {
	assert.True(t, Combination{ConfigOpts: []string{"--enable-debug", "--enable-prof"}}.Guarded())
	assert.False(t, Combination{ConfigOpts: []string{"--enable-debug"}}.Guarded())
	assert.False(t, Combination{CompilerOpts: []string{"--enable-prof"}}.Guarded())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(m *Matrix)
		field  string
	}{
		{"default", func(m *Matrix) {}, ""},
		{"no compilers", func(m *Matrix) { m.Compilers = nil }, ""},
		{"empty cxx", func(m *Matrix) { m.Compilers[1].CXX = "" }, "compilers[1].cxx"},
		{"duplicate pair", func(m *Matrix) { m.Compilers = append(m.Compilers, m.Compilers[0]) }, "compilers[2]"},
		{"empty compiler opt", func(m *Matrix) { m.CompilerOpts = append(m.CompilerOpts, "") }, "compiler_opts[1]"},
		{"duplicate config opt", func(m *Matrix) { m.ConfigOpts = append(m.ConfigOpts, "--disable-stats") }, "config_opts[4]"},
		{"zero jobs", func(m *Matrix) { m.MakeJobs = 0 }, "make_jobs"},
		{"negative jobs", func(m *Matrix) { m.MakeJobs = -4 }, "make_jobs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := DefaultMatrix.clone()
			tt.modify(&m)
			err := m.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v, want a *ValidationError", err)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestMatrixCloneIsDeep(t *testing.T) {
	m := DefaultMatrix.clone()
	m.Compilers[0].CC = "tcc"
	m.CompilerOpts[0] = "-m64"
	m.ConfigOpts[0] = "--enable-lazy-lock"
	assert.Equal(t, "gcc", DefaultMatrix.Compilers[0].CC)
	assert.Equal(t, "-m32", DefaultMatrix.CompilerOpts[0])
	assert.Equal(t, "--enable-debug", DefaultMatrix.ConfigOpts[0])
}

func ExampleMatrix_Combinations() {
	m := Matrix{
		Compilers:  []CompilerPair{{"gcc", "g++"}},
		ConfigOpts: []string{"--enable-debug", "--enable-prof"},
		MakeJobs:   1,
	}
	for c := range m.Combinations() {
		fmt.Println(c, c.Guarded())
	}
	// Output:
	// gcc/g++ [] [] false
	// gcc/g++ [] [--enable-debug] false
	// gcc/g++ [] [--enable-prof] true
	// gcc/g++ [] [--enable-debug --enable-prof] true
}
