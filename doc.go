// gen-run-tests is a tool that generates a shell script running the
// project's full build test matrix.
//
// The script covers every compiler pair, every subset of the compiler
// options and every subset of the configure options, and runs
// configure, make clean and make check for each combination. It is
// printed to stdout.
//
// Example:
//
//	gen-run-tests | sh
//
// Output:
//
//	set -e
//	autoconf
//	unamestr=`uname`
//	EXTRA_CFLAGS=-Werror EXTRA_CXXFLAGS=-Werror ./configure CC="gcc " CXX="g++ "
//	make clean
//	make -j32 check
//	EXTRA_CFLAGS=-Werror EXTRA_CXXFLAGS=-Werror ./configure CC="gcc " CXX="g++ " --enable-debug
//	make clean
//	make -j32 check
//	if [[ "$unamestr" != "Darwin" ]]; then
//	EXTRA_CFLAGS=-Werror EXTRA_CXXFLAGS=-Werror ./configure CC="gcc " CXX="g++ " --enable-prof
//	make clean
//	make -j32 check
//	fi
//	...
//
// Heap profiling is not supported on macOS, so --enable-prof blocks only
// run when uname is not Darwin. clang combinations with --enable-prof are
// left out entirely while -m32 is among the compiler options.
//
// The matrix can be replaced with a YAML file:
//
//	compilers:
//	  - {cc: gcc, cxx: g++}
//	compiler_opts: [-m32]
//	config_opts: [--enable-debug, --disable-stats]
//	make_jobs: 8
//
//	gen-run-tests -matrix=matrix.yaml -o run_tests.sh
package main
