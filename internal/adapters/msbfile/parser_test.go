package msbfile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

const twoTargetSrc = `target lib outputs(lib.o) [files(lib.c) targets()] {
	cc -c lib.c -o lib.o
}

target main outputs(main) [files(main.c) targets(lib)] {
	cc main.c lib.o -o main
}
`

func TestParseDeclarations(t *testing.T) {
	targets, err := parseDeclarations(twoTargetSrc)
	require.NoError(t, err)
	require.Len(t, targets, 2)

	lib := targets[0]
	assert.Equal(t, "lib", lib.Name.String())
	require.Len(t, lib.Outputs, 1)
	assert.Equal(t, "lib.o", lib.Outputs[0].String())
	require.Len(t, lib.Inputs, 1)
	assert.Equal(t, "lib.c", lib.Inputs[0].String())
	assert.Empty(t, lib.Dependencies)
	assert.Equal(t, []string{"cc -c lib.c -o lib.o"}, lib.Recipe)

	main := targets[1]
	assert.Equal(t, "main", main.Name.String())
	require.Len(t, main.Dependencies, 1)
	assert.Equal(t, "lib", main.Dependencies[0].String())
	assert.Equal(t, []string{"cc main.c lib.o -o main"}, main.Recipe)
}

func TestParseDeclarations_OmittedOutputs(t *testing.T) {
	targets, err := parseDeclarations(`target clean [files() targets()] {
	rm -f lib.o main
}
`)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Empty(t, targets[0].Outputs)
	assert.True(t, targets[0].Phony())
}

func TestParseDeclarations_MultipleDependencies(t *testing.T) {
	targets, err := parseDeclarations(`target all [files() targets(lib, main)] {
	echo done
}
`)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	require.Len(t, targets[0].Dependencies, 2)
	assert.Equal(t, "lib", targets[0].Dependencies[0].String())
	assert.Equal(t, "main", targets[0].Dependencies[1].String())
}

func TestParseDeclarations_MultiLineRecipe(t *testing.T) {
	targets, err := parseDeclarations(`target gen outputs(out.txt) [files() targets()] {
	echo one > out.txt

	echo two >> out.txt
}
`)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, []string{"echo one > out.txt", "echo two >> out.txt"}, targets[0].Recipe)
}

func TestParseDeclarations_Malformed(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "missing keyword", src: `lib [files() targets()] { true }`},
		{name: "missing dependency list", src: `target lib { true }`},
		{name: "unterminated recipe", src: `target lib [files() targets()] { true`},
		{name: "unclosed files list", src: `target lib [files(lib.c targets()] { true }`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseDeclarations(tc.src)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSyntax), "expected ErrSyntax, got %v", err)
		})
	}
}

func TestParseDeclarations_ErrorCarriesLine(t *testing.T) {
	_, err := parseDeclarations(`target lib outputs(lib.o) [files(lib.c) targets()] {
	cc -c lib.c -o lib.o
}

broken
`)
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, 5, zErr.Metadata()["line"])
}
