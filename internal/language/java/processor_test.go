package java

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/language"
	"github.com/IgorBayerl/ReportGenerator/gapreport/internal/model"
)

const fooSource = `package com.example.pkg;

import java.util.List;

/**
 * A small class.
 */
public class Foo {
    private int value;

    public Foo(int value) {
        this.value = value;
    }

    // public int ignored() {
    public int get() {
        return value;
    }

    protected static Foo of(int v) {
        return new Foo(v);
    }
}
`

func TestJavaProcessor_Scan(t *testing.T) {
	structure := NewJavaProcessor().Scan("src/main/java/com/example/pkg/Foo.java", fooSource)

	assert.Equal(t, "com.example.pkg", structure.Package)
	assert.Equal(t, "Foo", language.ClassName(structure.Path))

	require.Len(t, structure.Members, 3)
	assert.Equal(t, 11, structure.Members[0].Line)
	assert.Equal(t, "Foo", structure.Members[0].Name)
	assert.Equal(t, 16, structure.Members[1].Line)
	assert.Equal(t, "public int get() {", structure.Members[1].Signature)
	assert.Equal(t, model.Protected, structure.Members[2].Visibility)
	assert.True(t, structure.Members[2].IsStatic)
}

func TestJavaProcessor_Detect(t *testing.T) {
	p := NewJavaProcessor()
	assert.True(t, p.Detect("a/B.java"))
	assert.True(t, p.Detect(`C:\src\B.JAVA`))
	assert.False(t, p.Detect("a/B.kt"))
	assert.Equal(t, "B", p.ClassName(`C:\src\B.java`))
	assert.Equal(t, "B", language.ClassName("src/main/java/a/B.java"), "resolved through the registry")
}

func TestPackageName(t *testing.T) {
	assert.Equal(t, "a.b", PackageName("// header\npackage a.b;\nclass X {}"))
	assert.Equal(t, "", PackageName("class X {}"))
	assert.Equal(t, "", PackageName("package a.b"), "a package line needs its semicolon")
}

func TestScanFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Foo.java")
	require.NoError(t, os.WriteFile(path, []byte(fooSource), 0o644))

	structure, err := language.ScanFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, structure.Path)
	assert.Len(t, structure.Members, 3)

	_, err = language.ScanFile(filepath.Join(dir, "Missing.java"))
	require.Error(t, err)
	assert.Equal(t, model.KindNotFound, model.KindOf(err))
}
