package domain_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/instant/internal/core/domain"
)

func TestParseProjectPath(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{in: ":"},
		{in: ":sub"},
		{in: ":sub:a"},
		{in: "", wantErr: true},
		{in: "sub", wantErr: true},
		{in: ":sub:", wantErr: true},
		{in: ":sub::a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := domain.ParseProjectPath(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidProjectPath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.in, p.String())
		})
	}
}

func TestProjectPath_Parent(t *testing.T) {
	parent, ok := domain.MustParseProjectPath(":sub:a").Parent()
	require.True(t, ok)
	assert.Equal(t, ":sub", parent.String())

	parent, ok = parent.Parent()
	require.True(t, ok)
	assert.True(t, parent.IsRoot())

	_, ok = parent.Parent()
	assert.False(t, ok)
}

func TestProjectPath_ChildAndName(t *testing.T) {
	p := domain.RootPath.Child("sub").Child("a")
	assert.Equal(t, ":sub:a", p.String())
	assert.Equal(t, "a", p.Name())
	assert.Equal(t, []string{"sub", "a"}, p.Segments())
	assert.Empty(t, domain.RootPath.Name())
}

func TestProjectPath_IsAncestorOf(t *testing.T) {
	sub := domain.MustParseProjectPath(":sub")
	assert.True(t, domain.RootPath.IsAncestorOf(sub))
	assert.True(t, sub.IsAncestorOf(domain.MustParseProjectPath(":sub:a")))
	assert.False(t, sub.IsAncestorOf(domain.MustParseProjectPath(":subway")))
	assert.False(t, sub.IsAncestorOf(sub))
}

func TestProjectPath_Compare(t *testing.T) {
	paths := []domain.ProjectPath{
		domain.MustParseProjectPath(":b"),
		domain.MustParseProjectPath(":a-x"),
		domain.MustParseProjectPath(":a:b"),
		domain.MustParseProjectPath(":a"),
		domain.RootPath,
	}
	slices.SortFunc(paths, domain.ProjectPath.Compare)

	got := make([]string, 0, len(paths))
	for _, p := range paths {
		got = append(got, p.String())
	}
	assert.Equal(t, []string{":", ":a", ":a:b", ":a-x", ":b"}, got)
}

func TestProjectPath_TaskPath(t *testing.T) {
	assert.Equal(t, ":build", domain.RootPath.TaskPath("build"))
	assert.Equal(t, ":sub:a:build", domain.MustParseProjectPath(":sub:a").TaskPath("build"))
}
