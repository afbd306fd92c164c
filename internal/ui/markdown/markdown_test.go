package markdown

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

// stripANSI removes ANSI escape codes from a string for easier testing.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func TestNew(t *testing.T) {
	r, err := New(80, "")
	require.NoError(t, err, "unexpected error")
	require.NotNil(t, r, "expected non-nil renderer")
	require.Equal(t, 80, r.Width())
}

func TestNew_LightStyle(t *testing.T) {
	r, err := New(60, "light")
	require.NoError(t, err)
	require.Equal(t, 60, r.Width())
}

func TestRenderer_Render_Heading(t *testing.T) {
	r, err := New(80, "")
	require.NoError(t, err, "New error")

	result, err := r.Render("# Registration Successful\n\nYou're now registered")
	require.NoError(t, err, "Render error")

	stripped := stripANSI(result)
	require.Contains(t, stripped, "Registration Successful")
	require.Contains(t, stripped, "registered")
}

func TestRenderer_Render_BoldAndList(t *testing.T) {
	r, err := New(80, "")
	require.NoError(t, err, "New error")

	result, err := r.Render("**CS101**: Introduction\n\n- Credits: 3\n- Schedule: MWF")
	require.NoError(t, err, "Render error")

	stripped := stripANSI(result)
	require.Contains(t, stripped, "CS101")
	require.Contains(t, stripped, "Credits: 3")
}

func TestRenderer_Render_EmptyString(t *testing.T) {
	r, err := New(80, "")
	require.NoError(t, err, "New error")

	result, err := r.Render("")
	require.NoError(t, err, "Render error")

	require.LessOrEqual(t, len(result), 10, "expected minimal output for empty string, got: %q", result)
}

func TestRenderer_Render_PlainText(t *testing.T) {
	r, err := New(80, "")
	require.NoError(t, err, "New error")

	result, err := r.Render("Please log in first to register for courses")
	require.NoError(t, err, "Render error")

	require.Contains(t, stripANSI(result), "log in first")
}
