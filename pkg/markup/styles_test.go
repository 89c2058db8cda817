package markup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/tinge/pkg/markup"
)

func TestResolve(t *testing.T) {
	markup.SetStyle("warning", "yellow", "bold")
	defer markup.SetStyle("warning")

	assert.Equal(t, []string{"yellow", "bold"}, markup.Resolve("warning"))
	assert.Equal(t, []string{"red"}, markup.Resolve("red"))
	assert.Equal(t, []string{"not-a-style"}, markup.Resolve("not-a-style"))
}

func TestSetStyleRemovesEmpty(t *testing.T) {
	markup.SetStyle("temp", "red")
	require.Contains(t, markup.Styles(), "temp")

	markup.SetStyle("temp")
	assert.NotContains(t, markup.Styles(), "temp")
}

func TestStylesReturnsCopy(t *testing.T) {
	markup.SetStyle("fixed", "green")
	defer markup.SetStyle("fixed")

	snapshot := markup.Styles()
	snapshot["fixed"] = []string{"red"}
	assert.Equal(t, []string{"green"}, markup.Resolve("fixed"))
}

func TestWithStyles(t *testing.T) {
	markup.SetStyle("base", "blue")
	defer markup.SetStyle("base")

	markup.WithStyles(map[string][]string{
		"base":  {"red"},
		"extra": {"bold"},
	}, func() {
		assert.Equal(t, []string{"red"}, markup.Resolve("base"))
		assert.Equal(t, []string{"bold"}, markup.Resolve("extra"))
	})

	assert.Equal(t, []string{"blue"}, markup.Resolve("base"))
	assert.Equal(t, []string{"extra"}, markup.Resolve("extra"))
}

func TestWithStylesRestoresOnPanic(t *testing.T) {
	markup.SetStyle("stable", "cyan")
	defer markup.SetStyle("stable")

	func() {
		defer func() { _ = recover() }()
		markup.WithStyles(map[string][]string{"stable": {"red"}}, func() {
			panic("abnormal exit")
		})
	}()

	assert.Equal(t, []string{"cyan"}, markup.Resolve("stable"))
}
