package page

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplate(t *testing.T) {
	templator := &Templator{}
	data, err := templator.Template(context.Background(), Params{
		Image:  "20240101.png",
		Effect: "versus",
		Style:  "red_and_blue",
	})
	require.NoError(t, err)

	html := string(data)
	assert.Contains(t, html, `src="20240101.png"`)
	assert.Contains(t, html, "versus")
	assert.Contains(t, html, "red_and_blue")
}

func TestTemplateWithoutStyle(t *testing.T) {
	templator := &Templator{}
	data, err := templator.Template(context.Background(), Params{
		Image:  "20240101.gif",
		Effect: "triggered",
	})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "style:")
}
