package page

import (
	"bytes"
	"context"
	_ "embed"
	"html/template"
	"sync"

	"github.com/jdufort/amethystebot/internal/log"
	"github.com/samber/do"
)

//go:embed assets/latest.html
var latestTmpl string

type Params struct {
	Image  string
	Effect string
	Style  string
}

type Templator struct {
	tmpl *template.Template
	once sync.Once
}

func NewTemplator(i *do.Injector) (*Templator, error) {
	return &Templator{}, nil
}

func (g *Templator) Template(ctx context.Context, params Params) ([]byte, error) {
	g.once.Do(func() {
		g.tmpl = template.Must(template.New("latest").Parse(latestTmpl))
	})

	log := log.FromContextOrDiscard(ctx).WithGroup("templator")
	log.Info("generating page")

	var data bytes.Buffer
	if err := g.tmpl.Execute(&data, params); err != nil {
		return nil, err
	}
	return data.Bytes(), nil
}
