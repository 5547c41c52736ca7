package effect

import (
	"context"
	"fmt"

	"github.com/jdufort/amethystebot/amethyste"
	"github.com/jdufort/amethystebot/internal/log"
	"github.com/samber/do"
)

type AmethysteGenerator struct {
	client *amethyste.Client
}

func NewAmethysteGenerator(i *do.Injector) (Generator, error) {
	return &AmethysteGenerator{client: do.MustInvoke[*amethyste.Client](i)}, nil
}

func (g *AmethysteGenerator) Generate(ctx context.Context, params Params) ([]byte, string, error) {
	log := log.FromContextOrDiscard(ctx).With("effect", params.Effect, "style", params.Style)
	log.Info("generating image")

	def, ok := registry[params.Effect]
	if !ok {
		return nil, "", fmt.Errorf("unknown effect %q", params.Effect)
	}
	if len(params.Avatars) < def.avatars {
		return nil, "", fmt.Errorf("effect %q needs %d avatars, got %d", params.Effect, def.avatars, len(params.Avatars))
	}

	data, err := def.generate(ctx, g.client, params)
	if err != nil {
		return nil, "", err
	}
	return data, def.format, nil
}
