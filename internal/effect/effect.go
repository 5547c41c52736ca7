package effect

import (
	"context"

	"github.com/jdufort/amethystebot/amethyste"
)

// Params describes one meme to generate. Avatars carries the subject image
// urls in the order the effect expects them. Style is the wire token of the
// effect's style parameter, empty when the effect takes none.
type Params struct {
	Effect  string   `json:"effect"`
	Avatars []string `json:"avatars"`
	Style   string   `json:"style,omitempty"`
}

// Generator turns effect params into image bytes plus their content type.
type Generator interface {
	Generate(context.Context, Params) ([]byte, string, error)
}

type definition struct {
	avatars  int
	format   string
	styles   []string
	generate func(context.Context, *amethyste.Client, Params) ([]byte, error)
}

func single(fn func(*amethyste.Client, context.Context, string) ([]byte, error)) definition {
	return definition{
		avatars: 1,
		format:  "image/png",
		generate: func(ctx context.Context, c *amethyste.Client, p Params) ([]byte, error) {
			return fn(c, ctx, p.Avatars[0])
		},
	}
}

func styleTokens[T ~string](values []T) []string {
	tokens := make([]string, len(values))
	for i, v := range values {
		tokens[i] = string(v)
	}
	return tokens
}

var registry = map[string]definition{
	"versus": {
		avatars: 2,
		format:  "image/png",
		styles:  styleTokens(amethyste.VersusColors("").Values()),
		generate: func(ctx context.Context, c *amethyste.Client, p Params) ([]byte, error) {
			return c.Versus(ctx, p.Avatars[0], p.Avatars[1], amethyste.VersusColors(p.Style))
		},
	},
	"whowouldwin": {
		avatars: 2,
		format:  "image/png",
		generate: func(ctx context.Context, c *amethyste.Client, p Params) ([]byte, error) {
			return c.WhoWouldWin(ctx, p.Avatars[0], p.Avatars[1])
		},
	},
	"batslap": {
		avatars: 2,
		format:  "image/png",
		generate: func(ctx context.Context, c *amethyste.Client, p Params) ([]byte, error) {
			return c.Batslap(ctx, p.Avatars[0], p.Avatars[1])
		},
	},
	"discordhouse": {
		avatars: 1,
		format:  "image/png",
		styles:  styleTokens(amethyste.HypesquadHouse("").Values()),
		generate: func(ctx context.Context, c *amethyste.Client, p Params) ([]byte, error) {
			return c.DiscordHouse(ctx, p.Avatars[0], amethyste.HypesquadHouse(p.Style))
		},
	},
	"symmetry": {
		avatars: 1,
		format:  "image/png",
		styles:  styleTokens(amethyste.Orientation("").Values()),
		generate: func(ctx context.Context, c *amethyste.Client, p Params) ([]byte, error) {
			return c.Symmetry(ctx, p.Avatars[0], amethyste.Orientation(p.Style))
		},
	},
	"trinity": {
		avatars: 1,
		format:  "image/png",
		styles:  styleTokens(amethyste.TrinityType("").Values()),
		generate: func(ctx context.Context, c *amethyste.Client, p Params) ([]byte, error) {
			return c.Trinity(ctx, p.Avatars[0], amethyste.TrinityType(p.Style))
		},
	},
	"triggered": {
		avatars: 1,
		format:  "image/gif",
		generate: func(ctx context.Context, c *amethyste.Client, p Params) ([]byte, error) {
			return c.Triggered(ctx, p.Avatars[0], amethyste.TriggeredOptions{})
		},
	},
	"wanted":        single((*amethyste.Client).Wanted),
	"wasted":        single((*amethyste.Client).Wasted),
	"jail":          single((*amethyste.Client).Jail),
	"tobecontinued": single((*amethyste.Client).ToBeContinued),
	"missionpassed": single((*amethyste.Client).MissionPassed),
}
