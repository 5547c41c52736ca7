package effect

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/jdufort/amethystebot/internal/log"
	"github.com/samber/do"
	"github.com/samber/lo"
)

type Randomizer struct {
	avatars []string
	rnd     *rand.Rand
}

func NewRandomizer(i *do.Injector) (*Randomizer, error) {
	avatars := do.MustInvokeNamed[[]string](i, "avatars")
	rnd := rand.New(rand.NewSource(time.Now().UTC().Unix()))
	return &Randomizer{avatars, rnd}, nil
}

// Randomize picks a random effect from the registry, the avatars it needs
// from the configured pool, and a random style when the effect takes one.
func (r *Randomizer) Randomize(ctx context.Context) (Params, error) {
	log := log.FromContextOrDiscard(ctx).WithGroup("randomizer")
	log.Info("picking random effect")

	names := lo.Keys(registry)
	sort.Strings(names) // map order would add untracked randomness
	name := names[r.rnd.Intn(len(names))]
	def := registry[name]

	if len(r.avatars) < def.avatars {
		return Params{}, fmt.Errorf("effect %q needs %d avatars, pool has %d", name, def.avatars, len(r.avatars))
	}
	idxs := r.rnd.Perm(len(r.avatars))[:def.avatars]
	params := Params{
		Effect: name,
		Avatars: lo.Map(idxs, func(idx int, _ int) string {
			return r.avatars[idx]
		}),
	}
	if len(def.styles) > 0 {
		params.Style = def.styles[r.rnd.Intn(len(def.styles))]
	}
	return params, nil
}
