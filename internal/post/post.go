package post

import "context"

type Params struct {
	Date   string
	Effect string
	Style  string
}

type Poster interface {
	Post(context.Context, Params) error
}
