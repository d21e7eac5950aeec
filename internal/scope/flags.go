package scope

import (
	"context"
	"fmt"

	"github.com/medaskca/tom/internal/model"
)

// Dashboard-wide flags.
var (
	Hospital   = New("hospital", model.DefaultHospital)
	DataSource = New("data-source", model.DefaultDataSource)
	Listening  = New("listening", false)
)

// Cells groups the provided dashboard flags.
type Cells struct {
	Hospital   *Cell[string]
	DataSource *Cell[string]
	Listening  *Cell[bool]
}

// ProvideAll installs all dashboard flags into ctx with their defaults.
func ProvideAll(ctx context.Context) (context.Context, Cells) {
	var cells Cells
	ctx, cells.Hospital = Hospital.Provide(ctx)
	ctx, cells.DataSource = DataSource.Provide(ctx)
	ctx, cells.Listening = Listening.Provide(ctx)
	return ctx, cells
}

// Lookup resolves all dashboard flags from ctx.
func Lookup(ctx context.Context) (Cells, error) {
	var (
		cells Cells
		err   error
	)
	if cells.Hospital, err = Hospital.From(ctx); err != nil {
		return Cells{}, err
	}
	if cells.DataSource, err = DataSource.From(ctx); err != nil {
		return Cells{}, err
	}
	if cells.Listening, err = Listening.From(ctx); err != nil {
		return Cells{}, err
	}
	return cells, nil
}

// Cycle advances c to the entry after its current value in options, wrapping
// around. A value not in options moves to the first entry.
func Cycle(c *Cell[string], options []string) (string, error) {
	if len(options) == 0 {
		return c.Get(), fmt.Errorf("no options to cycle %s", c.Name())
	}
	return c.Update(func(cur string) string {
		for i, o := range options {
			if o == cur {
				return options[(i+1)%len(options)]
			}
		}
		return options[0]
	}), nil
}

// Toggle flips a boolean cell and returns the new value.
func Toggle(c *Cell[bool]) bool {
	return c.Update(func(v bool) bool { return !v })
}
