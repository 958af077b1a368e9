package recoverer

import (
	"context"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libeasygo/routineman"
	"github.com/sgostarter/libshares/lagrange"
	"github.com/sgostarter/libshares/result"
)

type BatchItem struct {
	Path       string
	Result     *result.Result
	Polynomial *lagrange.Polynomial
	Err        error
}

// Batch recovers every file on its own routine. Items keep the order of paths.
func Batch(ctx context.Context, rec Recoverer, paths []string, logger l.Wrapper) []BatchItem {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if rec == nil {
		logger.Fatal("no recoverer")
	}

	items := make([]BatchItem, len(paths))

	routineMan := routineman.NewRoutineMan(ctx, logger.WithFields(l.StringField(l.ClsKey, "batch")))

	for idx, path := range paths {
		idx, path := idx, path

		items[idx].Path = path

		routineMan.StartRoutine(func(ctx context.Context, _ func() bool) {
			if err := ctx.Err(); err != nil {
				items[idx].Err = err

				return
			}

			items[idx].Result, items[idx].Polynomial, items[idx].Err = rec.RecoverFile(path)
		}, "recover:"+path)
	}

	routineMan.Wait()

	return items
}
