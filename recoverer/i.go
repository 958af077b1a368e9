package recoverer

import (
	"github.com/sgostarter/libshares/document"
	"github.com/sgostarter/libshares/lagrange"
	"github.com/sgostarter/libshares/result"
)

type Recoverer interface {
	Recover(name string, tc *document.TestCase) (*result.Result, *lagrange.Polynomial, error)
	RecoverFile(path string) (*result.Result, *lagrange.Polynomial, error)
}
