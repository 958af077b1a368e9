// nolint
package share

import (
	"errors"
	"math/big"
	"testing"

	"github.com/sgostarter/libshares/lagrange"
	"github.com/sgostarter/libshares/radix"
	"github.com/stretchr/testify/assert"
)

func TestDecodeRecord(t *testing.T) {
	point, err := DecodeRecord(NewRecord(6, 8, "15"))
	assert.Nil(t, err)
	assert.EqualValues(t, 6, point.X.Int64())
	assert.EqualValues(t, 13, point.Y.Int64())

	_, err = DecodeRecord(NewRecord(6, 8, "19"))
	assert.True(t, errors.Is(err, radix.ErrInvalidDigit))

	var re *RecordError
	assert.True(t, errors.As(err, &re))
	assert.EqualValues(t, "6", re.X)

	_, err = DecodeRecord(NewRecord(1, 1, "0"))
	assert.True(t, errors.Is(err, radix.ErrInvalidRadix))

	_, err = DecodeRecord(Record{Base: 10, Value: "1"})
	assert.True(t, errors.Is(err, ErrBadShare))
}

func TestRecoverEndToEnd(t *testing.T) {
	records := []Record{
		NewRecord(3, 16, "10"),
		NewRecord(1, 10, "4"),
		NewRecord(2, 2, "1001"),
	}

	p, samples, err := Recover(records, 3)
	assert.Nil(t, err)
	assert.Len(t, samples, 3)
	assert.EqualValues(t, "1x^2 + 2x + 1", p.String())

	secret, ok := p.ConstantInt()
	assert.True(t, ok)
	assert.EqualValues(t, 1, secret.Int64())
}

func TestRecoverWithOctalRecord(t *testing.T) {
	records := []Record{
		NewRecord(6, 8, "15"),
		NewRecord(1, 10, "4"),
		NewRecord(2, 10, "9"),
	}

	p, samples, err := Recover(records, 3)
	assert.Nil(t, err)

	expected, err := lagrange.Secret([]lagrange.Point{
		lagrange.NewPoint(1, 4),
		lagrange.NewPoint(2, 9),
		lagrange.NewPoint(6, 13),
	})
	assert.Nil(t, err)
	assert.EqualValues(t, 0, expected.Cmp(p.Constant()))

	assert.EqualValues(t, 13, samples[2].Point.Y.Int64())
	assert.EqualValues(t, "15", samples[2].Record.Value)
}

func TestSelectSmallestAbscissas(t *testing.T) {
	records := []Record{
		NewRecord(9, 10, "1"),
		NewRecord(4, 10, "2"),
		NewRecord(7, 10, "3"),
		NewRecord(1, 10, "4"),
	}

	samples, err := Select(records, 2)
	assert.Nil(t, err)
	assert.Len(t, samples, 2)
	assert.EqualValues(t, 1, samples[0].Point.X.Int64())
	assert.EqualValues(t, 4, samples[1].Point.X.Int64())

	samples, err = Select(records, 2, DocumentOrderOption())
	assert.Nil(t, err)
	assert.EqualValues(t, 9, samples[0].Point.X.Int64())
	assert.EqualValues(t, 4, samples[1].Point.X.Int64())

	// input order untouched
	assert.EqualValues(t, 9, records[0].X.Int64())
}

func TestSelectOnlyDecodesWhatItNeeds(t *testing.T) {
	records := []Record{
		NewRecord(1, 10, "4"),
		NewRecord(2, 10, "9"),
		NewRecord(3, 2, "bad"),
	}

	samples, err := Select(records, 2)
	assert.Nil(t, err)
	assert.Len(t, samples, 2)

	_, err = Select(records, 3)
	assert.True(t, errors.Is(err, radix.ErrInvalidDigit))

	samples, err = Select(append(records, NewRecord(4, 10, "25")), 3, SkipInvalidOption())
	assert.Nil(t, err)
	assert.EqualValues(t, 4, samples[2].Point.X.Int64())
}

func TestSelectThreshold(t *testing.T) {
	records := []Record{NewRecord(1, 10, "4")}

	_, err := Select(records, 0)
	assert.True(t, errors.Is(err, ErrInvalidThreshold))

	_, err = Select(records, 2)
	assert.True(t, errors.Is(err, ErrNotEnoughRecords))

	_, err = Select(nil, 1)
	assert.True(t, errors.Is(err, ErrNotEnoughRecords))
}

func TestDuplicates(t *testing.T) {
	records := []Record{
		NewRecord(2, 10, "5"),
		NewRecord(2, 10, "9"),
	}

	_, _, err := Recover(records, 2)
	assert.True(t, errors.Is(err, lagrange.ErrDegenerateSampleSet))

	_, _, err = Recover(records, 2, DedupOption())
	assert.True(t, errors.Is(err, ErrInconsistentRecords))

	records = []Record{
		NewRecord(2, 10, "5"),
		NewRecord(2, 16, "5"),
		NewRecord(3, 10, "7"),
	}

	p, samples, err := Recover(records, 2, DedupOption())
	assert.Nil(t, err)
	assert.Len(t, samples, 2)
	assert.EqualValues(t, "2x + 1", p.String())
}

func TestCodec(t *testing.T) {
	r, err := ParseShare("6:8:15")
	assert.Nil(t, err)
	assert.EqualValues(t, 6, r.X.Int64())
	assert.EqualValues(t, 8, r.Base)
	assert.EqualValues(t, "15", r.Value)
	assert.EqualValues(t, "6:8:15", BuildSharePayload(r))

	big1, _ := new(big.Int).SetString("-123456789012345678901234567890", 10)
	r = Record{X: big1, Base: 36, Value: "zz"}

	r2, err := ParseShare(BuildSharePayload(r))
	assert.Nil(t, err)
	assert.EqualValues(t, 0, r.X.Cmp(r2.X))

	for _, s := range []string{"", "1:2", "a:10:1", "1:x:1", "1:10:", "1:10:1:1"} {
		_, err = ParseShare(s)
		assert.True(t, errors.Is(err, ErrBadShare), s)
	}
}
