// nolint
package radix

import (
	"errors"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeVectors(t *testing.T) {
	cases := []struct {
		digits string
		radix  int
		v      int64
	}{
		{"ff", 16, 255},
		{"FF", 16, 255},
		{"111", 2, 7},
		{"z", 36, 35},
		{"Z", 36, 35},
		{"15", 8, 13},
		{"0", 10, 0},
		{"000123", 10, 123},
		{"zz", 36, 36*35 + 35},
	}

	for _, c := range cases {
		v, err := Decode(c.digits, c.radix)
		assert.Nil(t, err, c.digits)
		assert.EqualValues(t, c.v, v.Int64(), c.digits)
	}
}

func TestDecodeBeyondUint64(t *testing.T) {
	digits := strings.Repeat("f", 40)

	v, err := Decode(digits, 16)
	assert.Nil(t, err)

	expected := new(big.Int).Lsh(big.NewInt(1), 160)
	expected.Sub(expected, big.NewInt(1))
	assert.EqualValues(t, 0, expected.Cmp(v))
	assert.False(t, v.IsUint64())

	v, ok := new(big.Int).SetString("e1b5e4623b7c8e4b1b0e8c3b5f61f7e4d4a1c3e5", 16)
	assert.True(t, ok)

	d, err := Decode("e1b5e4623b7c8e4b1b0e8c3b5f61f7e4d4a1c3e5", 16)
	assert.Nil(t, err)
	assert.EqualValues(t, 0, v.Cmp(d))
}

func TestDecodeInvalidRadix(t *testing.T) {
	for _, r := range []int{-1, 0, 1, 37, 64} {
		_, err := Decode("1", r)
		assert.True(t, errors.Is(err, ErrInvalidRadix), r)

		var re *RadixError
		assert.True(t, errors.As(err, &re))
		assert.EqualValues(t, r, re.Radix)
	}
}

func TestDecodeInvalidDigit(t *testing.T) {
	cases := []struct {
		digits string
		radix  int
		pos    int
		char   rune
	}{
		{"12", 2, 1, '2'},
		{"1g", 16, 1, 'g'},
		{"9", 8, 0, '9'},
		{"1-2", 10, 1, '-'},
		{" 1", 10, 0, ' '},
		{"ab!", 36, 2, '!'},
	}

	for _, c := range cases {
		_, err := Decode(c.digits, c.radix)
		assert.True(t, errors.Is(err, ErrInvalidDigit), c.digits)

		var de *DigitError
		assert.True(t, errors.As(err, &de))
		assert.EqualValues(t, c.pos, de.Pos, c.digits)
		assert.EqualValues(t, c.char, de.Char, c.digits)
	}

	_, err := Decode("", 10)
	assert.True(t, errors.Is(err, ErrInvalidDigit))
}

func TestRoundTrip(t *testing.T) {
	// nolint: gosec
	rnd := rand.New(rand.NewSource(7))

	values := []*big.Int{big.NewInt(0), big.NewInt(1), big.NewInt(35), big.NewInt(36)}

	for i := 0; i < 20; i++ {
		values = append(values, new(big.Int).Rand(rnd, new(big.Int).Lsh(big.NewInt(1), uint(8*i+3))))
	}

	for r := MinRadix; r <= MaxRadix; r++ {
		for _, v := range values {
			s, err := Encode(v, r)
			assert.Nil(t, err)

			d, err := Decode(s, r)
			assert.Nil(t, err)
			assert.EqualValues(t, 0, v.Cmp(d), "radix %d value %s", r, v)
		}
	}
}

func TestEncode(t *testing.T) {
	s, err := Encode(big.NewInt(255), 16)
	assert.Nil(t, err)
	assert.EqualValues(t, "ff", s)

	s, err = Encode(big.NewInt(13), 8)
	assert.Nil(t, err)
	assert.EqualValues(t, "15", s)

	s, err = Encode(big.NewInt(0), 36)
	assert.Nil(t, err)
	assert.EqualValues(t, "0", s)

	_, err = Encode(big.NewInt(-1), 10)
	assert.True(t, errors.Is(err, ErrNegativeValue))

	_, err = Encode(big.NewInt(1), 40)
	assert.True(t, errors.Is(err, ErrInvalidRadix))
}

func TestDigitValue(t *testing.T) {
	for i, c := range digitChars {
		v, ok := DigitValue(c)
		assert.True(t, ok)
		assert.EqualValues(t, i, v)
	}

	_, ok := DigitValue('_')
	assert.False(t, ok)
}
