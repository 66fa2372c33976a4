package numberutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"
)

// MaxSafeInteger is the largest integer a JSON consumer using IEEE-754
// doubles can represent exactly (2^53 - 1).
const MaxSafeInteger uint64 = 1<<53 - 1

var ErrNotSafeInteger = errors.New("value is outside the safe integer range")

var maxSafe = new(big.Int).SetUint64(MaxSafeInteger)

// SafeUint64 narrows v to uint64 only when it is a non-negative integer not
// greater than MaxSafeInteger.
func SafeUint64(v *big.Int) (uint64, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: nil", ErrNotSafeInteger)
	}

	if v.Sign() < 0 || v.Cmp(maxSafe) > 0 {
		return 0, fmt.Errorf("%w: %s", ErrNotSafeInteger, v.String())
	}

	return v.Uint64(), nil
}

// DecimalString is the lossless form used for currency amounts.
func DecimalString(v *big.Int) string {
	if v == nil {
		return "0"
	}

	return v.String()
}

// ToSmallestUnit returns whole * 10^decimals using integer arithmetic only.
func ToSmallestUnit(whole int64, decimals int) *big.Int {
	unit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	return unit.Mul(unit, big.NewInt(whole))
}

// Number is a normalized chain integer. It marshals to a JSON number when the
// value is within the safe range and to a JSON string otherwise.
type Number struct {
	value *big.Int
}

func Normalize(v *big.Int) Number {
	if v == nil {
		return Number{value: new(big.Int)}
	}

	return Number{value: new(big.Int).Set(v)}
}

func NewNumber(v uint64) Number {
	return Number{value: new(big.Int).SetUint64(v)}
}

// IsSafe reports whether the value fits in MaxSafeInteger.
func (n Number) IsSafe() bool {
	_, err := SafeUint64(n.Big())
	return err == nil
}

func (n Number) Big() *big.Int {
	if n.value == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(n.value)
}

func (n Number) Uint64() (uint64, error) {
	return SafeUint64(n.Big())
}

func (n Number) String() string {
	return DecimalString(n.value)
}

func (n Number) MarshalJSON() ([]byte, error) {
	if v, err := SafeUint64(n.Big()); err == nil {
		return []byte(strconv.FormatUint(v, 10)), nil
	}

	return json.Marshal(n.String())
}

func (n *Number) UnmarshalJSON(data []byte) error {
	var s string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	} else {
		s = string(data)
	}

	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fmt.Errorf("invalid integer %q", s)
	}

	n.value = v
	return nil
}
