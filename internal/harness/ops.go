package harness

import (
	"fmt"
	"strconv"

	"github.com/roach88/bigcast/coerce"
)

// snapshotOps is the fixed order in which views appear in snapshots.
// Stable order keeps golden files and replay comparisons byte-exact.
var snapshotOps = []string{
	"bigint",
	"int8", "uint8",
	"int16", "uint16",
	"int32", "uint32",
	"int64", "uint64",
	"bigint64", "biguint64",
	"absint32",
	"char", "codepoint",
	"float64",
	"hex", "binary", "octal",
	"iszero", "ispositive", "isnegative", "iseven", "isodd",
}

// renderOp evaluates one check's view of n and renders it as text.
// Numeric views render in decimal, predicates as true/false, and the
// radix views as the engine's own textual output.
func renderOp(n coerce.Int, c Check) (string, error) {
	prefix := true
	if c.Prefix != nil {
		prefix = *c.Prefix
	}

	switch c.Op {
	case "bigint":
		return n.String(), nil
	case "int8":
		return strconv.FormatInt(int64(n.Int8()), 10), nil
	case "int16":
		return strconv.FormatInt(int64(n.Int16()), 10), nil
	case "int32":
		return strconv.FormatInt(int64(n.Int32()), 10), nil
	case "int64":
		return strconv.FormatInt(n.Int64(), 10), nil
	case "uint8":
		return strconv.FormatUint(uint64(n.Uint8()), 10), nil
	case "uint16":
		return strconv.FormatUint(uint64(n.Uint16()), 10), nil
	case "uint32":
		return strconv.FormatUint(uint64(n.Uint32()), 10), nil
	case "uint64":
		return strconv.FormatUint(n.Uint64(), 10), nil
	case "bigint64":
		return n.BigInt64().String(), nil
	case "biguint64":
		return n.BigUint64().String(), nil
	case "absint32":
		return strconv.FormatInt(int64(n.AbsInt32()), 10), nil
	case "char":
		return strconv.FormatUint(uint64(n.Char()), 10), nil
	case "codepoint":
		return strconv.FormatInt(int64(n.CodePoint()), 10), nil
	case "float64":
		return strconv.FormatFloat(n.Float64(), 'g', -1, 64), nil
	case "hex":
		return n.Hex(prefix), nil
	case "binary":
		return n.Binary(prefix), nil
	case "octal":
		return n.Octal(prefix), nil
	case "text":
		base := c.Base
		if base == 0 {
			base = 10
		}
		if base < 2 || base > 36 {
			return "", fmt.Errorf("text base %d out of range 2..36", base)
		}
		return n.Text(base), nil
	case "iszero":
		return strconv.FormatBool(n.IsZero()), nil
	case "ispositive":
		return strconv.FormatBool(n.IsPositive()), nil
	case "isnegative":
		return strconv.FormatBool(n.IsNegative()), nil
	case "iseven":
		return strconv.FormatBool(n.IsEven()), nil
	case "isodd":
		return strconv.FormatBool(n.IsOdd()), nil
	default:
		return "", fmt.Errorf("unknown op %q", c.Op)
	}
}
