package builder

import (
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/vecio/colvec/column"
	"github.com/vecio/colvec/encoding"
	"github.com/vecio/colvec/errs"
	"github.com/vecio/colvec/mask"
	"github.com/vecio/colvec/nbits"
	"github.com/vecio/colvec/wire"
)

// category buckets an element type by which arm of the selection policy
// applies to it: bool and the two signed integer widths narrow to a
// minimal nbits, float/timestamp widths stay at their natural width, and
// string types are the only ones eligible for Dictionary.
type category int

const (
	catBool category = iota
	catInt32
	catInt64
	catFloat32
	catFloat64
	catExt
	catString
)

func classify(elem column.ElementType) category {
	switch elem {
	case column.Bool:
		return catBool
	case column.Int32:
		return catInt32
	case column.Int64:
		return catInt64
	case column.Float32:
		return catFloat32
	case column.Float64:
		return catFloat64
	case column.DateTime, column.SQLTimestamp:
		return catExt
	default:
		return catString
	}
}

func nativeWidth(class category) int {
	switch class {
	case catBool:
		return 1
	case catInt32, catFloat32:
		return 32
	default:
		return 64
	}
}

// simpleSubType is the wire sub-type a Simple-major blob uses; Simple
// permits PRIMITIVE, STRING, and BOOL.
func simpleSubType(class category) wire.SubType {
	if class == catBool {
		return wire.SubBool
	}
	return wire.SubPrimitive
}

// constSubType is the wire sub-type a Const-major blob uses; Const only
// permits STRING and PRIMITIVE (no dedicated bool sub-type).
func constSubType(class category) wire.SubType {
	if class == catString {
		return wire.SubString
	}
	return wire.SubPrimitive
}

func toSigned(class category, raw uint64) int64 {
	if class == catInt32 {
		return int64(int32(uint32(raw)))
	}
	return int64(raw)
}

// columnStage accumulates one column's values and missing-flags while
// rows stream in, then resolves the encoding selection policy once the
// stream ends.
type columnStage struct {
	class category

	present []bool

	raw  []uint64 // one entry per row, for every class except catString
	strs []string // one entry per row, for catString only

	firstSet bool
	firstRaw uint64
	firstStr string
	allEqual bool

	sMin, sMax int64 // present-value signed range, catInt32/catInt64 only

	dictOrder []string
	dictCodes map[string]int
}

func newColumnStage(elem column.ElementType) *columnStage {
	class := classify(elem)
	s := &columnStage{class: class, allEqual: true, sMin: math.MaxInt64, sMax: math.MinInt64}
	if class == catString {
		s.dictCodes = make(map[string]int)
	}
	return s
}

// append consumes row's value for this stage's column, advancing the
// stage by exactly one logical row.
func (s *columnStage) append(row RowReader, col int) {
	if !row.IsPresent(col) {
		s.present = append(s.present, false)
		if s.class == catString {
			s.strs = append(s.strs, "")
		} else {
			s.raw = append(s.raw, 0)
		}
		return
	}

	s.present = append(s.present, true)

	switch s.class {
	case catBool:
		var raw uint64
		if row.Bool(col) {
			raw = 1
		}
		s.observeRaw(raw)
	case catInt32:
		s.observeRaw(uint64(uint32(row.Int32(col))))
	case catInt64:
		s.observeRaw(uint64(row.Int64(col)))
	case catFloat32:
		s.observeRaw(uint64(math.Float32bits(row.Float32(col))))
	case catFloat64:
		s.observeRaw(math.Float64bits(row.Float64(col)))
	case catExt:
		s.observeRaw(uint64(s.extMicros(row, col)))
	case catString:
		s.observeStr(row.Str(col))
	}
}

func (s *columnStage) extMicros(row RowReader, col int) int64 {
	switch v := row.Any(col).(type) {
	case time.Time:
		return v.UnixMicro()
	case string:
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			panic(err)
		}
		return t.UnixMicro()
	default:
		panic(fmt.Sprintf("builder: unsupported datetime value of type %T", v))
	}
}

func (s *columnStage) observeRaw(raw uint64) {
	s.raw = append(s.raw, raw)
	if !s.firstSet {
		s.firstSet = true
		s.firstRaw = raw
	} else if raw != s.firstRaw {
		s.allEqual = false
	}

	if s.class == catInt32 || s.class == catInt64 {
		sv := toSigned(s.class, raw)
		if sv < s.sMin {
			s.sMin = sv
		}
		if sv > s.sMax {
			s.sMax = sv
		}
	}
}

func (s *columnStage) observeStr(v string) {
	s.strs = append(s.strs, v)
	if !s.firstSet {
		s.firstSet = true
		s.firstStr = v
	} else if v != s.firstStr {
		s.allEqual = false
	}

	if _, ok := s.dictCodes[v]; !ok {
		s.dictCodes[v] = len(s.dictOrder)
		s.dictOrder = append(s.dictOrder, v)
	}
}

func (s *columnStage) chosenNBits() int {
	switch s.class {
	case catInt32, catInt64:
		return nbits.ForZeroExtendedIntRange(s.sMin, s.sMax, nativeWidth(s.class))
	default:
		return nativeWidth(s.class)
	}
}

// encode resolves the encoding selection policy for this column and
// returns its encoded blob. dictThreshold is the caller-configured override; 0
// means "use the default, half the column length capped at 255". codec
// only affects string columns (Simple string and Dictionary's entry
// bytes) -- numeric and bool payloads are never compressed.
func (s *columnStage) encode(dictThreshold int, codec wire.CompressionType) ([]byte, error) {
	length := len(s.present)

	if length == 0 {
		return encoding.EncodeEmpty(0), nil
	}

	if !s.firstSet {
		return encoding.EncodeEmpty(length), nil
	}

	if s.class == catString {
		for i, v := range s.strs {
			if !utf8.ValidString(v) {
				return nil, fmt.Errorf("%w: row %d", errs.ErrNotUTF8, i)
			}
			if uint64(len(v)) > math.MaxUint32 {
				return nil, fmt.Errorf("%w: row %d", errs.ErrStringTooLarge, i)
			}
		}
	}

	mb := mask.NewBuilder(length)
	for i, p := range s.present {
		if !p {
			mb.MarkMissing(i)
		}
	}
	na := mb.Resolve()

	if s.allEqual {
		if s.class == catString {
			return encoding.EncodeConstString(length, s.firstStr, na), nil
		}
		return encoding.EncodeConstPrimitive(constSubType(s.class), length, nativeWidth(s.class), s.firstRaw, na), nil
	}

	if s.class == catString {
		threshold := dictThreshold
		if threshold <= 0 {
			threshold = length / 2
			if threshold > 255 {
				threshold = 255
			}
		}

		if len(s.dictOrder) <= threshold {
			codes := make([]uint64, length)
			for i, p := range s.present {
				if p {
					codes[i] = uint64(s.dictCodes[s.strs[i]])
				}
			}
			return encoding.EncodeDictString(length, s.dictOrder, codes, na, codec)
		}

		return encoding.EncodeSimpleString(s.strs, na, codec)
	}

	return encoding.EncodeSimplePrimitive(simpleSubType(s.class), length, s.chosenNBits(), s.raw, na), nil
}
