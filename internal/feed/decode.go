package feed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OfkoloBai/Osenotify/internal/alert"
)

// DecodeFunc normalizes one raw frame from a specific source. ok is false
// for frames that are valid but carry no actionable alert (cancellations,
// drills, keepalives); err is set only for frames that cannot be decoded.
type DecodeFunc func(raw []byte) (ev alert.Event, ok bool, err error)

// DecoderFor returns the decoder for src. Every source has exactly one.
func DecoderFor(src alert.Source) DecodeFunc {
	switch src {
	case alert.SourceJMA:
		return DecodeJMA
	case alert.SourceCEA:
		return DecodeCEA
	case alert.SourceTest:
		return DecodeTest
	default:
		return func([]byte) (alert.Event, bool, error) {
			return alert.Event{}, false, fmt.Errorf("no decoder for source %v", src)
		}
	}
}

// asString renders a JSON scalar that feeds send as either string or
// number. Integral floats print without a decimal point.
func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// asFloat coerces a JSON scalar to float64. Anything non-numeric is 0,
// which no positive threshold can match.
func asFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
