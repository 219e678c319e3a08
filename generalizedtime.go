package asn1der

/*
generalizedtime.go implements the ASN.1 GeneralizedTime primitive
(spec §4.4) in its UTC, deciseconds-only form: "YYYYMMDDHHMMSS[.D]Z".
Local-time and other fractional precisions are Non-goals (SPEC_FULL.md);
encountering either on decode is an [KindImplementation] error rather
than a data error, since both are malformed only with respect to what
this package chooses to support.
*/

import (
	"fmt"
	"strconv"
	"time"
)

/*
TimeFormat selects how [GeneralizedTime.EncodeValue] renders the
fractional-seconds component, mirroring the original source's
TimeFormat variants (see DESIGN.md).
*/
type TimeFormat uint8

const (
	/*
		TimeFormatOmitZero prints the ".D" fraction only when it is
		nonzero (a whole-second value encodes with no fraction at all).
	*/
	TimeFormatOmitZero TimeFormat = iota

	/*
		TimeFormatAlwaysDecisecond always prints the ".D" fraction, even
		when it is zero, matching the original's "_DZ" variant.
	*/
	TimeFormatAlwaysDecisecond
)

/*
GeneralizedTime is the ASN.1 GeneralizedTime primitive, held as a UTC
[time.Time] truncated to decisecond precision, plus the [TimeFormat]
its EncodeValue renders with.
*/
type GeneralizedTime struct {
	t      time.Time
	format TimeFormat
}

/*
NewGeneralizedTime returns a [GeneralizedTime] for t, converted to UTC
and truncated to decisecond precision, formatted with
[TimeFormatOmitZero].
*/
func NewGeneralizedTime(t time.Time) GeneralizedTime {
	return NewGeneralizedTimeFormat(t, TimeFormatOmitZero)
}

/*
NewGeneralizedTimeFormat is [NewGeneralizedTime] with an explicit
[TimeFormat].
*/
func NewGeneralizedTimeFormat(t time.Time, format TimeFormat) GeneralizedTime {
	u := t.UTC()
	decis := u.Nanosecond() / 100_000_000
	u = time.Date(u.Year(), u.Month(), u.Day(), u.Hour(), u.Minute(), u.Second(), decis*100_000_000, time.UTC)
	return GeneralizedTime{t: u, format: format}
}

/*
Time returns the receiver's value.
*/
func (g GeneralizedTime) Time() time.Time { return g.t }

/*
Format returns the receiver's [TimeFormat].
*/
func (g GeneralizedTime) Format() TimeFormat { return g.format }

func (GeneralizedTime) Tag() Tag { return NewPrimitiveUniversal(tagGeneralizedTime) }

func (g GeneralizedTime) EncodeValue() []byte {
	t := g.t
	s := fmt.Sprintf("%04d%02d%02d%02d%02d%02d", t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
	decis := t.Nanosecond() / 100_000_000
	if decis != 0 || g.format == TimeFormatAlwaysDecisecond {
		s += "." + strconv.Itoa(decis)
	}
	s += "Z"
	return []byte(s)
}

/*
DecodeValue decodes raw into the receiver. Fewer than 15 octets fails
with [KindNoDataForType] (too short to even hold "YYYYMMDDHHMMSSZ"). A
value not ending in "Z" fails with [KindImplementation], since this
package supports only UTC. A non-digit in the core 14-digit field, or
a malformed fractional part, fails with [KindParseInt].
*/
func (g *GeneralizedTime) DecodeValue(raw []byte) error {
	if len(raw) < 15 {
		return errNoDataForType()
	}
	if raw[len(raw)-1] != 'Z' {
		return errImplementation("GeneralizedTime: local time not implemented")
	}

	core := string(raw[:14])
	body := string(raw[14 : len(raw)-1])

	fields := make([]int, 6)
	widths := [6]int{4, 2, 2, 2, 2, 2}
	pos := 0
	for i, w := range widths {
		part := core[pos : pos+w]
		pos += w
		for j := 0; j < len(part); j++ {
			if part[j] < '0' || part[j] > '9' {
				return errParseInt()
			}
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return errParseInt()
		}
		fields[i] = n
	}

	decis := 0
	format := TimeFormatOmitZero
	if len(body) > 0 {
		if len(body) != 2 || body[0] != '.' {
			return errImplementation("GeneralizedTime: only decisecond fractional precision is supported")
		}
		n, err := strconv.Atoi(body[1:])
		if err != nil {
			return errParseInt()
		}
		decis = n
		format = TimeFormatAlwaysDecisecond
	}

	g.t = time.Date(fields[0], time.Month(fields[1]), fields[2], fields[3], fields[4], fields[5], decis*100_000_000, time.UTC)
	g.format = format
	return nil
}
