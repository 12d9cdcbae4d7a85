package dip

import (
	"sort"
	"strconv"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/dipart/pkg/errors"
)

const (
	// MaxPins is the exclusive upper bound on the pin count.
	MaxPins = 50
)

// Parse decodes and validates a chip specification.
//
// The specification is a flat TOML table:
//
//	name  = "SN7400"      # required
//	title = "SN74LS00N"   # optional, defaults to name
//	dip   = 14            # even, 0 < dip < 50
//	width = 300           # 300 or 600 mil
//	1 = "1A"
//	2 = "1B, CLK"         # primary name first, then alternates
//	...
//
// Rules are checked in the order above and the first failure is returned as
// an *errors.Error with code INVALID_SPEC; its message is stable and meant
// to be shown to users verbatim. No partial Chip is ever returned.
func Parse(spec string) (*Chip, error) {
	var doc map[string]any
	if _, err := toml.Decode(spec, &doc); err != nil {
		return nil, invalid("%s", err.Error())
	}

	name, err := requiredString(doc, "name", "no name", "name must be string")
	if err != nil {
		return nil, err
	}

	title := name
	if v, ok := doc["title"]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, invalid("title must be string")
		}
		title = s
	}

	count, err := parsePinCount(doc)
	if err != nil {
		return nil, err
	}

	width, err := parseWidth(doc)
	if err != nil {
		return nil, err
	}

	pins, err := parsePins(doc, count)
	if err != nil {
		return nil, err
	}

	return &Chip{
		name:  name,
		title: title,
		count: count,
		width: width,
		pins:  pins,
	}, nil
}

func requiredString(doc map[string]any, key, missing, wrongType string) (string, error) {
	v, ok := doc[key]
	if !ok {
		return "", invalid("%s", missing)
	}
	s, ok := v.(string)
	if !ok {
		return "", invalid("%s", wrongType)
	}
	return s, nil
}

func parsePinCount(doc map[string]any) (int, error) {
	v, ok := doc["dip"]
	if !ok {
		return 0, invalid("no dip package")
	}
	n, ok := v.(int64)
	if !ok {
		return 0, invalid("dip package must be number")
	}
	switch {
	case n <= 0:
		return 0, invalid("dip package %d must be positive", n)
	case n >= MaxPins:
		return 0, invalid("dip package %d must be less than %d", n, MaxPins)
	case n%2 != 0:
		return 0, invalid("dip package %d must be even", n)
	}
	return int(n), nil
}

func parseWidth(doc map[string]any) (PackageWidth, error) {
	v, ok := doc["width"]
	if !ok {
		return 0, invalid("no width")
	}
	w, ok := v.(int64)
	if !ok {
		return 0, invalid("width must be number in mil")
	}
	switch PackageWidth(w) {
	case Mil300:
		return Mil300, nil
	case Mil600:
		return Mil600, nil
	}
	return 0, invalid("width %d must be 300 or 600 mil", w)
}

// parsePins collects every key that reads as an unsigned decimal number.
// Keys are visited in lexical order so the reported error is deterministic.
func parsePins(doc map[string]any, count int) (map[int]PinLabel, error) {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pins := make(map[int]PinLabel, count)
	for _, k := range keys {
		n, err := strconv.ParseUint(k, 10, 64)
		if err != nil {
			continue
		}
		if n == 0 {
			return nil, invalid("invalid pin number 0")
		}
		if n > uint64(count) {
			return nil, invalid("pin number %d must not be greater than dip %d", n, count)
		}
		names, ok := doc[k].(string)
		if !ok {
			return nil, invalid("name for pin %d must be string", n)
		}
		pins[int(n)] = NewPinLabel(names)
	}

	for p := 1; p <= count; p++ {
		if _, ok := pins[p]; !ok {
			return nil, invalid("missing pin %d definition", p)
		}
	}
	return pins, nil
}

func invalid(format string, args ...any) error {
	return errs.New(errs.ErrCodeInvalidSpec, format, args...)
}
