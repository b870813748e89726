package floatbin

import (
	"github.com/filecoin-project/go-floatbits/types"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/xerrors"
)

// DecodeAll decodes every bit string in bits at precision p.
// Either all of them decode or an error listing every failing index is returned.
func DecodeAll(bits []string, p types.Precision) ([]float64, error) {
	if _, err := layoutOf(p); err != nil {
		return nil, err
	}
	res := make([]float64, len(bits))
	var merr *multierror.Error
	for i, s := range bits {
		v, err := Decode(s, p)
		if err != nil {
			merr = multierror.Append(merr, xerrors.Errorf("bit string at index %d: %w", i, err))
			continue
		}
		res[i] = v
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return res, nil
}

// EncodeAll encodes every value in values at precision p
func EncodeAll(values []float64, p types.Precision) ([]string, error) {
	if _, err := layoutOf(p); err != nil {
		return nil, err
	}
	res := make([]string, len(values))
	for i, v := range values {
		s, err := Encode(v, p)
		if err != nil {
			return nil, xerrors.Errorf("value at index %d: %w", i, err)
		}
		res[i] = s
	}
	return res, nil
}
