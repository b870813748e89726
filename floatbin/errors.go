package floatbin

// Errors returned by this package can be matched by kind with errors.Is,
// e.g. errors.Is(err, ErrInvalidBitString) holds for every malformed bit string
// regardless of the message.

type bitStringError string

var ErrInvalidBitString = bitStringError("invalid bit string")

func (e bitStringError) Error() string {
	return string(e)
}

func (e bitStringError) Is(err error) bool {
	_, ok := err.(bitStringError)
	return ok
}

type precisionError string

var ErrPrecisionMismatch = precisionError("unsupported precision")

func (e precisionError) Error() string {
	return string(e)
}

func (e precisionError) Is(err error) bool {
	_, ok := err.(precisionError)
	return ok
}

type fieldError string

var ErrInvalidField = fieldError("field does not fit its width")

func (e fieldError) Error() string {
	return string(e)
}

func (e fieldError) Is(err error) bool {
	_, ok := err.(fieldError)
	return ok
}

func invalidBitString(err error) error {
	return bitStringError("invalid bit string: " + err.Error())
}
