package interval

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrStartMustBeMinorThanEnd is returned when an Interval is constructed from a start that is strictly bigger than
	// its end.
	ErrStartMustBeMinorThanEnd = ierrors.New("start must be minor than end")

	// ErrParseBytesFailed is returned if information can not be parsed from a sequence of bytes.
	ErrParseBytesFailed = ierrors.New("failed to parse bytes")
)
