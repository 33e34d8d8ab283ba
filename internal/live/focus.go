package live

// Focus identifies the highlighted line.
type Focus int

const (
	FocusInput Focus = iota
	FocusEncoded
	FocusDecoded
)

func (f Focus) String() string {
	switch f {
	case FocusInput:
		return "input"
	case FocusEncoded:
		return "encoded"
	case FocusDecoded:
		return "decoded"
	default:
		return "unknown"
	}
}

// focusNext maps each Focus to its successor for the Up and Down
// keys.
var focusNext = map[KeyKind]map[Focus]Focus{
	KeyDown: {
		FocusInput:   FocusEncoded,
		FocusEncoded: FocusDecoded,
		FocusDecoded: FocusInput,
	},
	KeyUp: {
		FocusInput:   FocusDecoded,
		FocusEncoded: FocusInput,
		FocusDecoded: FocusEncoded,
	},
}

// Move returns the Focus reached from f by pressing k. Keys that
// do not move the focus return f.
func (f Focus) Move(k KeyKind) Focus {
	if next, ok := focusNext[k][f]; ok {
		return next
	}
	return f
}
