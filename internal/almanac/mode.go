package almanac

//go:generate go tool stringer -type=Mode -output=mode_string.go

// Mode selects how the seed list is interpreted.
type Mode int

const (
	_ Mode = iota // skip zero value, use it as the invalid Mode

	ModeDiscrete // every seed is a single value
	ModeRange    // seeds are (start, length) pairs
)
