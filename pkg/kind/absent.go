package kind

// Absent stands for a missing value. It classifies as "undefined" and is what
// object lookups yield for keys that are not present.
var Absent = absent{}

type absent struct{}

func (absent) String() string {
	return "undefined"
}

// MarshalJSON encodes a missing value as null.
func (absent) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}
