package contracts

// Unit is the response type of requests that produce no meaningful value.
// It is a zero-sized struct, so every Unit compares equal to every other
// Unit and it carries no payload.
type Unit struct{}

// UnitValue is the canonical Unit instance returned by void handlers.
var UnitValue = Unit{}

// String implements fmt.Stringer.
func (Unit) String() string {
	return "()"
}
