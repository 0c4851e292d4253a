package lead

// Value is one tagged field value of a captured lead, mirroring the document
// store's wire shape: exactly one of the branches is set. integerValue travels
// as a quoted decimal, as the store serializes 64-bit integers.
type Value struct {
	String  *string     `json:"stringValue,omitempty" bson:"stringValue,omitempty"`
	Integer *int64      `json:"integerValue,omitempty,string" bson:"integerValue,omitempty"`
	Double  *float64    `json:"doubleValue,omitempty" bson:"doubleValue,omitempty"`
	Bool    *bool       `json:"booleanValue,omitempty" bson:"booleanValue,omitempty"`
	Map     *MapValue   `json:"mapValue,omitempty" bson:"mapValue,omitempty"`
	Array   *ArrayValue `json:"arrayValue,omitempty" bson:"arrayValue,omitempty"`
}

// MapValue nests either a {label, value} pair or a group of sub-answers.
type MapValue struct {
	Fields map[string]Value `json:"fields" bson:"fields"`
}

// ArrayValue holds the selections of a multi-select input.
type ArrayValue struct {
	Values []Value `json:"values" bson:"values"`
}
