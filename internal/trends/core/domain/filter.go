package domain

// PropertyOperator is the comparison applied by a property filter.
type PropertyOperator string

const (
	OperatorExact     PropertyOperator = "exact"
	OperatorIsNot     PropertyOperator = "is_not"
	OperatorIContains PropertyOperator = "icontains"
	OperatorIsSet     PropertyOperator = "is_set"
	OperatorIsNotSet  PropertyOperator = "is_not_set"
	OperatorGT        PropertyOperator = "gt"
	OperatorGTE       PropertyOperator = "gte"
	OperatorLT        PropertyOperator = "lt"
	OperatorLTE       PropertyOperator = "lte"
)

// PropertyFilter is one predicate over an event property. Value is unused for
// is_set / is_not_set.
type PropertyFilter struct {
	Key      string
	Operator PropertyOperator
	Value    any
}
