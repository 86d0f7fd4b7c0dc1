package query

// ToSQLLimited renders the SELECT as ToSQL does, except the LIMIT is forced
// to n (and OFFSET dropped) regardless of what SetLimit/SetOffset recorded.
// It does not mutate the receiver — see sqlight.DB.SelectOne, which uses
// this instead of the mutating "call SetLimit(1) on the caller's builder"
// approach, so a builder can be reused across SelectOne and SelectAll.
func (q *Select) ToSQLLimited(n int64) (string, error) {
	clone := *q
	clone.hasLimit = true
	clone.limit = n
	clone.offset = 0
	return clone.render()
}
