package sim

// Quest tracks the run's bounty: defeat Target hostiles. Current only ever
// counts up, and completion fires exactly once.
type Quest struct {
	Target    int
	Current   int
	Completed bool
}

// Active reports whether the quest can still make progress.
func (q *Quest) Active() bool {
	return q != nil && q.Target > 0 && !q.Completed
}

// Advance records one qualifying kill.
func (q *Quest) Advance() {
	if q == nil {
		return
	}
	q.Current++
}

// CheckComplete returns true exactly once, on the tick Current first
// reaches Target. A Target of zero means no quest and never completes.
func (q *Quest) CheckComplete() bool {
	if q == nil || q.Completed || q.Target <= 0 {
		return false
	}
	if q.Current < q.Target {
		return false
	}
	q.Completed = true
	return true
}
