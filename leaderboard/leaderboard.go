package leaderboard

import "scoreboard/core"

// Board abstracts scoreboard operations over records kept in
// non-increasing score order.
type Board interface {
	Size() int
	IsEmpty() bool
	First() (core.Record, bool)
	Last() (core.Record, bool)
	InsertSorted(r core.Record)
	Find(target core.Record) *Node
	Delete(target core.Record) (core.Record, bool)
	Rank(target core.Record) (int, bool)
	TopN(n int) []core.Record
}
