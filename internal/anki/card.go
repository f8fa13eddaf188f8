package anki

// Card is a review card. Only the fields hook callbacks inspect are
// modeled so far.
type Card struct {
	ID     int64
	NoteID int64
	Due    int
	ODue   int
	Queue  int
	Lapses int
}
