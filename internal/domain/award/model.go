package award

// Award is a team-scoped recognition record. Read-only in this service;
// rows are seeded or imported out of band.
type Award struct {
	ID        string
	TeamID    string
	Title     string
	Recipient string
	Month     int
	Year      int
}
