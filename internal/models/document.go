package models

// Document is the whole persisted state: every user, team and ticket.
type Document struct {
	Users   []User   `json:"users" yaml:"users"`
	Teams   []Team   `json:"teams" yaml:"teams"`
	Tickets []Ticket `json:"tickets" yaml:"tickets"`

	// Seq holds the last id handed out per resource. It is not part of the
	// JSON layout; backends that can persist it do so separately.
	Seq Sequences `json:"-" yaml:"-"`
}

type Sequences struct {
	Teams   int
	Tickets int
}

// NewDocument returns an empty document whose collections encode as [].
func NewDocument() *Document {
	d := &Document{}
	d.Normalize()
	return d
}

// Normalize replaces nil collections with empty ones so a document read
// from a file missing a key still encodes all three arrays.
func (d *Document) Normalize() {
	if d.Users == nil {
		d.Users = []User{}
	}
	if d.Teams == nil {
		d.Teams = []Team{}
	}
	if d.Tickets == nil {
		d.Tickets = []Ticket{}
	}
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	c := &Document{
		Users:   append([]User{}, d.Users...),
		Teams:   make([]Team, len(d.Teams)),
		Tickets: append([]Ticket{}, d.Tickets...),
		Seq:     d.Seq,
	}
	for i, t := range d.Teams {
		c.Teams[i] = t.clone()
	}
	return c
}

// NextTeamID reserves and returns the next team id: one past both the
// highest live id and Seq. A backend that persists Seq therefore never
// reissues a deleted id; with a zero Seq this is max(existing)+1.
func (d *Document) NextTeamID() int {
	for _, t := range d.Teams {
		d.Seq.Teams = max(d.Seq.Teams, t.ID)
	}
	d.Seq.Teams++
	return d.Seq.Teams
}

// NextTicketID is NextTeamID for tickets.
func (d *Document) NextTicketID() int {
	for _, t := range d.Tickets {
		d.Seq.Tickets = max(d.Seq.Tickets, t.ID)
	}
	d.Seq.Tickets++
	return d.Seq.Tickets
}
