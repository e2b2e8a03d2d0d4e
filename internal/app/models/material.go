package models

// Material is a learning resource attached to a course.
//
// Tallies are derived: the seed provides a baseline count and every user in
// LikedBy/DislikedBy adds one on top, so counters can never drift from the
// vote sets or go negative.
type Material struct {
	ID            int64        `json:"id" yaml:"id"`
	CourseID      int64        `json:"courseId" yaml:"courseId"`
	Type          MaterialType `json:"type" yaml:"type"`
	Title         string       `json:"title" yaml:"title"`
	Description   string       `json:"description" yaml:"description"`
	URL           string       `json:"url" yaml:"url"`
	BaseUpvotes   int          `json:"-" yaml:"upvotes"`
	BaseDownvotes int          `json:"-" yaml:"downvotes"`
	LikedBy       IDSet        `json:"-" yaml:"-"`
	DislikedBy    IDSet        `json:"-" yaml:"-"`
}

// Upvotes returns the current upvote tally
func (m *Material) Upvotes() int {
	return m.BaseUpvotes + m.LikedBy.Len()
}

// Downvotes returns the current downvote tally
func (m *Material) Downvotes() int {
	return m.BaseDownvotes + m.DislikedBy.Len()
}

// VoteStateOf derives the user's state from set membership
func (m *Material) VoteStateOf(userID int64) VoteState {
	switch {
	case m.LikedBy.Has(userID):
		return VoteStateLiked
	case m.DislikedBy.Has(userID):
		return VoteStateDisliked
	default:
		return VoteStateNeutral
	}
}

// ApplyVote runs one transition of the vote state machine for userID and
// returns the state before and after it.
//
// Voting in the direction of the current state toggles back to neutral;
// voting against it switches sides.
func (m *Material) ApplyVote(userID int64, dir VoteDirection) (from, to VoteState) {
	if m.LikedBy == nil {
		m.LikedBy = NewIDSet()
	}
	if m.DislikedBy == nil {
		m.DislikedBy = NewIDSet()
	}

	same, other := m.LikedBy, m.DislikedBy
	target := VoteStateLiked
	if dir == VoteDown {
		same, other = m.DislikedBy, m.LikedBy
		target = VoteStateDisliked
	}

	from = m.VoteStateOf(userID)
	if same.Remove(userID) {
		return from, VoteStateNeutral
	}
	other.Remove(userID)
	same.Add(userID)
	return from, target
}

// Clone returns a deep copy safe to hand out of the store
func (m *Material) Clone() *Material {
	cp := *m
	cp.LikedBy = m.LikedBy.Clone()
	cp.DislikedBy = m.DislikedBy.Clone()
	return &cp
}
