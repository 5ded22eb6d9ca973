package cube

// step is an ordered pair of adjacent faces: rolling from From onto To.
type step struct {
	From, To Face
}

// nextLeft is read only through NextLeft.
var nextLeft = map[step]Face{
	{Front, Top}:    Left,
	{Front, Left}:   Bottom,
	{Front, Bottom}: Right,
	{Front, Right}:  Top,
	{Left, Top}:     Back,
	{Left, Back}:    Bottom,
	{Left, Bottom}:  Front,
	{Left, Front}:   Top,
	{Right, Top}:    Front,
	{Right, Front}:  Bottom,
	{Right, Bottom}: Back,
	{Right, Back}:   Top,
	{Back, Top}:     Right,
	{Back, Right}:   Bottom,
	{Back, Bottom}:  Left,
	{Back, Left}:    Top,
	{Top, Front}:    Right,
	{Top, Right}:    Back,
	{Top, Back}:     Left,
	{Top, Left}:     Front,
	{Bottom, Front}: Left,
	{Bottom, Left}:  Back,
	{Bottom, Back}:  Right,
	{Bottom, Right}: Front,
}

// NextLeft returns the face obtained by turning left on face to after
// arriving there from face from. ok is false when from and to are not
// adjacent.
func NextLeft(from, to Face) (f Face, ok bool) {
	f, ok = nextLeft[step{From: from, To: to}]
	return f, ok
}

// Rotations returns the number of entries in the rotation table.
func Rotations() int {
	return len(nextLeft)
}
