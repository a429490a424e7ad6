package strategy

// cell is one chart entry: a primary action plus the fallback to take
// when the primary is not currently legal.
type cell int

const (
	hit cell = iota
	stand
	doubleHit   // double, else hit
	doubleStand // double, else stand
	split       // split, else hit
)

// Chart shorthand. The tables below read like a printed basic strategy
// card; anything wordier makes the grids illegible.
const (
	h  = hit
	s  = stand
	d  = doubleHit
	ds = doubleStand
	p  = split
)

// Columns run across dealer upcards 2 through 11, where 11 is an ace.
// col maps an upcard value onto a column index.
func col(up int) int {
	return up - 2
}

// hardTable covers player hard totals 8 and below through 17 and above,
// one row per total.
var hardTable = [...][10]cell{
	//   2   3   4   5   6   7   8   9   T   A
	{h, h, h, h, h, h, h, h, h, h},     // 8 or less
	{h, d, d, d, d, h, h, h, h, h},     // 9
	{d, d, d, d, d, d, d, d, h, h},     // 10
	{d, d, d, d, d, d, d, d, d, h},     // 11
	{h, h, s, s, s, h, h, h, h, h},     // 12
	{s, s, s, s, s, h, h, h, h, h},     // 13
	{s, s, s, s, s, h, h, h, h, h},     // 14
	{s, s, s, s, s, h, h, h, h, h},     // 15
	{s, s, s, s, s, h, h, h, h, h},     // 16
	{s, s, s, s, s, s, s, s, s, s},     // 17 or more
}

// softTable covers soft totals by their high reading, soft 13 (A,2)
// through soft 20 (A,9). Soft 21 never reaches the advisor; the hand is
// already finished.
var softTable = [...][10]cell{
	//   2    3    4    5    6    7   8   9   T   A
	{h, h, h, d, d, h, h, h, h, h},      // soft 13
	{h, h, h, d, d, h, h, h, h, h},      // soft 14
	{h, h, d, d, d, h, h, h, h, h},      // soft 15
	{h, h, d, d, d, h, h, h, h, h},      // soft 16
	{h, d, d, d, d, h, h, h, h, h},      // soft 17
	{s, ds, ds, ds, ds, s, s, h, h, h},  // soft 18
	{s, s, s, s, s, s, s, s, s, s},      // soft 19
	{s, s, s, s, s, s, s, s, s, s},      // soft 20
}

// pairTable covers two-card pairs by their shared card value, 2,2
// through A,A. The table is consulted only while Split is legal, so the
// split cells always resolve to Split. Fives never split; the row is
// hard ten. Tens stand outright.
var pairTable = [...][10]cell{
	//   2   3   4   5   6   7   8   9   T   A
	{p, p, p, p, p, p, h, h, h, h},     // 2,2
	{p, p, p, p, p, p, h, h, h, h},     // 3,3
	{h, h, h, p, p, h, h, h, h, h},     // 4,4
	{d, d, d, d, d, d, d, d, h, h},     // 5,5
	{p, p, p, p, p, h, h, h, h, h},     // 6,6
	{p, p, p, p, p, p, h, h, h, h},     // 7,7
	{p, p, p, p, p, p, p, p, p, p},     // 8,8
	{p, p, p, p, p, s, p, p, s, s},     // 9,9
	{s, s, s, s, s, s, s, s, s, s},     // T,T
	{p, p, p, p, p, p, p, p, p, p},     // A,A
}

// hardCell looks up the hard chart, clamping totals onto the chart's
// edge rows.
func hardCell(total, up int) cell {
	if total < 8 {
		total = 8
	}
	if total > 17 {
		total = 17
	}
	return hardTable[total-8][col(up)]
}

// softCell looks up the soft chart by the total's high reading. Soft 12
// is a pair of aces that could not be split; it plays as a hit.
func softCell(high, up int) cell {
	if high < 13 {
		return hit
	}
	if high > 20 {
		high = 20
	}
	return softTable[high-13][col(up)]
}

// pairCell looks up the pair chart by the shared card value of the pair.
func pairCell(value, up int) cell {
	return pairTable[value-2][col(up)]
}
