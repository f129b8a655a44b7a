package construct

// Direction selects where a ripple construction places its accumulator in
// the external interface and which end of the data sequence it folds from
// first.
type Direction int

const (
	// TopToBottom places the accumulator first in both the input and output
	// interface, and folds the data sequence from index 0 upward: acc_1 =
	// f(acc_0, cur_0), acc_2 = f(acc_1, cur_1), ...
	TopToBottom Direction = iota

	// BottomToUp places the accumulator last in both the input and output
	// interface, and folds the data sequence from the highest index downward:
	// acc_1 = f(acc_0, cur_{n-1}), acc_2 = f(acc_1, cur_{n-2}), ...
	BottomToUp
)

func (d Direction) String() string {
	switch d {
	case TopToBottom:
		return "TopToBottom"
	case BottomToUp:
		return "BottomToUp"
	default:
		return "UNKNOWN"
	}
}

// foldOrder returns the data-index visiting order for n items under d.
func foldOrder(n int, d Direction) []int {
	order := make([]int, n)
	switch d {
	case TopToBottom:
		for i := range order {
			order[i] = i
		}
	case BottomToUp:
		for i := range order {
			order[i] = n - 1 - i
		}
	}
	return order
}
