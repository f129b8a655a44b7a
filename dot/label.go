package dot

import (
	"fmt"

	"github.com/wireforge/hypercircuit/hgraph"
	"github.com/wireforge/hypercircuit/value"
)

// LabelText renders one human-readable line for l, the way a DOT node
// label (or a log line) would show it — not an encoding meant to be parsed
// back.
func LabelText[V value.Value](l hgraph.EdgeLabel[V]) string {
	switch l.Kind {
	case hgraph.LabelValue:
		return fmt.Sprintf("VALUE(%s)", l.Value())
	case hgraph.LabelSignal:
		return fmt.Sprintf("SIGNAL(%s)", l.Signal())
	case hgraph.LabelPartial:
		return fmt.Sprintf("PARTIAL(%v)", l.Partial().Vars())
	case hgraph.LabelInfiniteWaveform:
		return fmt.Sprintf("INFINITE_WAVEFORM(width=%d)", l.Waveform().Width())
	case hgraph.LabelPrimitive:
		return l.Prim().Name
	case hgraph.LabelEnhancedPrimitive:
		return fmt.Sprintf("%s%v", l.Enhanced().Primitive.Name, l.Enhanced().Delays)
	case hgraph.LabelJoin:
		return fmt.Sprintf("JOIN(%d)", l.JoinWidth())
	case hgraph.LabelBundler:
		return fmt.Sprintf("BUNDLER(%v -> %v)", l.BundlerIn(), l.BundlerOut())
	case hgraph.LabelDelay:
		if l.HasInitial() {
			return fmt.Sprintf("DELAY(%d, initial=%s)", l.DelayN(), l.Initial())
		}
		return fmt.Sprintf("DELAY(%d)", l.DelayN())
	case hgraph.LabelFeedback:
		return fmt.Sprintf("FEEDBACK(%d)", l.FeedbackWidth())
	case hgraph.LabelBlackbox:
		return fmt.Sprintf("BLACKBOX(%s)", l.Blackbox().Name())
	case hgraph.LabelComposite:
		return fmt.Sprintf("COMPOSITE(%s)", l.Composite().Name)
	case hgraph.LabelArgument:
		return "ARGUMENT"
	default:
		return l.Kind.String()
	}
}
